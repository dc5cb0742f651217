package usecase

import (
	"context"
	"errors"
	"time"

	"medibook/internal/availability"
	"medibook/internal/domain/entity"
	"medibook/internal/store"

	"github.com/google/uuid"
)

var (
	ErrNoAvailableSlots = errors.New("doctor has no available slots")
	ErrSlotNotOffered   = errors.New("slot is not in the doctor's calendar")
	ErrSlotTaken        = errors.New("time slot is no longer available")
	ErrInvalidDate      = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTime      = errors.New("invalid time format, use HH:MM")
	ErrFlowState        = errors.New("operation not allowed in current flow state")
)

// FlowState is the booking attempt's position in
// Idle -> DoctorSelected -> SlotSelected -> Confirming -> {Confirmed | Rejected}.
type FlowState string

const (
	FlowIdle           FlowState = "idle"
	FlowDoctorSelected FlowState = "doctor_selected"
	FlowSlotSelected   FlowState = "slot_selected"
	FlowConfirming     FlowState = "confirming"
	FlowConfirmed      FlowState = "confirmed"
	FlowRejected       FlowState = "rejected"
)

// BookingFlow sequences one user's booking attempt through validation and the
// store. Availability is checked three times: when the doctor is selected,
// when a concrete slot is chosen, and authoritatively inside AddAppointment —
// closing the gap between a slot being displayed as free and the user
// committing to it.
type BookingFlow struct {
	store *store.BookingStore

	state  FlowState
	doctor *entity.Doctor
	date   string
	time   string
}

func NewBookingFlow(bookingStore *store.BookingStore) *BookingFlow {
	return &BookingFlow{
		store: bookingStore,
		state: FlowIdle,
	}
}

func (f *BookingFlow) State() FlowState {
	return f.state
}

// SelectDoctor moves the flow to DoctorSelected. A doctor with nothing left
// to book is rejected immediately and the flow terminates.
func (f *BookingFlow) SelectDoctor(doctor *entity.Doctor) error {
	if f.state != FlowIdle {
		return ErrFlowState
	}

	if !availability.HasAvailableSlots(f.store.Appointments(), doctor) {
		f.state = FlowRejected
		return ErrNoAvailableSlots
	}

	f.doctor = doctor
	f.state = FlowDoctorSelected
	return nil
}

// SelectSlot records a concrete (date, time) choice. The slot is re-validated
// against current bookings here: one that was free when the list rendered may
// have been booked since. On a stale slot the flow drops back to
// DoctorSelected with the selection cleared, so the user can pick another.
func (f *BookingFlow) SelectSlot(date, timeOfDay string) error {
	if f.state != FlowDoctorSelected {
		return ErrFlowState
	}

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrInvalidDate
	}
	if _, err := time.Parse("15:04", timeOfDay); err != nil {
		return ErrInvalidTime
	}
	if !f.doctor.HasNominalSlot(date, timeOfDay) {
		return ErrSlotNotOffered
	}

	if availability.IsTimeSlotBooked(f.store.Appointments(), f.doctor, date, timeOfDay) {
		f.clearSelection()
		return ErrSlotTaken
	}

	f.date = date
	f.time = timeOfDay
	f.state = FlowSlotSelected
	return nil
}

// Confirm commits the booking through the store's mutation gate. A conflict
// detected there (booked between selection and confirm) drops the flow back
// to DoctorSelected rather than terminating it — the user may pick another
// slot in the same session.
func (f *BookingFlow) Confirm(ctx context.Context) (*entity.Appointment, error) {
	if f.state != FlowSlotSelected {
		return nil, ErrFlowState
	}
	f.state = FlowConfirming

	appointment := entity.Appointment{
		ID:     "appointment-" + uuid.NewString(),
		Doctor: *f.doctor,
		Date:   f.date,
		Time:   f.time,
	}

	if err := f.store.AddAppointment(ctx, appointment); err != nil {
		f.clearSelection()
		if errors.Is(err, store.ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	f.clearSelection()
	f.doctor = nil
	f.state = FlowConfirmed
	return &appointment, nil
}

// Abort resets a non-terminal flow to Idle with no store mutation.
func (f *BookingFlow) Abort() {
	if f.state == FlowConfirmed || f.state == FlowRejected {
		return
	}
	f.clearSelection()
	f.doctor = nil
	f.state = FlowIdle
}

// clearSelection drops the chosen slot and returns to DoctorSelected when a
// doctor is still attached.
func (f *BookingFlow) clearSelection() {
	f.date = ""
	f.time = ""
	if f.doctor != nil {
		f.state = FlowDoctorSelected
	} else {
		f.state = FlowIdle
	}
}
