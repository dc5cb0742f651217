package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"medibook/internal/domain/entity"
	"medibook/internal/repository"
	"medibook/internal/store"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestStore(t *testing.T) *store.BookingStore {
	t.Helper()
	blobs, err := repository.NewFileBlobStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileBlobStore failed: %v", err)
	}
	s := store.NewBookingStore(blobs, testLogger())
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return s
}

func flowDoctor() *entity.Doctor {
	return &entity.Doctor{
		ID:        "doctor-1",
		Name:      "Sarah Johnson",
		Specialty: "Cardiology",
		Availability: []entity.AvailabilitySlot{
			{Date: "2025-04-21", Slots: []string{"09:00", "11:30"}},
			{Date: "2025-04-23", Slots: []string{"14:00"}},
		},
	}
}

func TestBookingFlow_HappyPath(t *testing.T) {
	s := newTestStore(t)
	flow := NewBookingFlow(s)

	if flow.State() != FlowIdle {
		t.Fatalf("new flow should be idle, got %s", flow.State())
	}

	if err := flow.SelectDoctor(flowDoctor()); err != nil {
		t.Fatalf("SelectDoctor failed: %v", err)
	}
	if flow.State() != FlowDoctorSelected {
		t.Fatalf("expected doctor_selected, got %s", flow.State())
	}

	if err := flow.SelectSlot("2025-04-21", "09:00"); err != nil {
		t.Fatalf("SelectSlot failed: %v", err)
	}
	if flow.State() != FlowSlotSelected {
		t.Fatalf("expected slot_selected, got %s", flow.State())
	}

	appointment, err := flow.Confirm(context.Background())
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if flow.State() != FlowConfirmed {
		t.Fatalf("expected confirmed, got %s", flow.State())
	}
	if appointment.Doctor.ID != "doctor-1" || appointment.Date != "2025-04-21" || appointment.Time != "09:00" {
		t.Errorf("unexpected appointment: %+v", appointment)
	}
	if appointment.ID == "" {
		t.Error("appointment id must be generated")
	}
	if s.Count() != 1 {
		t.Errorf("expected 1 stored appointment, got %d", s.Count())
	}
}

func TestBookingFlow_RejectsDoctorWithoutSlots(t *testing.T) {
	s := newTestStore(t)
	flow := NewBookingFlow(s)

	empty := &entity.Doctor{ID: "doctor-9", Name: "Jennifer Adams"}
	err := flow.SelectDoctor(empty)
	if !errors.Is(err, ErrNoAvailableSlots) {
		t.Fatalf("expected ErrNoAvailableSlots, got %v", err)
	}
	if flow.State() != FlowRejected {
		t.Errorf("expected rejected, got %s", flow.State())
	}
	if s.Count() != 0 {
		t.Errorf("rejected flow must never reach the store, count=%d", s.Count())
	}
}

func TestBookingFlow_SelectSlot_StaleSlotDropsBack(t *testing.T) {
	s := newTestStore(t)
	doctor := flowDoctor()

	// Someone else books the slot after the list was rendered
	first := NewBookingFlow(s)
	if err := first.SelectDoctor(doctor); err != nil {
		t.Fatalf("SelectDoctor failed: %v", err)
	}
	if err := first.SelectSlot("2025-04-21", "09:00"); err != nil {
		t.Fatalf("SelectSlot failed: %v", err)
	}
	if _, err := first.Confirm(context.Background()); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}

	second := NewBookingFlow(s)
	if err := second.SelectDoctor(doctor); err != nil {
		t.Fatalf("SelectDoctor failed: %v", err)
	}
	err := second.SelectSlot("2025-04-21", "09:00")
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}
	if second.State() != FlowDoctorSelected {
		t.Errorf("stale slot should drop back to doctor_selected, got %s", second.State())
	}

	// The user can still pick another slot in the same session
	if err := second.SelectSlot("2025-04-21", "11:30"); err != nil {
		t.Fatalf("picking another slot should work: %v", err)
	}
}

func TestBookingFlow_ConfirmRace(t *testing.T) {
	s := newTestStore(t)
	doctor := flowDoctor()

	first := NewBookingFlow(s)
	second := NewBookingFlow(s)
	for _, flow := range []*BookingFlow{first, second} {
		if err := flow.SelectDoctor(doctor); err != nil {
			t.Fatalf("SelectDoctor failed: %v", err)
		}
		if err := flow.SelectSlot("2025-04-21", "09:00"); err != nil {
			t.Fatalf("SelectSlot failed: %v", err)
		}
	}

	if _, err := first.Confirm(context.Background()); err != nil {
		t.Fatalf("first confirm should succeed: %v", err)
	}

	// Booked between selection and confirm: recoverable, not terminal
	_, err := second.Confirm(context.Background())
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}
	if second.State() != FlowDoctorSelected {
		t.Errorf("losing flow should drop back to doctor_selected, got %s", second.State())
	}
	if s.Count() != 1 {
		t.Errorf("expected exactly 1 appointment, got %d", s.Count())
	}
}

func TestBookingFlow_SelectSlot_Validation(t *testing.T) {
	s := newTestStore(t)
	flow := NewBookingFlow(s)
	if err := flow.SelectDoctor(flowDoctor()); err != nil {
		t.Fatalf("SelectDoctor failed: %v", err)
	}

	if err := flow.SelectSlot("21-04-2025", "09:00"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
	if err := flow.SelectSlot("2025-04-21", "9am"); !errors.Is(err, ErrInvalidTime) {
		t.Errorf("expected ErrInvalidTime, got %v", err)
	}
	if err := flow.SelectSlot("2025-04-22", "09:00"); !errors.Is(err, ErrSlotNotOffered) {
		t.Errorf("expected ErrSlotNotOffered for a date outside the calendar, got %v", err)
	}
	if err := flow.SelectSlot("2025-04-21", "10:00"); !errors.Is(err, ErrSlotNotOffered) {
		t.Errorf("expected ErrSlotNotOffered for a time outside the calendar, got %v", err)
	}
}

func TestBookingFlow_OutOfOrderOperations(t *testing.T) {
	s := newTestStore(t)
	flow := NewBookingFlow(s)

	if err := flow.SelectSlot("2025-04-21", "09:00"); !errors.Is(err, ErrFlowState) {
		t.Errorf("SelectSlot before SelectDoctor should fail, got %v", err)
	}
	if _, err := flow.Confirm(context.Background()); !errors.Is(err, ErrFlowState) {
		t.Errorf("Confirm before SelectSlot should fail, got %v", err)
	}
}

func TestBookingFlow_Abort(t *testing.T) {
	s := newTestStore(t)
	flow := NewBookingFlow(s)
	if err := flow.SelectDoctor(flowDoctor()); err != nil {
		t.Fatalf("SelectDoctor failed: %v", err)
	}
	if err := flow.SelectSlot("2025-04-21", "09:00"); err != nil {
		t.Fatalf("SelectSlot failed: %v", err)
	}

	flow.Abort()
	if flow.State() != FlowIdle {
		t.Errorf("abort should reset to idle, got %s", flow.State())
	}
	if s.Count() != 0 {
		t.Errorf("abort must not mutate the store, count=%d", s.Count())
	}
}
