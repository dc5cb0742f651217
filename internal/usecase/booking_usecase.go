package usecase

import (
	"context"
	"errors"

	"medibook/internal/converter"
	"medibook/internal/delivery/dto"
	"medibook/internal/domain/repository"
	"medibook/internal/store"

	"github.com/sirupsen/logrus"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type BookingUsecase interface {
	GetAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.AppointmentResponse, error)
	CancelBooking(ctx context.Context, id string) error
}

type bookingUsecase struct {
	log        *logrus.Logger
	store      *store.BookingStore
	doctorRepo repository.DoctorRepository
}

func NewBookingUsecase(
	log *logrus.Logger,
	bookingStore *store.BookingStore,
	doctorRepo repository.DoctorRepository,
) BookingUsecase {
	return &bookingUsecase{
		log:        log,
		store:      bookingStore,
		doctorRepo: doctorRepo,
	}
}

// GetAppointments returns the session's confirmed appointments.
func (u *bookingUsecase) GetAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments := u.store.Appointments()
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// CreateBooking drives a fresh booking flow end to end: select the doctor,
// select the slot, confirm. Each step re-validates availability, and the
// store performs the authoritative conflict check inside AddAppointment.
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.AppointmentResponse, error) {
	doctor := u.doctorRepo.FindByID(req.DoctorID)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	flow := NewBookingFlow(u.store)

	if err := flow.SelectDoctor(doctor); err != nil {
		u.log.Infof("Booking rejected for doctor %s: %v", doctor.ID, err)
		return nil, err
	}

	if err := flow.SelectSlot(req.Date, req.Time); err != nil {
		u.log.Infof("Slot selection failed for doctor %s at %s %s: %v", doctor.ID, req.Date, req.Time, err)
		return nil, err
	}

	appointment, err := flow.Confirm(ctx)
	if err != nil {
		u.log.Warnf("Booking confirm failed for doctor %s at %s %s: %v", doctor.ID, req.Date, req.Time, err)
		return nil, err
	}

	u.log.Infof("Appointment booked: id=%s, doctor=%s, date=%s, time=%s",
		appointment.ID, appointment.Doctor.ID, appointment.Date, appointment.Time)
	return converter.AppointmentToResponse(appointment), nil
}

// CancelBooking removes an appointment by id. Unknown ids are a no-op, so
// repeated cancels of the same appointment succeed.
func (u *bookingUsecase) CancelBooking(ctx context.Context, id string) error {
	u.store.CancelAppointment(ctx, id)
	u.log.Infof("Appointment cancelled: id=%s", id)
	return nil
}
