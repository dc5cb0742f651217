package usecase

import (
	"context"

	"medibook/internal/availability"
	"medibook/internal/converter"
	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
	"medibook/internal/domain/repository"
	"medibook/internal/store"

	"github.com/sirupsen/logrus"
)

type DoctorUsecase interface {
	GetDoctors(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error)
	GetDoctorAvailability(ctx context.Context, id string) ([]dto.AvailabilitySlotResponse, error)
	GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
}

type doctorUsecase struct {
	log        *logrus.Logger
	store      *store.BookingStore
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(
	log *logrus.Logger,
	bookingStore *store.BookingStore,
	doctorRepo repository.DoctorRepository,
) DoctorUsecase {
	return &doctorUsecase{
		log:        log,
		store:      bookingStore,
		doctorRepo: doctorRepo,
	}
}

// GetDoctors lists the directory with the filter applied. The availability
// filter is resolved against current bookings, so a doctor whose calendar is
// fully booked out does not count as available.
func (u *doctorUsecase) GetDoctors(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error) {
	if filter == nil {
		filter = &entity.DoctorFilter{}
	}

	appointments := u.store.Appointments()
	doctors := u.doctorRepo.FindAll(filter)

	var responses []dto.DoctorResponse
	for i := range doctors {
		doctor := &doctors[i]
		hasSlots := availability.HasAvailableSlots(appointments, doctor)
		if filter.WantsAvailableOnly() && !hasSlots {
			continue
		}
		remaining := availability.DoctorAvailability(appointments, doctor)
		responses = append(responses, *converter.DoctorToResponse(doctor, remaining, hasSlots))
	}

	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error) {
	doctor := u.doctorRepo.FindByID(id)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointments := u.store.Appointments()
	remaining := availability.DoctorAvailability(appointments, doctor)
	hasSlots := availability.HasAvailableSlots(appointments, doctor)

	return converter.DoctorToResponse(doctor, remaining, hasSlots), nil
}

// GetDoctorAvailability returns only the remaining bookable calendar.
func (u *doctorUsecase) GetDoctorAvailability(ctx context.Context, id string) ([]dto.AvailabilitySlotResponse, error) {
	doctor := u.doctorRepo.FindByID(id)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	remaining := availability.DoctorAvailability(u.store.Appointments(), doctor)
	return converter.AvailabilityToResponses(remaining), nil
}

func (u *doctorUsecase) GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	specialties := u.doctorRepo.Specialties()
	return &dto.SpecialtyListResponse{
		Specialties: specialties,
		Total:       len(specialties),
	}, nil
}
