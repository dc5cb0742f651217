package converter

import (
	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to a DoctorResponse DTO. The
// remaining availability and the has-slots flag are derived values and are
// supplied by the caller, which holds the appointment snapshot.
func DoctorToResponse(doctor *entity.Doctor, remaining []entity.AvailabilitySlot, hasSlots bool) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:                doctor.ID,
		Name:              doctor.Name,
		Photo:             doctor.Photo,
		Specialty:         doctor.Specialty,
		Rating:            doctor.Rating,
		Location:          doctor.Location,
		HasAvailableSlots: hasSlots,
		Availability:      AvailabilityToResponses(remaining),
	}
}

// DoctorToSnapshotResponse converts the booking-time doctor record for
// embedding in an appointment.
func DoctorToSnapshotResponse(doctor *entity.Doctor) dto.DoctorSnapshotResponse {
	return dto.DoctorSnapshotResponse{
		ID:        doctor.ID,
		Name:      doctor.Name,
		Photo:     doctor.Photo,
		Specialty: doctor.Specialty,
		Rating:    doctor.Rating,
		Location:  doctor.Location,
	}
}

// AvailabilityToResponses converts calendar entries to DTOs.
func AvailabilityToResponses(slots []entity.AvailabilitySlot) []dto.AvailabilitySlotResponse {
	if slots == nil {
		return nil
	}
	responses := make([]dto.AvailabilitySlotResponse, len(slots))
	for i, day := range slots {
		responses[i] = dto.AvailabilitySlotResponse{
			Date:  day.Date,
			Slots: day.Slots,
		}
	}
	return responses
}
