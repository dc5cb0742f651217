package converter

import (
	"medibook/internal/delivery/dto"
	"medibook/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its DTO. The
// embedded doctor is the booking-time snapshot, so it carries no
// availability-derived fields.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:     appointment.ID,
		Doctor: DoctorToSnapshotResponse(&appointment.Doctor),
		Date:   appointment.Date,
		Time:   appointment.Time,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs.
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		resp := AppointmentToResponse(&appointments[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
