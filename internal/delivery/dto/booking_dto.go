package dto

// Request DTOs

type CreateBookingRequest struct {
	DoctorID string `json:"doctor_id" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string `json:"time" validate:"required,datetime=15:04"`
}

// Response DTOs

type AppointmentResponse struct {
	ID     string                 `json:"id"`
	Doctor DoctorSnapshotResponse `json:"doctor"`
	Date   string                 `json:"date"`
	Time   string                 `json:"time"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
