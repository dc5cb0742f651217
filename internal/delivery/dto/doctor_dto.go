package dto

// Response DTOs

type AvailabilitySlotResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

type DoctorResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Photo     string  `json:"photo"`
	Specialty string  `json:"specialty"`
	Rating    float64 `json:"rating"`
	Location  string  `json:"location"`

	// Derived from current bookings, not part of the directory record
	HasAvailableSlots bool                       `json:"has_available_slots"`
	Availability      []AvailabilitySlotResponse `json:"availability,omitempty"`
}

// DoctorSnapshotResponse is the doctor as embedded in an appointment: the
// booking-time record only, with no availability-derived fields.
type DoctorSnapshotResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Photo     string  `json:"photo"`
	Specialty string  `json:"specialty"`
	Rating    float64 `json:"rating"`
	Location  string  `json:"location"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
	Total       int      `json:"total"`
}
