package entity

// Filter values accepted by the directory listing.
const (
	FilterAll           = "all"
	FilterAvailableOnly = "available"
)

// DoctorFilter is a domain-level filter for listing doctors.
// Used by the repository and usecase layers to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	Specialty    string // exact match; empty or "all" matches everything
	Availability string // "all" or "available" (at least one unbooked slot)
}

// MatchesSpecialty reports whether a doctor passes the specialty part of the filter.
func (f *DoctorFilter) MatchesSpecialty(doctor *Doctor) bool {
	return f.Specialty == "" || f.Specialty == FilterAll || f.Specialty == doctor.Specialty
}

// WantsAvailableOnly reports whether the filter restricts to bookable doctors.
func (f *DoctorFilter) WantsAvailableOnly() bool {
	return f.Availability == FilterAvailableOnly
}
