package entity

// Appointment is a confirmed booking. It embeds a full snapshot of the doctor
// at booking time rather than a reference, so cancelled or edited directory
// entries never change what the patient booked.
type Appointment struct {
	ID     string `json:"id"`
	Doctor Doctor `json:"doctor"`
	Date   string `json:"date"` // YYYY-MM-DD
	Time   string `json:"time"` // HH:MM
}

// ConflictsWith reports whether two appointments claim the same doctor slot.
// This is the invariant the booking store enforces: for any two stored
// appointments with the same doctor id, (date, time) must differ.
func (a *Appointment) ConflictsWith(other *Appointment) bool {
	return a.Doctor.ID == other.Doctor.ID && a.Date == other.Date && a.Time == other.Time
}
