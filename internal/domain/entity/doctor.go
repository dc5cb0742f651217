package entity

// AvailabilitySlot is one calendar day of a doctor's nominal open slots,
// independent of any bookings made against it.
type AvailabilitySlot struct {
	Date  string   `json:"date"`  // YYYY-MM-DD
	Slots []string `json:"slots"` // HH:MM, unique within the date
}

// Doctor is immutable reference data from the directory. The booking engine
// never mutates it; appointments embed a snapshot of it instead.
type Doctor struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Photo        string             `json:"photo"`
	Specialty    string             `json:"specialty"`
	Rating       float64            `json:"rating"`
	Location     string             `json:"location"`
	Availability []AvailabilitySlot `json:"availability"`
}

// NominalSlots returns the doctor's open slots for a date regardless of
// bookings, or nil if the calendar has no entry for that date.
func (d *Doctor) NominalSlots(date string) []string {
	for _, day := range d.Availability {
		if day.Date == date {
			return day.Slots
		}
	}
	return nil
}

// HasNominalSlot reports whether (date, time) appears in the doctor's calendar.
func (d *Doctor) HasNominalSlot(date, timeOfDay string) bool {
	for _, slot := range d.NominalSlots(date) {
		if slot == timeOfDay {
			return true
		}
	}
	return false
}
