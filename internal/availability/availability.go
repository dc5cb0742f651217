// Package availability derives bookable slots from the doctor directory and
// a snapshot of confirmed appointments. Everything here is pure: availability
// is recomputed from the appointment list on every call instead of being
// cached, so there is no second source of truth that could drift from the
// booking store.
package availability

import (
	"medibook/internal/domain/entity"
)

// IsTimeSlotBooked reports whether an appointment exists for the exact
// (doctor id, date, time) triple. Slots are discrete, not intervals, so
// there is no overlap semantics.
func IsTimeSlotBooked(appointments []entity.Appointment, doctor *entity.Doctor, date, timeOfDay string) bool {
	for i := range appointments {
		a := &appointments[i]
		if a.Doctor.ID == doctor.ID && a.Date == date && a.Time == timeOfDay {
			return true
		}
	}
	return false
}

// AvailableSlots returns the doctor's nominal slots for the date with booked
// ones removed, preserving calendar order. A date absent from the doctor's
// calendar yields an empty result.
func AvailableSlots(appointments []entity.Appointment, doctor *entity.Doctor, date string) []string {
	var free []string
	for _, slot := range doctor.NominalSlots(date) {
		if !IsTimeSlotBooked(appointments, doctor, date, slot) {
			free = append(free, slot)
		}
	}
	return free
}

// DoctorAvailability is the canonical "what can still be booked" view: every
// calendar date filtered through AvailableSlots, with fully booked dates
// dropped. Output order matches the doctor's calendar order.
func DoctorAvailability(appointments []entity.Appointment, doctor *entity.Doctor) []entity.AvailabilitySlot {
	var remaining []entity.AvailabilitySlot
	for _, day := range doctor.Availability {
		free := AvailableSlots(appointments, doctor, day.Date)
		if len(free) > 0 {
			remaining = append(remaining, entity.AvailabilitySlot{Date: day.Date, Slots: free})
		}
	}
	return remaining
}

// HasAvailableSlots reports whether any date still has an unbooked slot.
// Early-exits on the first free slot found.
func HasAvailableSlots(appointments []entity.Appointment, doctor *entity.Doctor) bool {
	for _, day := range doctor.Availability {
		for _, slot := range day.Slots {
			if !IsTimeSlotBooked(appointments, doctor, day.Date, slot) {
				return true
			}
		}
	}
	return false
}
