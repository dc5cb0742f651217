package repository

import (
	"medibook/internal/domain/entity"
)

// DoctorRepository serves the static doctor directory. Implementations are
// read-only; the booking engine never writes back to the directory.
type DoctorRepository interface {
	FindAll(filter *entity.DoctorFilter) []entity.Doctor
	FindByID(id string) *entity.Doctor
	Specialties() []string
}
