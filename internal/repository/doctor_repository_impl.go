package repository

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"medibook/internal/domain/entity"
	domainRepo "medibook/internal/domain/repository"
)

//go:embed data/doctors.json
var doctorsData []byte

type doctorRepository struct {
	doctors     []entity.Doctor
	specialties []string
}

// NewDoctorRepository loads the embedded doctor directory. The dataset is
// validated once at wiring time; a malformed directory is a build defect,
// not a runtime condition.
func NewDoctorRepository() (domainRepo.DoctorRepository, error) {
	var doctors []entity.Doctor
	if err := json.Unmarshal(doctorsData, &doctors); err != nil {
		return nil, fmt.Errorf("failed to parse doctor directory: %w", err)
	}

	// Distinct specialties in first-seen order
	seen := make(map[string]bool)
	var specialties []string
	for _, d := range doctors {
		if !seen[d.Specialty] {
			seen[d.Specialty] = true
			specialties = append(specialties, d.Specialty)
		}
	}

	return &doctorRepository{
		doctors:     doctors,
		specialties: specialties,
	}, nil
}

func (r *doctorRepository) FindAll(filter *entity.DoctorFilter) []entity.Doctor {
	if filter == nil {
		filter = &entity.DoctorFilter{}
	}

	var result []entity.Doctor
	for _, d := range r.doctors {
		if filter.MatchesSpecialty(&d) {
			result = append(result, d)
		}
	}
	return result
}

func (r *doctorRepository) FindByID(id string) *entity.Doctor {
	for i := range r.doctors {
		if r.doctors[i].ID == id {
			doctor := r.doctors[i]
			return &doctor
		}
	}
	return nil
}

func (r *doctorRepository) Specialties() []string {
	return r.specialties
}
