package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"medibook/internal/domain/entity"
	"medibook/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// AppointmentsKey is the fixed blob name holding the serialized appointment list.
const AppointmentsKey = "appointments"

var (
	ErrSlotTaken   = errors.New("time slot is already booked")
	ErrDuplicateID = errors.New("appointment id already exists")
)

// BookingStore is the single source of truth for confirmed appointments.
// The in-memory list is authoritative for the session; every mutation is
// written through to the blob store, and persistence failures are logged
// but never fail the mutation.
type BookingStore struct {
	mu           sync.RWMutex
	appointments []entity.Appointment

	blobs repository.BlobStore
	log   *logrus.Logger
}

func NewBookingStore(blobs repository.BlobStore, log *logrus.Logger) *BookingStore {
	return &BookingStore{
		blobs: blobs,
		log:   log,
	}
}

// Load initializes the store from the persisted blob. A missing blob yields
// an empty list; an unparsable blob is logged and treated as empty. Only
// infrastructure read errors surface to the caller.
func (s *BookingStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.blobs.Get(ctx, AppointmentsKey)
	if err != nil {
		if errors.Is(err, repository.ErrBlobNotFound) {
			s.appointments = nil
			return nil
		}
		return err
	}

	var appointments []entity.Appointment
	if err := json.Unmarshal(data, &appointments); err != nil {
		s.log.Warnf("Failed to parse persisted appointments, starting empty: %+v", err)
		s.appointments = nil
		return nil
	}

	s.appointments = appointments
	return nil
}

// Appointments returns a snapshot copy of the current appointment list.
func (s *BookingStore) Appointments() []entity.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]entity.Appointment, len(s.appointments))
	copy(snapshot, s.appointments)
	return snapshot
}

// Count returns the number of confirmed appointments.
func (s *BookingStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.appointments)
}

// AddAppointment appends a new appointment after checking, under the same
// lock that performs the append, that neither the (doctor, date, time) slot
// nor the id is already taken. This is the sole mutation gate: a slot shown
// as free at render time is re-verified here immediately before committing,
// so state is never touched on a conflict.
func (s *BookingStore) AddAppointment(ctx context.Context, appointment entity.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ConflictsWith(&appointment) {
			return ErrSlotTaken
		}
		if s.appointments[i].ID == appointment.ID {
			return ErrDuplicateID
		}
	}

	s.appointments = append(s.appointments, appointment)
	s.persist(ctx)
	return nil
}

// CancelAppointment removes the appointment with the given id. Cancelling an
// unknown id is a silent no-op, which makes cancel idempotent.
func (s *BookingStore) CancelAppointment(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// persist writes the full list through to the blob store. Callers must hold
// the write lock. Failures leave the in-memory list authoritative for the
// rest of the session.
func (s *BookingStore) persist(ctx context.Context) {
	data, err := json.Marshal(s.appointments)
	if err != nil {
		s.log.Warnf("Failed to serialize appointments: %+v", err)
		return
	}
	if err := s.blobs.Put(ctx, AppointmentsKey, data); err != nil {
		s.log.Warnf("Failed to persist appointments: %+v", err)
	}
}
