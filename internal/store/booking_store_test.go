package store

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"medibook/internal/domain/entity"
	"medibook/internal/repository"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testStore(t *testing.T) (*BookingStore, string) {
	t.Helper()
	dir := t.TempDir()
	blobs, err := repository.NewFileBlobStore(dir)
	if err != nil {
		t.Fatalf("NewFileBlobStore failed: %v", err)
	}
	s := NewBookingStore(blobs, testLogger())
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return s, dir
}

func testAppointment(id, date, timeOfDay string) entity.Appointment {
	return entity.Appointment{
		ID: id,
		Doctor: entity.Doctor{
			ID:        "doctor-1",
			Name:      "Sarah Johnson",
			Specialty: "Cardiology",
			Availability: []entity.AvailabilitySlot{
				{Date: "2025-04-21", Slots: []string{"09:00", "11:30"}},
			},
		},
		Date: date,
		Time: timeOfDay,
	}
}

func TestLoad_MissingBlobStartsEmpty(t *testing.T) {
	s, _ := testStore(t)
	if s.Count() != 0 {
		t.Errorf("expected empty store, got %d appointments", s.Count())
	}
}

func TestLoad_CorruptBlobStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, AppointmentsKey+".json"), []byte("{not json"), 0600); err != nil {
		t.Fatalf("failed to seed corrupt blob: %v", err)
	}

	blobs, err := repository.NewFileBlobStore(dir)
	if err != nil {
		t.Fatalf("NewFileBlobStore failed: %v", err)
	}
	s := NewBookingStore(blobs, testLogger())
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load should not fail on a corrupt blob: %v", err)
	}
	if s.Count() != 0 {
		t.Errorf("expected empty store after corrupt blob, got %d", s.Count())
	}
}

func TestAddAppointment_NoDoubleBooking(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()

	if err := s.AddAppointment(ctx, testAppointment("appointment-1", "2025-04-21", "09:00")); err != nil {
		t.Fatalf("first booking should succeed: %v", err)
	}

	err := s.AddAppointment(ctx, testAppointment("appointment-2", "2025-04-21", "09:00"))
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}
	if s.Count() != 1 {
		t.Errorf("conflicting booking must not mutate state, count=%d", s.Count())
	}
}

func TestAddAppointment_SameTimeDifferentDoctor(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()

	if err := s.AddAppointment(ctx, testAppointment("appointment-1", "2025-04-21", "09:00")); err != nil {
		t.Fatalf("first booking should succeed: %v", err)
	}

	other := testAppointment("appointment-2", "2025-04-21", "09:00")
	other.Doctor.ID = "doctor-2"
	if err := s.AddAppointment(ctx, other); err != nil {
		t.Fatalf("same slot with a different doctor should succeed: %v", err)
	}
}

func TestAddAppointment_RejectsReusedID(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()

	if err := s.AddAppointment(ctx, testAppointment("appointment-1", "2025-04-21", "09:00")); err != nil {
		t.Fatalf("first booking should succeed: %v", err)
	}

	err := s.AddAppointment(ctx, testAppointment("appointment-1", "2025-04-21", "11:30"))
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if s.Count() != 1 {
		t.Errorf("duplicate id must not mutate state, count=%d", s.Count())
	}
}

func TestCancelAppointment_Idempotent(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()

	if err := s.AddAppointment(ctx, testAppointment("appointment-1", "2025-04-21", "09:00")); err != nil {
		t.Fatalf("booking should succeed: %v", err)
	}

	s.CancelAppointment(ctx, "appointment-1")
	if s.Count() != 0 {
		t.Fatalf("expected empty store after cancel, got %d", s.Count())
	}

	// Second cancel of the same id is a silent no-op
	s.CancelAppointment(ctx, "appointment-1")
	s.CancelAppointment(ctx, "never-existed")
	if s.Count() != 0 {
		t.Errorf("idempotent cancel changed state, count=%d", s.Count())
	}
}

func TestPersistence_RoundTrip(t *testing.T) {
	s, dir := testStore(t)
	ctx := context.Background()

	first := testAppointment("appointment-1", "2025-04-21", "09:00")
	second := testAppointment("appointment-2", "2025-04-21", "11:30")
	if err := s.AddAppointment(ctx, first); err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if err := s.AddAppointment(ctx, second); err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	// Fresh session over the same blob
	blobs, err := repository.NewFileBlobStore(dir)
	if err != nil {
		t.Fatalf("NewFileBlobStore failed: %v", err)
	}
	reloaded := NewBookingStore(blobs, testLogger())
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got := reloaded.Appointments()
	if len(got) != 2 {
		t.Fatalf("expected 2 appointments after reload, got %d", len(got))
	}
	if got[0].ID != first.ID || got[0].Doctor.ID != first.Doctor.ID || got[0].Date != first.Date || got[0].Time != first.Time {
		t.Errorf("first appointment did not survive the round trip: %+v", got[0])
	}
	if got[1].ID != second.ID || got[1].Time != second.Time {
		t.Errorf("second appointment did not survive the round trip: %+v", got[1])
	}
}

func TestPersistence_CancelledAppointmentDoesNotReappear(t *testing.T) {
	s, dir := testStore(t)
	ctx := context.Background()

	if err := s.AddAppointment(ctx, testAppointment("appointment-1", "2025-04-21", "09:00")); err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if err := s.AddAppointment(ctx, testAppointment("appointment-2", "2025-04-21", "11:30")); err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	s.CancelAppointment(ctx, "appointment-1")

	blobs, err := repository.NewFileBlobStore(dir)
	if err != nil {
		t.Fatalf("NewFileBlobStore failed: %v", err)
	}
	reloaded := NewBookingStore(blobs, testLogger())
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	for _, a := range reloaded.Appointments() {
		if a.ID == "appointment-1" {
			t.Fatal("cancelled appointment reappeared after reload")
		}
	}
	if reloaded.Count() != 1 {
		t.Errorf("expected 1 appointment after reload, got %d", reloaded.Count())
	}
}

type failingBlobStore struct{}

func (failingBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("backend down")
}

func (failingBlobStore) Put(ctx context.Context, key string, data []byte) error {
	return errors.New("backend down")
}

func TestAddAppointment_PersistFailureIsNonFatal(t *testing.T) {
	s := NewBookingStore(failingBlobStore{}, testLogger())
	ctx := context.Background()

	if err := s.AddAppointment(ctx, testAppointment("appointment-1", "2025-04-21", "09:00")); err != nil {
		t.Fatalf("mutation must succeed even when persistence fails: %v", err)
	}
	if s.Count() != 1 {
		t.Errorf("in-memory list should stay authoritative, count=%d", s.Count())
	}
}

func TestAppointments_ReturnsCopy(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()

	if err := s.AddAppointment(ctx, testAppointment("appointment-1", "2025-04-21", "09:00")); err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	snapshot := s.Appointments()
	snapshot[0].ID = "mutated"

	if s.Appointments()[0].ID != "appointment-1" {
		t.Error("mutating a snapshot must not affect the store")
	}
}
