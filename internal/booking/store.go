package booking

import (
	"errors"

	"appointment-booking-app/internal/models"
)

// ErrNotFound is returned when no appointment has the requested identity.
var ErrNotFound = errors.New("appointment not found")

// Store holds appointments in insertion order. Identities are assigned from a
// monotonic counter and never reused, even after a delete.
type Store struct {
	records []models.Appointment
	lastID  int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add stores a new appointment at the end of the list.
func (s *Store) Add(fields models.AppointmentFields) models.Appointment {
	s.lastID++
	record := models.Appointment{ID: s.lastID, AppointmentFields: fields}
	s.records = append(s.records, record)
	return record
}

// Update overwrites the fields of an existing appointment in place.
func (s *Store) Update(id int64, fields models.AppointmentFields) (models.Appointment, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Appointment{}, ErrNotFound
	}
	s.records[i] = models.Appointment{ID: id, AppointmentFields: fields}
	return s.records[i], nil
}

// Remove deletes the appointment with the given id and reports whether one
// was removed.
func (s *Store) Remove(id int64) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return true
}

// Get returns a copy of the appointment with the given id.
func (s *Store) Get(id int64) (models.Appointment, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Appointment{}, false
	}
	return s.records[i], true
}

// List returns a copy of all appointments in display order.
func (s *Store) List() []models.Appointment {
	out := make([]models.Appointment, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Len() int {
	return len(s.records)
}

func (s *Store) indexOf(id int64) int {
	for i, r := range s.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
