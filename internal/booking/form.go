package booking

import "appointment-booking-app/internal/models"

// Form is the draft being composed plus the identity of the appointment it
// replaces, if any.
type Form struct {
	draft     models.AppointmentFields
	editingID int64
	editing   bool
}

func (f *Form) Set(field models.Field, value string) {
	f.draft.Set(field, value)
}

// Load copies a stored appointment into the draft and marks it as the
// editing target.
func (f *Form) Load(record models.Appointment) {
	f.draft = record.AppointmentFields
	f.editingID = record.ID
	f.editing = true
}

// Reset clears the draft and the editing target.
func (f *Form) Reset() {
	f.draft = models.AppointmentFields{}
	f.editingID = 0
	f.editing = false
}

// ClearTarget leaves edit mode but keeps the draft.
func (f *Form) ClearTarget() {
	f.editingID = 0
	f.editing = false
}

func (f *Form) Draft() models.AppointmentFields {
	return f.draft
}

// EditingTarget returns the identity being edited.
func (f *Form) EditingTarget() (int64, bool) {
	return f.editingID, f.editing
}
