package booking

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"appointment-booking-app/internal/models"
)

// OutcomeKind describes what a submission did.
type OutcomeKind string

const (
	OutcomeBooked   OutcomeKind = "booked"
	OutcomeUpdated  OutcomeKind = "updated"
	OutcomeRejected OutcomeKind = "rejected"
)

// Outcome is the result of submitting the form.
type Outcome struct {
	Kind   OutcomeKind         `json:"kind"`
	Record *models.Appointment `json:"record,omitempty"`
	Reason string              `json:"reason,omitempty"`
}

// FormMode tells the page which action the submit button performs.
type FormMode string

const (
	ModeBook   FormMode = "book"
	ModeUpdate FormMode = "update"
)

// FormState is a snapshot of the form session.
type FormState struct {
	Draft       models.AppointmentFields `json:"draft"`
	EditingID   *int64                   `json:"editingId"`
	Mode        FormMode                 `json:"mode"`
	SubmitLabel string                   `json:"submitLabel"`
}

// Controller owns the state of one booking page session: the appointment
// list, the form draft and the open action menu. Each method handles one user
// event and runs to completion before the next one starts.
type Controller struct {
	mu       sync.Mutex
	store    *Store
	form     Form
	menu     Menu
	notifier Notifier
	log      *logrus.Entry
}

// NewController creates a controller over store that reports to notifier.
func NewController(store *Store, notifier Notifier, log *logrus.Entry) *Controller {
	if store == nil {
		store = NewStore()
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	if notifier == nil {
		notifier = NewNotifications(nil, DefaultNotificationDuration, log)
	}
	return &Controller{store: store, notifier: notifier, log: log}
}

// SetField assigns a draft field. No validation happens until Submit.
func (c *Controller) SetField(field models.Field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.Set(field, value)
}

// StartEdit loads the appointment with id into the draft and closes any open
// action menu.
func (c *Controller) StartEdit(id int64) (models.Appointment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, ok := c.store.Get(id)
	if !ok {
		return models.Appointment{}, ErrNotFound
	}
	c.form.Load(record)
	c.menu.CloseAll()
	return record, nil
}

// Submit validates the draft and either books a new appointment or updates
// the one being edited. A rejected draft is left untouched.
func (c *Controller) Submit() (Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	draft := c.form.Draft()
	if err := Validate(draft); err != nil {
		var reason Rejection
		if !errors.As(err, &reason) {
			return Outcome{}, err
		}
		c.log.WithField("reason", string(reason)).Info("Appointment rejected")
		c.notifier.Raise(string(reason))
		return Outcome{Kind: OutcomeRejected, Reason: string(reason)}, nil
	}

	if id, editing := c.form.EditingTarget(); editing {
		record, err := c.store.Update(id, draft)
		if err != nil {
			// The edited record vanished; drop the dangling target but keep the draft.
			c.form.ClearTarget()
			c.log.WithField("appointment_id", id).Warn("Update target no longer exists")
			return Outcome{}, err
		}
		c.notifier.Raise(MessageUpdated)
		c.form.Reset()
		c.log.WithField("appointment_id", id).Info("Appointment updated")
		return Outcome{Kind: OutcomeUpdated, Record: &record}, nil
	}

	record := c.store.Add(draft)
	c.notifier.Raise(MessageBooked)
	c.form.Reset()
	c.log.WithField("appointment_id", record.ID).Info("Appointment booked")
	return Outcome{Kind: OutcomeBooked, Record: &record}, nil
}

// CancelEdit discards the draft and the editing target without notifying.
func (c *Controller) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.Reset()
}

// DeleteRecord removes the appointment with id and closes any open action
// menu. When it was being edited the form is reset as well. It reports whether anything was removed; deleting an
// unknown id changes nothing and raises no notification.
func (c *Controller) DeleteRecord(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	editingID, editing := c.form.EditingTarget()

	if !c.store.Remove(id) {
		return false
	}
	c.notifier.Raise(MessageDeleted)
	c.menu.CloseAll()
	if editing && editingID == id {
		c.form.Reset()
	}
	c.log.WithField("appointment_id", id).Info("Appointment deleted")
	return true
}

// ToggleMenu opens or closes the action menu of an appointment.
func (c *Controller) ToggleMenu(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.store.Get(id); !ok {
		return ErrNotFound
	}
	c.menu.Toggle(id)
	return nil
}

// CloseMenus closes any open action menu, e.g. on a click outside of it.
func (c *Controller) CloseMenus() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.menu.CloseAll()
}

// OpenMenu returns the appointment whose action menu is open.
func (c *Controller) OpenMenu() (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.menu.Open()
}

// Appointments returns the stored appointments in display order.
func (c *Controller) Appointments() []models.Appointment {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.List()
}

// Form returns a snapshot of the form session.
func (c *Controller) Form() FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.formState()
}

func (c *Controller) formState() FormState {
	state := FormState{
		Draft:       c.form.Draft(),
		Mode:        ModeBook,
		SubmitLabel: "Book Appointment",
	}
	if id, ok := c.form.EditingTarget(); ok {
		state.EditingID = &id
		state.Mode = ModeUpdate
		state.SubmitLabel = "Update Appointment"
	}
	return state
}

// View is everything the page needs to render.
type View struct {
	Appointments []models.Appointment `json:"appointments"`
	Form         FormState            `json:"form"`
	OpenMenuID   *int64               `json:"openMenuId"`
}

// View returns a consistent snapshot of the session.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := View{
		Appointments: c.store.List(),
		Form:         c.formState(),
	}
	if id, ok := c.menu.Open(); ok {
		view.OpenMenuID = &id
	}
	return view
}
