package handlers

import (
	"github.com/gin-gonic/gin"

	"appointment-booking-app/internal/booking"
	"appointment-booking-app/internal/models"
	"appointment-booking-app/internal/utils"
)

// SessionHandler serves page-wide state: the full view, the live
// notification and the form options.
type SessionHandler struct {
	Booking       *booking.Controller
	Notifications *booking.Notifications
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(ctrl *booking.Controller, notifications *booking.Notifications) *SessionHandler {
	return &SessionHandler{Booking: ctrl, Notifications: notifications}
}

// StateResponse is everything the page renders.
type StateResponse struct {
	booking.View
	Notification *booking.Notice `json:"notification"`
}

// FieldOption describes one form input.
type FieldOption struct {
	Key       string `json:"key"`
	ElementID string `json:"elementId"`
	Label     string `json:"label"`
}

// OptionsResponse lists the form inputs and selectable values.
type OptionsResponse struct {
	Fields  []FieldOption `json:"fields"`
	Genders []string      `json:"genders"`
}

func (h *SessionHandler) notification() *booking.Notice {
	if notice, ok := h.Notifications.Current(); ok {
		return &notice
	}
	return nil
}

// GetState returns a full snapshot of the page session.
func (h *SessionHandler) GetState(c *gin.Context) {
	utils.Success(c, "State fetched successfully", StateResponse{
		View:         h.Booking.View(),
		Notification: h.notification(),
	})
}

// GetNotification returns the live notification; data is omitted when none
// is showing.
func (h *SessionHandler) GetNotification(c *gin.Context) {
	notice := h.notification()
	if notice == nil {
		utils.Success(c, "No notification", nil)
		return
	}
	utils.Success(c, "Notification fetched successfully", notice)
}

// GetOptions returns the form inputs and the gender label set.
func (h *SessionHandler) GetOptions(c *gin.Context) {
	fields := make([]FieldOption, 0, len(models.Fields))
	for _, f := range models.Fields {
		fields = append(fields, FieldOption{Key: f.String(), ElementID: f.ElementID(), Label: f.Label()})
	}
	utils.Success(c, "Options fetched successfully", OptionsResponse{
		Fields:  fields,
		Genders: models.GenderOptions,
	})
}
