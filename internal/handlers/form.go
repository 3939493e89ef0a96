package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"appointment-booking-app/internal/booking"
	"appointment-booking-app/internal/models"
	"appointment-booking-app/internal/utils"
)

// FormHandler forwards form gestures to the booking controller.
type FormHandler struct {
	Booking *booking.Controller
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(ctrl *booking.Controller) *FormHandler {
	return &FormHandler{Booking: ctrl}
}

// SetFieldRequest is the body of a single field change.
// Field accepts the page element id ("dr-name") or the JSON key ("drName").
type SetFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// GetForm returns the current draft and editing state.
func (h *FormHandler) GetForm(c *gin.Context) {
	utils.Success(c, "Form fetched successfully", h.Booking.Form())
}

// SetField applies one field change to the draft.
func (h *FormHandler) SetField(c *gin.Context) {
	var req SetFieldRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	field, ok := models.ParseField(req.Field)
	if !ok {
		utils.BadRequest(c, "Unknown field: "+req.Field)
		return
	}

	h.Booking.SetField(field, req.Value)
	utils.Success(c, "Field updated", h.Booking.Form())
}

// Submit books or updates an appointment from the draft.
func (h *FormHandler) Submit(c *gin.Context) {
	outcome, err := h.Booking.Submit()
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			utils.NotFound(c, "Appointment being edited no longer exists")
		} else {
			utils.InternalServerError(c, "Failed to submit appointment: "+err.Error())
		}
		return
	}

	switch outcome.Kind {
	case booking.OutcomeBooked:
		utils.Created(c, booking.MessageBooked, outcome)
	case booking.OutcomeUpdated:
		utils.Success(c, booking.MessageUpdated, outcome)
	default:
		utils.Rejected(c, outcome.Reason, h.Booking.Form())
	}
}

// Cancel discards the draft and leaves edit mode.
func (h *FormHandler) Cancel(c *gin.Context) {
	h.Booking.CancelEdit()
	utils.Success(c, "Form reset", h.Booking.Form())
}
