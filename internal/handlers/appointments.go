package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"appointment-booking-app/internal/booking"
	"appointment-booking-app/internal/utils"
)

// AppointmentHandler serves the appointment list and its row actions.
type AppointmentHandler struct {
	Booking *booking.Controller
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(ctrl *booking.Controller) *AppointmentHandler {
	return &AppointmentHandler{Booking: ctrl}
}

// GetAppointments returns every appointment in display order.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	utils.Success(c, "Appointments fetched successfully", h.Booking.Appointments())
}

// EditAppointment loads an appointment into the form for editing.
func (h *AppointmentHandler) EditAppointment(c *gin.Context) {
	id, ok := parseAppointmentID(c)
	if !ok {
		return
	}

	if _, err := h.Booking.StartEdit(id); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Failed to edit appointment: "+err.Error())
		}
		return
	}

	utils.Success(c, "Appointment loaded for editing", h.Booking.Form())
}

// DeleteAppointment removes an appointment.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, ok := parseAppointmentID(c)
	if !ok {
		return
	}

	if !h.Booking.DeleteRecord(id) {
		utils.NotFound(c, "Appointment not found")
		return
	}

	utils.Success(c, booking.MessageDeleted, h.Booking.View())
}

func parseAppointmentID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.BadRequest(c, "Invalid Appointment ID format")
		return 0, false
	}
	return id, true
}
