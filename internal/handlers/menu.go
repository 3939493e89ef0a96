package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"appointment-booking-app/internal/booking"
	"appointment-booking-app/internal/utils"
)

// MenuHandler tracks which row's action menu is open.
type MenuHandler struct {
	Booking *booking.Controller
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(ctrl *booking.Controller) *MenuHandler {
	return &MenuHandler{Booking: ctrl}
}

// MenuState is the open action menu, if any.
type MenuState struct {
	OpenID *int64 `json:"openId"`
}

func (h *MenuHandler) state() MenuState {
	if id, ok := h.Booking.OpenMenu(); ok {
		return MenuState{OpenID: &id}
	}
	return MenuState{}
}

// GetMenu returns the open action menu.
func (h *MenuHandler) GetMenu(c *gin.Context) {
	utils.Success(c, "Menu fetched successfully", h.state())
}

// ToggleMenu opens or closes the action menu of an appointment.
func (h *MenuHandler) ToggleMenu(c *gin.Context) {
	id, ok := parseAppointmentID(c)
	if !ok {
		return
	}

	if err := h.Booking.ToggleMenu(id); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Failed to toggle menu: "+err.Error())
		}
		return
	}
	utils.Success(c, "Menu toggled", h.state())
}

// CloseMenus handles a click outside of any open menu.
func (h *MenuHandler) CloseMenus(c *gin.Context) {
	h.Booking.CloseMenus()
	utils.Success(c, "Menus closed", h.state())
}
