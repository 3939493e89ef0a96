package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ResponseData wraps every body the booking API returns, success or not.
type ResponseData struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success answers 200 with data in the envelope.
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, ResponseData{
		Status:  http.StatusOK,
		Message: message,
		Data:    data,
	})
}

// Created answers 201, used when a booking is stored.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, ResponseData{
		Status:  http.StatusCreated,
		Message: message,
		Data:    data,
	})
}

// Error answers statusCode with the message in the error slot and no data.
func Error(c *gin.Context, statusCode int, errorMessage string) {
	c.JSON(statusCode, ResponseData{
		Status:  statusCode,
		Message: "An error occurred",
		Error:   errorMessage,
	})
}

// BadRequest is for malformed ids and payloads.
func BadRequest(c *gin.Context, errorMessage string) {
	Error(c, http.StatusBadRequest, errorMessage)
}

// NotFound is for identities the store does not hold.
func NotFound(c *gin.Context, errorMessage string) {
	Error(c, http.StatusNotFound, errorMessage)
}

// Rejected sends a 422 response for a draft that failed validation. The
// current form state travels along so the page can keep showing it.
func Rejected(c *gin.Context, reason string, data interface{}) {
	c.JSON(http.StatusUnprocessableEntity, ResponseData{
		Status:  http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Data:    data,
		Error:   reason,
	})
}

// InternalServerError covers failures the controller did not anticipate.
func InternalServerError(c *gin.Context, errorMessage string) {
	Error(c, http.StatusInternalServerError, errorMessage)
}
