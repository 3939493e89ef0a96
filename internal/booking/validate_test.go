package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"appointment-booking-app/internal/models"
)

func validFields() models.AppointmentFields {
	return models.AppointmentFields{
		Name:      "John Doe",
		Age:       "30",
		Phone:     "9876543210",
		DrName:    "Dr. Smith",
		Gender:    "Male",
		VisitDate: "2025-09-10",
		VisitTime: "09:30 AM",
		VisitType: "Consultation",
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, Validate(validFields()))
}

func TestValidate_MissingFieldWins(t *testing.T) {
	for _, field := range models.Fields {
		t.Run(field.String(), func(t *testing.T) {
			fields := validFields()
			fields.Set(field, "")
			// Break the other rules too; the required rule still has to win.
			if field != models.FieldPhone {
				fields.Phone = "12345"
			}
			if field != models.FieldVisitTime {
				fields.VisitTime = "25:00"
			}

			assert.Equal(t, RejectFieldsRequired, Validate(fields))
		})
	}
}

func TestValidate_EmptyDraft(t *testing.T) {
	assert.Equal(t, RejectFieldsRequired, Validate(models.AppointmentFields{}))
}

func TestValidate_WhitespaceIsNotEmpty(t *testing.T) {
	fields := validFields()
	fields.Name = " "
	assert.NoError(t, Validate(fields))
}

func TestValidate_Phone(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"9876543210", true},
		{"0000000000", true},
		{"12345", false},
		{"12345678901", false},
		{"12345abcde", false},
		{"987-654-321", false},
		{"98765 43210", false},
		{"+919876543", false},
	}

	for _, tt := range tests {
		fields := validFields()
		fields.Phone = tt.phone
		// An invalid time must not mask the phone rule.
		fields.VisitTime = "9:30"

		err := Validate(fields)
		if tt.valid {
			assert.Equal(t, RejectInvalidTime, err, tt.phone)
		} else {
			assert.Equal(t, RejectInvalidPhone, err, tt.phone)
		}
	}
}

func TestValidate_VisitTime(t *testing.T) {
	tests := []struct {
		time  string
		valid bool
	}{
		{"09:30 AM", true},
		{"9:30 AM", true},
		{"12:00 pm", true},
		{"1:05 Pm", true},
		{"10:59 aM", true},
		{"25:00", false},
		{"9:75 AM", false},
		{"9:30", false},
		{"00:30 AM", false},
		{"13:00 PM", false},
		{"9:30AM", false},
		{"9:30  AM", false},
		{"009:30 AM", false},
		{"9:3 AM", false},
		{" 9:30 AM", false},
		{"9:30 AM ", false},
	}

	for _, tt := range tests {
		fields := validFields()
		fields.VisitTime = tt.time

		err := Validate(fields)
		if tt.valid {
			assert.NoError(t, err, tt.time)
		} else {
			assert.Equal(t, RejectInvalidTime, err, tt.time)
		}
	}
}

func TestRejection_Error(t *testing.T) {
	assert.Equal(t, "All fields are required.", RejectFieldsRequired.Error())
	assert.Equal(t, "Invalid phone number", RejectInvalidPhone.Error())
	assert.Equal(t, "Invalid time format", RejectInvalidTime.Error())
}

func TestNewDraftValidator_RegistersCustomTags(t *testing.T) {
	v := newDraftValidator()
	assert.NoError(t, v.Var("9876543210", "phone10"))
	assert.Error(t, v.Var("98765", "phone10"))
	assert.NoError(t, v.Var("9:30 pm", "time12h"))
	assert.Error(t, v.Var("9:30", "time12h"))
}
