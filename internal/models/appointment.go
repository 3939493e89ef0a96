package models

// Gender labels offered by the booking form. The validator only requires a
// non-empty value, so free text is accepted as well.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// GenderOptions lists the selectable gender labels in display order.
var GenderOptions = []string{GenderMale, GenderFemale, GenderOther}

// AppointmentFields is the editable field set of an appointment. It doubles as
// the form draft while a booking is being composed or edited.
type AppointmentFields struct {
	Name      string `json:"name" validate:"required"`
	Age       string `json:"age" validate:"required"`
	Phone     string `json:"phone" validate:"required,phone10"`
	DrName    string `json:"drName" validate:"required"`
	Gender    string `json:"gender" validate:"required"`
	VisitDate string `json:"visitDate" validate:"required"`
	VisitTime string `json:"visitTime" validate:"required,time12h"`
	VisitType string `json:"visitType" validate:"required"`
}

// Appointment represents a booked visit held by the record store.
type Appointment struct {
	ID int64 `json:"id"`
	AppointmentFields
}

// Get returns the value of a single field.
func (f AppointmentFields) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldAge:
		return f.Age
	case FieldPhone:
		return f.Phone
	case FieldDrName:
		return f.DrName
	case FieldGender:
		return f.Gender
	case FieldVisitDate:
		return f.VisitDate
	case FieldVisitTime:
		return f.VisitTime
	case FieldVisitType:
		return f.VisitType
	}
	return ""
}

// Set assigns a single field. Unknown fields are ignored.
func (f *AppointmentFields) Set(field Field, value string) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldAge:
		f.Age = value
	case FieldPhone:
		f.Phone = value
	case FieldDrName:
		f.DrName = value
	case FieldGender:
		f.Gender = value
	case FieldVisitDate:
		f.VisitDate = value
	case FieldVisitTime:
		f.VisitTime = value
	case FieldVisitType:
		f.VisitType = value
	}
}

// IsEmpty reports whether every field is blank.
func (f AppointmentFields) IsEmpty() bool {
	return f == AppointmentFields{}
}
