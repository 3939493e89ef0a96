package models

// Field identifies one input of the booking form.
type Field int

const (
	FieldName Field = iota
	FieldAge
	FieldPhone
	FieldDrName
	FieldGender
	FieldVisitDate
	FieldVisitTime
	FieldVisitType
)

// Fields lists every form field in display order.
var Fields = []Field{
	FieldName,
	FieldAge,
	FieldPhone,
	FieldDrName,
	FieldGender,
	FieldVisitDate,
	FieldVisitTime,
	FieldVisitType,
}

type fieldInfo struct {
	key       string
	elementID string
	label     string
}

var fieldTable = map[Field]fieldInfo{
	FieldName:      {key: "name", elementID: "name", label: "Patient Name"},
	FieldAge:       {key: "age", elementID: "age", label: "Age"},
	FieldPhone:     {key: "phone", elementID: "phone-number", label: "Phone Number"},
	FieldDrName:    {key: "drName", elementID: "dr-name", label: "Doctor Name"},
	FieldGender:    {key: "gender", elementID: "gender", label: "Gender"},
	FieldVisitDate: {key: "visitDate", elementID: "visit-date", label: "Visit Date"},
	FieldVisitTime: {key: "visitTime", elementID: "visit-time", label: "Visit Time"},
	FieldVisitType: {key: "visitType", elementID: "visit-type", label: "Visit Type"},
}

var fieldLookup = func() map[string]Field {
	lookup := make(map[string]Field, len(fieldTable)*2)
	for f, info := range fieldTable {
		lookup[info.key] = f
		lookup[info.elementID] = f
	}
	return lookup
}()

// ParseField resolves either a page element id ("dr-name") or a JSON key
// ("drName") to its field.
func ParseField(name string) (Field, bool) {
	f, ok := fieldLookup[name]
	return f, ok
}

// String returns the JSON key of the field.
func (f Field) String() string {
	if info, ok := fieldTable[f]; ok {
		return info.key
	}
	return "unknown"
}

// ElementID returns the id of the page input bound to the field.
func (f Field) ElementID() string {
	return fieldTable[f].elementID
}

// Label returns the human readable column label.
func (f Field) Label() string {
	return fieldTable[f].label
}
