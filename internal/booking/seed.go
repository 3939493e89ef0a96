package booking

import "appointment-booking-app/internal/models"

// SampleAppointments are the entries the booking page starts with.
var SampleAppointments = []models.AppointmentFields{
	{
		Name:      "John Doe",
		Age:       "30",
		Phone:     "9876543210",
		DrName:    "Dr. Smith",
		Gender:    models.GenderMale,
		VisitDate: "2025-09-10",
		VisitTime: "09:30 AM",
		VisitType: "Consultation",
	},
	{
		Name:      "Jane Smith",
		Age:       "25",
		Phone:     "9123456780",
		DrName:    "Dr. Adams",
		Gender:    models.GenderFemale,
		VisitDate: "2025-09-12",
		VisitTime: "11:00 AM",
		VisitType: "Follow-up",
	},
}

// Seed adds the sample appointments to the store.
func Seed(s *Store) {
	for _, fields := range SampleAppointments {
		s.Add(fields)
	}
}
