package seed

import (
	"fmt"
	"time"

	"healthlock/internal/crud"
	"healthlock/internal/hospital"
)

func date(y int, m time.Month, d int) crud.Date {
	return crud.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// HospitalRecords returns the sample records per entity type. Wards,
// pharmacy and lab tests start empty.
func HospitalRecords() map[string][]crud.Entity {
	return map[string][]crud.Entity{
		hospital.Patients: {
			{ID: "P001", Values: map[string]crud.Value{
				"name":       crud.Text("John Doe"),
				"age":        crud.Number(35),
				"gender":     crud.Choice("Male"),
				"phone":      crud.Text("+1-555-0123"),
				"address":    crud.LongText("123 Main St, City"),
				"bloodGroup": crud.Text("O+"),
				"admittedOn": date(2024, time.August, 20),
				"ward":       crud.Text("Ward A-101"),
				"doctorId":   crud.Text("D001"),
			}},
			{ID: "P002", Values: map[string]crud.Value{
				"name":       crud.Text("Jane Smith"),
				"age":        crud.Number(28),
				"gender":     crud.Choice("Female"),
				"phone":      crud.Text("+1-555-0124"),
				"address":    crud.LongText("456 Oak Ave, City"),
				"bloodGroup": crud.Text("A+"),
				"admittedOn": date(2024, time.August, 21),
				"ward":       crud.Text("Ward B-205"),
				"doctorId":   crud.Text("D002"),
			}},
		},
		hospital.Doctors: {
			{ID: "D001", Values: map[string]crud.Value{
				"name":       crud.Text("Dr. Sarah Johnson"),
				"specialty":  crud.Text("Cardiology"),
				"phone":      crud.Text("+1-555-0201"),
				"email":      crud.Text("sarah.johnson@hospital.com"),
				"schedule":   crud.LongText("Mon-Fri 9AM-5PM"),
				"department": crud.Text("Cardiology"),
			}},
			{ID: "D002", Values: map[string]crud.Value{
				"name":       crud.Text("Dr. Michael Brown"),
				"specialty":  crud.Text("Neurology"),
				"phone":      crud.Text("+1-555-0202"),
				"email":      crud.Text("michael.brown@hospital.com"),
				"schedule":   crud.LongText("Mon-Wed-Fri 8AM-4PM"),
				"department": crud.Text("Neurology"),
			}},
		},
		hospital.Appointments: {
			{ID: "A001", Values: map[string]crud.Value{
				"patientId":   crud.Text("P001"),
				"patientName": crud.Text("John Doe"),
				"doctorId":    crud.Text("D001"),
				"doctorName":  crud.Text("Dr. Sarah Johnson"),
				"date":        date(2024, time.August, 25),
				"time":        crud.Text("10:30 AM"),
				"reason":      crud.LongText("Routine cardiac checkup"),
				"status":      crud.Choice("Scheduled"),
				"type":        crud.Choice("Consultation"),
			}},
			{ID: "A002", Values: map[string]crud.Value{
				"patientId":   crud.Text("P002"),
				"patientName": crud.Text("Jane Smith"),
				"doctorId":    crud.Text("D002"),
				"doctorName":  crud.Text("Dr. Michael Brown"),
				"date":        date(2024, time.August, 26),
				"time":        crud.Text("2:00 PM"),
				"reason":      crud.LongText("Neurological assessment"),
				"status":      crud.Choice("Scheduled"),
				"type":        crud.Choice("Follow-up"),
			}},
		},
	}
}

// SeedHospital loads the sample records into engine in schema order.
func SeedHospital(engine *crud.Engine) error {
	records := HospitalRecords()
	for _, schema := range engine.Schemas() {
		if err := engine.Load(schema.Type, records[schema.Type]...); err != nil {
			return fmt.Errorf("failed to seed %s: %w", schema.Type, err)
		}
	}
	return nil
}
