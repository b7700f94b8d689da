// Package hospital defines the entity schemas of the hospital admin panel.
package hospital

import "healthlock/pkg/types"

const (
	Patients     = "patients"
	Doctors      = "doctors"
	Appointments = "appointments"
	Wards        = "wards"
	Pharmacy     = "pharmacy"
	LabTests     = "labtests"
)

var idField = types.Field{Key: "id", Label: "ID", Type: types.FieldText, Readonly: true}

// Schemas returns the entity configs in sidebar order.
func Schemas() []types.EntityConfig {
	return []types.EntityConfig{
		{
			Type:  Patients,
			Label: "Patients",
			Icon:  "users",
			Fields: []types.Field{
				idField,
				{Key: "name", Label: "Name", Type: types.FieldText, Required: true},
				{Key: "age", Label: "Age", Type: types.FieldNumber},
				{Key: "gender", Label: "Gender", Type: types.FieldSelect, Options: []string{"Male", "Female", "Other"}},
				{Key: "phone", Label: "Phone", Type: types.FieldText},
				{Key: "address", Label: "Address", Type: types.FieldTextarea},
				{Key: "bloodGroup", Label: "Blood Group", Type: types.FieldText},
				{Key: "admittedOn", Label: "Admitted On", Type: types.FieldDate},
				{Key: "ward", Label: "Ward/Room", Type: types.FieldText},
				{Key: "doctorId", Label: "Doctor ID", Type: types.FieldText},
			},
		},
		{
			Type:  Doctors,
			Label: "Doctors",
			Icon:  "user-check",
			Fields: []types.Field{
				idField,
				{Key: "name", Label: "Name", Type: types.FieldText, Required: true},
				{Key: "specialty", Label: "Specialty", Type: types.FieldText},
				{Key: "phone", Label: "Phone", Type: types.FieldText},
				{Key: "email", Label: "Email", Type: types.FieldText},
				{Key: "schedule", Label: "Schedule", Type: types.FieldTextarea},
				{Key: "department", Label: "Department", Type: types.FieldText},
			},
		},
		{
			Type:  Appointments,
			Label: "Appointments",
			Icon:  "calendar",
			Fields: []types.Field{
				idField,
				{Key: "patientId", Label: "Patient ID", Type: types.FieldText, Required: true},
				{Key: "patientName", Label: "Patient Name", Type: types.FieldText, Required: true},
				{Key: "doctorId", Label: "Doctor ID", Type: types.FieldText, Required: true},
				{Key: "doctorName", Label: "Doctor Name", Type: types.FieldText, Required: true},
				{Key: "date", Label: "Date", Type: types.FieldDate, Required: true},
				{Key: "time", Label: "Time", Type: types.FieldText, Required: true},
				{Key: "reason", Label: "Reason", Type: types.FieldTextarea},
				{Key: "status", Label: "Status", Type: types.FieldSelect, Options: []string{"Scheduled", "Completed", "Cancelled"}},
				{Key: "type", Label: "Type", Type: types.FieldSelect, Options: []string{"Consultation", "Follow-up", "Emergency", "Surgery"}},
			},
		},
		{
			Type:  Wards,
			Label: "Wards",
			Icon:  "building",
			Fields: []types.Field{
				idField,
				{Key: "name", Label: "Ward Name", Type: types.FieldText, Required: true},
				{Key: "type", Label: "Type", Type: types.FieldText},
				{Key: "capacity", Label: "Capacity", Type: types.FieldNumber},
				{Key: "occupancy", Label: "Occupancy", Type: types.FieldNumber},
			},
		},
		{
			Type:  Pharmacy,
			Label: "Pharmacy",
			Icon:  "pill",
			Fields: []types.Field{
				idField,
				{Key: "drugName", Label: "Drug", Type: types.FieldText, Required: true},
				{Key: "batchNo", Label: "Batch No", Type: types.FieldText},
				{Key: "expiryDate", Label: "Expiry Date", Type: types.FieldDate},
				{Key: "quantity", Label: "Quantity", Type: types.FieldNumber},
				{Key: "price", Label: "Unit Price", Type: types.FieldNumber},
			},
		},
		{
			Type:  LabTests,
			Label: "Lab Tests",
			Icon:  "test-tube",
			Fields: []types.Field{
				idField,
				{Key: "testName", Label: "Test Name", Type: types.FieldText, Required: true},
				{Key: "patientId", Label: "Patient ID", Type: types.FieldText},
				{Key: "doctorId", Label: "Doctor ID", Type: types.FieldText},
				{Key: "date", Label: "Date", Type: types.FieldDate},
				{Key: "result", Label: "Result", Type: types.FieldTextarea},
				{Key: "status", Label: "Status", Type: types.FieldSelect, Options: []string{"Pending", "Completed"}},
			},
		},
	}
}
