package dto

// Request DTOs

// AppointmentRequest is the shared body shape for create and update.
// The related entities are addressed by name; unknown names are created.
type AppointmentRequest struct {
	DoctorName         string `json:"doctor_name" validate:"required,max=250"`
	SpecializationName string `json:"specialization_name" validate:"required,max=250"`
	PatientName        string `json:"patient_name" validate:"required,max=250"`
	AppointmentTime    string `json:"appointment_time" validate:"required"`
	Service            string `json:"service" validate:"required,max=250"`
}

// SearchParams carries the /search query parameters. Datetime takes
// precedence over Query when both are present.
type SearchParams struct {
	Query    string
	Datetime string
}

// Response DTOs

// AppointmentResponse is the view projection of an appointment with its
// related entity names attached.
type AppointmentResponse struct {
	ID              int    `json:"id"`
	Doctor          string `json:"doctor"`
	Specialization  string `json:"specialization"`
	Patient         string `json:"patient"`
	Service         string `json:"service"`
	AppointmentTime string `json:"appointment_time"`
}
