package converter

import (
	"go-dental-clinic-api/internal/delivery/dto"
	"go-dental-clinic-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its view DTO.
// The relations must be preloaded; their names end up in the view.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		Doctor:          appointment.Doctor.Name,
		Specialization:  appointment.Specialization.Name,
		Patient:         appointment.Patient.Name,
		Service:         appointment.Service.Name,
		AppointmentTime: appointment.AppointmentTime.Format(entity.TimeLayout),
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to view DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
