package entity

import "time"

// TimeLayout is the wire format for appointment timestamps: naive local
// time at minute granularity, no timezone, no seconds.
const TimeLayout = "2006-01-02T15:04"

// Appointment links one doctor, patient, service and specialization
// to a point in time
type Appointment struct {
	ID               int       `gorm:"primaryKey" json:"id"`
	DoctorID         int       `gorm:"not null;index" json:"doctor_id"`
	PatientID        int       `gorm:"not null;index" json:"patient_id"`
	ServiceID        int       `gorm:"not null;index" json:"service_id"`
	SpecializationID int       `gorm:"not null;index" json:"specialization_id"`
	AppointmentTime  time.Time `gorm:"not null;index" json:"appointment_time"`

	// Relationships; deleting a related row cascades to its appointments
	Doctor         Doctor         `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"doctor,omitempty"`
	Patient        Patient        `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	Service        Service        `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE" json:"service,omitempty"`
	Specialization Specialization `gorm:"foreignKey:SpecializationID;constraint:OnDelete:CASCADE" json:"specialization,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
