package entity

// Specialization represents a medical specialization (e.g. Dentistry)
type Specialization struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(250);uniqueIndex;not null" json:"name"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:SpecializationID" json:"appointments,omitempty"`
}

func (Specialization) TableName() string {
	return "specializations"
}
