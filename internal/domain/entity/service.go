package entity

// Service represents a clinic service (e.g. Cleaning)
type Service struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(250);uniqueIndex;not null" json:"name"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:ServiceID" json:"appointments,omitempty"`
}

func (Service) TableName() string {
	return "services"
}
