package repository

import (
	"errors"
	"time"

	"go-dental-clinic-api/internal/domain/entity"
	domainRepo "go-dental-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

// withRelations preloads the four named relations so every result row
// carries its doctor/patient/service/specialization names.
func (r *appointmentRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Doctor").
		Preload("Patient").
		Preload("Service").
		Preload("Specialization")
}

// Create and Update omit associations: the related rows are managed by
// their own repositories, appointments only carry the foreign keys.
func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit(clause.Associations).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.withRelations(db).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.withRelations(db).
		Order("appointments.id").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByTime(db *gorm.DB, at time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.withRelations(db).
		Where("appointment_time = ?", at).
		Order("appointments.id").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindByKeyword returns appointments where the keyword is a substring of
// the doctor, specialization, patient or service name. LIKE case
// sensitivity follows the storage engine (case-sensitive on Postgres).
// An empty keyword matches every row.
func (r *appointmentRepository) FindByKeyword(db *gorm.DB, keyword string) ([]entity.Appointment, error) {
	pattern := "%" + keyword + "%"
	var appointments []entity.Appointment
	err := r.withRelations(db).
		Joins("JOIN doctors ON doctors.id = appointments.doctor_id").
		Joins("JOIN specializations ON specializations.id = appointments.specialization_id").
		Joins("JOIN patients ON patients.id = appointments.patient_id").
		Joins("JOIN services ON services.id = appointments.service_id").
		Where(
			"doctors.name LIKE ? OR specializations.name LIKE ? OR patients.name LIKE ? OR services.name LIKE ?",
			pattern, pattern, pattern, pattern,
		).
		Order("appointments.id").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit(clause.Associations).Save(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id int) error {
	return db.Delete(&entity.Appointment{}, id).Error
}
