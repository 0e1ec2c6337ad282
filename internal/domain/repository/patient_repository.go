package repository

import (
	"go-dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id int) (*entity.Patient, error)
	FindByName(db *gorm.DB, name string) (*entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) error
}
