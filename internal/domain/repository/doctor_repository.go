package repository

import (
	"go-dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id int) (*entity.Doctor, error)
	FindByName(db *gorm.DB, name string) (*entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
}
