package repository

import (
	"go-dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type SpecializationRepository interface {
	Create(db *gorm.DB, specialization *entity.Specialization) error
	FindByID(db *gorm.DB, id int) (*entity.Specialization, error)
	FindByName(db *gorm.DB, name string) (*entity.Specialization, error)
	Update(db *gorm.DB, specialization *entity.Specialization) error
}
