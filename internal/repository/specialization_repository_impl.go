package repository

import (
	"errors"

	"go-dental-clinic-api/internal/domain/entity"
	domainRepo "go-dental-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type specializationRepository struct{}

func NewSpecializationRepository() domainRepo.SpecializationRepository {
	return &specializationRepository{}
}

func (r *specializationRepository) Create(db *gorm.DB, specialization *entity.Specialization) error {
	return db.Create(specialization).Error
}

func (r *specializationRepository) FindByID(db *gorm.DB, id int) (*entity.Specialization, error) {
	var specialization entity.Specialization
	err := db.Where("id = ?", id).First(&specialization).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialization, nil
}

func (r *specializationRepository) FindByName(db *gorm.DB, name string) (*entity.Specialization, error) {
	var specialization entity.Specialization
	err := db.Where("name = ?", name).First(&specialization).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialization, nil
}

func (r *specializationRepository) Update(db *gorm.DB, specialization *entity.Specialization) error {
	return db.Save(specialization).Error
}
