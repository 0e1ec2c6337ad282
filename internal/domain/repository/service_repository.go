package repository

import (
	"go-dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(db *gorm.DB, service *entity.Service) error
	FindByID(db *gorm.DB, id int) (*entity.Service, error)
	FindByName(db *gorm.DB, name string) (*entity.Service, error)
	Update(db *gorm.DB, service *entity.Service) error
}
