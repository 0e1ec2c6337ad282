package usecase

import (
	"context"
	"errors"
	"time"

	"go-dental-clinic-api/internal/converter"
	"go-dental-clinic-api/internal/delivery/dto"
	"go-dental-clinic-api/internal/domain/entity"
	"go-dental-clinic-api/internal/domain/repository"
	"go-dental-clinic-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidTimeFormat   = errors.New("invalid datetime format, use YYYY-MM-DDTHH:MM")
)

type AppointmentUsecase interface {
	List(ctx context.Context) ([]dto.AppointmentResponse, error)
	Search(ctx context.Context, params *dto.SearchParams) ([]dto.AppointmentResponse, error)
	Create(ctx context.Context, req *dto.AppointmentRequest) (int, error)
	Update(ctx context.Context, appointmentID int, req *dto.AppointmentRequest) error
	Delete(ctx context.Context, appointmentID int) error
}

type appointmentUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	cache              *service.AppointmentCache
	doctorRepo         repository.DoctorRepository
	patientRepo        repository.PatientRepository
	serviceRepo        repository.ServiceRepository
	specializationRepo repository.SpecializationRepository
	appointmentRepo    repository.AppointmentRepository
}

// NewAppointmentUsecase wires the appointment flows. cache may be nil,
// in which case every read goes straight to the database.
func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cache *service.AppointmentCache,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	serviceRepo repository.ServiceRepository,
	specializationRepo repository.SpecializationRepository,
	appointmentRepo repository.AppointmentRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                 db,
		log:                log,
		cache:              cache,
		doctorRepo:         doctorRepo,
		patientRepo:        patientRepo,
		serviceRepo:        serviceRepo,
		specializationRepo: specializationRepo,
		appointmentRepo:    appointmentRepo,
	}
}

// List returns the view of every appointment, cache-first.
func (u *appointmentUsecase) List(ctx context.Context) ([]dto.AppointmentResponse, error) {
	if u.cache != nil {
		if views, ok := u.cache.Get(ctx); ok {
			return views, nil
		}
	}

	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	views := converter.AppointmentsToResponses(appointments)
	if u.cache != nil {
		u.cache.Set(ctx, views)
	}
	return views, nil
}

// Search runs one of two query modes. A datetime parameter selects exact
// minute-granularity matching and wins over the keyword; otherwise the
// keyword is substring-matched against the four related names (an empty
// keyword matches everything).
func (u *appointmentUsecase) Search(ctx context.Context, params *dto.SearchParams) ([]dto.AppointmentResponse, error) {
	var (
		appointments []entity.Appointment
		err          error
	)

	if params.Datetime != "" {
		at, parseErr := time.Parse(entity.TimeLayout, params.Datetime)
		if parseErr != nil {
			return nil, ErrInvalidTimeFormat
		}
		appointments, err = u.appointmentRepo.FindByTime(u.db.WithContext(ctx), at)
	} else {
		appointments, err = u.appointmentRepo.FindByKeyword(u.db.WithContext(ctx), params.Query)
	}
	if err != nil {
		u.log.Warnf("Failed to search appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

// Create resolves the four related entities by name (creating missing
// ones) and inserts the appointment wiring their ids, all inside one
// transaction so a failure leaves no orphan rows behind.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.AppointmentRequest) (int, error) {
	at, err := time.Parse(entity.TimeLayout, req.AppointmentTime)
	if err != nil {
		return 0, ErrInvalidTimeFormat
	}

	var appointment *entity.Appointment
	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		doctor, err := u.resolveDoctor(tx, req.DoctorName)
		if err != nil {
			return err
		}
		patient, err := u.resolvePatient(tx, req.PatientName)
		if err != nil {
			return err
		}
		svc, err := u.resolveService(tx, req.Service)
		if err != nil {
			return err
		}
		specialization, err := u.resolveSpecialization(tx, req.SpecializationName)
		if err != nil {
			return err
		}

		appointment = &entity.Appointment{
			DoctorID:         doctor.ID,
			PatientID:        patient.ID,
			ServiceID:        svc.ID,
			SpecializationID: specialization.ID,
			AppointmentTime:  at,
		}
		return u.appointmentRepo.Create(tx, appointment)
	})
	if err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return 0, err
	}

	u.invalidate(ctx)
	u.log.Infof("Appointment created: id=%d, doctor=%s, time=%s", appointment.ID, req.DoctorName, req.AppointmentTime)
	return appointment.ID, nil
}

// Update renames the currently-linked related rows in place (a shared
// doctor row renamed here changes for every appointment referencing it;
// this is the intended global-rename semantic), then repoints the
// foreign keys and overwrites the timestamp.
func (u *appointmentUsecase) Update(ctx context.Context, appointmentID int, req *dto.AppointmentRequest) error {
	at, err := time.Parse(entity.TimeLayout, req.AppointmentTime)
	if err != nil {
		return ErrInvalidTimeFormat
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}

		doctor, err := u.renameDoctor(tx, appointment.DoctorID, req.DoctorName)
		if err != nil {
			return err
		}
		patient, err := u.renamePatient(tx, appointment.PatientID, req.PatientName)
		if err != nil {
			return err
		}
		svc, err := u.renameService(tx, appointment.ServiceID, req.Service)
		if err != nil {
			return err
		}
		specialization, err := u.renameSpecialization(tx, appointment.SpecializationID, req.SpecializationName)
		if err != nil {
			return err
		}

		appointment.DoctorID = doctor.ID
		appointment.PatientID = patient.ID
		appointment.ServiceID = svc.ID
		appointment.SpecializationID = specialization.ID
		appointment.AppointmentTime = at
		return u.appointmentRepo.Update(tx, appointment)
	})
	if err != nil {
		if !errors.Is(err, ErrAppointmentNotFound) {
			u.log.Warnf("Failed to update appointment %d: %+v", appointmentID, err)
		}
		return err
	}

	u.invalidate(ctx)
	u.log.Infof("Appointment updated: id=%d", appointmentID)
	return nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, appointmentID int) error {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if err := u.appointmentRepo.Delete(db, appointmentID); err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", appointmentID, err)
		return err
	}

	u.invalidate(ctx)
	u.log.Infof("Appointment deleted: id=%d", appointmentID)
	return nil
}

func (u *appointmentUsecase) invalidate(ctx context.Context) {
	if u.cache != nil {
		u.cache.Invalidate(ctx)
	}
}

// Lookup-or-create resolvers. Exact name match reuses the existing row,
// so repeated names never accumulate duplicates; the name columns carry
// a unique index, which turns a lost concurrent race into a constraint
// error that rolls the transaction back.

func (u *appointmentUsecase) resolveDoctor(tx *gorm.DB, name string) (*entity.Doctor, error) {
	doctor, err := u.doctorRepo.FindByName(tx, name)
	if err != nil {
		return nil, err
	}
	if doctor != nil {
		return doctor, nil
	}
	doctor = &entity.Doctor{Name: name}
	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (u *appointmentUsecase) resolvePatient(tx *gorm.DB, name string) (*entity.Patient, error) {
	patient, err := u.patientRepo.FindByName(tx, name)
	if err != nil {
		return nil, err
	}
	if patient != nil {
		return patient, nil
	}
	patient = &entity.Patient{Name: name}
	if err := u.patientRepo.Create(tx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (u *appointmentUsecase) resolveService(tx *gorm.DB, name string) (*entity.Service, error) {
	svc, err := u.serviceRepo.FindByName(tx, name)
	if err != nil {
		return nil, err
	}
	if svc != nil {
		return svc, nil
	}
	svc = &entity.Service{Name: name}
	if err := u.serviceRepo.Create(tx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (u *appointmentUsecase) resolveSpecialization(tx *gorm.DB, name string) (*entity.Specialization, error) {
	specialization, err := u.specializationRepo.FindByName(tx, name)
	if err != nil {
		return nil, err
	}
	if specialization != nil {
		return specialization, nil
	}
	specialization = &entity.Specialization{Name: name}
	if err := u.specializationRepo.Create(tx, specialization); err != nil {
		return nil, err
	}
	return specialization, nil
}

// Rename-or-create helpers for the update flow. The linked row is looked
// up by its current id, not by the new name; a found row is renamed in
// place, a missing one is recreated.

func (u *appointmentUsecase) renameDoctor(tx *gorm.DB, id int, name string) (*entity.Doctor, error) {
	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		doctor = &entity.Doctor{Name: name}
		if err := u.doctorRepo.Create(tx, doctor); err != nil {
			return nil, err
		}
		return doctor, nil
	}
	doctor.Name = name
	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (u *appointmentUsecase) renamePatient(tx *gorm.DB, id int, name string) (*entity.Patient, error) {
	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		patient = &entity.Patient{Name: name}
		if err := u.patientRepo.Create(tx, patient); err != nil {
			return nil, err
		}
		return patient, nil
	}
	patient.Name = name
	if err := u.patientRepo.Update(tx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (u *appointmentUsecase) renameService(tx *gorm.DB, id int, name string) (*entity.Service, error) {
	svc, err := u.serviceRepo.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		svc = &entity.Service{Name: name}
		if err := u.serviceRepo.Create(tx, svc); err != nil {
			return nil, err
		}
		return svc, nil
	}
	svc.Name = name
	if err := u.serviceRepo.Update(tx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (u *appointmentUsecase) renameSpecialization(tx *gorm.DB, id int, name string) (*entity.Specialization, error) {
	specialization, err := u.specializationRepo.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	if specialization == nil {
		specialization = &entity.Specialization{Name: name}
		if err := u.specializationRepo.Create(tx, specialization); err != nil {
			return nil, err
		}
		return specialization, nil
	}
	specialization.Name = name
	if err := u.specializationRepo.Update(tx, specialization); err != nil {
		return nil, err
	}
	return specialization, nil
}
