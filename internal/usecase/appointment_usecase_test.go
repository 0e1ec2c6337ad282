package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"go-dental-clinic-api/internal/delivery/dto"
	"go-dental-clinic-api/internal/domain/entity"
	"go-dental-clinic-api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ---------- Helpers ----------

func newTestUsecase(t *testing.T) (AppointmentUsecase, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	// Every pooled connection to :memory: gets its own database; keep one.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&entity.Doctor{},
		&entity.Specialization{},
		&entity.Patient{},
		&entity.Service{},
		&entity.Appointment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	u := NewAppointmentUsecase(
		db, log, nil,
		repository.NewDoctorRepository(),
		repository.NewPatientRepository(),
		repository.NewServiceRepository(),
		repository.NewSpecializationRepository(),
		repository.NewAppointmentRepository(),
	)
	return u, db
}

func validRequest() *dto.AppointmentRequest {
	return &dto.AppointmentRequest{
		DoctorName:         "Dr. Smith",
		SpecializationName: "Dentistry",
		PatientName:        "John Doe",
		AppointmentTime:    "2025-02-15T10:00",
		Service:            "Cleaning",
	}
}

// ---------- Create ----------

func TestCreate_ResolvesRelationsByName(t *testing.T) {
	u, _ := newTestUsecase(t)
	ctx := context.Background()

	id, err := u.Create(ctx, validRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero appointment id")
	}

	views, err := u.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(views))
	}

	v := views[0]
	if v.ID != id {
		t.Errorf("expected id %d, got %d", id, v.ID)
	}
	if v.Doctor != "Dr. Smith" || v.Specialization != "Dentistry" || v.Patient != "John Doe" || v.Service != "Cleaning" {
		t.Errorf("unexpected view fields: %+v", v)
	}
	if v.AppointmentTime != "2025-02-15T10:00" {
		t.Errorf("expected formatted time 2025-02-15T10:00, got %q", v.AppointmentTime)
	}
}

func TestCreate_ReusesExistingNames(t *testing.T) {
	u, db := newTestUsecase(t)
	ctx := context.Background()

	if _, err := u.Create(ctx, validRequest()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	second := validRequest()
	second.PatientName = "Jane Roe"
	second.AppointmentTime = "2025-02-16T11:00"
	if _, err := u.Create(ctx, second); err != nil {
		t.Fatalf("second create failed: %v", err)
	}

	var doctorCount int64
	if err := db.Model(&entity.Doctor{}).Count(&doctorCount).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if doctorCount != 1 {
		t.Errorf("expected shared doctor row, got %d rows", doctorCount)
	}

	var appointments []entity.Appointment
	if err := db.Find(&appointments).Error; err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(appointments) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(appointments))
	}
	if appointments[0].DoctorID != appointments[1].DoctorID {
		t.Error("expected both appointments to reference the same doctor row")
	}
}

func TestCreate_InvalidTimeFormat(t *testing.T) {
	u, db := newTestUsecase(t)

	req := validRequest()
	req.AppointmentTime = "invalid-datetime"

	_, err := u.Create(context.Background(), req)
	if !errors.Is(err, ErrInvalidTimeFormat) {
		t.Fatalf("expected ErrInvalidTimeFormat, got %v", err)
	}

	// The parse happens before any insert: nothing may be persisted.
	var doctorCount int64
	if err := db.Model(&entity.Doctor{}).Count(&doctorCount).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if doctorCount != 0 {
		t.Errorf("expected no doctor rows after failed create, got %d", doctorCount)
	}
}

// ---------- Search ----------

func TestSearch_ByKeyword(t *testing.T) {
	u, _ := newTestUsecase(t)
	ctx := context.Background()

	if _, err := u.Create(ctx, validRequest()); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	other := validRequest()
	other.DoctorName = "Dr. Jones"
	other.PatientName = "Jane Roe"
	if _, err := u.Create(ctx, other); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	views, err := u.Search(ctx, &dto.SearchParams{Query: "Smith"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 result, got %d", len(views))
	}
	if views[0].Doctor != "Dr. Smith" {
		t.Errorf("expected Dr. Smith, got %q", views[0].Doctor)
	}
}

func TestSearch_EmptyQueryReturnsAll(t *testing.T) {
	u, _ := newTestUsecase(t)
	ctx := context.Background()

	for _, name := range []string{"Dr. Smith", "Dr. Jones"} {
		req := validRequest()
		req.DoctorName = name
		if _, err := u.Create(ctx, req); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	views, err := u.Search(ctx, &dto.SearchParams{Query: ""})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(views) != 2 {
		t.Errorf("expected all 2 appointments for empty query, got %d", len(views))
	}
}

func TestSearch_ByDatetime(t *testing.T) {
	u, _ := newTestUsecase(t)
	ctx := context.Background()

	if _, err := u.Create(ctx, validRequest()); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	later := validRequest()
	later.AppointmentTime = "2025-02-15T12:00"
	if _, err := u.Create(ctx, later); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	views, err := u.Search(ctx, &dto.SearchParams{Datetime: "2025-02-15T10:00"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 result, got %d", len(views))
	}
	if views[0].AppointmentTime != "2025-02-15T10:00" {
		t.Errorf("expected 2025-02-15T10:00, got %q", views[0].AppointmentTime)
	}
}

func TestSearch_DatetimeTakesPrecedence(t *testing.T) {
	u, _ := newTestUsecase(t)
	ctx := context.Background()

	if _, err := u.Create(ctx, validRequest()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// The keyword matches, the datetime does not: datetime wins.
	views, err := u.Search(ctx, &dto.SearchParams{Query: "Smith", Datetime: "2030-01-01T00:00"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(views) != 0 {
		t.Errorf("expected datetime mode to win, got %d results", len(views))
	}
}

func TestSearch_InvalidDatetime(t *testing.T) {
	u, _ := newTestUsecase(t)

	_, err := u.Search(context.Background(), &dto.SearchParams{Datetime: "invalid-datetime"})
	if !errors.Is(err, ErrInvalidTimeFormat) {
		t.Fatalf("expected ErrInvalidTimeFormat, got %v", err)
	}
}

// ---------- Update ----------

func TestUpdate_OverwritesFieldsInPlace(t *testing.T) {
	u, _ := newTestUsecase(t)
	ctx := context.Background()

	id, err := u.Create(ctx, validRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated := &dto.AppointmentRequest{
		DoctorName:         "Dr. Brown",
		SpecializationName: "Orthodontics",
		PatientName:        "Jane Roe",
		AppointmentTime:    "2025-03-01T09:30",
		Service:            "Braces",
	}
	if err := u.Update(ctx, id, updated); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	views, err := u.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(views))
	}

	v := views[0]
	if v.ID != id {
		t.Errorf("expected id unchanged (%d), got %d", id, v.ID)
	}
	if v.Doctor != "Dr. Brown" || v.Specialization != "Orthodontics" || v.Patient != "Jane Roe" || v.Service != "Braces" {
		t.Errorf("unexpected view fields after update: %+v", v)
	}
	if v.AppointmentTime != "2025-03-01T09:30" {
		t.Errorf("expected time 2025-03-01T09:30, got %q", v.AppointmentTime)
	}
}

func TestUpdate_RenamesSharedDoctorEverywhere(t *testing.T) {
	u, _ := newTestUsecase(t)
	ctx := context.Background()

	first, err := u.Create(ctx, validRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second := validRequest()
	second.PatientName = "Jane Roe"
	second.AppointmentTime = "2025-02-16T11:00"
	if _, err := u.Create(ctx, second); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Renaming the doctor through one appointment renames the shared
	// row, so the other appointment sees the new name too.
	req := validRequest()
	req.DoctorName = "Dr. Renamed"
	if err := u.Update(ctx, first, req); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	views, err := u.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(views))
	}
	for _, v := range views {
		if v.Doctor != "Dr. Renamed" {
			t.Errorf("appointment %d: expected doctor %q, got %q", v.ID, "Dr. Renamed", v.Doctor)
		}
	}
}

func TestUpdate_NotFound(t *testing.T) {
	u, _ := newTestUsecase(t)

	err := u.Update(context.Background(), 9999, validRequest())
	if !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestUpdate_InvalidTimeFormat(t *testing.T) {
	u, _ := newTestUsecase(t)
	ctx := context.Background()

	id, err := u.Create(ctx, validRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	req := validRequest()
	req.AppointmentTime = "15-02-2025 10:00"
	if err := u.Update(ctx, id, req); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Fatalf("expected ErrInvalidTimeFormat, got %v", err)
	}
}

// ---------- Delete ----------

func TestDelete_RemovesAppointment(t *testing.T) {
	u, _ := newTestUsecase(t)
	ctx := context.Background()

	id, err := u.Create(ctx, validRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := u.Delete(ctx, id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	views, err := u.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 0 {
		t.Errorf("expected empty list after delete, got %d", len(views))
	}
}

func TestDelete_NotFound(t *testing.T) {
	u, _ := newTestUsecase(t)

	err := u.Delete(context.Background(), 9999)
	if !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}
