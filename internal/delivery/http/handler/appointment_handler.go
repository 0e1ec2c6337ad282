package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go-dental-clinic-api/internal/delivery/dto"
	"go-dental-clinic-api/internal/usecase"
	"go-dental-clinic-api/pkg/response"
	"go-dental-clinic-api/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	views, err := h.appointmentUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.JSON(w, http.StatusOK, views)
}

func (h *AppointmentHandler) Search(w http.ResponseWriter, r *http.Request) {
	params := &dto.SearchParams{
		Query:    r.URL.Query().Get("query"),
		Datetime: r.URL.Query().Get("datetime"),
	}

	views, err := h.appointmentUsecase.Search(r.Context(), params)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidTimeFormat) {
			response.Error(w, http.StatusBadRequest, "Invalid datetime format")
			return
		}
		response.InternalServerError(w, "Failed to search appointments")
		return
	}

	response.JSON(w, http.StatusOK, views)
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.AppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	id, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidTimeFormat) {
			response.Error(w, http.StatusBadRequest, "Invalid datetime format")
			return
		}
		response.InternalServerError(w, "Failed to create appointment")
		return
	}

	response.Created(w, id, "Appointment created successfully")
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment id")
		return
	}

	var req dto.AppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.appointmentUsecase.Update(r.Context(), appointmentID, &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrInvalidTimeFormat):
			response.Error(w, http.StatusBadRequest, "Invalid datetime format")
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Message(w, http.StatusOK, "Appointment updated successfully")
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment id")
		return
	}

	if err := h.appointmentUsecase.Delete(r.Context(), appointmentID); err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to delete appointment")
		return
	}

	response.Message(w, http.StatusOK, "Appointment deleted successfully")
}
