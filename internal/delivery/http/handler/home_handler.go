package handler

import (
	"net/http"

	"go-dental-clinic-api/pkg/response"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

func (h *HomeHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	response.Message(w, http.StatusOK, "Welcome to the Dental Clinic API")
}
