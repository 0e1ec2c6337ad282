package http

import (
	"net/http"

	"go-dental-clinic-api/internal/delivery/http/handler"
	"go-dental-clinic-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	homeHandler        *handler.HomeHandler
	appointmentHandler *handler.AppointmentHandler
	loggingMiddleware  *middleware.LoggingMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	homeHandler *handler.HomeHandler,
	appointmentHandler *handler.AppointmentHandler,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		homeHandler:        homeHandler,
		appointmentHandler: appointmentHandler,
		loggingMiddleware:  loggingMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.HandleFunc("/", r.homeHandler.Welcome).Methods(http.MethodGet)
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	r.router.HandleFunc("/search", r.appointmentHandler.Search).Methods(http.MethodGet)

	r.router.HandleFunc("/appointments", r.appointmentHandler.GetAppointments).Methods(http.MethodGet)
	r.router.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	r.router.HandleFunc("/appointments/{id:[0-9]+}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	r.router.HandleFunc("/appointments/{id:[0-9]+}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
