package http

import (
	"net/http"

	"medibook/internal/delivery/http/handler"
	"medibook/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	doctorHandler     *handler.DoctorHandler
	bookingHandler    *handler.BookingHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	bookingHandler *handler.BookingHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		doctorHandler:     doctorHandler,
		bookingHandler:    bookingHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Doctor directory
	api.HandleFunc("/specialties", r.doctorHandler.GetSpecialties).Methods(http.MethodGet)
	api.HandleFunc("/doctors", r.doctorHandler.GetDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/availability", r.doctorHandler.GetDoctorAvailability).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", r.bookingHandler.GetAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", r.bookingHandler.CancelBooking).Methods(http.MethodDelete)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
