package handler

import (
	"encoding/json"
	"net/http"

	"medibook/internal/delivery/dto"
	"medibook/internal/usecase"
	"medibook/pkg/response"
	"medibook/pkg/validator"

	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

func (h *BookingHandler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.bookingUsecase.GetAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.bookingUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrNoAvailableSlots:
			response.Conflict(w, "This doctor has no available appointment slots")
		case usecase.ErrSlotTaken:
			response.Conflict(w, "This time slot is no longer available. Please try another slot")
		case usecase.ErrSlotNotOffered:
			response.Error(w, http.StatusBadRequest, "Slot is not in the doctor's calendar", nil)
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		case usecase.ErrInvalidTime:
			response.Error(w, http.StatusBadRequest, "Invalid time format, use HH:MM", nil)
		default:
			response.InternalServerError(w, "Failed to create booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Idempotent: cancelling an unknown id still succeeds
	if err := h.bookingUsecase.CancelBooking(r.Context(), vars["id"]); err != nil {
		response.InternalServerError(w, "Failed to cancel appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}
