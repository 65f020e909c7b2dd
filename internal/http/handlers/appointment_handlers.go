package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mental-Health-Matters/Psych/domain"
)

// AppointmentHandlers handles appointment confirmation requests
type AppointmentHandlers struct {
	appointmentSvc domain.AppointmentService
}

// NewAppointmentHandlers creates new appointment handlers
func NewAppointmentHandlers(appointmentSvc domain.AppointmentService) *AppointmentHandlers {
	return &AppointmentHandlers{appointmentSvc: appointmentSvc}
}

// DoctorPayload describes the psychiatrist the appointment is booked with
type DoctorPayload struct {
	Name           string  `json:"name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Specialization string  `json:"specialization" binding:"required"`
	Fee            float64 `json:"fee"`
}

// ConfirmRequest represents an appointment confirmation request
type ConfirmRequest struct {
	Doctor       DoctorPayload `json:"doctor" binding:"required"`
	SelectedDate string        `json:"selectedDate" binding:"required"`
	SelectedTime string        `json:"selectedTime" binding:"required"`
}

// Confirm sends the confirmation mails for a booked appointment
func (h *AppointmentHandlers) Confirm(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, domain.ErrUnauthenticated)
		return
	}

	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "Appointment details are required!"})
		return
	}

	err := h.appointmentSvc.Confirm(c.Request.Context(), userID, domain.AppointmentRequest{
		Doctor: domain.Doctor{
			Name:           req.Doctor.Name,
			Email:          req.Doctor.Email,
			Specialization: req.Doctor.Specialization,
			Fee:            req.Doctor.Fee,
		},
		SelectedDate: req.SelectedDate,
		SelectedTime: req.SelectedTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email sent successfully"})
}
