package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Mental-Health-Matters/Psych/domain"
	"github.com/Mental-Health-Matters/Psych/internal/mocks"
)

func setupAppointmentRouter(t *testing.T, svc domain.AppointmentService, sessionUserID uint) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewAppointmentHandlers(svc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if sessionUserID != 0 {
			c.Set("user_id", sessionUserID)
		}
	})
	r.POST("/api/appointments/confirmation", h.Confirm)
	return r
}

const confirmPayload = `{
	"doctor": {
		"name": "Dr. Jane Roe",
		"email": "jane.roe@clinic.example.com",
		"specialization": "Clinical Psychiatry",
		"fee": 120
	},
	"selectedDate": "2026-09-03",
	"selectedTime": "14:30"
}`

func TestAppointmentHandlers_Confirm(t *testing.T) {
	t.Run("successful confirmation", func(t *testing.T) {
		svc := mocks.NewMockAppointmentService()
		var gotUserID uint
		var gotReq domain.AppointmentRequest
		svc.ConfirmFunc = func(ctx context.Context, userID uint, req domain.AppointmentRequest) error {
			gotUserID = userID
			gotReq = req
			return nil
		}
		r := setupAppointmentRouter(t, svc, 1)

		req := httptest.NewRequest(http.MethodPost, "/api/appointments/confirmation", bytes.NewBufferString(confirmPayload))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		body := decodeBody(t, rec)
		if body["success"] != true {
			t.Error("expected success=true")
		}
		if body["message"] != "Email sent successfully" {
			t.Errorf("unexpected message %v", body["message"])
		}
		if gotUserID != 1 {
			t.Errorf("session user not forwarded, got %d", gotUserID)
		}
		if gotReq.Doctor.Email != "jane.roe@clinic.example.com" || gotReq.SelectedTime != "14:30" {
			t.Errorf("request not forwarded: %+v", gotReq)
		}
	})

	t.Run("incomplete payload returns 400", func(t *testing.T) {
		svc := mocks.NewMockAppointmentService()
		svc.ConfirmFunc = func(ctx context.Context, userID uint, req domain.AppointmentRequest) error {
			t.Error("service must not run on an incomplete payload")
			return nil
		}
		r := setupAppointmentRouter(t, svc, 1)

		req := httptest.NewRequest(http.MethodPost, "/api/appointments/confirmation", bytes.NewBufferString(`{"selectedDate":"2026-09-03"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("no session returns 401", func(t *testing.T) {
		r := setupAppointmentRouter(t, mocks.NewMockAppointmentService(), 0)

		req := httptest.NewRequest(http.MethodPost, "/api/appointments/confirmation", bytes.NewBufferString(confirmPayload))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("mail failure returns 500", func(t *testing.T) {
		svc := mocks.NewMockAppointmentService()
		svc.ConfirmFunc = func(ctx context.Context, userID uint, req domain.AppointmentRequest) error {
			return domain.ErrMailDelivery
		}
		r := setupAppointmentRouter(t, svc, 1)

		req := httptest.NewRequest(http.MethodPost, "/api/appointments/confirmation", bytes.NewBufferString(confirmPayload))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}
