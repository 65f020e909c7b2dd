package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Mental-Health-Matters/Psych/domain"
	"github.com/Mental-Health-Matters/Psych/internal/mocks"
)

func createAppointmentRequest(t *testing.T) domain.AppointmentRequest {
	t.Helper()

	return domain.AppointmentRequest{
		Doctor: domain.Doctor{
			Name:           "Dr. Jane Roe",
			Email:          "jane.roe@clinic.example.com",
			Specialization: "Clinical Psychiatry",
			Fee:            120,
		},
		SelectedDate: "2026-09-03",
		SelectedTime: "14:30",
	}
}

func TestAppointmentServiceImpl_Confirm(t *testing.T) {
	t.Run("mails the student and briefs the psychiatrist", func(t *testing.T) {
		user := createVerifiedUser(t)
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return user, nil
		}
		questionnaireRepo := mocks.NewMockQuestionnaireRepository()
		questionnaireRepo.FindByUserIDFunc = func(ctx context.Context, userID uint) (*domain.Questionnaire, error) {
			return &domain.Questionnaire{
				UserID: userID,
				Answers: []domain.QuestionnaireAnswer{
					{Question: "How is your sleep?", SelectedAnswer: "Poor"},
				},
			}, nil
		}
		mailSvc := mocks.NewMockMailService()
		svc := NewAppointmentService(userRepo, questionnaireRepo, mailSvc)

		req := createAppointmentRequest(t)
		if err := svc.Confirm(context.Background(), 1, req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		sent := mailSvc.Sent()
		if len(sent) != 2 {
			t.Fatalf("expected 2 mails, got %d", len(sent))
		}
		if sent[0].To != user.Email {
			t.Errorf("first mail went to %s, expected the student", sent[0].To)
		}
		if !strings.Contains(sent[0].Body, req.Doctor.Name) {
			t.Error("student mail missing the doctor's name")
		}
		if sent[1].To != req.Doctor.Email {
			t.Errorf("second mail went to %s, expected the psychiatrist", sent[1].To)
		}
		if !strings.Contains(sent[1].Body, "Stu Dent") {
			t.Error("psychiatrist mail missing the student's name")
		}
		if !strings.Contains(sent[1].Body, "How is your sleep?") {
			t.Error("psychiatrist mail missing the questionnaire")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := NewAppointmentService(mocks.NewMockUserRepository(), mocks.NewMockQuestionnaireRepository(), mocks.NewMockMailService())

		err := svc.Confirm(context.Background(), 42, createAppointmentRequest(t))
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("missing questionnaire blocks confirmation", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return createVerifiedUser(t), nil
		}
		mailSvc := mocks.NewMockMailService()
		svc := NewAppointmentService(userRepo, mocks.NewMockQuestionnaireRepository(), mailSvc)

		err := svc.Confirm(context.Background(), 1, createAppointmentRequest(t))
		if !errors.Is(err, domain.ErrQuestionnaireNotFound) {
			t.Fatalf("expected ErrQuestionnaireNotFound, got %v", err)
		}
		if len(mailSvc.Sent()) != 0 {
			t.Error("no mail may go out without a questionnaire")
		}
	})

	t.Run("delivery failure is terminal", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return createVerifiedUser(t), nil
		}
		questionnaireRepo := mocks.NewMockQuestionnaireRepository()
		questionnaireRepo.FindByUserIDFunc = func(ctx context.Context, userID uint) (*domain.Questionnaire, error) {
			return &domain.Questionnaire{UserID: userID}, nil
		}
		mailSvc := mocks.NewMockMailService()
		mailSvc.SendFunc = func(to, subject, body string) error {
			return errors.New("smtp connection refused")
		}
		svc := NewAppointmentService(userRepo, questionnaireRepo, mailSvc)

		err := svc.Confirm(context.Background(), 1, createAppointmentRequest(t))
		if !errors.Is(err, domain.ErrMailDelivery) {
			t.Fatalf("expected ErrMailDelivery, got %v", err)
		}
	})
}
