package services

import (
	"context"
	"fmt"
	"log"

	"github.com/Mental-Health-Matters/Psych/domain"
)

// AppointmentServiceImpl implements domain.AppointmentService
type AppointmentServiceImpl struct {
	userRepo          domain.UserRepository
	questionnaireRepo domain.QuestionnaireRepository
	mailSvc           domain.MailService
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(userRepo domain.UserRepository, questionnaireRepo domain.QuestionnaireRepository, mailSvc domain.MailService) domain.AppointmentService {
	return &AppointmentServiceImpl{
		userRepo:          userRepo,
		questionnaireRepo: questionnaireRepo,
		mailSvc:           mailSvc,
	}
}

// Confirm implements domain.AppointmentService. Both confirmation mails
// must go out; either failure is terminal for the request, no retries.
func (s *AppointmentServiceImpl) Confirm(ctx context.Context, userID uint, req domain.AppointmentRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	questionnaire, err := s.questionnaireRepo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}

	studentName := fmt.Sprintf("%s %s", user.FirstName, user.LastName)

	subject, body := appointmentStudentMail(req.Doctor, req.SelectedDate, req.SelectedTime)
	if err := s.mailSvc.Send(user.Email, subject, body); err != nil {
		return fmt.Errorf("%w: student confirmation: %v", domain.ErrMailDelivery, err)
	}

	subject, body = appointmentPsychiatristMail(studentName, req.SelectedDate, req.SelectedTime, questionnaire.Answers)
	if err := s.mailSvc.Send(req.Doctor.Email, subject, body); err != nil {
		return fmt.Errorf("%w: psychiatrist briefing: %v", domain.ErrMailDelivery, err)
	}

	log.Printf("%s: user_id=%d doctor=%s date=%s", domain.AppointmentMailedEvent, user.ID, req.Doctor.Name, req.SelectedDate)
	return nil
}
