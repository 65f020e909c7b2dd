package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Mental-Health-Matters/Psych/domain"
	"github.com/Mental-Health-Matters/Psych/internal/mocks"
)

func TestProfileServiceImpl_GetDetails(t *testing.T) {
	t.Run("returns user with questionnaire", func(t *testing.T) {
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
					{Question: "How often do you feel anxious?", SelectedAnswer: "Sometimes"},
				},
			}, nil
		}
		svc := NewProfileService(userRepo, questionnaireRepo)

		gotUser, gotQ, err := svc.GetDetails(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotUser != user {
			t.Error("unexpected user returned")
		}
		if len(gotQ.Answers) != 1 {
			t.Fatalf("expected 1 answer, got %d", len(gotQ.Answers))
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := NewProfileService(mocks.NewMockUserRepository(), mocks.NewMockQuestionnaireRepository())

		_, _, err := svc.GetDetails(context.Background(), 42)
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("missing questionnaire surfaces", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return createVerifiedUser(t), nil
		}
		svc := NewProfileService(userRepo, mocks.NewMockQuestionnaireRepository())

		_, _, err := svc.GetDetails(context.Background(), 1)
		if !errors.Is(err, domain.ErrQuestionnaireNotFound) {
			t.Fatalf("expected ErrQuestionnaireNotFound, got %v", err)
		}
	})
}

func TestProfileServiceImpl_UpdateProfile(t *testing.T) {
	t.Run("applies fields and replaces answers wholesale", func(t *testing.T) {
		user := createVerifiedUser(t)
		var updated *domain.User
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return user, nil
		}
		userRepo.UpdateFunc = func(ctx context.Context, u *domain.User) error {
			updated = u
			return nil
		}
		var replaced *domain.Questionnaire
		questionnaireRepo := mocks.NewMockQuestionnaireRepository()
		questionnaireRepo.ReplaceFunc = func(ctx context.Context, q *domain.Questionnaire) error {
			replaced = q
			return nil
		}
		svc := NewProfileService(userRepo, questionnaireRepo)

		answers := []domain.QuestionnaireAnswer{
			{Question: "How is your sleep?", SelectedAnswer: "Poor"},
			{Question: "How often do you feel anxious?", SelectedAnswer: "Often"},
		}
		gotUser, gotQ, err := svc.UpdateProfile(context.Background(), 1, domain.ProfileUpdate{
			FirstName: "Newname",
		}, answers)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated == nil {
			t.Fatal("profile was not persisted")
		}
		if gotUser.FirstName != "Newname" {
			t.Errorf("first name not applied: %s", gotUser.FirstName)
		}
		if gotUser.LastName != "Dent" {
			t.Errorf("untouched field changed: %s", gotUser.LastName)
		}
		if replaced == nil || replaced.UserID != 1 {
			t.Fatal("questionnaire was not replaced for the owner")
		}
		if len(gotQ.Answers) != 2 {
			t.Errorf("expected 2 answers, got %d", len(gotQ.Answers))
		}
	})

	t.Run("empty fields leave the profile untouched", func(t *testing.T) {
		user := createVerifiedUser(t)
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return user, nil
		}
		svc := NewProfileService(userRepo, mocks.NewMockQuestionnaireRepository())

		gotUser, _, err := svc.UpdateProfile(context.Background(), 1, domain.ProfileUpdate{}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotUser.FirstName != "Stu" || gotUser.LastName != "Dent" {
			t.Error("empty update must not blank profile fields")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := NewProfileService(mocks.NewMockUserRepository(), mocks.NewMockQuestionnaireRepository())

		_, _, err := svc.UpdateProfile(context.Background(), 42, domain.ProfileUpdate{}, nil)
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestProfileServiceImpl_DeleteAccount(t *testing.T) {
	t.Run("owner deletes account and questionnaire", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return createVerifiedUser(t), nil
		}
		userDeleted := false
		userRepo.DeleteFunc = func(ctx context.Context, id uint) error {
			userDeleted = true
			return nil
		}
		questionnaireDeleted := false
		questionnaireRepo := mocks.NewMockQuestionnaireRepository()
		questionnaireRepo.DeleteByUserIDFunc = func(ctx context.Context, userID uint) error {
			questionnaireDeleted = true
			return nil
		}
		svc := NewProfileService(userRepo, questionnaireRepo)

		if err := svc.DeleteAccount(context.Background(), 1, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !userDeleted || !questionnaireDeleted {
			t.Error("both the account and its questionnaire must go")
		}
	})

	t.Run("deleting another account is forbidden", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.DeleteFunc = func(ctx context.Context, id uint) error {
			t.Error("delete must not run for a foreign account")
			return nil
		}
		svc := NewProfileService(userRepo, mocks.NewMockQuestionnaireRepository())

		err := svc.DeleteAccount(context.Background(), 1, 2)
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("unknown target", func(t *testing.T) {
		svc := NewProfileService(mocks.NewMockUserRepository(), mocks.NewMockQuestionnaireRepository())

		err := svc.DeleteAccount(context.Background(), 42, 42)
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
