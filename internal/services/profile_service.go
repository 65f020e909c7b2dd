package services

import (
	"context"
	"fmt"
	"log"

	"github.com/Mental-Health-Matters/Psych/domain"
)

// ProfileServiceImpl implements domain.ProfileService
type ProfileServiceImpl struct {
	userRepo          domain.UserRepository
	questionnaireRepo domain.QuestionnaireRepository
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo domain.UserRepository, questionnaireRepo domain.QuestionnaireRepository) domain.ProfileService {
	return &ProfileServiceImpl{
		userRepo:          userRepo,
		questionnaireRepo: questionnaireRepo,
	}
}

// GetDetails implements domain.ProfileService
func (s *ProfileServiceImpl) GetDetails(ctx context.Context, userID uint) (*domain.User, *domain.Questionnaire, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, domain.ErrUserNotFound
	}

	questionnaire, err := s.questionnaireRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return user, questionnaire, nil
}

// UpdateProfile implements domain.ProfileService. The questionnaire answer
// set is replaced wholesale, never merged.
func (s *ProfileServiceImpl) UpdateProfile(ctx context.Context, userID uint, profile domain.ProfileUpdate, answers []domain.QuestionnaireAnswer) (*domain.User, *domain.Questionnaire, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, domain.ErrUserNotFound
	}

	if profile.FirstName != "" {
		user.FirstName = profile.FirstName
	}
	if profile.LastName != "" {
		user.LastName = profile.LastName
	}
	if profile.ProfilePicture != "" {
		user.ProfilePicture = profile.ProfilePicture
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("failed to update profile: %w", err)
	}

	questionnaire := &domain.Questionnaire{
		UserID:  userID,
		Answers: answers,
	}
	if err := s.questionnaireRepo.Replace(ctx, questionnaire); err != nil {
		return nil, nil, fmt.Errorf("failed to replace questionnaire: %w", err)
	}

	return user, questionnaire, nil
}

// DeleteAccount implements domain.ProfileService. Only the owner may delete
// their account; the questionnaire goes with it.
func (s *ProfileServiceImpl) DeleteAccount(ctx context.Context, requesterID, targetID uint) error {
	if requesterID != targetID {
		return domain.ErrForbidden
	}

	user, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	if err := s.questionnaireRepo.DeleteByUserID(ctx, targetID); err != nil {
		return fmt.Errorf("failed to delete questionnaire: %w", err)
	}
	if err := s.userRepo.Delete(ctx, targetID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	log.Printf("%s: user_id=%d email=%s", domain.AccountDeletedEvent, user.ID, user.Email)
	return nil
}
