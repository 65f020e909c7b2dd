package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Mental-Health-Matters/Psych/domain"
)

// QuestionnaireRepositoryImpl implements domain.QuestionnaireRepository
// using GORM. Answers are stored as a JSON document; the whole set is
// replaced on every write.
type QuestionnaireRepositoryImpl struct {
	db *gorm.DB
}

// DBQuestionnaire represents the database model for Questionnaire
type DBQuestionnaire struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"uniqueIndex"`
	Answers   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBQuestionnaire) TableName() string {
	return "questionnaires"
}

// NewQuestionnaireRepository creates a new questionnaire repository
func NewQuestionnaireRepository(db *gorm.DB) domain.QuestionnaireRepository {
	return &QuestionnaireRepositoryImpl{db: db}
}

// FindByUserID implements domain.QuestionnaireRepository
func (r *QuestionnaireRepositoryImpl) FindByUserID(ctx context.Context, userID uint) (*domain.Questionnaire, error) {
	var dbQ DBQuestionnaire
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&dbQ).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQuestionnaireNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbQ)
}

// Replace implements domain.QuestionnaireRepository. An upsert keyed on the
// user FK keeps at most one response set per user.
func (r *QuestionnaireRepositoryImpl) Replace(ctx context.Context, q *domain.Questionnaire) error {
	raw, err := json.Marshal(q.Answers)
	if err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}

	dbQ := DBQuestionnaire{
		UserID:  q.UserID,
		Answers: string(raw),
	}

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"answers", "updated_at"}),
	}).Create(&dbQ).Error
	if err != nil {
		return err
	}

	q.ID = dbQ.ID
	return nil
}

// DeleteByUserID implements domain.QuestionnaireRepository
func (r *QuestionnaireRepositoryImpl) DeleteByUserID(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&DBQuestionnaire{}).Error
}

func (r *QuestionnaireRepositoryImpl) dbToDomain(dbQ *DBQuestionnaire) (*domain.Questionnaire, error) {
	var answers []domain.QuestionnaireAnswer
	if dbQ.Answers != "" {
		if err := json.Unmarshal([]byte(dbQ.Answers), &answers); err != nil {
			return nil, fmt.Errorf("failed to decode answers: %w", err)
		}
	}
	return &domain.Questionnaire{
		ID:        dbQ.ID,
		UserID:    dbQ.UserID,
		Answers:   answers,
		CreatedAt: dbQ.CreatedAt,
		UpdatedAt: dbQ.UpdatedAt,
	}, nil
}
