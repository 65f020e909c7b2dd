package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Mental-Health-Matters/Psych/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID             uint       `gorm:"primaryKey"`
	Email          string     `gorm:"uniqueIndex;size:255"`
	Username       string     `gorm:"uniqueIndex;size:20"`
	FirstName      string     `gorm:"size:255"`
	LastName       string     `gorm:"size:255"`
	PasswordHash   string     `gorm:"column:password"`
	ProfilePicture string     `gorm:"size:512"`
	AuthProvider   string     `gorm:"index;size:16;default:local"`
	EmailVerified  bool       `gorm:"index"`
	OTP            string     `gorm:"size:16"`
	OTPExpiresAt   *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository. A uniqueness violation on email
// or username (including the race past the pre-insert existence check) maps
// to ErrUserAlreadyExists.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUserAlreadyExists
		}
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByUsername implements domain.UserRepository
func (r *UserRepositoryImpl) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	err := r.db.WithContext(ctx).Model(&DBUser{ID: user.ID}).Updates(map[string]interface{}{
		"first_name":      dbUser.FirstName,
		"last_name":       dbUser.LastName,
		"profile_picture": dbUser.ProfilePicture,
		"otp":             dbUser.OTP,
		"otp_expires_at":  dbUser.OTPExpiresAt,
		"email_verified":  dbUser.EmailVerified,
	}).Error
	return err
}

// Delete implements domain.UserRepository
func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&DBUser{}, id).Error
}

// ClearOTP implements domain.UserRepository. Clearing both fields and
// flipping email_verified in one update guarantees a consumed code cannot
// be replayed.
func (r *UserRepositoryImpl) ClearOTP(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"otp":            "",
		"otp_expires_at": nil,
		"email_verified": true,
	}).Error
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:             user.ID,
		Email:          user.Email,
		Username:       user.Username,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		PasswordHash:   user.PasswordHash,
		ProfilePicture: user.ProfilePicture,
		AuthProvider:   user.AuthProvider,
		EmailVerified:  user.EmailVerified,
		OTP:            user.OTP,
		OTPExpiresAt:   user.OTPExpiresAt,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:             dbUser.ID,
		Email:          dbUser.Email,
		Username:       dbUser.Username,
		FirstName:      dbUser.FirstName,
		LastName:       dbUser.LastName,
		PasswordHash:   dbUser.PasswordHash,
		ProfilePicture: dbUser.ProfilePicture,
		AuthProvider:   dbUser.AuthProvider,
		EmailVerified:  dbUser.EmailVerified,
		OTP:            dbUser.OTP,
		OTPExpiresAt:   dbUser.OTPExpiresAt,
		CreatedAt:      dbUser.CreatedAt,
		UpdatedAt:      dbUser.UpdatedAt,
	}
}
