package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
	// ClearOTP removes the OTP fields and marks the email verified in one
	// update, so a consumed code can never be replayed.
	ClearOTP(ctx context.Context, userID uint) error
}

// QuestionnaireRepository defines questionnaire data access operations
type QuestionnaireRepository interface {
	FindByUserID(ctx context.Context, userID uint) (*Questionnaire, error)
	// Replace upserts the user's full answer set in one shot.
	Replace(ctx context.Context, q *Questionnaire) error
	DeleteByUserID(ctx context.Context, userID uint) error
}

// AuthService defines the account and session lifecycle
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	VerifyEmail(ctx context.Context, userID uint, code string) (*AuthResult, error)
	ResendOTP(ctx context.Context, email string) error
	GoogleLogin(ctx context.Context, idToken string) (*AuthResult, error)
	GetUserProfile(ctx context.Context, userID uint) (*User, error)
}

// OTPService defines one-time code operations
type OTPService interface {
	// Issue stamps a fresh code and expiry on the user (in memory only;
	// the caller persists) and dispatches the code by email.
	Issue(ctx context.Context, user *User) error
	// Verify checks the submitted code against the user's stored OTP state
	// and clears it on success.
	Verify(ctx context.Context, user *User, code string) error
	CanResend(ctx context.Context, email string) (bool, int64, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	Generate(userID uint) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// MailService defines email delivery
type MailService interface {
	Send(to, subject, body string) error
}

// UploadService defines image hosting
type UploadService interface {
	// UploadImage stores the image and returns its public URL.
	UploadImage(ctx context.Context, data []byte) (string, error)
}

// IdentityVerifier validates third-party identity tokens
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (*ExternalIdentity, error)
}

// ProfileService defines profile and questionnaire use cases
type ProfileService interface {
	GetDetails(ctx context.Context, userID uint) (*User, *Questionnaire, error)
	UpdateProfile(ctx context.Context, userID uint, profile ProfileUpdate, answers []QuestionnaireAnswer) (*User, *Questionnaire, error)
	DeleteAccount(ctx context.Context, requesterID, targetID uint) error
}

// AppointmentService defines appointment confirmation
type AppointmentService interface {
	Confirm(ctx context.Context, userID uint, req AppointmentRequest) error
}
