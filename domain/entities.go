package domain

import (
	"strings"
	"time"
)

// Auth providers for User.AuthProvider
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// User represents an account on the platform
type User struct {
	ID             uint
	Email          string
	Username       string
	FirstName      string
	LastName       string
	PasswordHash   string `gorm:"column:password"`
	ProfilePicture string
	AuthProvider   string
	EmailVerified  bool
	OTP            string
	OTPExpiresAt   *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsFederated reports whether the account was created through an external
// identity provider and therefore carries no local password.
func (u *User) IsFederated() bool {
	return u.AuthProvider != ProviderLocal
}

// HasPendingOTP reports whether both OTP fields are set. The fields are
// either both set or both cleared, never one without the other.
func (u *User) HasPendingOTP() bool {
	return u.OTP != "" && u.OTPExpiresAt != nil
}

// Sanitized returns a copy safe to return to clients: no password hash,
// no OTP state.
func (u *User) Sanitized() *User {
	out := *u
	out.PasswordHash = ""
	out.OTP = ""
	out.OTPExpiresAt = nil
	return &out
}

// RegisterInput carries the fields of a local registration request.
// Picture holds the raw bytes of the uploaded profile picture.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Username  string
	Password  string
	Picture   []byte
}

// Normalize lowercases the fields the uniqueness constraints apply to.
func (in *RegisterInput) Normalize() {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.ToLower(strings.TrimSpace(in.Username))
}

// AuthResult represents a successful authentication outcome
type AuthResult struct {
	User        *User
	AccessToken string
	ExpiresIn   int64
}

// ExternalIdentity is the verified profile returned by an identity provider
type ExternalIdentity struct {
	Email     string
	FirstName string
	LastName  string
	AvatarURL string
}

// QuestionnaireAnswer is one (question, selected answer) pair
type QuestionnaireAnswer struct {
	Question       string `json:"question"`
	SelectedAnswer string `json:"selectedAnswer"`
}

// Questionnaire holds a user's full response set. There is at most one per
// user and it is replaced wholesale on profile update.
type Questionnaire struct {
	ID        uint
	UserID    uint
	Answers   []QuestionnaireAnswer
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileUpdate carries the mutable profile fields
type ProfileUpdate struct {
	FirstName      string
	LastName       string
	ProfilePicture string
}

// Doctor describes the psychiatrist an appointment is booked with
type Doctor struct {
	Name           string
	Email          string
	Specialization string
	Fee            float64
}

// AppointmentRequest carries an appointment confirmation request
type AppointmentRequest struct {
	Doctor       Doctor
	SelectedDate string
	SelectedTime string
}

// TokenClaims represents the session token payload
type TokenClaims struct {
	UserID    uint  `json:"user_id"`
	IssuedAt  int64 `json:"iat"`
	ExpiresAt int64 `json:"exp"`
}
