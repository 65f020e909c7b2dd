package domain

import "errors"

// Validation errors
var (
	ErrValidation     = errors.New("all fields are required")
	ErrMissingPicture = errors.New("profile picture is required")
)

// Account errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("email or username already registered")
	ErrInvalidCredentials = errors.New("check email or password")
	ErrEmailNotVerified  = errors.New("email not verified")
	ErrAlreadyVerified   = errors.New("email already verified")
	ErrForbidden         = errors.New("cannot act on other user accounts")
)

// OTP errors
var (
	ErrOTPNotSet      = errors.New("otp not set")
	ErrOTPMismatch    = errors.New("invalid otp")
	ErrOTPExpired     = errors.New("otp expired")
	ErrOTPDelivery    = errors.New("unable to send otp")
	ErrOTPResendLimit = errors.New("otp resend limit exceeded")
	ErrOTPMaxAttempts = errors.New("maximum otp attempts exceeded")
)

// Token errors
var (
	ErrTokenInvalid = errors.New("invalid token")
)

// Collaborator errors
var (
	ErrUploadFailed      = errors.New("unable to upload image")
	ErrMailDelivery      = errors.New("unable to send email")
	ErrOAuthVerification = errors.New("google token verification failed")
)

// Authorization errors
var (
	ErrUnauthenticated = errors.New("not logged in")
)

// Resource errors
var (
	ErrQuestionnaireNotFound = errors.New("questionnaire not found")
)
