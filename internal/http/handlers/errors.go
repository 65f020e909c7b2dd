package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mental-Health-Matters/Psych/domain"
)

// respondError maps a domain error to its HTTP status and client-facing
// message. Anything unmapped collapses into a generic 500 so internal
// diagnostics never leak to the caller.
func respondError(c *gin.Context, err error) {
	status, message := http.StatusInternalServerError, "Something went wrong!"

	switch {
	case errors.Is(err, domain.ErrValidation):
		status, message = http.StatusBadRequest, "All fields are required!"
	case errors.Is(err, domain.ErrUserAlreadyExists):
		status, message = http.StatusBadRequest, "Email or Username already registered!"
	case errors.Is(err, domain.ErrMissingPicture):
		status, message = http.StatusBadRequest, "Profile picture is required"
	case errors.Is(err, domain.ErrUploadFailed):
		status, message = http.StatusInternalServerError, "Unable to upload image"
	case errors.Is(err, domain.ErrOTPDelivery):
		status, message = http.StatusInternalServerError, "Unable to send OTP"
	case errors.Is(err, domain.ErrOTPResendLimit):
		status, message = http.StatusTooManyRequests, "Please wait before requesting a new OTP"
	case errors.Is(err, domain.ErrOTPMaxAttempts):
		status, message = http.StatusTooManyRequests, "Maximum OTP attempts exceeded"
	case errors.Is(err, domain.ErrOTPNotSet):
		status, message = http.StatusBadRequest, "OTP not set or expired."
	case errors.Is(err, domain.ErrOTPMismatch):
		status, message = http.StatusBadRequest, "Invalid OTP."
	case errors.Is(err, domain.ErrOTPExpired):
		status, message = http.StatusBadRequest, "OTP expired."
	case errors.Is(err, domain.ErrAlreadyVerified):
		status, message = http.StatusBadRequest, "Email already verified!"
	case errors.Is(err, domain.ErrUserNotFound):
		status, message = http.StatusNotFound, "Check email or password!"
	case errors.Is(err, domain.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, "Check email or password!"
	case errors.Is(err, domain.ErrEmailNotVerified):
		status, message = http.StatusForbidden, "Email not verified. Please verify your account first."
	case errors.Is(err, domain.ErrOAuthVerification):
		status, message = http.StatusUnauthorized, "Google login failed"
	case errors.Is(err, domain.ErrForbidden):
		status, message = http.StatusForbidden, "Invalid request! Cannot delete other user accounts."
	case errors.Is(err, domain.ErrQuestionnaireNotFound):
		status, message = http.StatusBadRequest, "Questionnaire not found"
	case errors.Is(err, domain.ErrUnauthenticated):
		status, message = http.StatusUnauthorized, "Not logged in"
	}

	c.JSON(status, gin.H{"error": true, "message": message})
}

// userJSON shapes the sanitized user payload returned to clients. The
// password hash and OTP state are never part of it.
func userJSON(u *domain.User) gin.H {
	s := u.Sanitized()
	return gin.H{
		"id":             s.ID,
		"email":          s.Email,
		"username":       s.Username,
		"firstName":      s.FirstName,
		"lastName":       s.LastName,
		"profilePicture": s.ProfilePicture,
		"authProvider":   s.AuthProvider,
		"emailVerified":  s.EmailVerified,
		"createdAt":      s.CreatedAt,
		"updatedAt":      s.UpdatedAt,
	}
}
