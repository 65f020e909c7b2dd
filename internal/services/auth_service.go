package services

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Mental-Health-Matters/Psych/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
	uploadSvc   domain.UploadService
	verifier    domain.IdentityVerifier
	tokenTTL    time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	uploadSvc domain.UploadService,
	verifier domain.IdentityVerifier,
	tokenTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
		uploadSvc:   uploadSvc,
		verifier:    verifier,
		tokenTTL:    tokenTTL,
	}
}

// Register implements domain.AuthService. Each step is a hard gate; the
// user row is only written after the picture is hosted and the OTP mail is
// out, so a delivery failure never leaves a half-issued account behind.
// The pre-insert existence checks race with concurrent registrations; the
// unique indexes settle that race and the repository maps the violation to
// ErrUserAlreadyExists.
func (s *AuthServiceImpl) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	in.Normalize()

	if existing, err := s.userRepo.FindByEmail(ctx, in.Email); err == nil && existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}
	if existing, err := s.userRepo.FindByUsername(ctx, in.Username); err == nil && existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	if len(in.Picture) == 0 {
		return nil, domain.ErrMissingPicture
	}

	hashedPassword, err := s.passwordSvc.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	pictureURL, err := s.uploadSvc.UploadImage(ctx, in.Picture)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:          in.Email,
		Username:       in.Username,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		PasswordHash:   hashedPassword,
		ProfilePicture: pictureURL,
		AuthProvider:   domain.ProviderLocal,
	}

	if err := s.otpSvc.Issue(ctx, user); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("%s: user_id=%d email=%s", domain.UserRegistrationEvent, user.ID, user.Email)
	return user, nil
}

// Login implements domain.AuthService. Verification is required before the
// first login; the verification step itself issues the first session.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	if user.IsFederated() || user.PasswordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		log.Printf("%s: email=%s", domain.UserLoginFailureEvent, user.Email)
		return nil, domain.ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, domain.ErrEmailNotVerified
	}

	return s.issueSession(user, domain.UserLoginEvent)
}

// VerifyEmail implements domain.AuthService. A successful verification
// consumes the code, marks the email verified and acts as an implicit
// login.
func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, userID uint, code string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	if err := s.otpSvc.Verify(ctx, user, code); err != nil {
		log.Printf("%s: user_id=%d error=%v", domain.EmailVerifyFailureEvent, user.ID, err)
		return nil, err
	}

	if err := s.userRepo.ClearOTP(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to clear otp state: %w", err)
	}
	user.EmailVerified = true

	log.Printf("%s: user_id=%d email=%s", domain.EmailVerifiedEvent, user.ID, user.Email)
	return s.issueSession(user, domain.UserLoginEvent)
}

// ResendOTP implements domain.AuthService
func (s *AuthServiceImpl) ResendOTP(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return domain.ErrUserNotFound
	}
	if user.IsFederated() || user.EmailVerified {
		return domain.ErrAlreadyVerified
	}

	if err := s.otpSvc.Issue(ctx, user); err != nil {
		return err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to persist reissued otp: %w", err)
	}

	log.Printf("%s: user_id=%d email=%s", domain.OTPResendEvent, user.ID, user.Email)
	return nil
}

// GoogleLogin implements domain.AuthService. Federated accounts bypass OTP
// verification entirely; at most one account ever exists per email.
func (s *AuthServiceImpl) GoogleLogin(ctx context.Context, idToken string) (*domain.AuthResult, error) {
	identity, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(identity.Email))
	if errors.Is(err, domain.ErrUserNotFound) {
		user, err = s.createFederatedUser(ctx, identity)
	}
	if err != nil {
		return nil, err
	}

	return s.issueSession(user, domain.GoogleLoginEvent)
}

// GetUserProfile implements domain.AuthService
func (s *AuthServiceImpl) GetUserProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

func (s *AuthServiceImpl) issueSession(user *domain.User, event domain.AuditEventType) (*domain.AuthResult, error) {
	token, err := s.tokenSvc.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	log.Printf("%s: user_id=%d email=%s", event, user.ID, user.Email)
	return &domain.AuthResult{
		User:        user,
		AccessToken: token,
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}, nil
}

func (s *AuthServiceImpl) createFederatedUser(ctx context.Context, identity *domain.ExternalIdentity) (*domain.User, error) {
	user := &domain.User{
		Email:          strings.ToLower(identity.Email),
		Username:       s.deriveUsername(ctx, identity),
		FirstName:      identity.FirstName,
		LastName:       identity.LastName,
		ProfilePicture: identity.AvatarURL,
		AuthProvider:   domain.ProviderGoogle,
		EmailVerified:  true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost the race against a concurrent first login with the same
		// email: reuse the row that won.
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return s.userRepo.FindByEmail(ctx, user.Email)
		}
		return nil, fmt.Errorf("failed to create federated user: %w", err)
	}
	return user, nil
}

// deriveUsername builds a deterministic username from the identity's name
// fields, padding and truncating into the 3-20 char window. A collision
// with an existing account gets a deterministic suffix from the email.
func (s *AuthServiceImpl) deriveUsername(ctx context.Context, identity *domain.ExternalIdentity) string {
	base := sanitizeUsername(identity.FirstName + identity.LastName)
	if base == "" {
		base = sanitizeUsername(strings.SplitN(identity.Email, "@", 2)[0])
	}
	for len(base) < 3 {
		base += "0"
	}
	if len(base) > 20 {
		base = base[:20]
	}

	if _, err := s.userRepo.FindByUsername(ctx, base); errors.Is(err, domain.ErrUserNotFound) {
		return base
	}

	sum := sha1.Sum([]byte(strings.ToLower(identity.Email)))
	suffix := hex.EncodeToString(sum[:])[:4]
	if len(base) > 16 {
		base = base[:16]
	}
	return base + suffix
}

func sanitizeUsername(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
