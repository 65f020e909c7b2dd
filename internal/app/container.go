package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Mental-Health-Matters/Psych/domain"
	"github.com/Mental-Health-Matters/Psych/internal/config"
	"github.com/Mental-Health-Matters/Psych/internal/infrastructure/auth"
	"github.com/Mental-Health-Matters/Psych/internal/infrastructure/database"
	"github.com/Mental-Health-Matters/Psych/internal/infrastructure/notifications"
	"github.com/Mental-Health-Matters/Psych/internal/infrastructure/repositories"
	"github.com/Mental-Health-Matters/Psych/internal/infrastructure/uploads"
	"github.com/Mental-Health-Matters/Psych/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client

	// Repositories
	UserRepo          domain.UserRepository
	QuestionnaireRepo domain.QuestionnaireRepository

	// Services
	PasswordSvc    domain.PasswordService
	TokenSvc       domain.TokenService
	MailSvc        domain.MailService
	UploadSvc      domain.UploadService
	Verifier       domain.IdentityVerifier
	OTPSvc         domain.OTPService
	AuthSvc        domain.AuthService
	ProfileSvc     domain.ProfileService
	AppointmentSvc domain.AppointmentService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	// Initialize infrastructure
	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initRedis(); err != nil {
		return nil, err
	}

	// Initialize repositories
	container.initRepositories()

	// Initialize services
	if err := container.initServices(); err != nil {
		return nil, err
	}

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	c.DB = db
	return nil
}

func (c *Container) initRedis() error {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.QuestionnaireRepo = repositories.NewQuestionnaireRepository(c.DB)
}

func (c *Container) initServices() error {
	// Initialize basic services
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(
		c.Config.JWTSecret,
		c.Config.JWTIssuer,
		c.Config.TokenTTL,
	)
	c.MailSvc = notifications.NewSMTPService(
		c.Config.SMTPHost,
		c.Config.SMTPPort,
		c.Config.SMTPUsername,
		c.Config.SMTPPassword,
		c.Config.MailFrom,
	)
	c.Verifier = auth.NewGoogleVerifier(c.Config.GoogleClientID)

	uploadSvc, err := uploads.NewCloudinaryService(
		c.Config.CloudinaryCloud,
		c.Config.CloudinaryKey,
		c.Config.CloudinarySecret,
	)
	if err != nil {
		return err
	}
	c.UploadSvc = uploadSvc

	// Initialize OTP service
	otpConfig := services.OTPConfig{
		Length:       c.Config.OTP_Length,
		TTL:          c.Config.OTP_TTL,
		MaxAttempts:  c.Config.OTP_MaxAttempts,
		ResendWindow: c.Config.OTP_ResendWindow,
	}
	c.OTPSvc = services.NewOTPService(c.MailSvc, c.RedisClient, otpConfig)

	// Initialize auth service (depends on all other services)
	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.OTPSvc,
		c.UploadSvc,
		c.Verifier,
		c.Config.TokenTTL,
	)

	c.ProfileSvc = services.NewProfileService(c.UserRepo, c.QuestionnaireRepo)
	c.AppointmentSvc = services.NewAppointmentService(c.UserRepo, c.QuestionnaireRepo, c.MailSvc)

	return nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
