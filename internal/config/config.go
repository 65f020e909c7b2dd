package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port        int    `yaml:"port"`
	GinMode     string `yaml:"gin_mode"`
	Environment string `yaml:"environment"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type OTPConfig struct {
	TTL          string `yaml:"ttl"`
	Length       int    `yaml:"length"`
	MaxAttempts  int    `yaml:"max_attempts"`
	ResendWindow string `yaml:"resend_window"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type CloudinaryConfig struct {
	CloudName string `yaml:"cloud_name"`
	APIKey    string `yaml:"api_key"`
	APISecret string `yaml:"api_secret"`
}

type GoogleConfig struct {
	ClientID string `yaml:"client_id"`
}

type CORSConfig struct {
	Origins []string `yaml:"origins"`
}

type ConfigFile struct {
	App        AppConfig        `yaml:"app"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	JWT        JWTConfig        `yaml:"jwt"`
	OTP        OTPConfig        `yaml:"otp"`
	SMTP       SMTPConfig       `yaml:"smtp"`
	Cloudinary CloudinaryConfig `yaml:"cloudinary"`
	Google     GoogleConfig     `yaml:"google"`
	CORS       CORSConfig       `yaml:"cors"`
}

type Config struct {
	Port        string
	GinMode     string
	Environment string

	DSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret string
	JWTIssuer string
	TokenTTL  time.Duration

	OTP_TTL          time.Duration
	OTP_Length       int
	OTP_MaxAttempts  int
	OTP_ResendWindow time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	CloudinaryCloud  string
	CloudinaryKey    string
	CloudinarySecret string

	GoogleClientID string

	CORSOrigins []string
}

// IsProduction drives the session cookie attributes: Secure and
// SameSite=None are only safe to set behind TLS.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	return LoadFrom("config/config.yml")
}

// LoadFrom reads the yaml config file at path; secrets may be overridden
// through environment variables so they never need to live in the file.
func LoadFrom(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	tokenTTL, err := time.ParseDuration(env("JWT_TTL", configFile.JWT.TTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT TTL: %w", err)
	}

	otpTTL, err := time.ParseDuration(configFile.OTP.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	resWnd, err := time.ParseDuration(configFile.OTP.ResendWindow)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP resend window: %w", err)
	}

	return &Config{
		Port:        fmt.Sprintf("%d", configFile.App.Port),
		GinMode:     configFile.App.GinMode,
		Environment: env("APP_ENV", configFile.App.Environment),

		DSN: env("DATABASE_DSN", configFile.Database.DSN),

		RedisAddr:     env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword: env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:       configFile.Redis.DB,

		JWTSecret: env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer: configFile.JWT.Issuer,
		TokenTTL:  tokenTTL,

		OTP_TTL:          otpTTL,
		OTP_Length:       configFile.OTP.Length,
		OTP_MaxAttempts:  configFile.OTP.MaxAttempts,
		OTP_ResendWindow: resWnd,

		SMTPHost:     env("SMTP_HOST", configFile.SMTP.Host),
		SMTPPort:     configFile.SMTP.Port,
		SMTPUsername: env("EMAIL_USER", configFile.SMTP.Username),
		SMTPPassword: env("EMAIL_PASS", configFile.SMTP.Password),
		MailFrom:     env("MAIL_FROM", configFile.SMTP.From),

		CloudinaryCloud:  env("CLOUDINARY_CLOUD_NAME", configFile.Cloudinary.CloudName),
		CloudinaryKey:    env("CLOUDINARY_API_KEY", configFile.Cloudinary.APIKey),
		CloudinarySecret: env("CLOUDINARY_API_SECRET", configFile.Cloudinary.APISecret),

		GoogleClientID: env("GOOGLE_CLIENT_ID", configFile.Google.ClientID),

		CORSOrigins: configFile.CORS.Origins,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
