package domain

// AuditEventType tags the audit log lines the services emit
type AuditEventType string

const (
	// Email verification events
	EmailVerifiedEvent      AuditEventType = "EMAIL_VERIFIED"
	EmailVerifyFailureEvent AuditEventType = "EMAIL_VERIFY_FAILED"
	OTPIssuedEvent          AuditEventType = "OTP_ISSUED"
	OTPResendEvent          AuditEventType = "OTP_RESENT"

	// Authentication events
	UserLoginEvent        AuditEventType = "USER_LOGIN"
	UserLoginFailureEvent AuditEventType = "USER_LOGIN_FAILED"
	UserRegistrationEvent AuditEventType = "USER_REGISTERED"
	UserLogoutEvent       AuditEventType = "USER_LOGOUT"
	GoogleLoginEvent      AuditEventType = "GOOGLE_LOGIN"

	// Account events
	AccountDeletedEvent    AuditEventType = "ACCOUNT_DELETED"
	AppointmentMailedEvent AuditEventType = "APPOINTMENT_MAILED"
)
