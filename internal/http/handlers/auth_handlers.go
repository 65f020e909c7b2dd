package handlers

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mental-Health-Matters/Psych/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
	cookie  *SessionCookie
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, cookie *SessionCookie) *AuthHandlers {
	return &AuthHandlers{
		authSvc: authSvc,
		cookie:  cookie,
	}
}

// RegisterRequest represents the multipart registration form
type RegisterRequest struct {
	FirstName string `form:"firstName" binding:"required"`
	LastName  string `form:"lastName" binding:"required"`
	Email     string `form:"email" binding:"required,email"`
	Username  string `form:"username" binding:"required,min=3,max=20,lowercase"`
	Password  string `form:"password" binding:"required,min=6"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyRequest represents OTP verification request
type VerifyRequest struct {
	UserID uint   `json:"userId" binding:"required"`
	OTP    string `json:"otp" binding:"required"`
}

// ResendOTPRequest represents an OTP resend request
type ResendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// GoogleLoginRequest carries the Google ID token posted by the frontend
type GoogleLoginRequest struct {
	Token string `json:"token" binding:"required"`
}

// Register handles local user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "All fields are required!"})
		return
	}

	picture, err := readPicture(c)
	if err != nil {
		respondError(c, domain.ErrMissingPicture)
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), domain.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		Picture:   picture,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"error":   false,
		"message": "User registered successfully!",
		"userId":  user.ID,
	})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "Email and password are required!"})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cookie.Attach(c, result.AccessToken)
	c.JSON(http.StatusAccepted, gin.H{
		"error":   false,
		"message": "Login successful!",
		"user":    userJSON(result.User),
	})
}

// Verify handles OTP email verification; success doubles as the first login
func (h *AuthHandlers) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "OTP and User ID are required."})
		return
	}

	result, err := h.authSvc.VerifyEmail(c.Request.Context(), req.UserID, req.OTP)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cookie.Attach(c, result.AccessToken)
	c.JSON(http.StatusOK, gin.H{
		"error":   false,
		"message": "Email verified and user logged in.",
		"user":    userJSON(result.User),
	})
}

// ResendOTP reissues the verification code for an unverified account
func (h *AuthHandlers) ResendOTP(c *gin.Context) {
	var req ResendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "Email is required!"})
		return
	}

	if err := h.authSvc.ResendOTP(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"error": false, "message": "OTP sent successfully"})
}

// GoogleLogin handles federated login with a Google ID token
func (h *AuthHandlers) GoogleLogin(c *gin.Context) {
	var req GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "Token is required!"})
		return
	}

	result, err := h.authSvc.GoogleLogin(c.Request.Context(), req.Token)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cookie.Attach(c, result.AccessToken)
	c.JSON(http.StatusOK, gin.H{
		"error":   false,
		"message": "Login successful!",
		"user":    userJSON(result.User),
	})
}

// Logout clears the session cookie. Always succeeds, with or without a
// valid session.
func (h *AuthHandlers) Logout(c *gin.Context) {
	h.cookie.Clear(c)
	log.Printf("%s: session cookie cleared", domain.UserLogoutEvent)
	c.JSON(http.StatusOK, gin.H{"error": false, "message": "User has been logged out!"})
}

// Me returns the sanitized current user (requires authentication)
func (h *AuthHandlers) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, domain.ErrUnauthenticated)
		return
	}

	user, err := h.authSvc.GetUserProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"error": false, "user": userJSON(user)})
}

func readPicture(c *gin.Context) ([]byte, error) {
	fileHeader, err := c.FormFile("profilePicture")
	if err != nil {
		return nil, err
	}
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
