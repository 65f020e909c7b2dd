package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mental-Health-Matters/Psych/domain"
)

// UserHandlers handles profile and questionnaire HTTP requests
type UserHandlers struct {
	profileSvc domain.ProfileService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(profileSvc domain.ProfileService) *UserHandlers {
	return &UserHandlers{profileSvc: profileSvc}
}

// ProfilePayload carries the mutable profile fields
type ProfilePayload struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	ProfilePicture string `json:"profilePicture"`
}

// UpdateProfileRequest represents a profile update request; both parts are
// required and the questionnaire replaces the stored set wholesale.
type UpdateProfileRequest struct {
	Profile       *ProfilePayload              `json:"profile" binding:"required"`
	Questionnaire []domain.QuestionnaireAnswer `json:"questionnaire" binding:"required"`
}

// GetDetails returns a user together with their questionnaire
func (h *UserHandlers) GetDetails(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "User ID is required"})
		return
	}

	user, questionnaire, err := h.profileSvc.GetDetails(c.Request.Context(), userID)
	if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrQuestionnaireNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": true, "message": "User not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error":   false,
		"message": "User details fetched successfully!",
		"data": gin.H{
			"user":          userJSON(user),
			"questionnaire": questionnaire,
		},
	})
}

// UpdateProfile updates profile fields and replaces the questionnaire
func (h *UserHandlers) UpdateProfile(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "User ID is required"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "Profile and questionnaire data are required"})
		return
	}

	user, questionnaire, err := h.profileSvc.UpdateProfile(c.Request.Context(), userID, domain.ProfileUpdate{
		FirstName:      req.Profile.FirstName,
		LastName:       req.Profile.LastName,
		ProfilePicture: req.Profile.ProfilePicture,
	}, req.Questionnaire)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error":   false,
		"message": "Updated successfully",
		"data": gin.H{
			"user":          userJSON(user),
			"questionnaire": questionnaire,
		},
	})
}

// Delete removes the requester's own account
func (h *UserHandlers) Delete(c *gin.Context) {
	targetID, ok := pathUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "User ID is required"})
		return
	}

	requesterID, ok := currentUserID(c)
	if !ok {
		respondError(c, domain.ErrUnauthenticated)
		return
	}

	if err := h.profileSvc.DeleteAccount(c.Request.Context(), requesterID, targetID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"error": false, "message": "Account successfully deleted!"})
}

func pathUserID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
