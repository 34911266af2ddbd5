package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobjournal/internal/auth"
	"github.com/justsurfingit/jobjournal/internal/dtos"
	"github.com/justsurfingit/jobjournal/internal/services"
)

type UserHandler struct {
	UserService *services.UserService
	OtpService  *services.OtpService
	Mailer      services.Mailer
}

func NewUserHandler(u *services.UserService, o *services.OtpService, m services.Mailer) *UserHandler {
	return &UserHandler{
		UserService: u,
		OtpService:  o,
		Mailer:      m,
	}
}

// Signup is POST /users/signup.
func (h *UserHandler) Signup(c *gin.Context) {
	var req dtos.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	user, token, err := h.UserService.Signup(req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
		"token":   token,
	})

	services.Dispatch(h.Mailer, user.Email, "Welcome to JobJournal",
		fmt.Sprintf("Hi %s, your account is ready. Start tracking your applications!", user.FirstName))
}

// Login is POST /users/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	user, token, err := h.UserService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": "User not found"})
		case errors.Is(err, services.ErrInvalidPassword):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User logged in successfully",
		"user":    user,
		"token":   token,
	})
}

// GenerateOtp is POST /users/generate-otp. The response never carries the
// code and never reveals whether the email belongs to an account.
func (h *UserHandler) GenerateOtp(c *gin.Context) {
	var req dtos.GenerateOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	code, err := h.OtpService.Generate(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send OTP"})
		return
	}

	services.Dispatch(h.Mailer, req.Email, "Your password reset code",
		fmt.Sprintf("Your one-time code is %s. It expires in 5 minutes.", code))

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully"})
}

// ValidateOtp is POST /users/validate-otp.
func (h *UserHandler) ValidateOtp(c *gin.Context) {
	var req dtos.ValidateOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	if err := h.OtpService.Validate(req.Email, req.Otp); err != nil {
		switch {
		case errors.Is(err, services.ErrNoActiveOtp):
			c.JSON(http.StatusBadRequest, gin.H{"message": "No OTP found for this email"})
		case errors.Is(err, services.ErrOtpExpired):
			c.JSON(http.StatusBadRequest, gin.H{"message": "OTP expired"})
		case errors.Is(err, services.ErrOtpMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid OTP"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "OTP validation failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP validated successfully"})
}

// ResetPassword is PATCH /users/reset-password.
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req dtos.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}

	if err := h.UserService.ResetPassword(req.Email, req.NewPassword); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Password reset failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}

// UpdateBio is PUT /users/bio (auth).
func (h *UserHandler) UpdateBio(c *gin.Context) {
	var req dtos.BioUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}
	if auth.CallerID(c) != req.UserID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden: You can only update your own bio."})
		return
	}

	user, err := h.UserService.UpdateBio(req.UserID, req.Bio)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bio updated successfully", "user": user})
}

// GetUser is GET /users?email=... (auth).
func (h *UserHandler) GetUser(c *gin.Context) {
	email := c.Query("email")
	user, err := h.UserService.GetByEmail(email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetUserByID is GET /users/:id — public, so only a trimmed projection
// goes out.
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	user, err := h.UserService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":        user.ID,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"bio":       user.Bio,
	}})
}

// DeleteAccount is DELETE /users (auth). Cascades to the caller's jobs
// and reviews.
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	var req dtos.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}
	if auth.CallerID(c) != req.UserID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden: You can only delete your own account."})
		return
	}

	if err := h.UserService.DeleteAccount(req.UserID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User and associated data deleted successfully"})
}
