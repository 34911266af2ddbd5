package dtos

type SignupRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GenerateOtpRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ValidateOtpRequest struct {
	Email string `json:"email" binding:"required,email"`
	Otp   string `json:"otp" binding:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"newPassword" binding:"required"`
}

type BioUpdateRequest struct {
	UserID uint   `json:"userId" binding:"required"`
	Bio    string `json:"bio"`
}

type DeleteAccountRequest struct {
	UserID uint `json:"userId" binding:"required"`
}
