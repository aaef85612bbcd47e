package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"evoting-backend/otp"
)

// SendOTP issues a fresh code for the email (replacing any pending one) and
// dispatches it by mail. A dispatch failure is reported to the caller but
// the code stays stored, matching the legacy behavior the frontend retries
// against. The code is echoed in the response for debugging.
func (h *Handler) SendOTP(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	code, err := h.OTP.Issue(input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate OTP"})
		return
	}

	if err := h.Mail.Send(input.Email, "Your OTP for Registration", "Your OTP is: "+code); err != nil {
		log.Printf("Error sending OTP email to %s: %v", input.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error sending OTP email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully", "otp": code})
}

// VerifyOTP consumes the pending code on an exact match. Responses are plain
// text, which is what the registration page expects.
func (h *Handler) VerifyOTP(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.OTP == "" {
		c.String(http.StatusBadRequest, "Missing email or OTP")
		return
	}

	switch err := h.OTP.Verify(input.Email, input.OTP); {
	case errors.Is(err, otp.ErrNotFound):
		c.String(http.StatusBadRequest, "OTP not sent or expired")
	case errors.Is(err, otp.ErrMismatch):
		c.String(http.StatusBadRequest, "Invalid OTP")
	case err != nil:
		c.String(http.StatusInternalServerError, "Failed to verify OTP")
	default:
		c.String(http.StatusOK, "OTP verified successfully")
	}
}
