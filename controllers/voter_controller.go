package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"evoting-backend/models"
)

func isNo(flag string) bool {
	return strings.ToLower(strings.TrimSpace(flag)) == "no"
}

// VoterStatus classifies a registrant from the three stored flags, checked
// in fixed priority order: a voter who has voted is always already_voted,
// whatever the other flags say.
func (h *Handler) VoterStatus(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required."})
		return
	}

	var voter models.Voter
	if err := h.DB.Where("email = ?", email).First(&voter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Voter not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error."})
		return
	}

	status := "eligible"
	switch {
	case voter.HasVoted:
		status = "already_voted"
	case isNo(voter.IsRegistered):
		status = "not_registered"
	case isNo(voter.AdminApproved):
		status = "not_approved"
	}

	c.JSON(http.StatusOK, gin.H{"status": status, "hasVoted": voter.HasVoted})
}

// CheckRegistration reports whether the email has completed OTP-verified
// registration. An unknown email simply reads as "no".
func (h *Handler) CheckRegistration(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	var voter models.Voter
	err := h.DB.Where("email = ?", input.Email).First(&voter).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err == nil && !isNo(voter.IsRegistered) {
		c.JSON(http.StatusOK, gin.H{"is_registered": "yes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_registered": "no"})
}

// UpdateRegistration completes registration after OTP verification: flips
// is_registered and attaches the wallet address and aadhar number.
func (h *Handler) UpdateRegistration(c *gin.Context) {
	var input struct {
		Email          string `json:"email" binding:"required,email"`
		AccountAddress string `json:"accountAddress" binding:"required"`
		AadharNumber   string `json:"aadharNumber" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email, account address, and Aadhar number are required"})
		return
	}

	err := h.DB.Model(&models.Voter{}).Where("email = ?", input.Email).Updates(map[string]interface{}{
		"is_registered":   "yes",
		"account_address": input.AccountAddress,
		"aadhar_number":   input.AadharNumber,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registration updated successfully"})
}

// RegisteredUsers lists the wallet addresses of everyone who completed
// registration; the admin page approves voters from this list.
func (h *Handler) RegisteredUsers(c *gin.Context) {
	var users []struct {
		AccountAddress *string `json:"account_address"`
		IsRegistered   string  `json:"is_registered"`
	}

	err := h.DB.Model(&models.Voter{}).
		Select("account_address", "is_registered").
		Where("is_registered = ?", "yes").
		Find(&users).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// RegisterAdmin flips admin_approved for the registrant owning the wallet
// address. Approval is keyed on the address, not the email.
func (h *Handler) RegisterAdmin(c *gin.Context) {
	var input struct {
		AccountAddress string `json:"accountAddress" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Account address is required"})
		return
	}

	result := h.DB.Model(&models.Voter{}).
		Where("account_address = ?", input.AccountAddress).
		Update("admin_approved", "yes")
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found or already approved"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Admin approved successfully!"})
}

// VerifyAadhar looks the number up in the identity reference table and
// reports the age-based eligibility. The table is never written here.
func (h *Handler) VerifyAadhar(c *gin.Context) {
	var input struct {
		AadharNumber string `json:"aadharNumber" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aadhar number is required"})
		return
	}

	var record models.AadharRecord
	err := h.DB.Where("aadhar_number = ?", input.AadharNumber).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"exists": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"exists":     true,
		"age":        record.Age,
		"isEligible": record.Age >= 18,
	})
}
