package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"evoting-backend/models"
)

// GetElectionPhase returns the current phase, defaulting to registration
// when the singleton row has not been written yet.
func (h *Handler) GetElectionPhase(c *gin.Context) {
	var phase models.ElectionPhase
	if err := h.DB.First(&phase, "id = ?", 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"phase": models.PhaseRegistration})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"phase": phase.Phase})
}

// SetElectionPhase updates the singleton phase row. Only the three
// enumerated values are accepted; no ordering between phases is enforced,
// so an admin may move results back to registration.
func (h *Handler) SetElectionPhase(c *gin.Context) {
	var input struct {
		Phase string `json:"phase" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || !models.ValidPhase(input.Phase) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phase"})
		return
	}

	result := h.DB.Model(&models.ElectionPhase{}).Where("id = ?", 1).Update("phase", input.Phase)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		if err := h.DB.Create(&models.ElectionPhase{ID: 1, Phase: input.Phase}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Election phase updated successfully"})
}

// ElectionResults reports the winner once the phase is results. The
// tie-break between equal tallies is whichever row the store returns first.
func (h *Handler) ElectionResults(c *gin.Context) {
	var phase models.ElectionPhase
	err := h.DB.First(&phase, "id = ?", 1).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error."})
		return
	}
	if phase.Phase != models.PhaseResults {
		c.JSON(http.StatusOK, gin.H{"isElectionOver": false})
		return
	}

	var winner models.Candidate
	if err := h.DB.Order("votes DESC").First(&winner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"isElectionOver": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isElectionOver": true,
		"winner": gin.H{
			"name":  winner.Name,
			"votes": winner.Votes,
		},
	})
}
