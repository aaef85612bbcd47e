package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"evoting-backend/models"
)

// CastVote accepts exactly one vote per registrant. Preconditions run in
// order (voter exists, has not voted, phase is voting) before any mutation.
// The tally increment and the has_voted flip happen in one transaction whose
// conditional update is the guard against concurrent double-submission: the
// loser sees zero rows affected and is told it already voted.
func (h *Handler) CastVote(c *gin.Context) {
	var input struct {
		Email           string  `json:"email" binding:"required,email"`
		CandidateID     uint    `json:"candidateId" binding:"required"`
		TransactionHash *string `json:"transactionHash"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and candidateId are required"})
		return
	}

	var voter models.Voter
	if err := h.DB.Where("email = ?", input.Email).First(&voter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Voter not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if voter.HasVoted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have already voted!"})
		return
	}

	var phase models.ElectionPhase
	if err := h.DB.First(&phase, "id = ?", 1).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if phase.Phase != models.PhaseVoting {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Voting is not currently open"})
		return
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	// Flip has_voted only if it is still false. Zero rows means another
	// request for the same email won the race.
	flip := tx.Model(&models.Voter{}).
		Where("email = ? AND has_voted = ?", input.Email, false).
		Update("has_voted", true)
	if flip.Error != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if flip.RowsAffected == 0 {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have already voted!"})
		return
	}

	bump := tx.Model(&models.Candidate{}).
		Where("id = ?", input.CandidateID).
		Update("votes", gorm.Expr("votes + 1"))
	if bump.Error != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if bump.RowsAffected == 0 {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	// Best-effort audit record. A failure here is logged and must never
	// surface: the vote has already been counted.
	audit := models.VoteTransaction{
		Email:           input.Email,
		CandidateID:     input.CandidateID,
		TransactionHash: input.TransactionHash,
		ReceiptID:       uuid.NewString(),
	}
	if err := h.DB.Create(&audit).Error; err != nil {
		log.Printf("Error recording vote transaction for %s: %v", input.Email, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Vote successfully cast!",
		"transactionHash": input.TransactionHash,
	})
}
