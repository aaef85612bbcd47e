package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"evoting-backend/models"
)

// GetCandidates lists every contest entrant with their current tallies.
func (h *Handler) GetCandidates(c *gin.Context) {
	var candidates []models.Candidate
	if err := h.DB.Find(&candidates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// CreateCandidate registers a new candidate with a zero tally. Candidates
// must be of voting age themselves.
func (h *Handler) CreateCandidate(c *gin.Context) {
	var input struct {
		Name          string `json:"name" binding:"required"`
		Age           int    `json:"age"`
		Party         string `json:"party"`
		Qualification string `json:"qualification"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Age < 18 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Candidate must be at least 18 years old"})
		return
	}

	candidate := models.Candidate{
		Name:          input.Name,
		Age:           input.Age,
		Party:         input.Party,
		Qualification: input.Qualification,
		Votes:         0,
	}

	if err := h.DB.Create(&candidate).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Candidate registered successfully"})
}
