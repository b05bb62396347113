package handler

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"topbest/backend/internal/database"
	"topbest/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// ReviewResponse defines the structure for a single review.
type ReviewResponse struct {
	ID        uint      `json:"id"`
	GameID    uint      `json:"game_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func newReviewResponse(review models.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		GameID:    review.GameID,
		Text:      review.Text,
		CreatedAt: review.CreatedAt,
	}
}

// GetGameReviews godoc
// @Summary      List reviews for a game
// @Description  Returns the game's reviews, newest first.
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {array} ReviewResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /games/{id}/reviews [get]
func GetGameReviews(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var reviews []models.Review
	if err := database.DB.Where("game_id = ?", id).Order("created_at DESC").Find(&reviews).Error; err != nil {
		log.Printf("Failed to fetch reviews for game %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	response := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		response = append(response, newReviewResponse(review))
	}

	c.JSON(http.StatusOK, response)
}
