package handler

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"topbest/backend/internal/database"
	"topbest/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// region --- DTOs ---

// RecommendInput defines the structure for a recommendation submission.
type RecommendInput struct {
	SteamAppID       uint   `json:"steam_appid" binding:"required" example:"220"`
	Name             string `json:"name" binding:"required" example:"Half-Life 2"`
	HeaderImage      string `json:"header_image" binding:"required" example:"https://cdn.example/220/header.jpg"`
	ShortDescription string `json:"short_description"`
	ShortReview      string `json:"short_review"`
}

// GameResponse defines the structure for a recommended game.
type GameResponse struct {
	ID               uint      `json:"id"`
	SteamAppID       uint      `json:"steam_appid"`
	Name             string    `json:"name"`
	HeaderImage      string    `json:"header_image"`
	ShortDescription string    `json:"short_description"`
	Recommendations  int       `json:"recommendations"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

func newGameResponse(game models.Game) GameResponse {
	return GameResponse{
		ID:               game.ID,
		SteamAppID:       game.SteamAppID,
		Name:             game.Name,
		HeaderImage:      game.HeaderImage,
		ShortDescription: game.ShortDescription,
		Recommendations:  game.Recommendations,
		CreatedAt:        game.CreatedAt,
		UpdatedAt:        game.UpdatedAt,
	}
}

// endregion

// GetGames godoc
// @Summary      List recommended games
// @Description  Returns every recommended game, most recommended first. Ties go to the newer entry.
// @Tags         games
// @Produce      json
// @Success      200 {array} GameResponse
// @Failure      500 {object} ErrorResponse
// @Router       /games [get]
func GetGames(c *gin.Context) {
	var games []models.Game
	if err := database.DB.Order("recommendations DESC, created_at DESC").Find(&games).Error; err != nil {
		log.Printf("Failed to fetch games: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch games"})
		return
	}

	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game))
	}

	c.JSON(http.StatusOK, response)
}

// RecommendGame godoc
// @Summary      Recommend a game
// @Description  Creates the game on first recommendation, otherwise increments its counter. A non-empty short review is stored alongside.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input body RecommendInput true "Recommendation"
// @Success      200 {object} GameResponse "Existing game, counter incremented"
// @Success      201 {object} GameResponse "Game created"
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /games [post]
func RecommendGame(c *gin.Context) {
	var input RecommendInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var game models.Game
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// Single upsert keyed on the steam_appid unique index, so two
		// concurrent recommendations of the same title both land: one row,
		// both increments. An empty description never overwrites a stored one.
		upsert := models.Game{
			SteamAppID:       input.SteamAppID,
			Name:             input.Name,
			HeaderImage:      input.HeaderImage,
			ShortDescription: input.ShortDescription,
			Recommendations:  1,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "steam_app_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"recommendations":   gorm.Expr("recommendations + 1"),
				"short_description": gorm.Expr("COALESCE(NULLIF(?, ''), short_description)", input.ShortDescription),
				"updated_at":        time.Now(),
			}),
		}).Create(&upsert).Error; err != nil {
			return err
		}

		if err := tx.Where("steam_app_id = ?", input.SteamAppID).First(&game).Error; err != nil {
			return err
		}

		if strings.TrimSpace(input.ShortReview) != "" {
			if err := tx.Create(&models.Review{GameID: game.ID, Text: input.ShortReview}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Failed to recommend game (steam_appid=%d): %v", input.SteamAppID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recommend game"})
		return
	}

	// A counter of 1 can only mean the row was created by this call.
	status := http.StatusOK
	if game.Recommendations == 1 {
		status = http.StatusCreated
	}

	c.JSON(status, newGameResponse(game))
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func GetGameByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var game models.Game
	if err := database.DB.First(&game, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(game))
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game and all of its reviews.
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} map[string]string "{"message": "Game deleted"}"
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Failure      500 {object} ErrorResponse
// @Router       /games/{id} [delete]
func DeleteGame(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var game models.Game
	if err := database.DB.First(&game, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	// Removal is permanent: the game row and its reviews are gone for good.
	if err := database.DB.Unscoped().Select("Reviews").Delete(&game).Error; err != nil {
		log.Printf("Failed to delete game %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
}
