package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"topbest/backend/internal/database"
	"topbest/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetGameReviewsOrdering(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	game := models.Game{SteamAppID: 220, Name: "Half-Life 2", HeaderImage: "h.jpg", Recommendations: 1}
	require.NoError(t, database.DB.Create(&game).Error)
	other := models.Game{SteamAppID: 620, Name: "Portal 2", HeaderImage: "p.jpg", Recommendations: 1}
	require.NoError(t, database.DB.Create(&other).Error)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seed := []models.Review{
		{GameID: game.ID, Text: "oldest", Model: gorm.Model{CreatedAt: base}},
		{GameID: game.ID, Text: "newest", Model: gorm.Model{CreatedAt: base.Add(2 * time.Hour)}},
		{GameID: game.ID, Text: "middle", Model: gorm.Model{CreatedAt: base.Add(time.Hour)}},
		{GameID: other.ID, Text: "other game", Model: gorm.Model{CreatedAt: base}},
	}
	for i := range seed {
		require.NoError(t, database.DB.Create(&seed[i]).Error)
	}

	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/games/%d/reviews", game.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reviews []ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	require.Len(t, reviews, 3)
	assert.Equal(t, "newest", reviews[0].Text)
	assert.Equal(t, "middle", reviews[1].Text)
	assert.Equal(t, "oldest", reviews[2].Text)
}

func TestGetGameReviewsEmpty(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/v1/games/9999/reviews", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetGameReviewsInvalidID(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/api/v1/games/not-a-number/reviews", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
