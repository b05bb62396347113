package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"topbest/backend/internal/steam"

	"github.com/gin-gonic/gin"
)

// SearchSteamApps godoc
// @Summary      Search the Steam catalog by name
// @Description  Case-insensitive substring search over the cached Steam app list. Returns at most 20 matches.
// @Tags         steam
// @Produce      json
// @Param        q query string true "Search term"
// @Success      200 {array} steam.AppEntry
// @Failure      400 {object} ErrorResponse "Missing search term"
// @Router       /steam/search [get]
func SearchSteamApps(c *gin.Context) {
	term := c.Query("q")

	results, err := steam.Apps.Search(c.Request.Context(), term)
	if err != nil {
		if errors.Is(err, steam.ErrEmptyTerm) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a search term"})
			return
		}
		log.Printf("Failed to search Steam apps for %q: %v", term, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search for games"})
		return
	}
	if results == nil {
		results = []steam.AppEntry{}
	}

	c.JSON(http.StatusOK, results)
}

// GetSteamAppDetails godoc
// @Summary      Get Steam store details for an app
// @Description  Proxies the Steam appdetails endpoint for a single app id.
// @Tags         steam
// @Produce      json
// @Param        appid path int true "Steam App ID"
// @Success      200 {object} steam.AppDetails
// @Failure      400 {object} ErrorResponse "Invalid app id"
// @Failure      404 {object} ErrorResponse "No details for this app"
// @Failure      500 {object} ErrorResponse
// @Router       /steam/apps/{appid} [get]
func GetSteamAppDetails(c *gin.Context) {
	appID, err := strconv.ParseUint(c.Param("appid"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid app id"})
		return
	}

	details, err := steam.DefaultClient.GetAppDetails(c.Request.Context(), uint(appID))
	if err != nil {
		if errors.Is(err, steam.ErrAppNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Could not retrieve game details"})
			return
		}
		log.Printf("Failed to fetch Steam details for appid %d: %v", appID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch game details"})
		return
	}

	c.JSON(http.StatusOK, details)
}
