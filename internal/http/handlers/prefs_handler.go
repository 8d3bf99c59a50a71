// Preference HTTP handlers.
//
// This file exposes REST endpoints for display preferences:
//   - GET /prefs/theme  (read the stored theme, defaulting to light)
//   - PUT /prefs/theme  (store the theme)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lawqa/go-lawqa-backend/internal/services"
)

// ThemeResponse is the JSON envelope for the stored theme preference.
type ThemeResponse struct {
	Theme string `json:"theme" example:"dark"`
}

// PutThemeRequest is the JSON payload for storing the theme preference.
type PutThemeRequest struct {
	// Theme must be "light" or "dark".
	Theme string `json:"theme" binding:"required" example:"dark"`
}

// GetTheme godoc
// @ID          getTheme
// @Summary     Read the theme preference
// @Description Returns the stored theme, defaulting to light when unset.
// @Tags        Preferences
// @Produce     json
//
// @Success     200  {object} handlers.ThemeResponse
// @Router      /prefs/theme [get]
func (h *Handlers) GetTheme(c *gin.Context) {
	ok(c, http.StatusOK, ThemeResponse{Theme: h.prefsSvc.Theme(c.Request.Context())})
}

// PutTheme godoc
// @ID          putTheme
// @Summary     Store the theme preference
// @Description Persists the theme so it survives restarts. Only light and dark are accepted.
// @Tags        Preferences
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.PutThemeRequest  true  "Theme payload"
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /prefs/theme [put]
func (h *Handlers) PutTheme(c *gin.Context) {
	var req PutThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "theme required")
		return
	}
	if err := h.prefsSvc.SetTheme(c.Request.Context(), req.Theme); err != nil {
		switch err {
		case services.ErrInvalidTheme:
			fail(c, http.StatusBadRequest, ErrCodeInvalidTheme, "theme must be light or dark")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	noContent(c)
}
