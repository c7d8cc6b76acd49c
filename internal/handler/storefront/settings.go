package storefront

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wicaksana/atelier/internal/domain"
	"github.com/wicaksana/atelier/internal/service"
)

// SettingsHandler serves the site appearance settings and their live stream.
type SettingsHandler struct {
	settings service.SettingsService
}

func NewSettingsHandler(settings service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func settingsJSON(s domain.SiteSettings) echo.Map {
	return echo.Map{
		"theme":             s.Theme,
		"particles_enabled": s.ParticlesEnabled,
		"updated_at":        s.UpdatedAt,
	}
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.settings.GetSettings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settingsJSON(settings))
}

// Stream handles GET /api/settings/stream as server-sent events. The client
// gets the current settings immediately, then one event per admin change
// until it disconnects.
func (h *SettingsHandler) Stream(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)

	current, err := h.settings.GetSettings(c.Request().Context())
	if err != nil {
		return err
	}
	if err := writeSSE(res, current); err != nil {
		return nil
	}

	updates, cancel := h.settings.Subscribe()
	defer cancel()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case settings, ok := <-updates:
			if !ok {
				return nil
			}
			if err := writeSSE(res, settings); err != nil {
				return nil
			}
		}
	}
}

func writeSSE(res *echo.Response, settings domain.SiteSettings) error {
	payload, err := json.Marshal(map[string]any{
		"theme":             settings.Theme,
		"particles_enabled": settings.ParticlesEnabled,
		"updated_at":        settings.UpdatedAt,
	})
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(res, "event: settings\ndata: %s\n\n", payload); err != nil {
		return err
	}
	res.Flush()
	return nil
}
