package backup

import (
	"verdex/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for backup.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the backup routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/backup")
	group.Post("/run", h.HandleRun)
}

// HandleRun triggers a backup run.
// @Summary Run a backup
// @Description Upload a timestamped catalog snapshot and the media tree to object storage.
// @Tags backup
// @Produce json
// @Success 200 {object} map[string]interface{} "Backup Result"
// @Failure 500 {object} map[string]interface{} "Internal Server Error"
// @Router /backup/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.Run(c.Context())
	if err != nil {
		l.Error("Backup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"result":  result,
	})
}
