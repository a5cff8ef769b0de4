package sync

import (
	"verdex/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for sync.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Get("/download", h.HandleDownload)
	group.Post("/upload", h.HandleUpload)
}

// HandleDownload returns the full catalog snapshot for a client.
// @Summary Download catalog snapshot
// @Description Full catalog snapshot: plants in the projection language plus auxiliary collections.
// @Tags sync
// @Produce json
// @Success 200 {object} Snapshot "Catalog Snapshot"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/download [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	snapshot, err := h.service.Pull(c.Context())
	if err != nil {
		l.Error("Pull failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(snapshot)
}

// HandleUpload merges a client payload into the catalog.
// @Summary Upload client changes
// @Description Merge a client payload. Bad items are skipped and reported; only a malformed payload fails the request.
// @Tags sync
// @Accept json
// @Produce json
// @Param payload body PushPayload true "Push payload"
// @Success 200 {object} map[string]interface{} "Merge Report"
// @Failure 400 {object} map[string]interface{} "Malformed Payload"
// @Router /sync/upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	payload := new(PushPayload)
	if err := c.BodyParser(payload); err != nil {
		l.Warn("Rejected malformed push payload", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "malformed payload",
		})
	}

	report, err := h.service.Push(c.Context(), payload)
	if err != nil {
		l.Error("Push failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"report":  report,
	})
}
