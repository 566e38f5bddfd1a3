package handlers

import (
	"errors"

	"githubWebhookMonitor/internal/dashboard"
	"githubWebhookMonitor/internal/events"
	"githubWebhookMonitor/internal/webhook"

	"github.com/gofiber/fiber/v2"
)

type HTTP struct {
	service events.Service
}

func NewHTTP(s events.Service) *HTTP {
	return &HTTP{
		service: s,
	}
}

// PostWebhook receives one GitHub delivery. 200 on normalize+save,
// 400 on unsupported/malformed input, 500 when the store is down.
func (h *HTTP) PostWebhook(c *fiber.Ctx) error {
	eventType := c.Get("X-GitHub-Event")
	deliveryID := c.Get("X-GitHub-Delivery")

	e, err := h.service.Ingest(c.Context(), eventType, deliveryID, c.Body())
	if err != nil {
		switch {
		case errors.Is(err, webhook.ErrUnsupportedEvent),
			errors.Is(err, webhook.ErrMalformedPayload):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status": "error", "message": err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status": "error", "message": "storage unavailable",
			})
		}
	}
	return c.JSON(fiber.Map{"status": "success", "request_id": e.RequestID})
}

// GetEvents serves the polling API: newest-first {message, timestamp}.
func (h *HTTP) GetEvents(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", events.DefaultLimit)

	data, err := h.service.Recent(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "storage unavailable",
		})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}

// GetIndex serves the polling UI page.
func (h *HTTP) GetIndex(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(dashboard.IndexPage())
}

// GetTest is the operational probe: verifies store connectivity and
// reports the stored-event count.
func (h *HTTP) GetTest(c *fiber.Ctx) error {
	count, err := h.service.Health(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "success", "total_events": count})
}
