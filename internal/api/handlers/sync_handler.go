package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/rupakcs/socialsync/internal/models"
	"github.com/rupakcs/socialsync/internal/queue"
	"github.com/rupakcs/socialsync/internal/repository"
	"github.com/rupakcs/socialsync/internal/scheduler"
	"github.com/rupakcs/socialsync/internal/service"
	"github.com/rupakcs/socialsync/internal/transfer"
)

type SyncHandler struct {
	s      service.SyncService
	sch    *scheduler.Scheduler
	ac     repository.ApiConfigRepository
	sl     repository.SyncLogRepository
	q      *queue.Queue
	client *asynq.Client
}

func NewSyncHandler(
	s service.SyncService,
	sch *scheduler.Scheduler,
	ac repository.ApiConfigRepository,
	sl repository.SyncLogRepository,
	q *queue.Queue,
	client *asynq.Client) *SyncHandler {
	return &SyncHandler{
		s:      s,
		sch:    sch,
		ac:     ac,
		sl:     sl,
		q:      q,
		client: client,
	}
}

// ManualSync runs one sync synchronously and returns the uniform result.
func (h *SyncHandler) ManualSync(c *fiber.Ctx) error {
	platform := c.Params("platform")
	if !models.IsSupportedPlatform(platform) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unsupported platform",
		})
	}

	result := h.s.Sync(c.Context(), platform, models.SyncTypeManual)

	return c.JSON(result)
}

// SyncAll fans the work out through the task queue instead of blocking the
// request on five upstream round-trips.
func (h *SyncHandler) SyncAll(c *fiber.Ctx) error {
	queued, err := queue.EnqueueSyncAll(c.Context(), h.client, h.q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to enqueue sync tasks",
		})
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"queued": queued,
	})
}

func (h *SyncHandler) ScheduleSync(c *fiber.Ctx) error {
	platform := c.Params("platform")
	if !models.IsSupportedPlatform(platform) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unsupported platform",
		})
	}

	var req transfer.ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	if err := h.ac.SetAutoSync(c.Context(), platform, true, req.Interval); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to update sync settings",
		})
	}

	if err := h.sch.SchedulePlatformSync(platform, req.Interval); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to schedule sync",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *SyncHandler) StopSync(c *fiber.Ctx) error {
	platform := c.Params("platform")
	if !models.IsSupportedPlatform(platform) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unsupported platform",
		})
	}

	if err := h.ac.SetAutoSync(c.Context(), platform, false, ""); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to update sync settings",
		})
	}

	h.sch.StopPlatformSync(platform)

	return c.SendStatus(fiber.StatusOK)
}

func (h *SyncHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.sch.AutoSyncStatus())
}

func (h *SyncHandler) ListLogs(c *fiber.Ctx) error {
	platform := c.Params("platform")
	if !models.IsSupportedPlatform(platform) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unsupported platform",
		})
	}

	limit, err := strconv.Atoi(c.Query("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}

	logs, err := h.sl.ListByPlatform(c.Context(), platform, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to list sync logs",
		})
	}

	return c.JSON(logs)
}
