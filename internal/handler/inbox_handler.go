package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/domain"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/middleware"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/service/inbox"
)

type InboxHandler struct {
	inboxService inbox.Service
}

func NewInboxHandler(inboxService inbox.Service) *InboxHandler {
	return &InboxHandler{inboxService: inboxService}
}

// List returns the caller's notification feed, newest first. Reading the
// feed does not change read state; the client PATCHes the unread subset
// separately.
func (h *InboxHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	items, err := h.inboxService.List(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(items)
}

func (h *InboxHandler) MarkRead(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input domain.MarkReadInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := h.inboxService.MarkRead(c.Context(), userID, input.IDs); err != nil {
		if errors.Is(err, inbox.ErrEmptyIDSet) || errors.Is(err, inbox.ErrTooManyIDs) {
			return middleware.BadRequest(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (h *InboxHandler) UnreadCount(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	count, err := h.inboxService.UnreadCount(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"count": count})
}
