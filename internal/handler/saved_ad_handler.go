package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/middleware"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/service/saved"
)

type SavedAdHandler struct {
	savedService saved.Service
}

func NewSavedAdHandler(savedService saved.Service) *SavedAdHandler {
	return &SavedAdHandler{savedService: savedService}
}

func (h *SavedAdHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	params := getPaginationParams(c)

	result, err := h.savedService.List(c.Context(), userID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *SavedAdHandler) Save(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	adID, err := uuid.Parse(c.Params("adId"))
	if err != nil {
		return middleware.BadRequest("Invalid ad ID")
	}

	if err := h.savedService.Save(c.Context(), userID, adID); err != nil {
		if errors.Is(err, saved.ErrAdNotFound) {
			return middleware.NotFound("Ad not found")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"saved": true})
}

func (h *SavedAdHandler) Unsave(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	adID, err := uuid.Parse(c.Params("adId"))
	if err != nil {
		return middleware.BadRequest("Invalid ad ID")
	}

	if err := h.savedService.Unsave(c.Context(), userID, adID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *SavedAdHandler) IsSaved(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	adID, err := uuid.Parse(c.Params("adId"))
	if err != nil {
		return middleware.BadRequest("Invalid ad ID")
	}

	isSaved, err := h.savedService.IsSaved(c.Context(), userID, adID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"saved": isSaved})
}
