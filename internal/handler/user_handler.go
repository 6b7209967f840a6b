package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/domain"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/middleware"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/service/ad"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/service/user"
)

type UserHandler struct {
	userService user.Service
	adService   ad.Service
}

func NewUserHandler(userService user.Service, adService ad.Service) *UserHandler {
	return &UserHandler{userService: userService, adService: adService}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.userService.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return middleware.NotFound("User not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input domain.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.userService.UpdateProfile(c.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			return middleware.NotFound("User not found")
		case errors.Is(err, user.ErrUsernameExists):
			return middleware.Conflict("Username already taken")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

// GetPublicProfile serves another user's profile page: public fields plus
// their active listings.
func (h *UserHandler) GetPublicProfile(c *fiber.Ctx) error {
	profileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	profile, err := h.userService.GetPublicProfile(c.Context(), profileID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return middleware.NotFound("User not found")
		}
		return err
	}

	params := getPaginationParams(c)
	ads, err := h.adService.ListByOwner(c.Context(), profileID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"profile": profile,
		"ads":     ads,
	})
}

func (h *UserHandler) ListAll(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.userService.ListAll(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *UserHandler) SetExpert(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	var input struct {
		IsExpert bool `json:"is_expert"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := h.userService.SetExpert(c.Context(), targetID, input.IsExpert); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return middleware.NotFound("User not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"is_expert": input.IsExpert})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	if err := h.userService.Delete(c.Context(), targetID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return middleware.NotFound("User not found")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
