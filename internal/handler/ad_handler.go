package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/domain"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/middleware"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/service/ad"
)

type AdHandler struct {
	adService ad.Service
}

func NewAdHandler(adService ad.Service) *AdHandler {
	return &AdHandler{adService: adService}
}

func (h *AdHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input domain.CreateAdInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.adService.Create(c.Context(), userID, input)
	if err != nil {
		if errors.Is(err, ad.ErrEmptyTitle) || errors.Is(err, ad.ErrEmptyLocation) || errors.Is(err, ad.ErrBadCategory) {
			return middleware.BadRequest(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *AdHandler) List(c *fiber.Ctx) error {
	filter := domain.AdFilter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Location: c.Query("location"),
	}

	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return middleware.BadRequest("Invalid min_price")
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return middleware.BadRequest("Invalid max_price")
		}
		filter.MaxPrice = &v
	}

	params := getPaginationParams(c)

	result, err := h.adService.List(c.Context(), filter, params)
	if err != nil {
		if errors.Is(err, ad.ErrPriceRange) {
			return middleware.BadRequest(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *AdHandler) Get(c *fiber.Ctx) error {
	adID, err := uuid.Parse(c.Params("adId"))
	if err != nil {
		return middleware.BadRequest("Invalid ad ID")
	}

	found, err := h.adService.GetByID(c.Context(), adID)
	if err != nil {
		if errors.Is(err, ad.ErrAdNotFound) {
			return middleware.NotFound("Ad not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *AdHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	adID, err := uuid.Parse(c.Params("adId"))
	if err != nil {
		return middleware.BadRequest("Invalid ad ID")
	}

	var input domain.UpdateAdInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.adService.Update(c.Context(), userID, adID, input)
	if err != nil {
		switch {
		case errors.Is(err, ad.ErrAdNotFound):
			return middleware.NotFound("Ad not found")
		case errors.Is(err, ad.ErrNotOwner):
			return middleware.Forbidden("You can only edit your own ads")
		case errors.Is(err, ad.ErrBadCategory):
			return middleware.BadRequest(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *AdHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	adID, err := uuid.Parse(c.Params("adId"))
	if err != nil {
		return middleware.BadRequest("Invalid ad ID")
	}

	user := middleware.GetCurrentUser(c)
	isAdmin := user != nil && user.HasRole("admin")

	if err := h.adService.Delete(c.Context(), userID, adID, isAdmin); err != nil {
		switch {
		case errors.Is(err, ad.ErrAdNotFound):
			return middleware.NotFound("Ad not found")
		case errors.Is(err, ad.ErrNotOwner):
			return middleware.Forbidden("You can only delete your own ads")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *AdHandler) ListMine(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	params := getPaginationParams(c)

	result, err := h.adService.ListByOwner(c.Context(), userID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
