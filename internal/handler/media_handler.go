package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/middleware"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/service/media"
)

type MediaHandler struct {
	mediaService media.Service
}

func NewMediaHandler(mediaService media.Service) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("Missing file upload")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Could not read file upload")
	}
	defer file.Close()

	mimeType := fileHeader.Header.Get("Content-Type")

	upload, err := h.mediaService.Upload(c.Context(), userID, fileHeader.Filename, fileHeader.Size, mimeType, file)
	if err != nil {
		switch {
		case errors.Is(err, media.ErrUnsupportedType), errors.Is(err, media.ErrFileTooLarge):
			return middleware.BadRequest(err.Error())
		case errors.Is(err, media.ErrNotConfigured):
			return middleware.NewError(fiber.StatusServiceUnavailable, "Media storage unavailable")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(upload)
}

func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	if _, err := middleware.GetUserID(c); err != nil {
		return err
	}

	var input struct {
		StoragePath string `json:"storage_path"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.StoragePath == "" {
		return middleware.BadRequest("storage_path is required")
	}

	if err := h.mediaService.Delete(c.Context(), input.StoragePath); err != nil {
		if errors.Is(err, media.ErrNotConfigured) {
			return middleware.NewError(fiber.StatusServiceUnavailable, "Media storage unavailable")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
