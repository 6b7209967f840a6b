package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/domain"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/middleware"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/service/comment"
)

type CommentHandler struct {
	commentService comment.Service
}

func NewCommentHandler(commentService comment.Service) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	adID, err := uuid.Parse(c.Params("adId"))
	if err != nil {
		return middleware.BadRequest("Invalid ad ID")
	}

	var input domain.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.commentService.Create(c.Context(), adID, userID, input)
	if err != nil {
		switch {
		case errors.Is(err, comment.ErrAdNotFound):
			return middleware.NotFound("Ad not found")
		case errors.Is(err, comment.ErrParentNotFound):
			return middleware.NotFound("Parent comment not found")
		case errors.Is(err, comment.ErrParentMismatch), errors.Is(err, comment.ErrEmptyContent):
			return middleware.BadRequest(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CommentHandler) List(c *fiber.Ctx) error {
	adID, err := uuid.Parse(c.Params("adId"))
	if err != nil {
		return middleware.BadRequest("Invalid ad ID")
	}

	params := getPaginationParams(c)

	result, err := h.commentService.ListByAd(c.Context(), adID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	var input domain.UpdateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.commentService.Update(c.Context(), userID, commentID, input)
	if err != nil {
		switch {
		case errors.Is(err, comment.ErrCommentNotFound):
			return middleware.NotFound("Comment not found")
		case errors.Is(err, comment.ErrNotAuthor):
			return middleware.Forbidden("You can only edit your own comments")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	if err := h.commentService.Delete(c.Context(), userID, commentID); err != nil {
		switch {
		case errors.Is(err, comment.ErrCommentNotFound):
			return middleware.NotFound("Comment not found")
		case errors.Is(err, comment.ErrNotAuthor):
			return middleware.Forbidden("You can only delete your own comments")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
