package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/domain"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/service"
)

type Handlers struct {
	Auth    *AuthHandler
	User    *UserHandler
	Ad      *AdHandler
	Comment *CommentHandler
	Inbox   *InboxHandler
	Saved   *SavedAdHandler
	Media   *MediaHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:    NewAuthHandler(services.Auth),
		User:    NewUserHandler(services.User, services.Ad),
		Ad:      NewAdHandler(services.Ad),
		Comment: NewCommentHandler(services.Comment),
		Inbox:   NewInboxHandler(services.Inbox),
		Saved:   NewSavedAdHandler(services.Saved),
		Media:   NewMediaHandler(services.Media),
	}
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", 20); pageSize > 0 {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}

// getLocale resolves the response language: explicit ?locale= wins, then the
// first Accept-Language tag, then English.
func getLocale(c *fiber.Ctx) string {
	if locale := c.Query("locale"); locale != "" {
		return locale
	}

	header := c.Get("Accept-Language")
	if header != "" {
		tag := strings.SplitN(header, ",", 2)[0]
		tag = strings.SplitN(tag, "-", 2)[0]
		tag = strings.SplitN(tag, ";", 2)[0]
		if tag != "" {
			return strings.ToLower(strings.TrimSpace(tag))
		}
	}

	return "en"
}
