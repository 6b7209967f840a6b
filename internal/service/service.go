package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/config"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/repository"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/service/ad"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/service/auth"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/service/comment"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/service/email"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/service/inbox"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/service/media"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/service/saved"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/service/user"
)

type Services struct {
	Auth    auth.Service
	User    user.Service
	Ad      ad.Service
	Comment comment.Service
	Inbox   inbox.Service
	Saved   saved.Service
	Media   media.Service
	Email   email.Service
}

func NewServices(repos *repository.Repositories, redisClient *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)

	return &Services{
		Auth:    auth.NewService(repos.User, repos.Session, emailService, cfg),
		User:    user.NewService(repos.User),
		Ad:      ad.NewService(repos.Ad, redisClient),
		Comment: comment.NewService(repos.Comment, repos.Ad),
		Inbox:   inbox.NewService(repos.Comment, repos.Ad, redisClient),
		Saved:   saved.NewService(repos.SavedAd, repos.Ad),
		Media:   media.NewService(minioClient, cfg),
		Email:   emailService,
	}
}
