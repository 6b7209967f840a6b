package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User    UserRepository
	Session SessionRepository
	Ad      AdRepository
	Comment CommentRepository
	SavedAd SavedAdRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		Session: NewSessionRepository(db),
		Ad:      NewAdRepository(db),
		Comment: NewCommentRepository(db),
		SavedAd: NewSavedAdRepository(db),
	}
}
