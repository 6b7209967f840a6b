package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a projection of a comment relevant to the viewing user:
// either a reply to one of their comments or a top-level comment on one of
// their ads. It is derived at query time and never persisted; the only stored
// state it carries is the comment's is_read flag.
type Notification struct {
	ID            uuid.UUID        `json:"id"`
	Kind          NotificationKind `json:"kind"`
	Content       string           `json:"content"`
	IsRead        bool             `json:"is_read"`
	CreatedAt     time.Time        `json:"created_at"`
	AdID          uuid.UUID        `json:"ad_id"`
	AdTitle       string           `json:"ad_title"`
	Author        CommentUser      `json:"author_profile"`
	AddressedToID uuid.UUID        `json:"addressed_to_user_id"`
}

type NotificationKind string

const (
	NotifReply     NotificationKind = "reply"
	NotifAdComment NotificationKind = "ad_comment"
)

type MarkReadInput struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}
