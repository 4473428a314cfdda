package model

import "time"

// Reply belongs to a post and keeps chronological conversation order.
// Replies are written by authenticated users or synthesized by the
// antiphish bot account.
type Reply struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	AuthorID  uint      `json:"author_id" gorm:"index;not null"`
	PostID    uint      `json:"post_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	// Relations
	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}
