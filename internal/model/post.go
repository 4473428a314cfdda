package model

import "time"

// Post is a top-level forum thread. Posts are immutable after creation;
// there is no edit or delete route.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	AuthorID  uint      `json:"author_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	// Relations
	Author  *User   `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Replies []Reply `json:"replies,omitempty" gorm:"foreignKey:PostID"`
}
