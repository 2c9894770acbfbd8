package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	UserID     uuid.UUID `db:"user_id"`
	MovieID    uuid.UUID `db:"movie_id"`
	ReviewText string    `db:"review_text"`
	Rating     *int      `db:"rating"`
}

// ReviewWithAuthor is a review joined with the reviewer's display name.
type ReviewWithAuthor struct {
	Review
	AuthorName string `db:"name"`
}
