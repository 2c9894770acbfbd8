package response

import (
	"time"

	"moviehub/internal/data/entity"
)

type ReviewResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	ReviewText string    `json:"review_text"`
	Rating     *int      `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
}

// Helper converter
func ReviewToResponse(review *entity.ReviewWithAuthor) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID.String(),
		UserID:     review.UserID.String(),
		Name:       review.AuthorName,
		ReviewText: review.ReviewText,
		Rating:     review.Rating,
		CreatedAt:  review.CreatedAt,
	}
}
