package request

type CreateReviewRequest struct {
	UserID     string `json:"user_id" validate:"required,uuid_any"`
	MovieID    string `json:"movie_id" validate:"required,uuid_any"`
	ReviewText string `json:"review_text" validate:"required"`
	Rating     *int   `json:"rating,omitempty"`
}
