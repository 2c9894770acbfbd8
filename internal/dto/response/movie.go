package response

import (
	"time"

	"moviehub/internal/data/entity"
)

type MovieResponse struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	Name        string    `json:"name"`
	TrailerLink *string   `json:"trailer_link"`
	SongLink    *string   `json:"song_link"`
	OTTLink     *string   `json:"ott_link"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID.String(),
		CategoryID:  movie.CategoryID.String(),
		Name:        movie.Name,
		TrailerLink: movie.TrailerLink,
		SongLink:    movie.SongLink,
		OTTLink:     movie.OTTLink,
		Description: movie.Description,
		CreatedAt:   movie.CreatedAt,
	}
}
