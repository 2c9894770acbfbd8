package repository

import (
	"context"
	"fmt"

	"moviehub/internal/data/entity"
	"moviehub/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*entity.Movie, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, category_id, name, trailer_link, song_link,
		                    ott_link, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.CategoryID,
		movie.Name,
		movie.TrailerLink,
		movie.SongLink,
		movie.OTTLink,
		movie.Description,
		movie.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("name", movie.Name),
			zap.String("category_id", movie.CategoryID.String()),
		)
		return fmt.Errorf("create movie %s: %w", movie.Name, err)
	}

	return nil
}

func (r *movieRepository) FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*entity.Movie, error) {
	query := `
		SELECT id, category_id, name, trailer_link, song_link,
		       ott_link, description, created_at
		FROM movies
		WHERE category_id = $1
	`

	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		r.log.Error("Failed to find movies by category",
			zap.Error(err),
			zap.String("category_id", categoryID.String()),
		)
		return nil, fmt.Errorf("find movies by category %s: %w", categoryID.String(), err)
	}
	defer rows.Close()

	movies := make([]*entity.Movie, 0)
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.CategoryID,
			&movie.Name,
			&movie.TrailerLink,
			&movie.SongLink,
			&movie.OTTLink,
			&movie.Description,
			&movie.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies rows: %w", err)
	}

	return movies, nil
}
