package usecase

import (
	"context"
	"errors"
	"testing"

	"moviehub/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory_ThenListed(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo, testLogger)

	require.NoError(t, svc.CreateCategory(context.Background(), &request.CategoryRequest{Name: "Thriller"}))

	categories, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Thriller", categories[0].Name)
	assert.NotEmpty(t, categories[0].ID)
}

func TestCreateCategory_EmptyName(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo, testLogger)

	err := svc.CreateCategory(context.Background(), &request.CategoryRequest{})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, repo.categories)
}

func TestCreateCategory_AllowsDuplicates(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo, testLogger)

	require.NoError(t, svc.CreateCategory(context.Background(), &request.CategoryRequest{Name: "Drama"}))
	require.NoError(t, svc.CreateCategory(context.Background(), &request.CategoryRequest{Name: "Drama"}))

	assert.Len(t, repo.categories, 2)
}

func TestGetCategories_EmptyIsNotNil(t *testing.T) {
	svc := NewCategoryService(&fakeCategoryRepo{}, testLogger)

	categories, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestGetCategories_RepositoryError(t *testing.T) {
	svc := NewCategoryService(&fakeCategoryRepo{err: errors.New("timeout")}, testLogger)

	_, err := svc.GetCategories(context.Background())
	assert.ErrorContains(t, err, "timeout")
}

func TestCreateMovie_ThenListedByCategory(t *testing.T) {
	repo := &fakeMovieRepo{}
	svc := NewMovieService(repo, testLogger)
	categoryID := uuid.New()

	err := svc.CreateMovie(context.Background(), &request.MovieRequest{
		CategoryID: categoryID.String(),
		Name:       "Kantara",
		OTTLink:    strPtr("https://example.com/watch"),
	})
	require.NoError(t, err)

	movies, err := svc.GetMoviesByCategory(context.Background(), categoryID.String())
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Kantara", movies[0].Name)
	assert.Equal(t, categoryID.String(), movies[0].CategoryID)
	assert.Nil(t, movies[0].TrailerLink)

	other, err := svc.GetMoviesByCategory(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCreateMovie_MissingCategory(t *testing.T) {
	repo := &fakeMovieRepo{}
	svc := NewMovieService(repo, testLogger)

	err := svc.CreateMovie(context.Background(), &request.MovieRequest{Name: "Kantara"})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, repo.movies)
}

func TestGetMoviesByCategory_InvalidID(t *testing.T) {
	svc := NewMovieService(&fakeMovieRepo{}, testLogger)

	_, err := svc.GetMoviesByCategory(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrInvalidID)
}
