package wire

import (
	"moviehub/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, handler *adaptor.Handler) {
	r.Route("/user", func(r chi.Router) {
		r.Post("/signup", handler.Auth.Signup)
		r.Post("/login", handler.Auth.Login)

		r.Get("/categories", handler.Category.GetCategories)
		r.Get("/movies/{category_id}", handler.Movie.GetMoviesByCategory)

		r.Post("/review", handler.Review.CreateReview)
		r.Get("/reviews/{movie_id}", handler.Review.GetMovieReviews)
	})
}
