package usecase

import (
	"context"
	"sync"

	"moviehub/internal/data/entity"
	"moviehub/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var testLogger = zap.NewNop()

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

// fakeUserRepo is an in-memory users table with a unique username index.
type fakeUserRepo struct {
	mu          sync.Mutex
	users       []*entity.User
	findCalls   int
	createCalls int
	err         error
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.err != nil {
		return f.err
	}
	if user.Username != nil {
		for _, u := range f.users {
			if u.Username != nil && *u.Username == *user.Username {
				return repository.ErrDuplicate
			}
		}
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findCalls++
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Username != nil && *u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*entity.User, 0, len(f.users))
	for i := len(f.users) - 1; i >= 0; i-- {
		u := *f.users[i]
		u.PasswordHash = ""
		result = append(result, &u)
	}
	return result, nil
}

func (f *fakeUserRepo) byID(id uuid.UUID) *entity.User {
	for _, u := range f.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

type fakeCategoryRepo struct {
	categories []*entity.Category
	err        error
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	if f.err != nil {
		return f.err
	}
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]*entity.Category(nil), f.categories...), nil
}

type fakeMovieRepo struct {
	movies []*entity.Movie
	err    error
}

func (f *fakeMovieRepo) Create(_ context.Context, movie *entity.Movie) error {
	if f.err != nil {
		return f.err
	}
	f.movies = append(f.movies, movie)
	return nil
}

func (f *fakeMovieRepo) FindByCategoryID(_ context.Context, categoryID uuid.UUID) ([]*entity.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*entity.Movie
	for _, m := range f.movies {
		if m.CategoryID == categoryID {
			result = append(result, m)
		}
	}
	return result, nil
}

// fakeReviewRepo joins against users the way the SQL does.
type fakeReviewRepo struct {
	users   *fakeUserRepo
	reviews []*entity.Review
	err     error
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	if f.err != nil {
		return f.err
	}
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepo) FindByMovieID(_ context.Context, movieID uuid.UUID) ([]*entity.ReviewWithAuthor, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*entity.ReviewWithAuthor
	for _, r := range f.reviews {
		if r.MovieID != movieID {
			continue
		}
		user := f.users.byID(r.UserID)
		if user == nil {
			continue // inner join
		}
		result = append(result, &entity.ReviewWithAuthor{Review: *r, AuthorName: user.Name})
	}
	return result, nil
}

// fakeEscalationRepo keys rows by level like the primary key does.
type fakeEscalationRepo struct {
	rows map[entity.EscalationLevel]*entity.EscalationSetting
	err  error
}

func (f *fakeEscalationRepo) Upsert(_ context.Context, setting *entity.EscalationSetting) error {
	if f.err != nil {
		return f.err
	}
	if f.rows == nil {
		f.rows = make(map[entity.EscalationLevel]*entity.EscalationSetting)
	}
	row := *setting
	f.rows[setting.Level] = &row
	return nil
}

func (f *fakeEscalationRepo) FindAll(_ context.Context) ([]*entity.EscalationSetting, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*entity.EscalationSetting
	for _, level := range []entity.EscalationLevel{entity.LevelGP, entity.LevelMLA, entity.LevelTaluk} {
		if row, ok := f.rows[level]; ok {
			result = append(result, row)
		}
	}
	return result, nil
}
