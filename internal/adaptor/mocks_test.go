package adaptor

import (
	"context"

	"moviehub/internal/dto/request"
	"moviehub/internal/dto/response"
)

type mockAuthService struct {
	SignupFunc func(ctx context.Context, req *request.SignupRequest) error
	LoginFunc  func(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	calls      int
}

func (m *mockAuthService) Signup(ctx context.Context, req *request.SignupRequest) error {
	m.calls++
	return m.SignupFunc(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	m.calls++
	return m.LoginFunc(ctx, req)
}

type mockCategoryService struct {
	CreateCategoryFunc func(ctx context.Context, req *request.CategoryRequest) error
	GetCategoriesFunc  func(ctx context.Context) ([]response.CategoryResponse, error)
	calls              int
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, req *request.CategoryRequest) error {
	m.calls++
	return m.CreateCategoryFunc(ctx, req)
}

func (m *mockCategoryService) GetCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	m.calls++
	return m.GetCategoriesFunc(ctx)
}

type mockMovieService struct {
	CreateMovieFunc         func(ctx context.Context, req *request.MovieRequest) error
	GetMoviesByCategoryFunc func(ctx context.Context, categoryID string) ([]response.MovieResponse, error)
	calls                   int
}

func (m *mockMovieService) CreateMovie(ctx context.Context, req *request.MovieRequest) error {
	m.calls++
	return m.CreateMovieFunc(ctx, req)
}

func (m *mockMovieService) GetMoviesByCategory(ctx context.Context, categoryID string) ([]response.MovieResponse, error) {
	m.calls++
	return m.GetMoviesByCategoryFunc(ctx, categoryID)
}

type mockReviewService struct {
	CreateReviewFunc    func(ctx context.Context, req *request.CreateReviewRequest) error
	GetMovieReviewsFunc func(ctx context.Context, movieID string) ([]response.ReviewResponse, error)
	calls               int
}

func (m *mockReviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) error {
	m.calls++
	return m.CreateReviewFunc(ctx, req)
}

func (m *mockReviewService) GetMovieReviews(ctx context.Context, movieID string) ([]response.ReviewResponse, error) {
	m.calls++
	return m.GetMovieReviewsFunc(ctx, movieID)
}

type mockMemberService struct {
	CreateMemberFunc func(ctx context.Context, req *request.CreateMemberRequest) (*response.MemberResponse, error)
	GetUsersFunc     func(ctx context.Context) ([]response.UserResponse, error)
	calls            int
}

func (m *mockMemberService) CreateMember(ctx context.Context, req *request.CreateMemberRequest) (*response.MemberResponse, error) {
	m.calls++
	return m.CreateMemberFunc(ctx, req)
}

func (m *mockMemberService) GetUsers(ctx context.Context) ([]response.UserResponse, error) {
	m.calls++
	return m.GetUsersFunc(ctx)
}

type mockEscalationService struct {
	SetEscalationTimeFunc     func(ctx context.Context, req *request.EscalationTimeRequest) (*response.EscalationSettingResponse, error)
	GetEscalationSettingsFunc func(ctx context.Context) ([]response.EscalationSettingResponse, error)
	calls                     int
}

func (m *mockEscalationService) SetEscalationTime(ctx context.Context, req *request.EscalationTimeRequest) (*response.EscalationSettingResponse, error) {
	m.calls++
	return m.SetEscalationTimeFunc(ctx, req)
}

func (m *mockEscalationService) GetEscalationSettings(ctx context.Context) ([]response.EscalationSettingResponse, error) {
	m.calls++
	return m.GetEscalationSettingsFunc(ctx)
}
