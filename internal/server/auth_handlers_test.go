package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chirp/internal/config"
	"chirp/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func TestSignup(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockUserRepository)

	s := &Server{
		config:   &config.Config{JWTSecret: "test_secret"},
		userRepo: mockRepo,
	}

	app.Post("/signup", s.Signup)

	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{
				"email":    "test@example.com",
				"nickname": "tester",
				"password": "Password123",
			},
			mockSetup: func() {
				mockRepo.On("GetByEmail", mock.Anything, "test@example.com").Return(nil, nil)
				mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Duplicate User",
			body: map[string]string{
				"email":    "exists@example.com",
				"nickname": "tester",
				"password": "Password123",
			},
			mockSetup: func() {
				mockRepo.On("GetByEmail", mock.Anything, "exists@example.com").Return(&models.User{ID: 1}, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Invalid Email",
			body: map[string]string{
				"email":    "not-an-email",
				"nickname": "tester",
				"password": "Password123",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Weak Password",
			body: map[string]string{
				"email":    "weak@example.com",
				"nickname": "tester",
				"password": "short",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestLogin(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockUserRepository)

	s := &Server{
		config:   &config.Config{JWTSecret: "test_secret"},
		userRepo: mockRepo,
	}

	app.Post("/login", s.Login)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	mockRepo.On("GetByEmail", mock.Anything, "known@example.com").
		Return(&models.User{ID: 1, Email: "known@example.com", Nickname: "known", Password: string(hashed)}, nil)
	mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	t.Run("Success", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"email": "known@example.com", "password": "Password123"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Token string `json:"token"`
		}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.NotEmpty(t, out.Token)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"email": "known@example.com", "password": "WrongPass1"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"email": "ghost@example.com", "password": "Password123"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
