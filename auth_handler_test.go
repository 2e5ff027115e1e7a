package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/roamio/travelagency/model"
	"github.com/roamio/travelagency/repository"
)

// fakeUserRepo implements the user operations of repository.Repository.
// The embedded interface panics on anything else, which no auth path
// should reach.
type fakeUserRepo struct {
	repository.Repository
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (f *fakeUserRepo) CreateUser(req model.CreateUserRequest) (*model.User, error) {
	if _, ok := f.users[req.Email]; ok {
		return nil, repository.ErrEmailExists
	}
	user := &model.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: req.PasswordHash,
		Role:         req.Role,
	}
	f.users[req.Email] = user
	return user, nil
}

func (f *fakeUserRepo) GetUserByEmail(email string) (*model.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func newAuthRouter(repo *fakeUserRepo, jwtService *JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(repo, jwtService, zap.NewNop())

	r := gin.New()
	r.POST("/api/auth/register", handler.Register)
	r.POST("/api/auth/login", handler.Login)

	admin := r.Group("/api/admin")
	admin.Use(AuthMiddleware(jwtService))
	admin.Use(AdminMiddleware())
	admin.GET("/bookings", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRegisterIgnoresCallerSuppliedRole(t *testing.T) {
	repo := newFakeUserRepo()
	router := newAuthRouter(repo, NewJWTService("test-secret"))

	body := `{"name":"Mallory","email":"mallory@example.com","password":"hunter2hunter2","role":"admin"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var response model.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, model.RoleStaff, response.Role)

	require.Contains(t, repo.users, "mallory@example.com")
	assert.Equal(t, model.RoleStaff, repo.users["mallory@example.com"].Role)
}

func TestSelfRegisteredUserCannotReachAdminRoutes(t *testing.T) {
	repo := newFakeUserRepo()
	jwtService := NewJWTService("test-secret")
	router := newAuthRouter(repo, jwtService)

	body := `{"name":"Mallory","email":"mallory@example.com","password":"hunter2hunter2","role":"admin"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	token, err := jwtService.GenerateToken(repo.users["mallory@example.com"])
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminRoleAdmittedByAdminMiddleware(t *testing.T) {
	repo := newFakeUserRepo()
	jwtService := NewJWTService("test-secret")
	router := newAuthRouter(repo, jwtService)

	admin := &model.User{ID: uuid.New(), Email: "ops@example.com", Role: model.RoleAdmin}
	token, err := jwtService.GenerateToken(admin)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
