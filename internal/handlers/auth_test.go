package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/todo-api/internal/dto"
	"github.com/yukikurage/todo-api/internal/middleware"
	"github.com/yukikurage/todo-api/internal/repository"
	"github.com/yukikurage/todo-api/internal/services"
	"github.com/yukikurage/todo-api/internal/testutil"
	"gorm.io/gorm"
)

type authTestEnv struct {
	db      *gorm.DB
	router  *gin.Engine
	tokens  *services.TokenService
	handler *AuthHandler
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	tokens := services.NewTokenService("test-secret", time.Hour)
	authService := services.NewAuthService(repository.NewUserRepository(db), tokens, testutil.DiscardLogger())
	handler := NewAuthHandler(authService)

	r := gin.New()
	r.Use(middleware.ErrorHandler(testutil.DiscardLogger()))
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)

	return authTestEnv{
		db:      db,
		router:  r,
		tokens:  tokens,
		handler: handler,
	}
}

func (env authTestEnv) post(t *testing.T, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.post(t, "/auth/register", map[string]string{
		"email":     "a@x.com",
		"password":  "pw123456",
		"firstName": "Ada",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "User created successfully", resp.Message)

	userID, err := env.tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.NotZero(t, userID)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	env := setupAuthTestEnv(t)
	payload := map[string]string{"email": "a@x.com", "password": "pw123456"}

	require.Equal(t, http.StatusCreated, env.post(t, "/auth/register", payload).Code)

	w := env.post(t, "/auth/register", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"code":"ALREADY_EXISTS","message":"Email already exists"}`, w.Body.String())
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	env := setupAuthTestEnv(t)

	tests := []struct {
		name    string
		payload map[string]string
		field   string
	}{
		{"missing email", map[string]string{"password": "pw123456"}, `"field":"email"`},
		{"malformed email", map[string]string{"email": "nope", "password": "pw123456"}, `"field":"email"`},
		{"short password", map[string]string{"email": "a@x.com", "password": "pw1"}, `"field":"password"`},
		{"password over bcrypt limit", map[string]string{"email": "a@x.com", "password": strings.Repeat("a", 73)}, `"field":"password"`},
		{"multibyte password over bcrypt limit", map[string]string{"email": "a@x.com", "password": strings.Repeat("é", 40)}, `"field":"password"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.post(t, "/auth/register", tt.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "Validation error")
			assert.Contains(t, w.Body.String(), tt.field)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)
	creds := map[string]string{"email": "a@x.com", "password": "pw123456"}

	w := env.post(t, "/auth/register", creds)
	require.Equal(t, http.StatusCreated, w.Code)
	var registered dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))

	w = env.post(t, "/auth/login", creds)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Logged in successfully", resp.Message)
	assert.NotEqual(t, registered.Token, resp.Token)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	env := setupAuthTestEnv(t)
	require.Equal(t, http.StatusCreated, env.post(t, "/auth/register", map[string]string{
		"email": "a@x.com", "password": "pw123456",
	}).Code)

	wrongPassword := env.post(t, "/auth/login", map[string]string{"email": "a@x.com", "password": "wrong-one"})
	unknownEmail := env.post(t, "/auth/login", map[string]string{"email": "b@x.com", "password": "pw123456"})

	for _, w := range []*httptest.ResponseRecorder{wrongPassword, unknownEmail} {
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"code":"INVALID_CREDENTIALS","message":"Invalid credentials"}`, w.Body.String())
	}
}

func TestAuthHandler_MalformedBody(t *testing.T) {
	env := setupAuthTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"email":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}
