package handlers

import (
	"context"

	"notes_auth/internal/config"
	"notes_auth/internal/models"
	"notes_auth/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser *models.User
	registerErr  error
	loginToken   string
	loginUser    *models.User
	loginErr     error
	parseClaims  *service.Claims
	parseErr     error
	userByID     *models.User
	userByIDErr  error

	lastRegister      service.RegisterInput
	lastLoginUsername string
	lastLoginPassword string
	lastParseToken    string
	lastUserID        int
}

func (m *mockAuth) Register(_ context.Context, in service.RegisterInput) (*models.User, error) {
	m.lastRegister = in
	return m.registerUser, m.registerErr
}

func (m *mockAuth) Login(_ context.Context, username, password string) (string, *models.User, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginToken, m.loginUser, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (*service.Claims, error) {
	m.lastParseToken = token
	return m.parseClaims, m.parseErr
}

func (m *mockAuth) UserByID(_ context.Context, id int) (*models.User, error) {
	m.lastUserID = id
	return m.userByID, m.userByIDErr
}

type mockStats struct {
	snap service.StatsSnapshot
	err  error
}

func (m *mockStats) Snapshot(context.Context) (service.StatsSnapshot, error) {
	return m.snap, m.err
}

// ---- Shared Test Helpers ----

func testHandlerConfig() config.Config {
	var cfg config.Config
	cfg.Auth.SigningKey = "test"
	cfg.Auth.TokenTTLHours = 12
	cfg.CORS.AllowedOrigins = []string{"http://app.example"}
	return cfg
}

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, testHandlerConfig(), nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
