package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/photolog-dev/photolog-backend/internal/adapter/handler"
	pgRepo "github.com/photolog-dev/photolog-backend/internal/adapter/repository/postgres"
	"github.com/photolog-dev/photolog-backend/internal/domain"
	"github.com/photolog-dev/photolog-backend/internal/infrastructure/auth"
	"github.com/photolog-dev/photolog-backend/internal/infrastructure/database"
	"github.com/photolog-dev/photolog-backend/internal/infrastructure/middleware"
	"github.com/photolog-dev/photolog-backend/internal/infrastructure/server"
	authUC "github.com/photolog-dev/photolog-backend/internal/usecase/auth"
	"github.com/photolog-dev/photolog-backend/internal/usecase/gallery"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	testJWTSecret  = "test-secret-key-for-e2e-tests"
	apiBasePath    = "/api/v1"

	testAdminEmail    = "admin@example.com"
	testAdminPassword = "correct horse battery staple"
)

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Container  testcontainers.Container
	Storage    *memoryStorage
	JWTService *auth.JWTService
	BaseURL    string
	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	migrationsPath := getMigrationsPath()
	err = database.RunMigrations(ctx, pool, migrationsPath)
	require.NoError(t, err)

	photoRepo := pgRepo.NewPhotoRepo(pool)
	adminRepo := pgRepo.NewAdminRepo(pool)

	jwtSvc := auth.NewJWTService(testJWTSecret, 15*time.Minute)
	passwordHasher := auth.NewPasswordHasher(4) // Lower cost for faster tests

	// In-memory storage keeps the suite free of any bucket dependency.
	storage := newMemoryStorage()

	authSvc := authUC.NewService(adminRepo, jwtSvc, passwordHasher)
	gallerySvc := gallery.NewService(photoRepo, storage)

	require.NoError(t, authSvc.EnsureAdmin(ctx, testAdminEmail, testAdminPassword))

	authHandler := handler.NewAuthHandler(authSvc)
	feedHandler := handler.NewFeedHandler(gallerySvc)
	adminHandler := handler.NewAdminHandler(gallerySvc)

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, adminRepo)

	logger, _ := zap.NewDevelopment()
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:    authHandler,
		FeedHandler:    feedHandler,
		AdminHandler:   adminHandler,
		AuthMiddleware: authMiddleware,
		Logger:         logger,
		Environment:    "test",
	})

	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:     ts,
		Pool:       pool,
		Container:  pgContainer,
		Storage:    storage,
		JWTService: jwtSvc,
		BaseURL:    ts.URL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	app.Pool.Close()

	ctx := context.Background()
	if err := app.Container.Terminate(ctx); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) login(t *testing.T) string {
	t.Helper()

	resp, err := app.post("/auth/login", map[string]string{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	}, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		AccessToken string `json:"access_token"`
	}
	parseResponse(t, resp, &body)
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}

func (app *TestApp) request(method, path string, body any, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	fullPath := apiBasePath + path
	req, err := http.NewRequest(method, app.BaseURL+fullPath, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil, headers)
}

func (app *TestApp) post(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPost, path, body, headers)
}

func (app *TestApp) put(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPut, path, body, headers)
}

func (app *TestApp) delete(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodDelete, path, nil, headers)
}

// uploadPhoto posts a multipart photo form with a small fake image payload.
func (app *TestApp) uploadPhoto(t *testing.T, token, title, shotDate string, tags []string) (*http.Response, error) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", title+".jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake jpeg bytes"))
	require.NoError(t, err)

	require.NoError(t, writer.WriteField("title", title))
	require.NoError(t, writer.WriteField("shot_date", shotDate))
	for _, tag := range tags {
		require.NoError(t, writer.WriteField("tags", tag))
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, app.BaseURL+apiBasePath+"/admin/photos", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	return app.httpClient.Do(req)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func authHeader(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

// memoryStorage is an in-memory object store with the same key semantics as
// the real bucket: writes never overwrite, deletes of absent keys report
// object-not-found.
type memoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: make(map[string][]byte)}
}

func (s *memoryStorage) Upload(_ context.Context, key string, reader io.Reader, _ string, _ int64) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.objects[key]; exists {
		return domain.ErrObjectExists
	}
	s.objects[key] = data
	return nil
}

func (s *memoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.objects[key]; !exists {
		return domain.ErrObjectNotFound
	}
	delete(s.objects, key)
	return nil
}

func (s *memoryStorage) PublicURL(key string) string {
	return "https://stub-storage.example.com/" + key
}

func (s *memoryStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

// getMigrationsPath returns the absolute path to the migrations directory
func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)
	return filepath.Join(testDir, "..", "..", "migrations")
}
