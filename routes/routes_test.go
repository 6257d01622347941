package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"HostelHub/config"
	"HostelHub/repository"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

// newRouter wires repositories without a live collection. Only requests
// rejected before the store is reached are safe to send.
func newRouter(cfg config.Config) *gin.Engine {
	r := gin.New()
	Routes(r, cfg, Deps{
		Users:    repository.NewUserRepository(nil),
		Meals:    repository.NewMealRepository(nil),
		Likes:    repository.NewLikeRepository(nil),
		Requests: repository.NewRequestedMealRepository(nil),
		Reviews:  repository.NewReviewRepository(nil),
		DB:       okPinger{},
	})
	return r
}

func testConfig() config.Config {
	return config.Config{
		TokenSecret: "test-secret",
		TokenTTL:    time.Hour,
		CORSOrigins: []string{"http://localhost:5173"},
		AdminRoutes: true,
		Swagger:     true,
	}
}

func serve(r *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutes(t *testing.T) {
	r := newRouter(testConfig())

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"home", http.MethodGet, "/", http.StatusOK},
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"swagger ui", http.MethodGet, "/swagger/index.html", http.StatusOK},
		{"list users needs token", http.MethodGet, "/users", http.StatusUnauthorized},
		{"admin status needs token", http.MethodGet, "/users/admin/a@b.c", http.StatusUnauthorized},
		{"promote needs token", http.MethodPatch, "/users/admin/665f1c2e9b1e8a3d4c5b6a79", http.StatusUnauthorized},
		{"malformed meal id", http.MethodGet, "/meals/not-an-id", http.StatusBadRequest},
		{"malformed meal id on update", http.MethodPatch, "/meals/not-an-id", http.StatusBadRequest},
		{"malformed meal id on delete", http.MethodDelete, "/meals/not-an-id", http.StatusBadRequest},
		{"malformed review id", http.MethodDelete, "/reviews/not-an-id", http.StatusBadRequest},
		{"like without body", http.MethodPost, "/likes", http.StatusBadRequest},
		{"request without body", http.MethodPost, "/requestedMeal", http.StatusBadRequest},
		{"review without body", http.MethodPost, "/reviews", http.StatusBadRequest},
		{"token without body", http.MethodPost, "/jwt", http.StatusBadRequest},
		{"put is not routed", http.MethodPut, "/meals/665f1c2e9b1e8a3d4c5b6a79", http.StatusMethodNotAllowed},
		{"unknown path", http.MethodGet, "/menu", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, tt.method, tt.path, nil)
			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestRoutes_CapabilitiesOff(t *testing.T) {
	cfg := testConfig()
	cfg.AdminRoutes = false
	cfg.Swagger = false
	r := newRouter(cfg)

	for _, path := range []string{"/users/admin/a@b.c", "/swagger/index.html"} {
		w := serve(r, http.MethodGet, path, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, w.Code)
		}
	}

	// Only POST /users is left on the path.
	w := serve(r, http.MethodGet, "/users", nil)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected GET /users to be 405, got %d", w.Code)
	}

	w = serve(r, http.MethodPost, "/users", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected POST /users to be routed, got %d", w.Code)
	}
}

func TestRoutes_Middleware(t *testing.T) {
	r := newRouter(testConfig())

	w := serve(r, http.MethodGet, "/", map[string]string{"Origin": "http://localhost:5173"})
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Expected CORS header, got %q", got)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected request id header")
	}

	w = serve(r, http.MethodOptions, "/meals", map[string]string{"Origin": "http://localhost:5173"})
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected preflight 204, got %d", w.Code)
	}
}
