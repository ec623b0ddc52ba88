package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	portssvc "github.com/SscSPs/todo_backend/internal/core/ports/services"
	"github.com/SscSPs/todo_backend/internal/handlers"
	"github.com/SscSPs/todo_backend/internal/middleware"
	"github.com/SscSPs/todo_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

const testBodyLimit = 16 * 1024

// envelope covers both the success and the error response shape.
type envelope struct {
	StatusCode int             `json:"statusCode"`
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Errors     []string        `json:"errors"`
}

func testConfig() *config.Config {
	return &config.Config{
		Port:               "8080",
		IsProduction:       true,
		RequestBodyLimit:   testBodyLimit,
		AccessTokenSecret:  "access-secret-for-tests-0123456789",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenSecret: "refresh-secret-for-tests-0123456789",
		RefreshTokenExpiry: 24 * time.Hour,
		JWTIssuer:          "todo-backend-test",
		Cookie: config.CookieConfig{
			Secure:   false,
			SameSite: "lax",
			Path:     "/",
		},
	}
}

func newTestRouter(cfg *config.Config, container *portssvc.ServiceContainer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(slog.New(slog.NewJSONHandler(io.Discard, nil))),
		middleware.Recovery(),
		middleware.BodyLimit(cfg.RequestBodyLimit),
	)
	handlers.RegisterRoutes(r, cfg, container)
	return r
}

type requestOption func(*http.Request)

func withBearer(token string) requestOption {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func withCookies(cookies ...*http.Cookie) requestOption {
	return func(req *http.Request) {
		for _, ck := range cookies {
			req.AddCookie(ck)
		}
	}
}

func perform(r http.Handler, method, path string, body any, opts ...requestOption) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(rec *httptest.ResponseRecorder) envelope {
	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return env
}

func responseCookies(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := map[string]*http.Cookie{}
	for _, ck := range rec.Result().Cookies() {
		out[ck.Name] = ck
	}
	return out
}
