package cookie

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/todo_backend/internal/core/domain"
	"github.com/SscSPs/todo_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// Names of the cookies carrying the session tokens.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// Manager writes and reads the token cookies using the configured security attributes.
type Manager struct {
	config config.CookieConfig
}

func NewManager(cfg config.CookieConfig) *Manager {
	return &Manager{config: cfg}
}

// SetSessionCookies writes both token cookies, each living as long as its token.
func (m *Manager) SetSessionCookies(c *gin.Context, session *domain.Session) {
	m.set(c, AccessTokenCookie, session.AccessToken)
	m.set(c, RefreshTokenCookie, session.RefreshToken)
}

// ClearSessionCookies expires both token cookies on the client.
func (m *Manager) ClearSessionCookies(c *gin.Context) {
	m.delete(c, AccessTokenCookie)
	m.delete(c, RefreshTokenCookie)
}

// Get returns the cookie value, or an empty string when the cookie is absent.
func (m *Manager) Get(c *gin.Context, name string) (string, error) {
	value, err := c.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get cookie %s: %w", name, err)
	}
	return value, nil
}

func (m *Manager) set(c *gin.Context, name string, token domain.IssuedToken) {
	maxAge := int(time.Until(token.ExpiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = -1
	}
	c.SetSameSite(m.sameSite())
	c.SetCookie(name, token.Value, maxAge, m.config.Path, m.config.Domain, m.config.Secure, true)
}

func (m *Manager) delete(c *gin.Context, name string) {
	c.SetSameSite(m.sameSite())
	c.SetCookie(name, "", -1, m.config.Path, m.config.Domain, m.config.Secure, true)
}

func (m *Manager) sameSite() http.SameSite {
	switch m.config.SameSite {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
