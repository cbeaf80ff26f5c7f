package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/projectsdb/internal/models"
	"github.com/localnerve/projectsdb/internal/services"
	"github.com/localnerve/projectsdb/internal/types"
	"github.com/localnerve/projectsdb/internal/utils"
	"gorm.io/gorm"
)

// SessionHeader carries the session token for clients that cannot send cookies
const SessionHeader = "X-Session-Token"

const userKey = "user"

// AuthConfig wires the request authenticators
type AuthConfig struct {
	DB       *gorm.DB
	Auth     services.Authenticator
	Tokens   *services.TokenVerifier
	Disabled bool
}

// RequireUser resolves the request's credential to a local user and stores it in the context.
// A bearer access token is verified locally; a session cookie or header is validated by the
// auth server. With auth disabled the request passes without a user.
func RequireUser(cfg AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.Disabled {
			return c.Next()
		}

		user, err := ResolveUser(c, cfg)
		if err != nil {
			return utils.FailureResponse(c, err)
		}

		c.Locals(userKey, user)
		return c.Next()
	}
}

// ResolveUser maps the request's credential to its local user, creating the user on first sight
func ResolveUser(c *fiber.Ctx, cfg AuthConfig) (*models.User, error) {
	identity, err := identify(c, cfg)
	if err != nil {
		return nil, err
	}
	return services.EnsureUser(cfg.DB.WithContext(c.UserContext()), *identity)
}

// RequireRole rejects requests whose local user lacks one of the roles. It must run after RequireUser.
func RequireRole(disabled bool, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if disabled {
			return c.Next()
		}

		user := CurrentUser(c)
		if user == nil {
			return utils.ErrorResponse(c, "Authentication required", fiber.StatusUnauthorized, "no_session")
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return utils.ErrorResponse(c, "Insufficient role", fiber.StatusForbidden, "forbidden")
	}
}

// CurrentUser returns the authenticated local user, or nil
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userKey).(*models.User)
	return user
}

// SessionToken returns the credential presented by the request, if any
func SessionToken(c *fiber.Ctx) string {
	if token, ok := bearerToken(c); ok {
		return token
	}
	if token := c.Get(SessionHeader); token != "" {
		return token
	}
	return c.Cookies(services.SessionCookie)
}

func identify(c *fiber.Ctx, cfg AuthConfig) (*services.Identity, error) {
	if token, ok := bearerToken(c); ok {
		if cfg.Tokens == nil {
			return nil, types.AuthError("invalid_token", "Bearer tokens are not accepted by this server", nil)
		}
		return cfg.Tokens.Verify(token)
	}

	session := c.Get(SessionHeader)
	if session == "" {
		session = c.Cookies(services.SessionCookie)
	}
	if session == "" {
		return nil, types.AuthError("no_session", "Authorizer cookie \""+services.SessionCookie+"\" not found", nil)
	}
	if cfg.Auth == nil {
		return nil, types.AuthError("invalid_session", "Session validation is unavailable", nil)
	}
	return cfg.Auth.ValidateSession(session)
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
