package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sahilchouksey/study-abroad-api/model"
	"github.com/sahilchouksey/study-abroad-api/utils/auth"
	"github.com/sahilchouksey/study-abroad-api/utils/response"
)

// AuthMiddleware handles JWT authentication
type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	db         *gorm.DB
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *auth.JWTManager, db *gorm.DB) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		db:         db,
	}
}

// authenticate resolves the bearer token to a user, or returns a message
// describing why it could not.
func (m *AuthMiddleware) authenticate(c *fiber.Ctx) (*auth.Claims, *model.User, string) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, nil, "Missing authorization token"
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, nil, "Invalid authorization format"
	}

	claims, err := m.jwtManager.ValidateToken(parts[1])
	if err != nil {
		if err == auth.ErrExpiredToken {
			return nil, nil, "Token has expired"
		}
		return nil, nil, "Invalid token"
	}
	if claims.TokenType != auth.TokenTypeAccess {
		return nil, nil, "Invalid token type"
	}

	var user model.User
	if err := m.db.First(&user, claims.UserID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, "User not found"
		}
		return nil, nil, "Failed to load user"
	}
	if user.TokenVersion != claims.TokenVersion {
		return nil, nil, "Token has been invalidated"
	}

	return claims, &user, ""
}

func storeUser(c *fiber.Ctx, claims *auth.Claims, user *model.User) {
	c.Locals("user_id", claims.UserID)
	c.Locals("user_email", claims.Email)
	c.Locals("user_role", claims.Role)
	c.Locals("claims", claims)
	c.Locals("user", user)
}

// Required is middleware that requires a valid JWT token
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, user, msg := m.authenticate(c)
		if msg != "" {
			return response.Unauthorized(c, msg)
		}
		storeUser(c, claims, user)
		return c.Next()
	}
}

// Optional is middleware that allows requests with or without a token. The
// compare and shortlist endpoints use it: signed-in requests resolve to a
// user, anonymous ones fall back to the X-Client-ID keyed store.
func (m *AuthMiddleware) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, user, msg := m.authenticate(c)
		if msg == "" {
			storeUser(c, claims, user)
		}
		return c.Next()
	}
}

// RequireAgency requires a valid token with the agency or admin role, for
// the document-review endpoints.
func (m *AuthMiddleware) RequireAgency() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, user, msg := m.authenticate(c)
		if msg != "" {
			return response.Unauthorized(c, msg)
		}
		if claims.Role != "agency" && claims.Role != "admin" {
			return response.Forbidden(c, "Agency access required")
		}
		storeUser(c, claims, user)
		return c.Next()
	}
}

// RequireAdmin requires a valid token with the admin role, for catalog CRUD.
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, user, msg := m.authenticate(c)
		if msg != "" {
			return response.Unauthorized(c, msg)
		}
		if claims.Role != "admin" {
			return response.Forbidden(c, "Admin access required")
		}
		storeUser(c, claims, user)
		return c.Next()
	}
}

// GetUserID extracts user ID from context
func GetUserID(c *fiber.Ctx) (uint, bool) {
	userID := c.Locals("user_id")
	if userID == nil {
		return 0, false
	}
	id, ok := userID.(uint)
	return id, ok
}

// GetUser extracts full user object from context
func GetUser(c *fiber.Ctx) (*model.User, bool) {
	user := c.Locals("user")
	if user == nil {
		return nil, false
	}
	u, ok := user.(*model.User)
	return u, ok
}

// GetClientID returns the anonymous client id header, if present. Browsers
// mint it once (a UUID in local storage) and send it on every request.
func GetClientID(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Get("X-Client-ID"))
}
