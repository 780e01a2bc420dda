package auth

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"mabar/internal/cache"
	apperrors "mabar/internal/errors"
	"mabar/internal/model"
	"mabar/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// Guard resolves the authenticated user behind a request and checks role and
// verification explicitly, instead of relying on middleware short-circuits.
type Guard struct {
	users repository.UserRepository
	cache *cache.Client
}

// NewGuard creates a request guard.
func NewGuard(users repository.UserRepository, cache *cache.Client) *Guard {
	return &Guard{users: users, cache: cache}
}

// Require returns the authenticated user when the bearer token is valid, the
// account is verified, and the user holds the given role. Any other outcome
// is a tagged domain error.
func (g *Guard) Require(c echo.Context, role string) (*model.User, error) {
	claims, err := g.claims(c)
	if err != nil {
		return nil, err
	}

	user, err := g.lookupUser(c, claims.UserID)
	if err != nil {
		return nil, err
	}

	if !user.IsVerified {
		return nil, apperrors.ErrNotVerified
	}
	if user.Role != role {
		return nil, apperrors.ErrAccessDenied
	}
	return user, nil
}

func (g *Guard) claims(c echo.Context) (*Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, apperrors.ErrAccessDenied
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, apperrors.ErrAccessDenied
	}
	return claims, nil
}

// lookupUser fetches the user with a short cache in front of the database,
// one read per request otherwise.
func (g *Guard) lookupUser(c echo.Context, id uint) (*model.User, error) {
	ctx := c.Request().Context()
	key := fmt.Sprintf("user:%d", id)

	if data, _ := g.cache.Get(ctx, key); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := g.users.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrAccessDenied
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = g.cache.Set(ctx, key, payload, userCacheTTL)
	}
	return user, nil
}
