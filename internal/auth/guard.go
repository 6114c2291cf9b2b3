package auth

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bornebyte/notes/internal/config"
	"github.com/bornebyte/notes/internal/domain"
	"github.com/bornebyte/notes/internal/ratelimit"
)

const authContextKey = "auth_context"

// TokenHeader carries API tokens on inbound requests.
const TokenHeader = "X-API-Token"

// RateInfo exposes limiter observability to handlers.
type RateInfo struct {
	Remaining int
	ResetTime time.Time
}

// Context describes the authenticated caller for downstream handlers.
type Context struct {
	Method    domain.AuthMethod
	Identity  string
	TokenID   int64
	TokenName string
	RateLimit *RateInfo
}

// GuardOptions tune the guard per route group.
type GuardOptions struct {
	MaxRequests     int
	Window          time.Duration
	EnableRateLimit bool
}

// Guard authenticates requests and applies per-identity rate limiting. Every
// protected endpoint runs it first; unauthenticated requests are rejected
// before the limiter is consulted and never count against any window.
type Guard struct {
	verifier   *Verifier
	limiter    *ratelimit.Limiter
	cookieName string
	defaults   GuardOptions
}

// NewGuard constructs the guard with defaults taken from config.
func NewGuard(verifier *Verifier, limiter *ratelimit.Limiter, cfg config.Config) *Guard {
	return &Guard{
		verifier:   verifier,
		limiter:    limiter,
		cookieName: cfg.Auth.SessionCookie,
		defaults: GuardOptions{
			MaxRequests:     cfg.RateLimit.MaxRequests,
			Window:          cfg.RateLimit.Window(),
			EnableRateLimit: cfg.RateLimit.Enabled,
		},
	}
}

// Require enforces authentication and rate limiting with configured defaults.
func (g *Guard) Require() fiber.Handler {
	return g.RequireWithOptions(g.defaults)
}

// RequireWithOptions enforces the guard with explicit limiter parameters.
func (g *Guard) RequireWithOptions(opts GuardOptions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionPresent := c.Cookies(g.cookieName) != ""
		result := g.verifier.Verify(c.Context(), sessionPresent, c.Get(TokenHeader))

		if !result.Authenticated {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": result.Reason})
		}

		authCtx := &Context{
			Method:    result.Method,
			Identity:  result.Identity,
			TokenID:   result.TokenID,
			TokenName: result.TokenName,
		}

		if opts.EnableRateLimit {
			limit := g.limiter.Check(result.Identity, opts.MaxRequests, opts.Window)
			if !limit.Allowed {
				c.Set(fiber.HeaderRetryAfter, strconv.Itoa(limit.RetryAfter))
				return c.Status(http.StatusTooManyRequests).JSON(fiber.Map{
					"message":    fmt.Sprintf("Too many requests. Please try again in %d seconds.", limit.RetryAfter),
					"retryAfter": limit.RetryAfter,
				})
			}
			authCtx.RateLimit = &RateInfo{Remaining: limit.Remaining, ResetTime: limit.ResetTime}
		}

		c.Locals(authContextKey, authCtx)
		return c.Next()
	}
}

// FromContext retrieves the authenticated caller context.
func FromContext(c *fiber.Ctx) (*Context, bool) {
	val := c.Locals(authContextKey)
	if val == nil {
		return nil, false
	}
	authCtx, ok := val.(*Context)
	return authCtx, ok
}
