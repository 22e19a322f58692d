package jwtmw

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// Rejection reasons. They are logged but never sent to the client.
const (
	ReasonMissingBearer = "missing bearer token"
	ReasonInvalidToken  = "invalid token"
)

// Verifier validates a raw token and returns the identity it carries.
type Verifier interface {
	Verify(token string) (Identity, error)
}

// Result is the outcome of Authorize: either an identity or a rejection reason.
type Result struct {
	identity Identity
	reason   string
	ok       bool
}

// Authorized builds a successful Result.
func Authorized(id Identity) Result {
	return Result{identity: id, ok: true}
}

// Rejected builds a failed Result.
func Rejected(reason string) Result {
	return Result{reason: reason}
}

// Identity returns the authenticated identity and whether the result is authorized.
func (r Result) Identity() (Identity, bool) {
	return r.identity, r.ok
}

// Reason returns the rejection reason, or "" when authorized.
func (r Result) Reason() string {
	return r.reason
}

// Gate guards protected routes. It performs no storage access.
type Gate struct {
	verifier Verifier
}

// NewGate creates a Gate backed by v.
func NewGate(v Verifier) *Gate {
	return &Gate{verifier: v}
}

// Authorize inspects an Authorization header value.
func (g *Gate) Authorize(header string) Result {
	if !strings.HasPrefix(header, bearerPrefix) {
		return Rejected(ReasonMissingBearer)
	}
	tokenStr := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if tokenStr == "" {
		return Rejected(ReasonMissingBearer)
	}

	id, err := g.verifier.Verify(tokenStr)
	if err != nil {
		return Rejected(ReasonInvalidToken)
	}
	return Authorized(id)
}

// AuthedHandler is a gin handler that receives the verified caller explicitly.
type AuthedHandler func(c *gin.Context, id Identity)

// Guard adapts next into a gin.HandlerFunc that runs only for authorized requests.
// Rejected requests are answered with 401 before next is called.
func (g *Gate) Guard(next AuthedHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := g.Authorize(c.GetHeader("Authorization"))
		id, ok := res.Identity()
		if !ok {
			slog.Debug("request rejected by auth gate",
				"reason", res.Reason(), "path", c.FullPath(), "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		next(c, id)
	}
}
