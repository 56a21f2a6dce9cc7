package http_auth_middleware

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"

	http_common "github.com/adithyagarapati/movie-analyzer/internal/delivery/http/common"
	"github.com/gin-gonic/gin"
)

const header = "X-admin-token"

type TokenValidator interface {
	ValidateToken(token string) (bool, error)
}

// StaticToken accepts exactly one configured token. An empty token rejects everything.
type StaticToken struct {
	token []byte
}

func NewStaticToken(token string) *StaticToken {
	return &StaticToken{token: []byte(token)}
}

func (s *StaticToken) ValidateToken(token string) (bool, error) {
	if len(s.token) == 0 {
		return false, nil
	}
	return subtle.ConstantTimeCompare(s.token, []byte(token)) == 1, nil
}

type Middleware struct {
	validator TokenValidator
	logger    *slog.Logger
}

func New(
	validator TokenValidator,
) *Middleware {
	return &Middleware{
		validator: validator,
		logger:    slog.Default(),
	}
}

func (m *Middleware) AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		t := ctx.GetHeader(header)
		if t == "" {
			m.logger.Warn("missing admin token", slog.String("path", ctx.FullPath()))
			ctx.JSON(http.StatusUnauthorized, http_common.NewErrorResponse(ctx, fmt.Sprintf("no %s header", header)))
			ctx.Abort()
			return
		}

		valid, err := m.validator.ValidateToken(t)
		if err != nil {
			m.logger.Error("internal error", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.NewErrorResponse(ctx, "internal error"))
			ctx.Abort()
			return
		}
		if !valid {
			m.logger.Warn("invalid admin token", slog.String("path", ctx.FullPath()))
			ctx.JSON(http.StatusUnauthorized, http_common.NewErrorResponse(ctx, "invalid token"))
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
