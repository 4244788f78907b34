package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/calai/internal/error_values"
	"github.com/limbo/calai/pkg/httputil"
	"github.com/limbo/calai/pkg/logger"
)

type ctxKey string

var (
	requestIDKContextKey ctxKey = "Request-ID"
	uidContextKey        ctxKey = "User-ID"
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", reqID)
		ctx := context.WithValue(r.Context(), requestIDKContextKey, reqID)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := slog.Default()
		reqID, ok := r.Context().Value(requestIDKContextKey).(string)
		if ok && reqID != "" {
			l = l.With(slog.String("request_id", reqID))
		}
		l = l.With(slog.String("from", r.RemoteAddr), slog.String("path", r.URL.Path))
		r = r.WithContext(logger.WithContext(r.Context(), l))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := logger.FromContext(r.Context())
		userID, ok := r.Context().Value(uidContextKey).(string)
		if ok && userID != "" {
			l = l.With(slog.String("uid", userID))
		}
		r = r.WithContext(logger.WithContext(r.Context(), l))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := logger.FromContext(r.Context())
		// Getting token from header
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			l.Error("auth failed: invalid token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		// Getting claims from token string, exp and nbf are checked by the parser
		tokenClaims, err := s.jwtService.ParseToken(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenNotValidYet):
				l.Error("tried to auth with expired or not ready token")
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "token expired or not ready", nil)
			case errors.Is(err, errorvalues.ErrInvalidToken):
				l.Error("auth failed: error parsing token")
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			default:
				l.Error("auth failed: internal error while parsing token", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error parsing token", nil)
			}
			return
		}
		uid := strings.TrimSpace(tokenClaims.Subject)
		if uid == "" {
			l.Error("empty subject in token claims")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid token payload", nil)
			return
		}
		ctx := context.WithValue(r.Context(), uidContextKey, uid)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// RateLimitMiddleware counts requests per user. A broken limiter lets requests through.
func (s *Server) RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}
		l := logger.FromContext(r.Context())
		uid, err := GetUIDFromContext(r)
		if err != nil {
			uid = r.RemoteAddr
		}
		ctx, cancel := context.WithTimeout(r.Context(), time.Second*2)
		defer cancel()
		decision, err := s.limiter.Allow(ctx, uid)
		if err != nil {
			l.Warn("rate limiter unavailable", slog.String("error", err.Error()))
			next.ServeHTTP(w, r)
			return
		}
		if !decision.Allowed {
			l.Warn("rate limit exceeded")
			w.Header().Set("Retry-After", strconv.Itoa(int(decision.RetryAfter.Round(time.Second).Seconds())))
			httputil.WriteErrorResponse(w, http.StatusTooManyRequests, "too many requests", errorvalues.ErrRateLimited)
			return
		}
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		next.ServeHTTP(w, r)
	})
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

func GetUIDFromContext(r *http.Request) (string, error) {
	uid, ok := r.Context().Value(uidContextKey).(string)
	if !ok || uid == "" {
		return "", errors.New("uid invalid or doesn't exists")
	}
	return uid, nil
}
