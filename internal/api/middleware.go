package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/forgetmenot/internal/error_values"
	"github.com/limbo/forgetmenot/pkg/entity"
	"github.com/limbo/forgetmenot/pkg/httputil"
	jwtservice "github.com/limbo/forgetmenot/pkg/jwt_service"
)

type contextKey string

var (
	requestIDKContextKey = contextKey("Request-ID")
	loggerContextKey     = contextKey("Logger")
	uidContextKey        = contextKey("User-ID")
	userContextKey       = contextKey("User")
	claimsContextKey     = contextKey("Claims")
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New()
		w.Header().Set("X-Request-ID", reqID.String())
		ctx := context.WithValue(r.Context(), requestIDKContextKey, reqID.String())
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDKContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		userID, ok := r.Context().Value(uidContextKey).(uuid.UUID)
		if ok {
			logger = logger.With(slog.String("uid", userID.String()))
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware observes request latency labelled with the matched route pattern.
func (s *Server) MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		route := ""
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		elapsed := time.Since(start)
		s.metrics.ObserveRequest(r.Method, route, rec.status, elapsed)
		GetLoggerFromCtx(r.Context()).Debug("request completed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", elapsed),
		)
	})
}

// authenticate resolves a session token to its still existing user.
func (s *Server) authenticate(ctx context.Context, token string) (*entity.User, *jwtservice.Claims, error) {
	claims, err := s.jwtService.ParseToken(token)
	if err != nil {
		return nil, nil, err
	}
	revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, nil, errors.New("checking revocation error: " + err.Error())
	}
	if revoked {
		return nil, nil, errorvalues.ErrTokenRevoked
	}
	uid, err := claims.UID()
	if err != nil {
		return nil, nil, errorvalues.ErrInvalidToken
	}
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		return nil, nil, err
	}
	return user, claims, nil
}

func isAuthError(err error) bool {
	return errors.Is(err, errorvalues.ErrInvalidToken) ||
		errors.Is(err, errorvalues.ErrTokenRevoked) ||
		errors.Is(err, errorvalues.ErrUserNotFound)
}

func withUser(r *http.Request, user *entity.User, claims *jwtservice.Claims) *http.Request {
	ctx := context.WithValue(r.Context(), uidContextKey, user.ID)
	ctx = context.WithValue(ctx, userContextKey, user)
	ctx = context.WithValue(ctx, claimsContextKey, claims)
	return r.WithContext(ctx)
}

// AuthMiddleware guards the JSON API with a bearer token.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			logger.Error("auth failed: invalid token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
		defer cancel()
		user, claims, err := s.authenticate(ctx, tokenString)
		if err != nil {
			if isAuthError(err) {
				logger.Error("auth failed", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed", nil)
				return
			}
			logger.Error("auth failed: internal error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during authorization", nil)
			return
		}
		next.ServeHTTP(w, withUser(r, user, claims))
	})
}

// SessionMiddleware loads the user from the session cookie when there is a
// valid one. It never rejects a request; guards do that.
func (s *Server) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(s.cfg.SessionCookie)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}
		logger := GetLoggerFromCtx(r.Context())
		ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
		defer cancel()
		user, claims, err := s.authenticate(ctx, cookie.Value)
		if err != nil {
			if isAuthError(err) {
				logger.Info("dropping invalid session", slog.String("error", err.Error()))
				s.clearSession(w)
				next.ServeHTTP(w, r)
				return
			}
			logger.Error("session lookup error", slog.String("error", err.Error()))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		next.ServeHTTP(w, withUser(r, user, claims))
	})
}

// RequireLogin redirects anonymous visitors to the login page, remembering where they were going.
func (s *Server) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUserFromContext(r) == nil {
			target := s.cfg.LoginURL + "?" + url.Values{"next": {r.URL.RequestURI()}}.Encode()
			http.Redirect(w, r, target, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) LoginProhibited(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUserFromContext(r) != nil {
			http.Redirect(w, r, s.cfg.RedirectWhenLoggedIn, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
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

func GetUIDFromContext(r *http.Request) (uuid.UUID, error) {
	uid, ok := r.Context().Value(uidContextKey).(uuid.UUID)
	if !ok {
		return uuid.UUID{}, errors.New("uid invalid or doesn't exists")
	}
	return uid, nil
}

func GetUserFromContext(r *http.Request) *entity.User {
	user, _ := r.Context().Value(userContextKey).(*entity.User)
	return user
}

func getClaimsFromContext(r *http.Request) *jwtservice.Claims {
	claims, _ := r.Context().Value(claimsContextKey).(*jwtservice.Claims)
	return claims
}
