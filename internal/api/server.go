package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/forgetmenot/internal/metrics"
	"github.com/limbo/forgetmenot/internal/service"
	"github.com/limbo/forgetmenot/internal/session"
	"github.com/limbo/forgetmenot/web"
)

const (
	defaultLoginURL             = "/log_in/"
	defaultRedirectWhenLoggedIn = "/dashboard/"
	defaultSessionCookie        = "fmn_session"
	shutdownTimeout             = 10 * time.Second
)

// Config holds request handling settings that are fixed at startup.
type Config struct {
	LoginURL             string
	RedirectWhenLoggedIn string
	SessionCookie        string
	SecureCookies        bool
}

func (c *Config) setDefaults() {
	if c.LoginURL == "" {
		c.LoginURL = defaultLoginURL
	}
	if c.RedirectWhenLoggedIn == "" {
		c.RedirectWhenLoggedIn = defaultRedirectWhenLoggedIn
	}
	if c.SessionCookie == "" {
		c.SessionCookie = defaultSessionCookie
	}
}

type Server struct {
	mx              *chi.Mux
	cfg             Config
	userService     service.UserServiceI
	placesService   service.PlacesServiceI
	trackingService service.TrackingServiceI
	jwtService      JWTServiceI
	revocations     session.RevocationList
	metrics         *metrics.Metrics
	pages           *renderer
	healthCheck     func(ctx context.Context) error
}

type ServicesList struct {
	UserService     service.UserServiceI
	PlacesService   service.PlacesServiceI
	TrackingService service.TrackingServiceI
	JWTService      JWTServiceI
	// Optional, in-memory list is used when nil
	Revocations session.RevocationList
	// Optional, fresh registry is created when nil
	Metrics *metrics.Metrics
	// Optional, reports storage health on /healthz
	HealthCheck func(ctx context.Context) error
}

func New(servicesOptions *ServicesList, cfg Config) (*Server, error) {
	if servicesOptions.UserService == nil || servicesOptions.PlacesService == nil ||
		servicesOptions.TrackingService == nil || servicesOptions.JWTService == nil {
		return nil, errors.New("api server: missing required service")
	}
	cfg.setDefaults()
	pages, err := newRenderer(web.Templates)
	if err != nil {
		return nil, err
	}
	s := &Server{
		mx:              chi.NewMux(),
		cfg:             cfg,
		userService:     servicesOptions.UserService,
		placesService:   servicesOptions.PlacesService,
		trackingService: servicesOptions.TrackingService,
		jwtService:      servicesOptions.JWTService,
		revocations:     servicesOptions.Revocations,
		metrics:         servicesOptions.Metrics,
		pages:           pages,
		healthCheck:     servicesOptions.HealthCheck,
	}
	if s.revocations == nil {
		s.revocations = session.NewMemoryList()
	}
	if s.metrics == nil {
		s.metrics = metrics.New()
	}
	s.MountHandlers()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

func (s *Server) MountHandlers() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.MetricsMiddleware)

	s.mx.Get("/healthz", s.Health)
	s.mx.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Get("/places", s.ListPlaces)
			r.Post("/places", s.AddPlace)
			r.Get("/places/{placeID}/items", s.ListItems)
			r.Post("/places/{placeID}/items", s.AddItem)
			r.Post("/places/{placeID}/forgotten", s.ReportForgotten)
			r.Post("/streak", s.IncrementStreak)
		})
	})

	s.mx.Group(func(r chi.Router) {
		r.Use(s.SessionMiddleware, s.LoggerExtensionMiddleware)
		r.HandleFunc("/log_out/", s.LogOut)
		r.Group(func(r chi.Router) {
			r.Use(s.LoginProhibited)
			r.Get("/", s.HomePage)
			r.Get("/log_in/", s.LogInPage)
			r.Post("/log_in/", s.LogInPage)
			r.Get("/sign_up/", s.SignUpPage)
			r.Post("/sign_up/", s.SignUpPage)
		})
		r.Group(func(r chi.Router) {
			r.Use(s.RequireLogin)
			r.Get("/dashboard/", s.DashboardPage)
			r.Get("/profile/", s.ProfilePage)
			r.Post("/profile/", s.ProfilePage)
			r.Post("/profile/delete/", s.DeleteAccountPage)
			r.Get("/password/", s.PasswordPage)
			r.Post("/password/", s.PasswordPage)
			r.Get("/add_places_items/", s.AddPlaceItemsPage)
			r.Post("/add_places_items/", s.AddPlaceItemsPage)
			r.Get("/remember_items/{placeID}/", s.RememberItemsPage)
			r.Post("/remember_items/{placeID}/", s.RememberItemsPage)
			r.Get("/forgot_items/{placeID}/", s.ForgotItemsPage)
			r.Post("/forgot_items/{placeID}/", s.ForgotItemsPage)
			r.Get("/forget_something_else/{placeID}/", s.ForgetSomethingElsePage)
			r.Post("/forget_something_else/{placeID}/", s.ForgetSomethingElsePage)
			r.Post("/increment_streak/", s.IncrementStreakPage)
		})
	})
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if s.healthCheck != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.healthCheck(ctx); err != nil {
			GetLoggerFromCtx(r.Context()).Error("health check failed", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("unavailable"))
			return
		}
	}
	w.Write([]byte("ok"))
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
