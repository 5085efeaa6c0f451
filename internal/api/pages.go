package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	errorvalues "github.com/limbo/forgetmenot/internal/error_values"
	"github.com/limbo/forgetmenot/internal/service"
	"github.com/limbo/forgetmenot/pkg/entity"
)

const (
	msgInvalidCredentials = "The credentials provided were invalid!"
	msgProfileUpdated     = "Profile updated!"
	msgPasswordUpdated    = "Password updated!"
	msgAccountDeleted     = "Your account has been deleted."
)

func formValues(r *http.Request, names ...string) map[string]string {
	values := make(map[string]string, len(names))
	for _, name := range names {
		values[name] = r.PostFormValue(name)
	}
	return values
}

// safeNext accepts only local absolute paths so the login form can't be used as an open redirect.
func safeNext(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return fallback
	}
	return next
}

// renderFormError re-renders page with field messages on validation errors
// and reports everything else as a plain HTTP error.
func (s *Server) renderFormError(w http.ResponseWriter, r *http.Request, page string, data *pageData, err error) {
	logger := GetLoggerFromCtx(r.Context())
	var ve *errorvalues.ValidationError
	switch {
	case errors.As(err, &ve):
		logger.Info("form rejected", slog.String("page", page), slog.String("error", err.Error()))
		data.Errors = ve.Fields
		s.render(w, r, http.StatusOK, page, data)
	case errors.Is(err, errorvalues.ErrNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Info("resource not found", slog.String("page", page), slog.String("error", err.Error()))
		http.NotFound(w, r)
	default:
		logger.Error("service error", slog.String("page", page), slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (s *Server) issueSession(w http.ResponseWriter, user *entity.User) error {
	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return err
	}
	s.startSession(w, token)
	return nil
}

// revokeCurrentSession puts the request's token on the revocation list for the rest of its lifetime.
func (s *Server) revokeCurrentSession(ctx context.Context, r *http.Request) error {
	claims := getClaimsFromContext(r)
	if claims == nil || claims.ExpiresAt == nil {
		return nil
	}
	return s.revocations.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}

func (s *Server) HomePage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "home", &pageData{Title: "Home"})
}

func (s *Server) LogInPage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	if r.Method == http.MethodGet {
		s.render(w, r, http.StatusOK, "log_in", &pageData{Title: "Log in", Next: r.URL.Query().Get("next")})
		return
	}
	values := formValues(r, "username", "password", "next")
	data := &pageData{Title: "Log in", Next: values["next"], Values: values}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, values["username"], values["password"])
	if err != nil {
		if errors.Is(err, errorvalues.ErrWrongCredentials) {
			logger.Info("login error: wrong credentials")
			data.Flash = []string{msgInvalidCredentials}
			s.render(w, r, http.StatusOK, "log_in", data)
			return
		}
		logger.Error("login error: service error", slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if err = s.issueSession(w, user); err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	logger.Info("successful login", slog.String("uid", user.ID.String()))
	http.Redirect(w, r, safeNext(values["next"], s.cfg.RedirectWhenLoggedIn), http.StatusFound)
}

func (s *Server) LogOut(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
	defer cancel()
	if err := s.revokeCurrentSession(ctx, r); err != nil {
		logger.Error("logout: revoking session error", slog.String("error", err.Error()))
	}
	s.clearSession(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) SignUpPage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	if r.Method == http.MethodGet {
		s.render(w, r, http.StatusOK, "sign_up", &pageData{Title: "Sign up"})
		return
	}
	values := formValues(r, "first_name", "last_name", "username", "email", "new_password", "password_confirmation")
	data := &pageData{Title: "Sign up", Values: values}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.SignUp(ctx, &service.SignUpRequest{
		FirstName:            values["first_name"],
		LastName:             values["last_name"],
		Username:             values["username"],
		Email:                values["email"],
		NewPassword:          values["new_password"],
		PasswordConfirmation: values["password_confirmation"],
	})
	if err != nil {
		s.renderFormError(w, r, "sign_up", data, err)
		return
	}
	s.metrics.IncrementUsersCreated()
	if err = s.issueSession(w, user); err != nil {
		logger.Error("sign up: generating token error", slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	logger.Info("user signed up", slog.String("uid", user.ID.String()))
	http.Redirect(w, r, s.cfg.RedirectWhenLoggedIn, http.StatusFound)
}

func (s *Server) DashboardPage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	places, err := s.placesService.ListPlaces(ctx)
	if err != nil {
		s.renderFormError(w, r, "dashboard", &pageData{}, err)
		return
	}
	s.render(w, r, http.StatusOK, "dashboard", &pageData{Title: "Dashboard", Places: places})
}

func (s *Server) ProfilePage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user := GetUserFromContext(r)
	if r.Method == http.MethodGet {
		s.render(w, r, http.StatusOK, "profile", &pageData{
			Title: "Profile",
			Values: map[string]string{
				"first_name": user.FirstName,
				"last_name":  user.LastName,
				"username":   user.Username,
				"email":      user.Email,
			},
		})
		return
	}
	values := formValues(r, "first_name", "last_name", "username", "email")
	data := &pageData{Title: "Profile", Values: values}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	_, err := s.userService.UpdateProfile(ctx, user.ID, &service.ProfileRequest{
		FirstName: values["first_name"],
		LastName:  values["last_name"],
		Username:  values["username"],
		Email:     values["email"],
	})
	if err != nil {
		s.renderFormError(w, r, "profile", data, err)
		return
	}
	logger.Info("profile updated")
	s.redirectWithFlash(w, r, s.cfg.RedirectWhenLoggedIn, msgProfileUpdated)
}

func (s *Server) PasswordPage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	if r.Method == http.MethodGet {
		s.render(w, r, http.StatusOK, "password", &pageData{Title: "Change password"})
		return
	}
	values := formValues(r, "password", "new_password", "password_confirmation")
	data := &pageData{Title: "Change password", Values: values}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.ChangePassword(ctx, GetUserFromContext(r).ID, &service.PasswordRequest{
		Password:             values["password"],
		NewPassword:          values["new_password"],
		PasswordConfirmation: values["password_confirmation"],
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrWrongCredentials) {
			err = errorvalues.FieldValidationError("password", service.MsgInvalidCurrentPassword)
		}
		s.renderFormError(w, r, "password", data, err)
		return
	}
	// the user stays logged in on a fresh token
	if err = s.revokeCurrentSession(ctx, r); err != nil {
		logger.Error("password change: revoking session error", slog.String("error", err.Error()))
	}
	if err = s.issueSession(w, user); err != nil {
		logger.Error("password change: generating token error", slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	logger.Info("password changed")
	s.redirectWithFlash(w, r, s.cfg.RedirectWhenLoggedIn, msgPasswordUpdated)
}

func (s *Server) DeleteAccountPage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err := s.userService.DeleteAccount(ctx, GetUserFromContext(r).ID, r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, errorvalues.ErrWrongCredentials) {
			logger.Info("account deletion: wrong password")
			s.redirectWithFlash(w, r, "/profile/", service.MsgInvalidCurrentPassword)
			return
		}
		logger.Error("account deletion error", slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if err = s.revokeCurrentSession(ctx, r); err != nil {
		logger.Error("account deletion: revoking session error", slog.String("error", err.Error()))
	}
	s.clearSession(w)
	logger.Info("account deleted")
	s.redirectWithFlash(w, r, "/", msgAccountDeleted)
}
