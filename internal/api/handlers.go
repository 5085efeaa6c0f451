package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/forgetmenot/internal/error_values"
	"github.com/limbo/forgetmenot/internal/service"
	"github.com/limbo/forgetmenot/pkg/entity"
	"github.com/limbo/forgetmenot/pkg/httputil"
)

type RegisterRequest struct {
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	Username             string `json:"username"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	UserID string `json:"uid"`
	Token  string `json:"token"`
}

type AddPlaceRequest struct {
	PlaceName string `json:"place_name"`
	ItemNames string `json:"item_names"`
}

type AddPlaceResponse struct {
	Place        *entity.Place `json:"place"`
	CreatedItems int           `json:"created_items"`
}

type AddItemRequest struct {
	ItemName string `json:"item_name"`
}

type ForgottenRequest struct {
	Items []uuid.UUID `json:"items"`
}

type PlaceItemsResponse struct {
	Place *entity.Place  `json:"place"`
	Items []*entity.Item `json:"items"`
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return sonic.ConfigDefault.NewDecoder(r.Body).Decode(v)
}

// writeServiceError maps service errors onto JSON error responses.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	var ve *errorvalues.ValidationError
	switch {
	case errors.As(err, &ve):
		logger.Info(op+" error: validation failed", slog.String("error", err.Error()))
		httputil.WriteFieldErrors(w, ve.Fields)
	case errors.Is(err, errorvalues.ErrWrongCredentials):
		logger.Info(op + " error: wrong credentials")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid username or password", nil)
	case errors.Is(err, errorvalues.ErrWrongOwner), errors.Is(err, errorvalues.ErrNotFound):
		logger.Info(op+" error: not found", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusNotFound, "resource not found", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
	}
}

func (s *Server) writeToken(w http.ResponseWriter, logger *slog.Logger, status int, user *entity.User) {
	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, status, AuthResponse{
		UserID: user.ID.String(),
		Token:  token,
	})
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.SignUp(ctx, &service.SignUpRequest{
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Username:             req.Username,
		Email:                req.Email,
		NewPassword:          req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		writeServiceError(w, logger, "registration", err)
		return
	}
	s.metrics.IncrementUsersCreated()
	s.writeToken(w, logger, http.StatusCreated, user)
	logger.Info("successful registration", slog.String("uid", user.ID.String()))
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Username, req.Password)
	if err != nil {
		writeServiceError(w, logger, "login", err)
		return
	}
	s.writeToken(w, logger, http.StatusOK, user)
	logger.Info("successful login", slog.String("uid", user.ID.String()))
}

func (s *Server) ListPlaces(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	places, err := s.placesService.ListPlaces(ctx)
	if err != nil {
		writeServiceError(w, logger, "listing places", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"places": places})
}

func (s *Server) AddPlace(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add place error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req AddPlaceRequest
	if err = decodeBody(r, &req); err != nil {
		logger.Error("add place error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	place, created, err := s.placesService.AddPlaceItems(ctx, uid, &service.PlaceItemsRequest{
		PlaceName: req.PlaceName,
		ItemNames: req.ItemNames,
	})
	if err != nil {
		writeServiceError(w, logger, "adding place", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, AddPlaceResponse{Place: place, CreatedItems: created})
	logger.Info("place items saved", slog.String("place_id", place.ID.String()))
}

func (s *Server) ListItems(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	placeID, ok := placeIDParam(r)
	if !ok {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid place id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	place, items, err := s.trackingService.RememberItems(ctx, uid, placeID)
	if err != nil {
		writeServiceError(w, logger, "listing items", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, PlaceItemsResponse{Place: place, Items: items})
}

func (s *Server) AddItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	placeID, ok := placeIDParam(r)
	if !ok {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid place id", nil)
		return
	}
	var req AddItemRequest
	if err := decodeBody(r, &req); err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	item, err := s.trackingService.ForgetSomethingElse(ctx, placeID, &service.ItemRequest{ItemName: req.ItemName})
	if err != nil {
		writeServiceError(w, logger, "adding item", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, item)
	logger.Info("item added", slog.String("item_id", item.ID.String()))
}

func (s *Server) ReportForgotten(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	placeID, ok := placeIDParam(r)
	if !ok {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid place id", nil)
		return
	}
	var req ForgottenRequest
	if err = decodeBody(r, &req); err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err = s.trackingService.ForgotItems(ctx, uid, placeID, req.Items); err != nil {
		writeServiceError(w, logger, "reporting forgotten items", err)
		return
	}
	s.metrics.ObserveForgotten(len(req.Items))
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"forgotten": len(req.Items), "streaks": 0})
	logger.Info("items forgotten", slog.Int("count", len(req.Items)))
}

func (s *Server) IncrementStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
	defer cancel()
	streaks, err := s.userService.IncrementStreak(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "incrementing streak", err)
		return
	}
	s.metrics.IncrementStreak()
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"streaks": streaks})
}
