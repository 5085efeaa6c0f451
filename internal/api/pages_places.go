package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/forgetmenot/internal/error_values"
	"github.com/limbo/forgetmenot/internal/service"
)

func placeIDParam(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "placeID"))
	return id, err == nil
}

// submittedItemIDs reads checked items. Both "items[]" and "items" are accepted.
func submittedItemIDs(r *http.Request) ([]uuid.UUID, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	var raw []string
	raw = append(raw, r.PostForm["items[]"]...)
	raw = append(raw, r.PostForm["items"]...)
	ids := make([]uuid.UUID, 0, len(raw))
	for _, v := range raw {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, errorvalues.ErrItemNotFound
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *Server) AddPlaceItemsPage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	if r.Method == http.MethodGet {
		s.render(w, r, http.StatusOK, "add_place_items", &pageData{Title: "Add places and items"})
		return
	}
	values := formValues(r, "place_name", "item_names")
	data := &pageData{Title: "Add places and items", Values: values}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	place, created, err := s.placesService.AddPlaceItems(ctx, GetUserFromContext(r).ID, &service.PlaceItemsRequest{
		PlaceName: values["place_name"],
		ItemNames: values["item_names"],
	})
	if err != nil {
		s.renderFormError(w, r, "add_place_items", data, err)
		return
	}
	logger.Info("place items saved", slog.String("place_id", place.ID.String()), slog.Int("created", created))
	http.Redirect(w, r, s.cfg.RedirectWhenLoggedIn, http.StatusFound)
}

func (s *Server) RememberItemsPage(w http.ResponseWriter, r *http.Request) {
	placeID, ok := placeIDParam(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	uid := GetUserFromContext(r).ID
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if r.Method == http.MethodPost {
		if err := s.trackingService.GoodToGo(ctx, uid, placeID); err != nil {
			s.renderFormError(w, r, "remember_items", &pageData{}, err)
			return
		}
		http.Redirect(w, r, s.cfg.RedirectWhenLoggedIn, http.StatusFound)
		return
	}
	place, items, err := s.trackingService.RememberItems(ctx, uid, placeID)
	if err != nil {
		s.renderFormError(w, r, "remember_items", &pageData{}, err)
		return
	}
	s.render(w, r, http.StatusOK, "remember_items", &pageData{Title: place.Name, Place: place, Items: items})
}

func (s *Server) ForgotItemsPage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	placeID, ok := placeIDParam(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if r.Method == http.MethodPost {
		ids, err := submittedItemIDs(r)
		if err == nil {
			err = s.trackingService.ForgotItems(ctx, GetUserFromContext(r).ID, placeID, ids)
		}
		if err != nil {
			s.renderFormError(w, r, "forgot_items", &pageData{}, err)
			return
		}
		s.metrics.ObserveForgotten(len(ids))
		logger.Info("items forgotten", slog.String("place_id", placeID.String()), slog.Int("count", len(ids)))
		http.Redirect(w, r, s.cfg.RedirectWhenLoggedIn, http.StatusFound)
		return
	}
	place, items, err := s.trackingService.ForgottenCandidates(ctx, placeID)
	if err != nil {
		s.renderFormError(w, r, "forgot_items", &pageData{}, err)
		return
	}
	s.render(w, r, http.StatusOK, "forgot_items", &pageData{Title: place.Name, Place: place, Items: items})
}

func (s *Server) ForgetSomethingElsePage(w http.ResponseWriter, r *http.Request) {
	placeID, ok := placeIDParam(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	place, _, err := s.trackingService.ForgottenCandidates(ctx, placeID)
	if err != nil {
		s.renderFormError(w, r, "forgot_something_else", &pageData{}, err)
		return
	}
	data := &pageData{Title: place.Name, Place: place}
	if r.Method == http.MethodGet {
		s.render(w, r, http.StatusOK, "forgot_something_else", data)
		return
	}
	data.Values = formValues(r, "item_name")
	item, err := s.trackingService.ForgetSomethingElse(ctx, placeID, &service.ItemRequest{ItemName: data.Values["item_name"]})
	if err != nil {
		s.renderFormError(w, r, "forgot_something_else", data, err)
		return
	}
	GetLoggerFromCtx(r.Context()).Info("item added", slog.String("item_id", item.ID.String()))
	http.Redirect(w, r, "/forgot_items/"+placeID.String()+"/", http.StatusFound)
}

func (s *Server) IncrementStreakPage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
	defer cancel()
	streaks, err := s.userService.IncrementStreak(ctx, GetUserFromContext(r).ID)
	if err != nil {
		logger.Error("increment streak error", slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	s.metrics.IncrementStreak()
	logger.Info("streak incremented", slog.Int("streaks", streaks))
	http.Redirect(w, r, s.cfg.RedirectWhenLoggedIn, http.StatusFound)
}
