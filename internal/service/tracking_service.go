package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/forgetmenot/internal/error_values"
	"github.com/limbo/forgetmenot/internal/repository"
	"github.com/limbo/forgetmenot/pkg/entity"
)

const msgItemExists = "Item with this Name and Place already exists."

// TrackingService drives the remember / forgot workflow of a place.
type TrackingService struct {
	placesRepo repository.PlacesRepositoryI
	itemsRepo  repository.ItemsRepositoryI
}

func NewTrackingService(placesRepo repository.PlacesRepositoryI, itemsRepo repository.ItemsRepositoryI) *TrackingService {
	if placesRepo == nil || itemsRepo == nil {
		log.Fatal("on tracking service provided nil repos")
	}
	return &TrackingService{
		placesRepo: placesRepo,
		itemsRepo:  itemsRepo,
	}
}

func (ts *TrackingService) getPlace(ctx context.Context, placeID uuid.UUID) (*entity.Place, error) {
	place, err := ts.placesRepo.GetByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPlaceNotFound) {
			return nil, err
		}
		return nil, errors.New("places repository error: " + err.Error())
	}
	return place, nil
}

func (ts *TrackingService) getOwnedPlace(ctx context.Context, uid, placeID uuid.UUID) (*entity.Place, error) {
	place, err := ts.getPlace(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if place.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return place, nil
}

func (ts *TrackingService) RememberItems(ctx context.Context, uid, placeID uuid.UUID) (*entity.Place, []*entity.Item, error) {
	place, err := ts.getOwnedPlace(ctx, uid, placeID)
	if err != nil {
		return nil, nil, err
	}
	items, err := ts.itemsRepo.ListByForgetCount(ctx, place.ID)
	if err != nil {
		return nil, nil, errors.New("items repository error: " + err.Error())
	}
	return place, items, nil
}

// GoodToGo mutates nothing, streaks included.
func (ts *TrackingService) GoodToGo(ctx context.Context, uid, placeID uuid.UUID) error {
	_, err := ts.getOwnedPlace(ctx, uid, placeID)
	return err
}

func (ts *TrackingService) ForgottenCandidates(ctx context.Context, placeID uuid.UUID) (*entity.Place, []*entity.Item, error) {
	place, err := ts.getPlace(ctx, placeID)
	if err != nil {
		return nil, nil, err
	}
	items, err := ts.itemsRepo.ListByName(ctx, place.ID)
	if err != nil {
		return nil, nil, errors.New("items repository error: " + err.Error())
	}
	return place, items, nil
}

// ForgotItems resets the user's streak and bumps every submitted item. Place
// ownership is not checked here.
func (ts *TrackingService) ForgotItems(ctx context.Context, uid, placeID uuid.UUID, itemIDs []uuid.UUID) error {
	if _, err := ts.getPlace(ctx, placeID); err != nil {
		return err
	}
	err := ts.itemsRepo.MarkForgotten(ctx, uid, itemIDs)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotFound) {
			return err
		}
		return errors.New("items repository error: " + err.Error())
	}
	return nil
}

func (ts *TrackingService) ForgetSomethingElse(ctx context.Context, placeID uuid.UUID, req *ItemRequest) (*entity.Item, error) {
	place, err := ts.getPlace(ctx, placeID)
	if err != nil {
		return nil, err
	}
	req.normalize()
	if err = validateForm(req); err != nil {
		return nil, err
	}
	item := &entity.Item{Name: req.ItemName, PlaceID: place.ID}
	if err = ts.itemsRepo.Create(ctx, item); err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrItemExists):
			return nil, errorvalues.FieldValidationError("item_name", msgItemExists)
		case errors.Is(err, errorvalues.ErrPlaceNotFound):
			return nil, err
		}
		return nil, errors.New("items repository error: " + err.Error())
	}
	return item, nil
}
