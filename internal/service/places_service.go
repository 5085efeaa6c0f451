package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/forgetmenot/internal/error_values"
	"github.com/limbo/forgetmenot/internal/repository"
	"github.com/limbo/forgetmenot/pkg/entity"
)

const (
	maxItemNameLen     = 100
	msgItemNameTooLong = "Ensure this value has at most 100 characters."
)

type PlacesService struct {
	placesRepo repository.PlacesRepositoryI
	itemsRepo  repository.ItemsRepositoryI
}

func NewPlacesService(placesRepo repository.PlacesRepositoryI, itemsRepo repository.ItemsRepositoryI) *PlacesService {
	if placesRepo == nil || itemsRepo == nil {
		log.Fatal("on places service provided nil repos")
	}
	return &PlacesService{
		placesRepo: placesRepo,
		itemsRepo:  itemsRepo,
	}
}

// SplitItemNames splits a comma separated list and trims every name.
// Empty segments are kept as empty names.
func SplitItemNames(itemNames string) []string {
	names := strings.Split(itemNames, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	return names
}

func (ps *PlacesService) AddPlaceItems(ctx context.Context, uid uuid.UUID, req *PlaceItemsRequest) (*entity.Place, int, error) {
	req.normalize()
	if err := validateForm(req); err != nil {
		return nil, 0, err
	}
	names := SplitItemNames(req.ItemNames)
	for _, name := range names {
		if utf8.RuneCountInString(name) > maxItemNameLen {
			return nil, 0, errorvalues.FieldValidationError("item_names", msgItemNameTooLong)
		}
	}
	place, _, err := ps.placesRepo.GetOrCreate(ctx, req.PlaceName, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, 0, errorvalues.ErrUserNotFound
		}
		return nil, 0, errors.New("places repository error: " + err.Error())
	}
	created := 0
	for _, name := range names {
		_, isNew, err := ps.itemsRepo.GetOrCreate(ctx, &entity.Item{Name: name, PlaceID: place.ID})
		if err != nil {
			return nil, created, errors.New("items repository error: " + err.Error())
		}
		if isNew {
			created++
		}
	}
	return place, created, nil
}

func (ps *PlacesService) ListPlaces(ctx context.Context) ([]*entity.Place, error) {
	places, err := ps.placesRepo.List(ctx)
	if err != nil {
		return nil, errors.New("places repository error: " + err.Error())
	}
	return places, nil
}
