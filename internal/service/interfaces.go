package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/limbo/forgetmenot/pkg/entity"
)

type SignUpRequest struct {
	FirstName            string `form:"first_name" validate:"required,max=50"`
	LastName             string `form:"last_name" validate:"required,max=50"`
	Username             string `form:"username" validate:"required,max=30,username"`
	Email                string `form:"email" validate:"required,max=254,email"`
	NewPassword          string `form:"new_password" validate:"required,max=72"`
	PasswordConfirmation string `form:"password_confirmation" validate:"required"`
}

type ProfileRequest struct {
	FirstName string `form:"first_name" validate:"required,max=50"`
	LastName  string `form:"last_name" validate:"required,max=50"`
	Username  string `form:"username" validate:"required,max=30,username"`
	Email     string `form:"email" validate:"required,max=254,email"`
}

type PasswordRequest struct {
	Password             string `form:"password" validate:"required"`
	NewPassword          string `form:"new_password" validate:"required,max=72"`
	PasswordConfirmation string `form:"password_confirmation" validate:"required"`
}

type PlaceItemsRequest struct {
	PlaceName string `form:"place_name" validate:"required,max=100"`
	ItemNames string `form:"item_names" validate:"required,max=255"`
}

type ItemRequest struct {
	ItemName string `form:"item_name" validate:"required,max=100"`
}

// normalize trims surrounding whitespace so required/max see the stored value.
// Passwords are left as typed.
func (r *SignUpRequest) normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
}

func (r *ProfileRequest) normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
}

func (r *PlaceItemsRequest) normalize() {
	r.PlaceName = strings.TrimSpace(r.PlaceName)
	r.ItemNames = strings.TrimSpace(r.ItemNames)
}

func (r *ItemRequest) normalize() {
	r.ItemName = strings.TrimSpace(r.ItemName)
}

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_services.go -package=mocks

type UserServiceI interface {
	// Validates sign up form, hashes the password and creates the user
	SignUp(ctx context.Context, req *SignUpRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back user's data
	Login(ctx context.Context, username, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *ProfileRequest) (*entity.User, error)
	// Verifies current password before replacing the stored hash
	ChangePassword(ctx context.Context, id uuid.UUID, req *PasswordRequest) (*entity.User, error)
	IncrementStreak(ctx context.Context, id uuid.UUID) (int, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type PlacesServiceI interface {
	// Get-or-creates the place and each comma separated item. Returns number of new items
	AddPlaceItems(ctx context.Context, uid uuid.UUID, req *PlaceItemsRequest) (*entity.Place, int, error)
	ListPlaces(ctx context.Context) ([]*entity.Place, error)
}

type TrackingServiceI interface {
	// Owner-only view of the place's items, most forgotten first
	RememberItems(ctx context.Context, uid, placeID uuid.UUID) (*entity.Place, []*entity.Item, error)
	// Owner confirms nothing was forgotten
	GoodToGo(ctx context.Context, uid, placeID uuid.UUID) error
	ForgottenCandidates(ctx context.Context, placeID uuid.UUID) (*entity.Place, []*entity.Item, error)
	ForgotItems(ctx context.Context, uid, placeID uuid.UUID, itemIDs []uuid.UUID) error
	ForgetSomethingElse(ctx context.Context, placeID uuid.UUID, req *ItemRequest) (*entity.Item, error)
}
