package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/forgetmenot/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database, filling in generated ID
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by username. Used for login
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// Looks up user by uid. Used by session middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Lists users ordered by last and first name
	List(ctx context.Context) ([]*entity.User, error)
	Count(ctx context.Context) (int, error)
	// Updates first/last name, username and email only
	UpdateProfile(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, uid uuid.UUID, passwordHash string) error
	// Adds one to user's streak, returns new value
	IncrementStreak(ctx context.Context, uid uuid.UUID) (int, error)
	// Deletes user together with owned places and items
	Delete(ctx context.Context, uid uuid.UUID) error
}

type PlacesRepositoryI interface {
	// Returns place with given name, creating it for userID if absent. created reports an insert
	GetOrCreate(ctx context.Context, name string, userID uuid.UUID) (place *entity.Place, created bool, err error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Place, error)
	// Lists every place ordered by name
	List(ctx context.Context) ([]*entity.Place, error)
}

type ItemsRepositoryI interface {
	// Returns item (name, place), creating it with item.ForgetCount if absent
	GetOrCreate(ctx context.Context, item *entity.Item) (result *entity.Item, created bool, err error)
	// Strictly creates an item; fails with ErrItemExists on duplicates
	Create(ctx context.Context, item *entity.Item) error
	// Lists place's items, most forgotten first
	ListByForgetCount(ctx context.Context, placeID uuid.UUID) ([]*entity.Item, error)
	// Lists place's items ordered by name
	ListByName(ctx context.Context, placeID uuid.UUID) ([]*entity.Item, error)
	// Resets user's streak and bumps forget count of every item in one transaction
	MarkForgotten(ctx context.Context, userID uuid.UUID, itemIDs []uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
