package service_test

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/forgetmenot/internal/error_values"
	"github.com/limbo/forgetmenot/pkg/entity"
)

type mockState int

const (
	stateSuccess mockState = iota
	stateDBError
	stateUserNotFound
	stateUsernameTaken
	stateEmailTaken
	statePlaceNotFound
	stateItemNotFound
	stateItemExists
	stateOwnerNotFound
	stateAlreadyExists
)

var (
	userID       = uuid.New()
	otherUserID  = uuid.New()
	placeID      = uuid.New()
	testPassword = "Password123"
	testUser     = entity.User{
		ID:        userID,
		Username:  "@johndoe",
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.org",
		Streaks:   3,
	}
	testPlace = entity.Place{
		ID:     placeID,
		Name:   "Home",
		UserID: userID,
	}
	keys   = entity.Item{ID: uuid.New(), Name: "Keys", PlaceID: placeID, ForgetCount: 3}
	wallet = entity.Item{ID: uuid.New(), Name: "Wallet", PlaceID: placeID, ForgetCount: 2}
)

type usersRepoMock struct {
	state        mockState
	passwordHash string

	created       *entity.User
	updated       *entity.User
	newHash       string
	deleted       uuid.UUID
	incrementedBy int
}

func (m *usersRepoMock) user() *entity.User {
	u := testUser
	u.PasswordHash = m.passwordHash
	return &u
}

func (m *usersRepoMock) Create(ctx context.Context, user *entity.User) error {
	switch m.state {
	case stateDBError:
		return errors.New("db error")
	case stateUsernameTaken:
		return errorvalues.ErrUsernameTaken
	case stateEmailTaken:
		return errorvalues.ErrEmailTaken
	default:
		user.ID = userID
		m.created = user
		return nil
	}
}

func (m *usersRepoMock) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	switch m.state {
	case stateDBError:
		return nil, errors.New("db error")
	case stateUserNotFound:
		return nil, errorvalues.ErrUserNotFound
	default:
		if username != testUser.Username {
			return nil, errorvalues.ErrUserNotFound
		}
		return m.user(), nil
	}
}

func (m *usersRepoMock) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	switch m.state {
	case stateDBError:
		return nil, errors.New("db error")
	case stateUserNotFound:
		return nil, errorvalues.ErrUserNotFound
	default:
		return m.user(), nil
	}
}

func (m *usersRepoMock) List(ctx context.Context) ([]*entity.User, error) {
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	return []*entity.User{m.user()}, nil
}

func (m *usersRepoMock) Count(ctx context.Context) (int, error) {
	if m.state == stateDBError {
		return 0, errors.New("db error")
	}
	return 1, nil
}

func (m *usersRepoMock) UpdateProfile(ctx context.Context, user *entity.User) error {
	switch m.state {
	case stateUsernameTaken:
		return errorvalues.ErrUsernameTaken
	case stateEmailTaken:
		return errorvalues.ErrEmailTaken
	default:
		m.updated = user
		return nil
	}
}

func (m *usersRepoMock) UpdatePassword(ctx context.Context, uid uuid.UUID, passwordHash string) error {
	m.newHash = passwordHash
	return nil
}

func (m *usersRepoMock) IncrementStreak(ctx context.Context, uid uuid.UUID) (int, error) {
	switch m.state {
	case stateDBError:
		return 0, errors.New("db error")
	case stateUserNotFound:
		return 0, errorvalues.ErrUserNotFound
	default:
		m.incrementedBy++
		return testUser.Streaks + m.incrementedBy, nil
	}
}

func (m *usersRepoMock) Delete(ctx context.Context, uid uuid.UUID) error {
	if m.state == stateDBError {
		return errors.New("db error")
	}
	m.deleted = uid
	return nil
}

type placesRepoMock struct {
	state mockState

	createdName  string
	createdOwner uuid.UUID
}

func (m *placesRepoMock) GetOrCreate(ctx context.Context, name string, uid uuid.UUID) (*entity.Place, bool, error) {
	switch m.state {
	case stateDBError:
		return nil, false, errors.New("db error")
	case stateOwnerNotFound:
		return nil, false, errorvalues.ErrOwnerNotFound
	case stateAlreadyExists:
		return &testPlace, false, nil
	default:
		m.createdName = name
		m.createdOwner = uid
		return &entity.Place{ID: placeID, Name: name, UserID: uid}, true, nil
	}
}

func (m *placesRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.Place, error) {
	switch m.state {
	case stateDBError:
		return nil, errors.New("db error")
	case statePlaceNotFound:
		return nil, errorvalues.ErrPlaceNotFound
	default:
		return &testPlace, nil
	}
}

func (m *placesRepoMock) List(ctx context.Context) ([]*entity.Place, error) {
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	return []*entity.Place{&testPlace}, nil
}

type itemsRepoMock struct {
	state mockState
	// names already stored for the place; GetOrCreate reports them as not created
	existing map[string]bool

	requested []string
	forgotten []uuid.UUID
	forgotBy  uuid.UUID
	created   *entity.Item
}

func (m *itemsRepoMock) GetOrCreate(ctx context.Context, item *entity.Item) (*entity.Item, bool, error) {
	if m.state == stateDBError {
		return nil, false, errors.New("db error")
	}
	m.requested = append(m.requested, item.Name)
	if m.existing == nil {
		m.existing = make(map[string]bool)
	}
	if m.existing[item.Name] {
		return item, false, nil
	}
	m.existing[item.Name] = true
	item.ID = uuid.New()
	return item, true, nil
}

func (m *itemsRepoMock) Create(ctx context.Context, item *entity.Item) error {
	switch m.state {
	case stateDBError:
		return errors.New("db error")
	case stateItemExists:
		return errorvalues.ErrItemExists
	default:
		item.ID = uuid.New()
		m.created = item
		return nil
	}
}

func (m *itemsRepoMock) ListByForgetCount(ctx context.Context, placeID uuid.UUID) ([]*entity.Item, error) {
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	return []*entity.Item{&keys, &wallet}, nil
}

func (m *itemsRepoMock) ListByName(ctx context.Context, placeID uuid.UUID) ([]*entity.Item, error) {
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	return []*entity.Item{&keys, &wallet}, nil
}

func (m *itemsRepoMock) MarkForgotten(ctx context.Context, uid uuid.UUID, itemIDs []uuid.UUID) error {
	switch m.state {
	case stateDBError:
		return errors.New("db error")
	case stateItemNotFound:
		return errorvalues.ErrItemNotFound
	case stateUserNotFound:
		return errorvalues.ErrUserNotFound
	default:
		m.forgotBy = uid
		m.forgotten = append(m.forgotten, itemIDs...)
		return nil
	}
}
