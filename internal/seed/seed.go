// Package seed fills an empty database with demo users, places and items.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	errorvalues "github.com/limbo/forgetmenot/internal/error_values"
	"github.com/limbo/forgetmenot/internal/repository"
	"github.com/limbo/forgetmenot/internal/service"
	"github.com/limbo/forgetmenot/pkg/entity"
)

const (
	DefaultUserCount = 10
	DefaultPassword  = "Password123"
	// random users are retried at most this many times per missing user
	attemptsPerUser = 20
)

type userFixture struct {
	Username, Email, FirstName, LastName string
}

var userFixtures = []userFixture{
	{"@johndoe", "john.doe@example.org", "John", "Doe"},
	{"@janedoe", "jane.doe@example.org", "Jane", "Doe"},
	{"@charlie", "charlie.johnson@example.org", "Charlie", "Johnson"},
}

type itemFixture struct {
	Name        string
	ForgetCount int
}

type placeFixture struct {
	Name  string
	Items []itemFixture
}

var johnDoePlaces = []placeFixture{
	{"Home", []itemFixture{{"Keys", 3}, {"Wallet", 2}, {"Sunglasses", 1}}},
	{"Office", []itemFixture{{"Laptop", 4}, {"Charger", 5}, {"Notebook", 2}}},
}

var (
	firstNames = []string{
		"Oliver", "Amelia", "Harry", "Isla", "George", "Ava", "Noah", "Emily", "Jack", "Sophie",
		"Leo", "Grace", "Oscar", "Freya", "Charlie", "Lily", "Arthur", "Evie", "Henry", "Ella",
	}
	lastNames = []string{
		"Smith", "Jones", "Taylor", "Brown", "Williams", "Wilson", "Evans", "Thomas", "Roberts", "Walker",
		"Wright", "Robinson", "Thompson", "White", "Hughes", "Edwards", "Green", "Hall", "Wood", "Clarke",
	}
)

func Username(firstName, lastName string) string {
	return "@" + strings.ToLower(firstName) + strings.ToLower(lastName)
}

func Email(firstName, lastName string) string {
	return firstName + "." + lastName + "@example.org"
}

type Seeder struct {
	users  repository.UsersRepositoryI
	places repository.PlacesRepositoryI
	items  repository.ItemsRepositoryI
	hasher *service.PasswordHasher
	rnd    *rand.Rand

	UserCount int
}

func New(users repository.UsersRepositoryI, places repository.PlacesRepositoryI, items repository.ItemsRepositoryI, hasher *service.PasswordHasher) *Seeder {
	if hasher == nil {
		hasher = service.NewPasswordHasher()
	}
	return &Seeder{
		users:     users,
		places:    places,
		items:     items,
		hasher:    hasher,
		rnd:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		UserCount: DefaultUserCount,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	passwordHash, err := s.hasher.Hash(DefaultPassword)
	if err != nil {
		return err
	}
	for _, f := range userFixtures {
		s.tryCreateUser(ctx, f, passwordHash)
	}
	if err = s.createRandomUsers(ctx, passwordHash); err != nil {
		return err
	}
	john, err := s.johnDoe(ctx, passwordHash)
	if err != nil {
		return err
	}
	for _, p := range johnDoePlaces {
		if err = s.createPlaceWithItems(ctx, john, p); err != nil {
			return err
		}
	}
	slog.Info("seeding complete")
	return nil
}

// tryCreateUser swallows every failure, duplicates included.
func (s *Seeder) tryCreateUser(ctx context.Context, f userFixture, passwordHash string) {
	err := s.users.Create(ctx, &entity.User{
		Username:     f.Username,
		Email:        f.Email,
		FirstName:    f.FirstName,
		LastName:     f.LastName,
		PasswordHash: passwordHash,
	})
	if err != nil {
		slog.Debug("seed user skipped", slog.String("username", f.Username), slog.String("error", err.Error()))
	}
}

func (s *Seeder) createRandomUsers(ctx context.Context, passwordHash string) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting users: %w", err)
	}
	for attempts := 0; count < s.UserCount; attempts++ {
		if attempts >= attemptsPerUser*s.UserCount {
			return fmt.Errorf("seeding users: gave up at %d/%d users", count, s.UserCount)
		}
		first := firstNames[s.rnd.IntN(len(firstNames))]
		last := lastNames[s.rnd.IntN(len(lastNames))]
		s.tryCreateUser(ctx, userFixture{
			Username:  Username(first, last),
			Email:     Email(first, last),
			FirstName: first,
			LastName:  last,
		}, passwordHash)
		if count, err = s.users.Count(ctx); err != nil {
			return fmt.Errorf("counting users: %w", err)
		}
		slog.Debug("seeding users", slog.Int("count", count), slog.Int("target", s.UserCount))
	}
	return nil
}

func (s *Seeder) johnDoe(ctx context.Context, passwordHash string) (*entity.User, error) {
	john, err := s.users.FindByUsername(ctx, userFixtures[0].Username)
	if err == nil {
		return john, nil
	}
	if !errors.Is(err, errorvalues.ErrUserNotFound) {
		return nil, err
	}
	f := userFixtures[0]
	john = &entity.User{
		Username:     f.Username,
		Email:        f.Email,
		FirstName:    f.FirstName,
		LastName:     f.LastName,
		PasswordHash: passwordHash,
	}
	if err = s.users.Create(ctx, john); err != nil {
		return nil, fmt.Errorf("creating %s: %w", f.Username, err)
	}
	return john, nil
}

func (s *Seeder) createPlaceWithItems(ctx context.Context, owner *entity.User, p placeFixture) error {
	place, _, err := s.places.GetOrCreate(ctx, p.Name, owner.ID)
	if err != nil {
		return fmt.Errorf("creating place %s: %w", p.Name, err)
	}
	for _, it := range p.Items {
		_, _, err = s.items.GetOrCreate(ctx, &entity.Item{Name: it.Name, PlaceID: place.ID, ForgetCount: it.ForgetCount})
		if err != nil {
			return fmt.Errorf("creating item %s: %w", it.Name, err)
		}
	}
	return nil
}
