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

const (
	msgUsernameTaken = "User with this Username already exists."
	msgEmailTaken    = "User with this Email already exists."
)

type UserService struct {
	repo   repository.UsersRepositoryI
	hasher *PasswordHasher
}

func NewUserService(usersRepo repository.UsersRepositoryI, hasher *PasswordHasher) *UserService {
	if usersRepo == nil {
		log.Fatal("provided nil usersRepo")
	}
	if hasher == nil {
		hasher = NewPasswordHasher()
	}
	return &UserService{
		repo:   usersRepo,
		hasher: hasher,
	}
}

func (us *UserService) SignUp(ctx context.Context, req *SignUpRequest) (*entity.User, error) {
	req.normalize()
	err := validateForm(req,
		passwordStrength("new_password", req.NewPassword),
		passwordsMatch("password_confirmation", req.NewPassword, req.PasswordConfirmation),
	)
	if err != nil {
		return nil, err
	}
	passwordHash, err := us.hasher.Hash(req.NewPassword)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: passwordHash,
	}
	if err = us.repo.Create(ctx, user); err != nil {
		if uniqErr := uniquenessError(err); uniqErr != nil {
			return nil, uniqErr
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) Login(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := us.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if !us.hasher.Matches(user.PasswordHash, password) {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

// UpdateProfile changes names, username and email only. Password and streaks stay untouched.
func (us *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req *ProfileRequest) (*entity.User, error) {
	req.normalize()
	if err := validateForm(req); err != nil {
		return nil, err
	}
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Username = req.Username
	user.Email = req.Email
	if err = us.repo.UpdateProfile(ctx, user); err != nil {
		if uniqErr := uniquenessError(err); uniqErr != nil {
			return nil, uniqErr
		}
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository updating error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) ChangePassword(ctx context.Context, id uuid.UUID, req *PasswordRequest) (*entity.User, error) {
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !us.hasher.Matches(user.PasswordHash, req.Password) {
		return nil, errorvalues.ErrWrongCredentials
	}
	err = validateForm(req,
		passwordStrength("new_password", req.NewPassword),
		passwordsMatch("password_confirmation", req.NewPassword, req.PasswordConfirmation),
	)
	if err != nil {
		return nil, err
	}
	passwordHash, err := us.hasher.Hash(req.NewPassword)
	if err != nil {
		return nil, err
	}
	if err = us.repo.UpdatePassword(ctx, id, passwordHash); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository updating error: " + err.Error())
	}
	user.PasswordHash = passwordHash
	return user, nil
}

// IncrementStreak is unconditional: it does not look at places or items.
func (us *UserService) IncrementStreak(ctx context.Context, id uuid.UUID) (int, error) {
	streaks, err := us.repo.IncrementStreak(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return 0, err
		}
		return 0, errors.New("repository updating error: " + err.Error())
	}
	return streaks, nil
}

func (us *UserService) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !us.hasher.Matches(user.PasswordHash, password) {
		return errorvalues.ErrWrongCredentials
	}
	err = us.repo.Delete(ctx, user.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}

func uniquenessError(err error) error {
	switch {
	case errors.Is(err, errorvalues.ErrUsernameTaken):
		return errorvalues.FieldValidationError("username", msgUsernameTaken)
	case errors.Is(err, errorvalues.ErrEmailTaken):
		return errorvalues.FieldValidationError("email", msgEmailTaken)
	}
	return nil
}
