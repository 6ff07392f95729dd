package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherly/api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUsernameTaken is returned when registering a username that exists.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrEmailTaken is returned when registering an email that exists.
	ErrEmailTaken = errors.New("email already exists")
	// ErrInvalidCredentials is returned on a failed login. It never says
	// which of the two credentials was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type RegisterInput struct {
	Username string `json:"username" binding:"required,min=3" validate:"required,min=3"`
	Password string `json:"password" binding:"required,min=8" validate:"required,min=8"`
	Email    string `json:"email" binding:"required,email" validate:"required,email"`
	Name     string `json:"name" binding:"required" validate:"required"`
}

type UserService struct {
	store models.Store
}

func NewUserService(store models.Store) *UserService {
	return &UserService{store: store}
}

// Register creates a new account. The admin flag is always false here;
// promotion happens only through a direct store update, never through
// anything a registering client controls.
func (us *UserService) Register(ctx context.Context, input RegisterInput) (models.User, error) {
	if err := models.Validate.Struct(input); err != nil {
		return models.User{}, fmt.Errorf("invalid registration data: %w", err)
	}

	if _, err := us.store.GetUserByUsername(ctx, input.Username); err == nil {
		return models.User{}, ErrUsernameTaken
	} else if !errors.Is(err, models.ErrNotFound) {
		return models.User{}, err
	}
	if _, err := us.store.GetUserByEmail(ctx, input.Email); err == nil {
		return models.User{}, ErrEmailTaken
	} else if !errors.Is(err, models.ErrNotFound) {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	return us.store.CreateUser(ctx, models.User{
		Username: input.Username,
		Password: string(hashed),
		Email:    input.Email,
		Name:     input.Name,
		IsAdmin:  false,
	})
}

// Authenticate verifies a username/password pair.
func (us *UserService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	user, err := us.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id int) (models.User, error) {
	return us.store.GetUser(ctx, id)
}

// UpdateProfile applies a profile patch. A new password is hashed
// before it reaches the store.
func (us *UserService) UpdateProfile(ctx context.Context, id int, patch models.UserPatch) (models.User, error) {
	if patch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		h := string(hashed)
		patch.Password = &h
	}
	// Profile updates can never touch the admin flag.
	patch.IsAdmin = nil

	return us.store.UpdateUser(ctx, id, patch)
}
