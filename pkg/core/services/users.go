package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mdelacruz/volunteerhub/pkg/db"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

// SignUpInput carries the fields collected by the sign-up form.
type SignUpInput struct {
	Username       string `validate:"required,min=3"`
	Password       string `validate:"required,min=6"`
	FirstName      string `validate:"required"`
	LastName       string `validate:"required"`
	Email          string `validate:"required,email"`
	Phone          string `validate:"required"`
	ProfilePicture string
	Role           string `validate:"required,oneof=admin volunteer user"`
}

// SignUp validates the input and appends a new account to the users
// collection.
func SignUp(ctx context.Context, database db.UserStore, logger *zap.Logger, input SignUpInput) (*db.User, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid sign-up: %w", err)
	}

	users, err := database.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	for _, u := range users {
		if u.Username == input.Username {
			return nil, ErrUsernameTaken
		}
		if u.Email == input.Email {
			return nil, ErrEmailTaken
		}
	}

	user := db.User{
		ID:             uuid.New().String(),
		Username:       input.Username,
		Password:       input.Password,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Phone:          input.Phone,
		ProfilePicture: input.ProfilePicture,
		Role:           input.Role,
	}

	logger.Info("Creating account",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", user.Role))

	if err := database.SetUsers(ctx, append(users, user)); err != nil {
		return nil, fmt.Errorf("failed to save users: %w", err)
	}
	return &user, nil
}

// ProfileInput carries the fields a user may edit on their own account.
type ProfileInput struct {
	Username       string `validate:"required,min=3"`
	Phone          string `validate:"required"`
	ProfilePicture string
}

// UpdateProfile rewrites the username, phone, and profile picture of the
// account matched by email. The new username must not belong to another
// account.
func UpdateProfile(ctx context.Context, database db.UserStore, logger *zap.Logger, email string, input ProfileInput) (*db.User, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	users, err := database.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	var account *db.User
	for i := range users {
		if users[i].Email == email {
			account = &users[i]
			continue
		}
		if users[i].Username == input.Username {
			return nil, ErrUsernameTaken
		}
	}
	if account == nil {
		return nil, ErrUserNotFound
	}

	account.Username = input.Username
	account.Phone = input.Phone
	account.ProfilePicture = input.ProfilePicture

	logger.Info("Updating profile",
		zap.String("user_id", account.ID),
		zap.String("email", email),
		zap.String("username", account.Username))

	if err := database.SetUsers(ctx, users); err != nil {
		return nil, fmt.Errorf("failed to save users: %w", err)
	}

	result := *account
	return &result, nil
}

// ChangePassword verifies the current password of the account matched by
// email and overwrites it with the new one. A wrong current password is an
// auth failure, not a not-found.
func ChangePassword(ctx context.Context, database db.UserStore, logger *zap.Logger, email, currentPassword, newPassword string) error {
	if err := validate.Var(newPassword, "required,min=6"); err != nil {
		return fmt.Errorf("invalid new password: %w", err)
	}

	users, err := database.Users(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch users: %w", err)
	}

	for i := range users {
		if users[i].Email != email {
			continue
		}
		if users[i].Password != currentPassword {
			return ErrInvalidCredentials
		}
		users[i].Password = newPassword

		logger.Info("Changing password",
			zap.String("user_id", users[i].ID),
			zap.String("email", email))

		if err := database.SetUsers(ctx, users); err != nil {
			return fmt.Errorf("failed to save users: %w", err)
		}
		return nil
	}
	return ErrUserNotFound
}

// FindUser matches credentials against the stored accounts.
func FindUser(ctx context.Context, database db.UserStore, logger *zap.Logger, username, password string) (*db.User, error) {
	users, err := database.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	for i := range users {
		if users[i].Username == username && users[i].Password == password {
			logger.Debug("Matched account", zap.String("username", username))
			return &users[i], nil
		}
	}
	return nil, ErrInvalidCredentials
}
