package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"foodiegram/internal/domain"
	"foodiegram/internal/repository"
)

// fallback display name for signups that omit one
const defaultSignupName = "Albert"

// UserService covers account creation and the public profile surface.
type UserService interface {
	Signup(ctx context.Context, email, password, fullName string, role domain.Role) (*domain.User, error)
	GetProfile(ctx context.Context, userID int64) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID int64, bio, profilePicture string) (*domain.Profile, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Signup(ctx context.Context, email, password, fullName string, role domain.Role) (*domain.User, error) {
	email = strings.TrimSpace(email)
	fullName = strings.TrimSpace(fullName)

	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	if role == "" {
		role = domain.RoleUser
	}
	if fullName == "" {
		fullName = defaultSignupName
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		Username:     usernameFromEmail(email),
		Name:         fullName,
		PasswordHash: string(hash),
		Role:         role,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.PublicProfile(), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int64, bio, profilePicture string) (*domain.Profile, error) {
	if err := s.users.UpdateProfile(ctx, userID, bio, profilePicture); err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.PublicProfile(), nil
}

func usernameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
