package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "phorum/internal/errors"
	"phorum/internal/model"
	"phorum/internal/repository"
)

// UserService exposes profile and listing operations.
type UserService interface {
	GetProfile(ctx context.Context, username string) (*model.User, error)
	// UpdateBio edits the bio of the named profile. When the acting user is
	// not the profile owner the edit is silently not persisted and the
	// unchanged profile is returned.
	UpdateBio(ctx context.Context, actorID uint, username, bio string) (*model.User, error)
	UpdateOwnBio(ctx context.Context, actorID uint, bio string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	// Overview returns the administrative aggregate listing.
	Overview(ctx context.Context) (users []model.User, posts []model.Post, err error)
}

type userService struct {
	users repository.UserRepository
	posts repository.PostRepository
}

// NewUserService builds a UserService.
func NewUserService(users repository.UserRepository, posts repository.PostRepository) UserService {
	return &userService{users: users, posts: posts}
}

func (s *userService) GetProfile(ctx context.Context, username string) (*model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateBio(ctx context.Context, actorID uint, username, bio string) (*model.User, error) {
	user, err := s.GetProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	// Not the owner: the edit is ignored, not rejected.
	if user.ID != actorID {
		return user, nil
	}

	if err := s.users.UpdateBio(ctx, user.ID, bio); err != nil {
		return nil, fmt.Errorf("update bio: %w", err)
	}
	user.Bio = bio
	return user, nil
}

func (s *userService) UpdateOwnBio(ctx context.Context, actorID uint, bio string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := s.users.UpdateBio(ctx, user.ID, bio); err != nil {
		return nil, fmt.Errorf("update bio: %w", err)
	}
	user.Bio = bio
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *userService) Overview(ctx context.Context) ([]model.User, []model.Post, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list users: %w", err)
	}
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list posts: %w", err)
	}
	return users, posts, nil
}
