package application

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-task-manager/internal/domain/entity"
	repo "github.com/oksasatya/go-task-manager/internal/domain/repository"
	"github.com/oksasatya/go-task-manager/pkg/helpers"
)

// AvatarStorage persists profile pictures and returns a URL referencing them.
type AvatarStorage interface {
	Upload(ctx context.Context, userID int64, r io.Reader, filename, contentType string) (string, error)
}

type ProfileService struct {
	Users   repo.UserRepository
	Avatars AvatarStorage
	Logger  *logrus.Logger
}

func NewProfileService(users repo.UserRepository, avatars AvatarStorage, logger *logrus.Logger) *ProfileService {
	return &ProfileService{Users: users, Avatars: avatars, Logger: logger}
}

type UpdateProfileInput struct {
	// nil leaves the username alone; "" clears it.
	Username *string
}

func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// UpdateProfile changes the username only; email and password are not editable here.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Username == nil {
		return u, nil
	}
	name := strings.TrimSpace(*in.Username)
	if name == u.Username {
		return u, nil
	}
	if name != "" {
		other, err := s.Users.GetByUsername(ctx, name)
		switch {
		case err == nil && other.ID != u.ID:
			return nil, ErrUsernameTaken
		case err != nil && !errors.Is(err, repo.ErrNotFound):
			return nil, err
		}
	}
	u.Username = name
	if err := s.Users.Update(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		helpers.LogError(s.Logger, "update profile failed", err, logrus.Fields{"user_id": u.ID})
		return nil, err
	}
	return u, nil
}

// UploadAvatar stores an image and records its URL as the profile picture.
func (s *ProfileService) UploadAvatar(ctx context.Context, userID int64, r io.Reader, filename, contentType string) (*entity.User, error) {
	if s.Avatars == nil {
		return nil, ErrStorageUnavailable
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, invalidInput("avatar must be an image, got %q", contentType)
	}
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	url, err := s.Avatars.Upload(ctx, u.ID, r, filename, contentType)
	if err != nil {
		helpers.LogError(s.Logger, "avatar upload failed", err, logrus.Fields{"user_id": u.ID})
		return nil, err
	}
	u.ProfilePicture = url
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteAccount removes the user and, by cascade, all their notebooks and notes.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := s.Users.Delete(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	helpers.LogInfo(s.Logger, "account deleted", logrus.Fields{"user_id": userID})
	return nil
}
