package application

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
	repo "github.com/sportsconnect/sportsconnect-api/internal/domain/repository"
)

type PhotoService struct {
	Photos  repo.ProfilePhotoRepository
	Storage ObjectStorage
	Logger  *logrus.Logger
}

// ObjectKey builds a collision resistant key: the file stem, a uuid and the
// original extension.
func ObjectKey(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	stem, ext := name, ""
	if i := strings.LastIndex(name, "."); i >= 0 {
		stem, ext = name[:i], name[i+1:]
	}
	key := stem + uuid.NewString()
	if ext != "" {
		key += "." + ext
	}
	return key
}

// Upload stores a new profile photo for the user and returns its public URL.
// The new object is written first; the previous photo is only removed once
// the new row is committed.
func (s *PhotoService) Upload(ctx context.Context, userID, filename, contentType string, r io.Reader) (string, error) {
	if s.Storage == nil {
		return "", NewError(KindUnavailable, "photo storage is not configured")
	}
	key := ObjectKey(filename)
	url, err := s.Storage.Upload(ctx, key, contentType, r)
	if err != nil {
		return "", WrapError(KindUpstream, "photo upload failed", err)
	}

	photo := &entity.ProfilePhoto{OwnerID: userID, PhotoName: key, PhotoURL: url}
	old, err := s.Photos.Replace(ctx, photo)
	if err != nil {
		if derr := s.Storage.Delete(ctx, key); derr != nil {
			s.Logger.WithError(derr).WithField("key", key).Error("orphaned photo object")
		}
		return "", orNotFound(err, "The user")
	}
	if old != nil && old.PhotoName != key {
		if err := s.Storage.Delete(ctx, old.PhotoName); err != nil {
			s.Logger.WithError(err).WithField("key", old.PhotoName).Warn("delete previous photo failed")
		}
	}
	s.Logger.WithFields(logrus.Fields{"user_id": userID, "key": key}).Info("profile photo replaced")
	return url, nil
}

// Current returns the URL of the user's photo, or "" when there is none.
func (s *PhotoService) Current(ctx context.Context, userID string) (string, error) {
	p, err := s.Photos.GetByOwner(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return p.PhotoURL, nil
}
