package repository

import (
	"context"
	"errors"

	"fund-selector/domain"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	Save(ctx context.Context, profile domain.Profile) error
	Get(ctx context.Context, id string) (domain.Profile, error)
}
