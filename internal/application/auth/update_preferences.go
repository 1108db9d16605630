package auth

import (
	"context"
	"time"

	"github.com/playshelf/playshelf/internal/application/ports"
	"github.com/playshelf/playshelf/internal/domain"
	domerrors "github.com/playshelf/playshelf/internal/domain/errors"
)

// UpdatePreferencesInput replaces the user's catalog preferences.
type UpdatePreferencesInput struct {
	UserID      domain.UserID
	Preferences *domain.Preferences
}

// UpdatePreferencesResult is the updated account.
type UpdatePreferencesResult struct {
	User *domain.User
}

// UpdatePreferences stores the catalog preferences used to filter game
// listings for the signed-in user.
type UpdatePreferences struct {
	store ports.UserStore
}

// NewUpdatePreferences builds the use case.
func NewUpdatePreferences(store ports.UserStore) *UpdatePreferences {
	return &UpdatePreferences{store: store}
}

// Execute persists the new preferences.
func (uc *UpdatePreferences) Execute(ctx context.Context, input UpdatePreferencesInput) (*UpdatePreferencesResult, error) {
	user, err := uc.store.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrInvalidSession
	}
	user.Preferences = input.Preferences
	user.Touch(time.Now())
	if err := uc.store.Update(ctx, user); err != nil {
		return nil, err
	}
	return &UpdatePreferencesResult{User: user}, nil
}
