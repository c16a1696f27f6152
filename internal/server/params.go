package server

import (
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/contextx"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/errcodes"
)

func rouletteIDParam(r *http.Request) (value.RouletteID, error) {
	id, err := value.ParseRouletteID(chi.URLParam(r, "id"))
	if err != nil {
		return value.RouletteID{}, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseRouletteID: %w", err),
			failure.WithCode(errcodes.InvalidRouletteID),
			failure.WithDescription("Roulette id must be a UUID"),
		)
	}

	return id, nil
}

func userIDParam(r *http.Request) (value.UserID, error) {
	id, err := value.ParseUserID(chi.URLParam(r, "id"))
	if err != nil {
		return value.UserID{}, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseUserID: %w", err),
			failure.WithCode(errcodes.InvalidUserID),
			failure.WithDescription("User id must be a UUID"),
		)
	}

	return id, nil
}

func characterIDParam(r *http.Request) (value.CharacterID, error) {
	id, err := value.ParseCharacterID(chi.URLParam(r, "id"))
	if err != nil {
		return 0, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseCharacterID: %w", err),
			failure.WithCode(errcodes.InvalidCharacterID),
			failure.WithDescription("Character id must be a positive integer"),
		)
	}

	return id, nil
}

// callerID reads the authenticated user from the context set by the auth middleware.
func callerID(r *http.Request) (value.UserID, error) {
	id, err := contextx.UserIDFromContext(r.Context())
	if err != nil {
		return value.UserID{}, domain.WrapError(err, errcodes.AccessTokenInvalid, "Invalid access token")
	}

	return value.UserID(id), nil
}
