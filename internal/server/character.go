package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/samber/lo"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/entity"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/httpx/reply"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/httpx/req"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/rest"
)

type characterService interface {
	Search(ctx context.Context, query entity.CharacterQuery) (entity.CharacterPage, error)
	Character(ctx context.Context, id value.CharacterID) (entity.Character, error)
}

type CharacterServer struct {
	characters characterService
}

func NewCharacterServer(characters characterService) CharacterServer {
	return CharacterServer{characters: characters}
}

func (s CharacterServer) listCharacters(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	limit, err := req.QueryInt(r, "limit", 0)
	if err != nil {
		return err
	}

	offset, err := req.QueryInt(r, "offset", 0)
	if err != nil {
		return err
	}

	page, err := s.characters.Search(ctx, entity.CharacterQuery{
		NameStartsWith: r.URL.Query().Get("nameStartsWith"),
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		return fmt.Errorf("characterService.Search: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.CharacterListResponse{
		Success:    true,
		Total:      page.Total,
		Characters: lo.Map(page.Characters, func(c entity.Character, _ int) rest.Character { return newRESTCharacter(c) }),
	})

	return nil
}

func (s CharacterServer) getCharacter(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := characterIDParam(r)
	if err != nil {
		return err
	}

	character, err := s.characters.Character(ctx, id)
	if err != nil {
		return fmt.Errorf("characterService.Character: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.CharacterResponse{Success: true, Character: newRESTCharacter(character)})

	return nil
}
