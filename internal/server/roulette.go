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

type catalogService interface {
	Create(ctx context.Context, draft entity.RouletteDraft) (entity.Roulette, error)
	Update(ctx context.Context, id value.RouletteID, draft entity.RouletteDraft) (entity.Roulette, error)
	Delete(ctx context.Context, id value.RouletteID) error
	Get(ctx context.Context, id value.RouletteID) (entity.Roulette, error)
	List(ctx context.Context, filter entity.RouletteFilter) ([]entity.Roulette, error)
}

type spinService interface {
	Spin(ctx context.Context, rouletteID value.RouletteID, userID value.UserID) (entity.SpinReceipt, error)
}

type RouletteServer struct {
	catalog catalogService
	spins   spinService
}

func NewRouletteServer(catalog catalogService, spins spinService) RouletteServer {
	return RouletteServer{
		catalog: catalog,
		spins:   spins,
	}
}

func (s RouletteServer) spin(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	rouletteID, err := rouletteIDParam(r)
	if err != nil {
		return err
	}

	userID, err := callerID(r)
	if err != nil {
		return err
	}

	receipt, err := s.spins.Spin(ctx, rouletteID, userID)
	if err != nil {
		return fmt.Errorf("spinService.Spin: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSpin(receipt))

	return nil
}

func (s RouletteServer) listRoulettes(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	limit, err := req.QueryInt(r, "limit", 0)
	if err != nil {
		return err
	}

	offset, err := req.QueryInt(r, "offset", 0)
	if err != nil {
		return err
	}

	roulettes, err := s.catalog.List(ctx, entity.RouletteFilter{
		NameContains: r.URL.Query().Get("name"),
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		return fmt.Errorf("catalogService.List: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.RouletteListResponse{
		Success:   true,
		Roulettes: lo.Map(roulettes, func(r entity.Roulette, _ int) rest.Roulette { return newRESTRoulette(r) }),
	})

	return nil
}

func (s RouletteServer) getRoulette(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := rouletteIDParam(r)
	if err != nil {
		return err
	}

	roulette, err := s.catalog.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("catalogService.Get: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.RouletteResponse{Success: true, Roulette: newRESTRoulette(roulette)})

	return nil
}

func (s RouletteServer) createRoulette(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.RouletteRequest
	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	roulette, err := s.catalog.Create(ctx, newDomainRouletteDraft(request))
	if err != nil {
		return fmt.Errorf("catalogService.Create: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, rest.RouletteResponse{Success: true, Roulette: newRESTRoulette(roulette)})

	return nil
}

func (s RouletteServer) updateRoulette(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := rouletteIDParam(r)
	if err != nil {
		return err
	}

	var request rest.RouletteRequest
	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	roulette, err := s.catalog.Update(ctx, id, newDomainRouletteDraft(request))
	if err != nil {
		return fmt.Errorf("catalogService.Update: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.RouletteResponse{Success: true, Roulette: newRESTRoulette(roulette)})

	return nil
}

func (s RouletteServer) deleteRoulette(w http.ResponseWriter, r *http.Request) error {
	id, err := rouletteIDParam(r)
	if err != nil {
		return err
	}

	if err = s.catalog.Delete(r.Context(), id); err != nil {
		return fmt.Errorf("catalogService.Delete: %w", err)
	}

	reply.NoContent(w)

	return nil
}
