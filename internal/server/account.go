package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/entity"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/httpx/reply"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/httpx/req"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/rest"
)

type accountService interface {
	Get(ctx context.Context, id value.UserID) (entity.User, error)
	Credit(ctx context.Context, id value.UserID, amount decimal.Decimal) (entity.User, error)
}

type AccountServer struct {
	accounts accountService
}

func NewAccountServer(accounts accountService) AccountServer {
	return AccountServer{accounts: accounts}
}

func (s AccountServer) getMe(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := callerID(r)
	if err != nil {
		return err
	}

	user, err := s.accounts.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("accountService.Get: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTUser(user))

	return nil
}

func (s AccountServer) creditUser(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := userIDParam(r)
	if err != nil {
		return err
	}

	var request rest.CreditRequest
	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	user, err := s.accounts.Credit(ctx, id, decimal.NewFromFloat(request.Amount))
	if err != nil {
		return fmt.Errorf("accountService.Credit: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.CoinsResponse{Success: true, Coins: user.Coins.InexactFloat64()})

	return nil
}
