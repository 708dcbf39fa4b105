package card

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/usecase"
)

// Service implements usecase.CardUseCase
type Service struct {
	uow          persistence.UnitOfWork
	processors   gateway.ProcessorProvider
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates the card service
func NewService(
	uow persistence.UnitOfWork,
	processors gateway.ProcessorProvider,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		processors:   processors,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create registers the card with the gateway and stores its safe fields
func (s *Service) Create(ctx context.Context, input usecase.CreateCardInput) (*entity.Card, error) {
	now := s.timeProvider.Now()
	if err := input.Details.Validate(now); err != nil {
		return nil, err
	}

	accounts := s.uow.GetAccountRepository(ctx)
	account, err := accounts.GetByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	processor := s.processors.Processor(ctx)

	customer, err := processor.CreateCustomer(ctx, account)
	if err != nil {
		return nil, err
	}
	if customer.ID != account.ExternalID {
		if err := accounts.SetExternalID(ctx, account.ID, customer.ID); err != nil {
			return nil, err
		}
		account.ExternalID = customer.ID
	}

	stored, err := processor.CreateCard(ctx, customer.ID, &input.Details)
	if err != nil {
		return nil, err
	}

	card := input.Details.ToCard(account.ID, stored.ID, now)
	if stored.LastFour != "" {
		card.LastFour = stored.LastFour
	}
	if stored.Brand != "" {
		card.Vendor = stored.Brand
	}

	if err := s.uow.GetCardRepository(ctx).Create(ctx, card); err != nil {
		s.logger.Error("Card saved on gateway but not stored, removing it", map[string]any{
			"account_id":  account.ID,
			"external_id": stored.ID,
			"error":       err.Error(),
		})
		if delErr := processor.DeleteCard(ctx, customer.ID, stored.ID); delErr != nil {
			s.logger.Error("Failed to remove orphaned gateway card", map[string]any{
				"external_id": stored.ID,
				"error":       delErr.Error(),
			})
		}
		return nil, err
	}

	s.logger.Info("Card created", map[string]any{
		"account_id": account.ID,
		"card_id":    card.ID,
		"vendor":     card.Vendor,
	})

	return card, nil
}

// Delete removes the card from the gateway and the database
func (s *Service) Delete(ctx context.Context, id uint64) error {
	err := persistence.RunInTransaction(ctx, s.uow, func(txCtx context.Context) error {
		if err := s.RemoveFromGateway(txCtx, id); err != nil {
			return err
		}
		return s.uow.GetCardRepository(txCtx).Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Card deleted", map[string]any{"card_id": id})
	return nil
}

// RemoveFromGateway deletes the gateway copy of a stored card. Cards the
// gateway no longer knows and disabled gateways are not errors.
func (s *Service) RemoveFromGateway(ctx context.Context, cardID uint64) error {
	card, err := s.uow.GetCardRepository(ctx).GetByID(ctx, cardID)
	if err != nil {
		return err
	}
	if card.ExternalID == "" {
		return nil
	}

	account, err := s.uow.GetAccountRepository(ctx).GetByID(ctx, card.AccountID)
	if err != nil {
		return err
	}
	if !account.HasCustomer() {
		return nil
	}

	err = s.processors.Processor(ctx).DeleteCard(ctx, account.ExternalID, card.ExternalID)
	if err != nil {
		if errs.IsGatewayObjectMissing(err) || errors.Is(err, errs.ErrPaymentsDisabled) {
			s.logger.Warn("Gateway card not removed", map[string]any{
				"card_id":     cardID,
				"external_id": card.ExternalID,
				"error":       err.Error(),
			})
			return nil
		}
		return err
	}
	return nil
}
