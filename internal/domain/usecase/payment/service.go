package payment

import (
	"context"
	"net/http"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/usecase"
)

// ChargeDescription is shown on every gateway charge
const ChargeDescription = "SMORES Payment"

const paymentSaveTitle = "Could not save payment"

// Service implements usecase.PaymentUseCase
type Service struct {
	uow          persistence.UnitOfWork
	processors   gateway.ProcessorProvider
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates the payment service
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

// Create charges, deposits or records a payment depending on its mode
func (s *Service) Create(ctx context.Context, input usecase.CreatePaymentInput) (*entity.Payment, error) {
	mode, err := entity.ParsePaymentMode(input.Mode)
	if err != nil {
		return nil, err
	}

	cents, err := entity.ParseDollars(input.Amount)
	if err != nil {
		return nil, errs.NewValidationError(paymentSaveTitle, errs.CodeInvalidAmount, map[string]string{
			"amount": "Amount must be a positive dollar value with at most two decimals",
		}).WithCause(err)
	}
	if cents == 0 {
		return nil, errs.NewValidationError(paymentSaveTitle, errs.CodeInvalidAmount, map[string]string{
			"amount": "Amount must be greater than zero",
		})
	}

	account, err := s.uow.GetAccountRepository(ctx).GetByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	payment := &entity.Payment{
		AccountID: account.ID,
		Amount:    cents,
		Mode:      mode,
		CreatedAt: s.timeProvider.Now(),
	}

	switch mode {
	case entity.PaymentModeCredit:
		err = s.charge(ctx, account, input, payment)
	case entity.PaymentModeCheck:
		err = s.deposit(ctx, input.Check, payment)
	default:
		err = s.uow.GetPaymentRepository(ctx).Create(ctx, payment)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("Payment recorded", map[string]any{
		"payment_id": payment.ID,
		"account_id": payment.AccountID,
		"mode":       string(payment.Mode),
		"amount":     entity.FormatCents(payment.Amount),
	})

	return payment, nil
}

// charge captures a card payment and records it
func (s *Service) charge(ctx context.Context, account *entity.Account, input usecase.CreatePaymentInput, payment *entity.Payment) error {
	if err := entity.CheckChargeAmount(payment.Amount); err != nil {
		return err
	}

	req := gateway.ChargeRequest{
		AmountCents: payment.Amount,
		Description: ChargeDescription,
	}

	switch {
	case input.CardID != nil:
		card, err := s.uow.GetCardRepository(ctx).GetByID(ctx, *input.CardID)
		if err != nil {
			return err
		}
		if card.AccountID != account.ID || !card.Active {
			return errs.NewValidationError(paymentSaveTitle, errs.CodeInvalidRequest, map[string]string{
				"card_id": "Card is not an active card of this account",
			})
		}
		if !account.HasCustomer() {
			return errs.NewHTTPError(http.StatusNotFound, "Could not save Payment Information for account", errs.CodeCustomerMissing).
				WithDev("The account has no payment gateway customer")
		}
		req.CustomerID = account.ExternalID
		req.CardID = card.ExternalID
		payment.CardID = &card.ID

	case input.Card != nil:
		if err := input.Card.Validate(s.timeProvider.Now()); err != nil {
			return err
		}
		req.Card = input.Card

	default:
		return errs.NewValidationError(paymentSaveTitle, errs.CodeInvalidRequest, map[string]string{
			"card_id": "A stored card_id or card details are required for credit payments",
		})
	}

	processor := s.processors.Processor(ctx)

	charge, err := processor.ChargeCard(ctx, req)
	if err != nil {
		return err
	}
	payment.ExternalID = charge.ID

	if err := s.uow.GetPaymentRepository(ctx).Create(ctx, payment); err != nil {
		s.logger.Error("Charge captured but payment not stored, refunding", map[string]any{
			"account_id": account.ID,
			"charge_id":  charge.ID,
			"error":      err.Error(),
		})
		if _, refundErr := processor.RefundCharge(ctx, charge.ID); refundErr != nil {
			s.logger.Error("Failed to refund unrecorded charge", map[string]any{
				"charge_id": charge.ID,
				"error":     refundErr.Error(),
			})
		}
		return err
	}
	return nil
}

// deposit stores a check and its payment in one transaction
func (s *Service) deposit(ctx context.Context, check *entity.Check, payment *entity.Payment) error {
	if check == nil {
		return errs.NewValidationError(paymentSaveTitle, errs.CodeInvalidRequest, map[string]string{
			"check": "Check details are required for check payments",
		})
	}

	check.AccountID = payment.AccountID
	check.Amount = payment.Amount
	if check.Date.IsZero() {
		check.Date = payment.CreatedAt
	}
	if err := check.Validate(); err != nil {
		return err
	}

	return persistence.RunInTransaction(ctx, s.uow, func(txCtx context.Context) error {
		if err := s.uow.GetCheckRepository(txCtx).Create(txCtx, check); err != nil {
			return err
		}
		payment.CheckID = &check.ID
		return s.uow.GetPaymentRepository(txCtx).Create(txCtx, payment)
	})
}

// Refund refunds a card payment in full and records the negative entry
func (s *Service) Refund(ctx context.Context, id uint64) (*entity.Payment, error) {
	var (
		refund *entity.Payment
		issued *gateway.Refund
	)

	err := persistence.RunInTransaction(ctx, s.uow, func(txCtx context.Context) error {
		payments := s.uow.GetPaymentRepository(txCtx)

		original, err := payments.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := original.CanRefund(); err != nil {
			return err
		}

		// flagging first makes a concurrent second refund fail before the gateway call
		if err := payments.MarkRefunded(txCtx, id); err != nil {
			return err
		}

		result, err := s.processors.Processor(txCtx).RefundCharge(txCtx, original.ExternalID)
		if err != nil {
			return err
		}
		issued = result

		refund = original.NewRefund(result.ID, s.timeProvider.Now())
		return payments.Create(txCtx, refund)
	})
	if err != nil {
		if issued != nil {
			// the money is back with the customer but the ledger does not show it
			s.logger.Error("Refund issued at gateway but not recorded", map[string]any{
				"payment_id":   id,
				"charge_id":    issued.ChargeID,
				"refund_id":    issued.ID,
				"amount_cents": issued.AmountCents,
				"error":        err.Error(),
			})
		}
		return nil, err
	}

	s.logger.Info("Payment refunded", map[string]any{
		"payment_id": id,
		"refund_id":  refund.ID,
		"amount":     entity.FormatCents(refund.Amount),
	})

	return refund, nil
}
