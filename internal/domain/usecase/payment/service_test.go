package payment

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/smores-api/mocks/port/core"
	gatewaymocks "github.com/amirhossein-jamali/smores-api/mocks/port/gateway"
	persistencemocks "github.com/amirhossein-jamali/smores-api/mocks/port/persistence"
)

var fixedTime = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

type txKey struct{}

type fixture struct {
	ctx       context.Context
	txCtx     context.Context
	uow       *persistencemocks.MockUnitOfWork
	accounts  *persistencemocks.MockAccountRepository
	cards     *persistencemocks.MockCardRepository
	checks    *persistencemocks.MockCheckRepository
	payments  *persistencemocks.MockPaymentRepository
	processor *gatewaymocks.MockPaymentProcessor
	logger    *coremocks.MockLogger
	service   *Service
}

func newFixture(t *testing.T) *fixture {
	ctx := context.Background()
	f := &fixture{
		ctx:       ctx,
		txCtx:     context.WithValue(ctx, txKey{}, "tx"),
		uow:       persistencemocks.NewMockUnitOfWork(t),
		accounts:  persistencemocks.NewMockAccountRepository(t),
		cards:     persistencemocks.NewMockCardRepository(t),
		checks:    persistencemocks.NewMockCheckRepository(t),
		payments:  persistencemocks.NewMockPaymentRepository(t),
		processor: gatewaymocks.NewMockPaymentProcessor(t),
	}

	processors := gatewaymocks.NewMockProcessorProvider(t)
	processors.EXPECT().Processor(mock.Anything).Return(f.processor).Maybe()

	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(fixedTime).Maybe()

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f.uow.EXPECT().GetAccountRepository(mock.Anything).Return(f.accounts).Maybe()
	f.uow.EXPECT().GetCardRepository(mock.Anything).Return(f.cards).Maybe()
	f.uow.EXPECT().GetCheckRepository(mock.Anything).Return(f.checks).Maybe()
	f.uow.EXPECT().GetPaymentRepository(mock.Anything).Return(f.payments).Maybe()

	f.logger = logger
	f.service = NewService(f.uow, processors, clock, logger)
	return f
}

func ptr(v uint64) *uint64 { return &v }

func TestService_CreateCredit(t *testing.T) {
	t.Run("should charge a stored card", func(t *testing.T) {
		f := newFixture(t)
		account := &entity.Account{ID: 2, ExternalID: "cus_2"}

		f.accounts.EXPECT().GetByID(f.ctx, uint64(2)).Return(account, nil).Once()
		f.cards.EXPECT().GetByID(f.ctx, uint64(9)).Return(&entity.Card{ID: 9, AccountID: 2, ExternalID: "card_9", Active: true}, nil).Once()
		f.processor.EXPECT().ChargeCard(f.ctx, gateway.ChargeRequest{
			AmountCents: 12550,
			Description: "SMORES Payment",
			CustomerID:  "cus_2",
			CardID:      "card_9",
		}).Return(&gateway.Charge{ID: "ch_1", AmountCents: 12550}, nil).Once()
		f.payments.EXPECT().Create(f.ctx, mock.MatchedBy(func(p *entity.Payment) bool {
			return p.ExternalID == "ch_1" && p.Amount == 12550 && p.Mode == entity.PaymentModeCredit && *p.CardID == 9
		})).Return(nil).Once()

		payment, err := f.service.Create(f.ctx, usecase.CreatePaymentInput{AccountID: 2, Amount: "125.50", CardID: ptr(9)})

		require.NoError(t, err)
		assert.Equal(t, "ch_1", payment.ExternalID)
	})

	t.Run("should charge a one-time card", func(t *testing.T) {
		f := newFixture(t)
		card := &entity.CardDetails{NameOnCard: "Ana Lee", Number: "4000056655665556", ExpirationMonth: 1, ExpirationYear: 2030}

		f.accounts.EXPECT().GetByID(f.ctx, uint64(2)).Return(&entity.Account{ID: 2}, nil).Once()
		f.processor.EXPECT().ChargeCard(f.ctx, mock.MatchedBy(func(req gateway.ChargeRequest) bool {
			return req.Card == card && req.CustomerID == "" && req.AmountCents == 100
		})).Return(&gateway.Charge{ID: "ch_2"}, nil).Once()
		f.payments.EXPECT().Create(f.ctx, mock.Anything).Return(nil).Once()

		_, err := f.service.Create(f.ctx, usecase.CreatePaymentInput{AccountID: 2, Amount: "1", Mode: "credit", Card: card})

		require.NoError(t, err)
	})

	t.Run("should refuse charges under one dollar", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().GetByID(f.ctx, uint64(2)).Return(&entity.Account{ID: 2}, nil).Once()

		_, err := f.service.Create(f.ctx, usecase.CreatePaymentInput{AccountID: 2, Amount: "0.99", CardID: ptr(9)})

		var apiErr *errs.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "Charge amount must exceed $1.", apiErr.Title)
	})

	t.Run("should refund a charge that could not be recorded", func(t *testing.T) {
		f := newFixture(t)
		dbErr := errors.New("disk full")

		f.accounts.EXPECT().GetByID(f.ctx, uint64(2)).Return(&entity.Account{ID: 2, ExternalID: "cus_2"}, nil).Once()
		f.cards.EXPECT().GetByID(f.ctx, uint64(9)).Return(&entity.Card{ID: 9, AccountID: 2, ExternalID: "card_9", Active: true}, nil).Once()
		f.processor.EXPECT().ChargeCard(f.ctx, mock.Anything).Return(&gateway.Charge{ID: "ch_3"}, nil).Once()
		f.payments.EXPECT().Create(f.ctx, mock.Anything).Return(dbErr).Once()
		f.processor.EXPECT().RefundCharge(f.ctx, "ch_3").Return(&gateway.Refund{ID: "re_3"}, nil).Once()

		_, err := f.service.Create(f.ctx, usecase.CreatePaymentInput{AccountID: 2, Amount: "10", CardID: ptr(9)})

		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("should reject a card of another account", func(t *testing.T) {
		f := newFixture(t)

		f.accounts.EXPECT().GetByID(f.ctx, uint64(2)).Return(&entity.Account{ID: 2, ExternalID: "cus_2"}, nil).Once()
		f.cards.EXPECT().GetByID(f.ctx, uint64(9)).Return(&entity.Card{ID: 9, AccountID: 7, Active: true}, nil).Once()

		_, err := f.service.Create(f.ctx, usecase.CreatePaymentInput{AccountID: 2, Amount: "10", CardID: ptr(9)})

		assert.True(t, errs.IsValidationError(err))
	})

	t.Run("should require a customer for stored cards", func(t *testing.T) {
		f := newFixture(t)

		f.accounts.EXPECT().GetByID(f.ctx, uint64(2)).Return(&entity.Account{ID: 2}, nil).Once()
		f.cards.EXPECT().GetByID(f.ctx, uint64(9)).Return(&entity.Card{ID: 9, AccountID: 2, Active: true}, nil).Once()

		_, err := f.service.Create(f.ctx, usecase.CreatePaymentInput{AccountID: 2, Amount: "10", CardID: ptr(9)})

		assert.Equal(t, errs.CodeCustomerMissing, errs.ErrorCode(err))
		assert.Equal(t, http.StatusNotFound, errs.HTTPStatus(err))
	})
}

func TestService_CreateCheckAndCash(t *testing.T) {
	t.Run("should store check and payment together", func(t *testing.T) {
		f := newFixture(t)
		check := &entity.Check{Number: "1001", AccountNumber: "12345", RoutingNumber: "061000104", NameOnCheck: "Ana Lee"}

		f.accounts.EXPECT().GetByID(f.ctx, uint64(2)).Return(&entity.Account{ID: 2}, nil).Once()
		f.uow.EXPECT().Begin(f.ctx).Return(f.txCtx, nil).Once()
		f.checks.EXPECT().Create(f.txCtx, check).Run(func(_ context.Context, c *entity.Check) {
			c.ID = 31
		}).Return(nil).Once()
		f.payments.EXPECT().Create(f.txCtx, mock.MatchedBy(func(p *entity.Payment) bool {
			return p.CheckID != nil && *p.CheckID == 31 && p.Mode == entity.PaymentModeCheck
		})).Return(nil).Once()
		f.uow.EXPECT().Commit(f.txCtx).Return(nil).Once()

		payment, err := f.service.Create(f.ctx, usecase.CreatePaymentInput{AccountID: 2, Amount: "300.00", Mode: "check", Check: check})

		require.NoError(t, err)
		assert.Equal(t, int64(30000), check.Amount)
		assert.Equal(t, fixedTime, check.Date)
		assert.Equal(t, int64(30000), payment.Amount)
	})

	t.Run("should require check details", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().GetByID(f.ctx, uint64(2)).Return(&entity.Account{ID: 2}, nil).Once()

		_, err := f.service.Create(f.ctx, usecase.CreatePaymentInput{AccountID: 2, Amount: "3", Mode: "check"})

		assert.True(t, errs.IsValidationError(err))
	})

	t.Run("should record cash", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().GetByID(f.ctx, uint64(2)).Return(&entity.Account{ID: 2}, nil).Once()
		f.payments.EXPECT().Create(f.ctx, mock.MatchedBy(func(p *entity.Payment) bool {
			return p.Mode == entity.PaymentModeCash && p.Amount == 50
		})).Return(nil).Once()

		_, err := f.service.Create(f.ctx, usecase.CreatePaymentInput{AccountID: 2, Amount: ".5", Mode: "cash"})

		require.NoError(t, err)
	})

	t.Run("should reject malformed amounts", func(t *testing.T) {
		f := newFixture(t)

		for _, amount := range []string{"", "abc", "-5", "1.234", "0"} {
			_, err := f.service.Create(f.ctx, usecase.CreatePaymentInput{AccountID: 2, Amount: amount, Mode: "cash"})
			assert.Equal(t, int64(errs.CodeInvalidAmount), errs.ErrorCode(err), amount)
		}
	})
}

func TestService_Refund(t *testing.T) {
	t.Run("should refund once and record the negative entry", func(t *testing.T) {
		f := newFixture(t)
		original := &entity.Payment{ID: 4, AccountID: 2, Amount: 2500, Mode: entity.PaymentModeCredit, ExternalID: "ch_4"}

		f.uow.EXPECT().Begin(f.ctx).Return(f.txCtx, nil).Once()
		f.payments.EXPECT().GetByID(f.txCtx, uint64(4)).Return(original, nil).Once()
		f.payments.EXPECT().MarkRefunded(f.txCtx, uint64(4)).Return(nil).Once()
		f.processor.EXPECT().RefundCharge(f.txCtx, "ch_4").Return(&gateway.Refund{ID: "re_4", ChargeID: "ch_4"}, nil).Once()
		f.payments.EXPECT().Create(f.txCtx, mock.MatchedBy(func(p *entity.Payment) bool {
			return p.Amount == -2500 && p.Mode == entity.PaymentModeRefund && *p.RefundOfID == 4
		})).Return(nil).Once()
		f.uow.EXPECT().Commit(f.txCtx).Return(nil).Once()

		refund, err := f.service.Refund(f.ctx, 4)

		require.NoError(t, err)
		assert.Equal(t, "re_4", refund.ExternalID)
	})

	t.Run("should refuse cash payments", func(t *testing.T) {
		f := newFixture(t)

		f.uow.EXPECT().Begin(f.ctx).Return(f.txCtx, nil).Once()
		f.payments.EXPECT().GetByID(f.txCtx, uint64(5)).Return(&entity.Payment{ID: 5, Mode: entity.PaymentModeCash}, nil).Once()
		f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Once()

		_, err := f.service.Refund(f.ctx, 5)

		assert.Equal(t, http.StatusConflict, errs.HTTPStatus(err))
	})

	t.Run("should report a gateway refund the ledger could not record", func(t *testing.T) {
		f := newFixture(t)
		dbErr := errors.New("pq: connection reset")

		f.uow.EXPECT().Begin(f.ctx).Return(f.txCtx, nil).Once()
		f.payments.EXPECT().GetByID(f.txCtx, uint64(4)).Return(&entity.Payment{ID: 4, Amount: 2500, Mode: entity.PaymentModeCredit, ExternalID: "ch_4"}, nil).Once()
		f.payments.EXPECT().MarkRefunded(f.txCtx, uint64(4)).Return(nil).Once()
		f.processor.EXPECT().RefundCharge(f.txCtx, "ch_4").Return(&gateway.Refund{ID: "re_4", ChargeID: "ch_4", AmountCents: 2500}, nil).Once()
		f.payments.EXPECT().Create(f.txCtx, mock.Anything).Return(dbErr).Once()
		f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Once()

		_, err := f.service.Refund(f.ctx, 4)

		assert.ErrorIs(t, err, dbErr)
		f.logger.AssertCalled(t, "Error", "Refund issued at gateway but not recorded", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["charge_id"] == "ch_4" && fields["refund_id"] == "re_4" && fields["payment_id"] == uint64(4)
		}))
	})

	t.Run("should roll back when the gateway fails", func(t *testing.T) {
		f := newFixture(t)
		gatewayErr := errs.NewHTTPError(http.StatusNotFound, "Could not save Payment Information for account", errs.CodeGatewayFailure)

		f.uow.EXPECT().Begin(f.ctx).Return(f.txCtx, nil).Once()
		f.payments.EXPECT().GetByID(f.txCtx, uint64(4)).Return(&entity.Payment{ID: 4, Mode: entity.PaymentModeCredit, ExternalID: "ch_4"}, nil).Once()
		f.payments.EXPECT().MarkRefunded(f.txCtx, uint64(4)).Return(nil).Once()
		f.processor.EXPECT().RefundCharge(f.txCtx, "ch_4").Return(nil, gatewayErr).Once()
		f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Once()

		_, err := f.service.Refund(f.ctx, 4)

		assert.ErrorIs(t, err, gatewayErr)
	})
}
