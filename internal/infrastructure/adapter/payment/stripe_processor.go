package payment

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/gateway"
)

const (
	chargeDescription = "SMORES Payment"
	minimumChargeCent = 100
)

// CallObserver records the outcome of each gateway round trip
type CallObserver interface {
	ObserveGatewayCall(operation string, err error, duration time.Duration)
}

// StripeProcessor implements gateway.PaymentProcessor on the Stripe API
type StripeProcessor struct {
	api          *client.API
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	observer     CallObserver

	mu        sync.RWMutex
	customers map[string]*gateway.Customer
	cards     map[string]*gateway.StoredCard
}

var _ gateway.PaymentProcessor = (*StripeProcessor)(nil)

// NewStripeProcessor creates a processor for the secret key. backends may be
// nil to talk to the live API.
func NewStripeProcessor(
	key string,
	backends *stripe.Backends,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	observer CallObserver,
) *StripeProcessor {
	api := &client.API{}
	api.Init(key, backends)

	return &StripeProcessor{
		api:          api,
		timeProvider: timeProvider,
		logger:       logger,
		observer:     observer,
		customers:    make(map[string]*gateway.Customer),
		cards:        make(map[string]*gateway.StoredCard),
	}
}

// observe times one gateway call
func (p *StripeProcessor) observe(operation string, start time.Time, err error) {
	if p.observer != nil {
		p.observer.ObserveGatewayCall(operation, err, p.timeProvider.Since(start))
	}
	if err != nil {
		p.logger.Warn("Payment gateway call failed", map[string]any{
			"operation": operation,
			"error":     err.Error(),
		})
	}
}

// CreateCustomer returns the account's customer when the gateway still has
// it, otherwise registers a new one
func (p *StripeProcessor) CreateCustomer(ctx context.Context, account *entity.Account) (*gateway.Customer, error) {
	if account.HasCustomer() {
		customer, err := p.FindCustomer(ctx, account.ExternalID, true)
		if err == nil {
			return customer, nil
		}
		if !errs.IsGatewayObjectMissing(err) {
			return nil, err
		}
		p.logger.Info("Gateway customer missing, creating a new one", map[string]any{
			"account_id":  account.ID,
			"external_id": account.ExternalID,
		})
	}

	params := &stripe.CustomerParams{
		Description: stripe.String(strconv.FormatUint(account.ID, 10)),
		Name:        stripe.String(account.Name),
	}
	params.Context = ctx

	start := p.timeProvider.Now()
	result, err := p.api.Customers.New(params)
	p.observe("create_customer", start, err)
	if err != nil {
		return nil, gatewayError(err)
	}

	customer := toCustomer(result)
	p.cacheCustomer(customer)
	return customer, nil
}

// FindCustomer retrieves a customer, from cache unless force is set
func (p *StripeProcessor) FindCustomer(ctx context.Context, id string, force bool) (*gateway.Customer, error) {
	if len(id) < 5 || !strings.HasPrefix(id, "cus_") {
		return nil, customerMissing(titleCustomerLookup, "Customer id is not valid: "+id, nil)
	}

	if !force {
		p.mu.RLock()
		cached, ok := p.customers[id]
		p.mu.RUnlock()
		if ok {
			return cached, nil
		}
	}

	params := &stripe.CustomerParams{}
	params.Context = ctx

	start := p.timeProvider.Now()
	result, err := p.api.Customers.Get(id, params)
	p.observe("find_customer", start, err)
	if err != nil {
		if isMissing(err) {
			p.evictCustomer(id)
			return nil, customerMissing(titleCustomerLookup, "Customer does not exist: "+id, err)
		}
		return nil, gatewayError(err)
	}
	if result.Deleted {
		p.evictCustomer(id)
		return nil, customerMissing(titleCustomerLookup, "Customer was deleted: "+id, nil)
	}

	customer := toCustomer(result)
	p.cacheCustomer(customer)
	return customer, nil
}

// DeleteCustomer removes a customer and its cards
func (p *StripeProcessor) DeleteCustomer(ctx context.Context, id string) error {
	params := &stripe.CustomerParams{}
	params.Context = ctx

	start := p.timeProvider.Now()
	_, err := p.api.Customers.Del(id, params)
	p.observe("delete_customer", start, err)

	p.evictCustomer(id)
	if err != nil {
		if isMissing(err) {
			return customerMissing(titleCustomerLookup, "Customer does not exist: "+id, err)
		}
		return gatewayError(err)
	}
	return nil
}

// CreateCard validates the card and saves it on the customer
func (p *StripeProcessor) CreateCard(ctx context.Context, customerID string, details *entity.CardDetails) (*gateway.StoredCard, error) {
	if err := details.Validate(p.timeProvider.Now()); err != nil {
		return nil, err
	}
	if _, err := p.FindCustomer(ctx, customerID, false); err != nil {
		if errs.IsGatewayObjectMissing(err) {
			return nil, customerMissing(titleCardSave, "The account has no payment customer", err)
		}
		return nil, err
	}

	params := cardParams(details)
	params.Customer = stripe.String(customerID)
	params.Context = ctx

	start := p.timeProvider.Now()
	result, err := p.api.Cards.New(params)
	p.observe("create_card", start, err)
	if err != nil {
		return nil, gatewayError(err)
	}

	card := toStoredCard(result)
	p.cacheCard(customerID, card)
	return card, nil
}

// FindCard retrieves a saved card, from cache unless force is set
func (p *StripeProcessor) FindCard(ctx context.Context, customerID, cardID string, force bool) (*gateway.StoredCard, error) {
	if !strings.HasPrefix(cardID, "card_") {
		return nil, cardMissing("Card id is not valid: "+cardID, nil)
	}

	key := cardKey(customerID, cardID)
	if !force {
		p.mu.RLock()
		cached, ok := p.cards[key]
		p.mu.RUnlock()
		if ok {
			return cached, nil
		}
	}

	params := &stripe.CardParams{Customer: stripe.String(customerID)}
	params.Context = ctx

	start := p.timeProvider.Now()
	result, err := p.api.Cards.Get(cardID, params)
	p.observe("find_card", start, err)
	if err != nil {
		if isMissing(err) {
			p.evictCard(customerID, cardID)
			return nil, cardMissing("Card does not exist: "+cardID, err)
		}
		return nil, gatewayError(err)
	}

	card := toStoredCard(result)
	p.cacheCard(customerID, card)
	return card, nil
}

// DeleteCard removes a saved card
func (p *StripeProcessor) DeleteCard(ctx context.Context, customerID, cardID string) error {
	params := &stripe.CardParams{Customer: stripe.String(customerID)}
	params.Context = ctx

	start := p.timeProvider.Now()
	_, err := p.api.Cards.Del(cardID, params)
	p.observe("delete_card", start, err)

	p.evictCard(customerID, cardID)
	if err != nil {
		if isMissing(err) {
			return cardMissing("Card does not exist: "+cardID, err)
		}
		return gatewayError(err)
	}
	return nil
}

// ChargeCard captures a USD charge on a stored card or a one-time card
func (p *StripeProcessor) ChargeCard(ctx context.Context, req gateway.ChargeRequest) (*gateway.Charge, error) {
	if req.AmountCents < minimumChargeCent {
		return nil, errs.NewValidationError("Charge amount must exceed $1.", errs.CodeChargeBelowMinimum, nil).
			WithField("amount", "Charge amount must exceed $1.")
	}

	description := req.Description
	if description == "" {
		description = chargeDescription
	}

	params := &stripe.ChargeParams{
		Amount:      stripe.Int64(req.AmountCents),
		Currency:    stripe.String(string(stripe.CurrencyUSD)),
		Description: stripe.String(description),
	}
	params.Context = ctx

	switch {
	case req.Card != nil:
		if err := req.Card.Validate(p.timeProvider.Now()); err != nil {
			return nil, err
		}
		if err := params.SetSource(cardParams(req.Card)); err != nil {
			return nil, gatewayError(err)
		}
	case req.CustomerID != "" && req.CardID != "":
		params.Customer = stripe.String(req.CustomerID)
		if err := params.SetSource(req.CardID); err != nil {
			return nil, gatewayError(err)
		}
	default:
		return nil, errs.NewValidationError("Could not charge card", errs.CodeInvalidPaymentMode, nil).
			WithField("card_id", "A stored card or card details are required")
	}

	start := p.timeProvider.Now()
	result, err := p.api.Charges.New(params)
	p.observe("charge", start, err)
	if err != nil {
		return nil, gatewayError(err)
	}

	p.logger.Info("Card charged", map[string]any{
		"charge_id":    result.ID,
		"amount_cents": result.Amount,
	})
	return &gateway.Charge{
		ID:          result.ID,
		AmountCents: result.Amount,
		Status:      string(result.Status),
	}, nil
}

// RefundCharge refunds a charge in full
func (p *StripeProcessor) RefundCharge(ctx context.Context, chargeID string) (*gateway.Refund, error) {
	params := &stripe.RefundParams{Charge: stripe.String(chargeID)}
	params.Context = ctx

	start := p.timeProvider.Now()
	result, err := p.api.Refunds.New(params)
	p.observe("refund", start, err)
	if err != nil {
		return nil, gatewayError(err)
	}

	refund := &gateway.Refund{
		ID:          result.ID,
		ChargeID:    chargeID,
		AmountCents: result.Amount,
	}
	p.logger.Info("Charge refunded", map[string]any{
		"charge_id":    chargeID,
		"refund_id":    refund.ID,
		"amount_cents": refund.AmountCents,
	})
	return refund, nil
}

func cardParams(details *entity.CardDetails) *stripe.CardParams {
	params := &stripe.CardParams{
		Name:     stripe.String(strings.TrimSpace(details.NameOnCard)),
		Number:   stripe.String(details.Digits()),
		ExpMonth: stripe.String(strconv.Itoa(details.ExpirationMonth)),
		ExpYear:  stripe.String(strconv.Itoa(details.ExpirationYear)),
	}
	if details.CVC != "" {
		params.CVC = stripe.String(details.CVC)
	}
	if details.Address != "" {
		params.AddressLine1 = stripe.String(details.Address)
	}
	if details.Zip != "" {
		params.AddressZip = stripe.String(details.Zip)
	}
	return params
}

func toCustomer(c *stripe.Customer) *gateway.Customer {
	return &gateway.Customer{
		ID:          c.ID,
		Description: c.Description,
		Email:       c.Email,
	}
}

func toStoredCard(c *stripe.Card) *gateway.StoredCard {
	return &gateway.StoredCard{
		ID:       c.ID,
		Brand:    string(c.Brand),
		LastFour: c.Last4,
		ExpMonth: int(c.ExpMonth),
		ExpYear:  int(c.ExpYear),
	}
}

func cardKey(customerID, cardID string) string {
	return customerID + "/" + cardID
}

func (p *StripeProcessor) cacheCustomer(c *gateway.Customer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.customers[c.ID] = c
}

func (p *StripeProcessor) evictCustomer(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.customers, id)
	prefix := id + "/"
	for key := range p.cards {
		if strings.HasPrefix(key, prefix) {
			delete(p.cards, key)
		}
	}
}

func (p *StripeProcessor) cacheCard(customerID string, c *gateway.StoredCard) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cards[cardKey(customerID, c.ID)] = c
}

func (p *StripeProcessor) evictCard(customerID, cardID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.cards, cardKey(customerID, cardID))
}
