package payment

import (
	"context"
	"strings"
	"sync"

	"github.com/stripe/stripe-go/v76"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/persistence"
)

// Provider resolves the gateway key on every call and keeps one processor per key
type Provider struct {
	settings     persistence.SettingRepository
	fallbackKey  string
	backends     *stripe.Backends
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	observer     CallObserver

	mu      sync.Mutex
	key     string
	current *StripeProcessor
}

var _ gateway.ProcessorProvider = (*Provider)(nil)

// ProviderOption customizes a Provider
type ProviderOption func(*Provider)

// WithBackends points processors at custom Stripe backends
func WithBackends(backends *stripe.Backends) ProviderOption {
	return func(p *Provider) {
		p.backends = backends
	}
}

// WithObserver records gateway call metrics
func WithObserver(observer CallObserver) ProviderOption {
	return func(p *Provider) {
		p.observer = observer
	}
}

// NewProvider creates a provider reading the key from settings, falling back
// to fallbackKey
func NewProvider(
	settings persistence.SettingRepository,
	fallbackKey string,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opts ...ProviderOption,
) *Provider {
	p := &Provider{
		settings:     settings,
		fallbackKey:  strings.TrimSpace(fallbackKey),
		timeProvider: timeProvider,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Processor returns the processor for the configured key, or a disabled one
func (p *Provider) Processor(ctx context.Context) gateway.PaymentProcessor {
	key := p.resolveKey(ctx)
	if key == "" {
		return DisabledProcessor{}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil || p.key != key {
		if p.current != nil {
			p.logger.Info("Payment gateway key changed", nil)
		}
		p.current = NewStripeProcessor(key, p.backends, p.timeProvider, p.logger, p.observer)
		p.key = key
	}
	return p.current
}

func (p *Provider) resolveKey(ctx context.Context) string {
	if p.settings == nil {
		return p.fallbackKey
	}

	value, err := p.settings.GetValue(ctx, entity.SettingStripeAPIKey)
	if err != nil {
		if !errs.IsNotFoundError(err) {
			p.logger.Warn("Could not read payment gateway key", map[string]any{"error": err.Error()})
		}
		return p.fallbackKey
	}
	if value = strings.TrimSpace(value); value != "" {
		return value
	}
	return p.fallbackKey
}

// NewBackends returns Stripe backends that send every API call to url
func NewBackends(url string) *stripe.Backends {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:           stripe.String(url),
		LeveledLogger: &stripe.LeveledLogger{Level: stripe.LevelError},
	})
	return &stripe.Backends{API: backend, Connect: backend, Uploads: backend}
}
