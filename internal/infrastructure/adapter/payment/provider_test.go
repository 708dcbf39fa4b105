package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/time"
	persistencemocks "github.com/amirhossein-jamali/smores-api/mocks/port/persistence"
)

func TestProviderUsesSettingKey(t *testing.T) {
	settings := persistencemocks.NewMockSettingRepository(t)
	settings.EXPECT().GetValue(context.Background(), entity.SettingStripeAPIKey).Return("sk_test_settings", nil).Times(3)
	settings.EXPECT().GetValue(context.Background(), entity.SettingStripeAPIKey).Return("sk_test_rotated", nil).Once()

	p := NewProvider(settings, "sk_test_config", timeprovider.FixedTimeProvider{At: testNow}, logger.NewNoopLogger())

	first := p.Processor(context.Background())
	assert.IsType(t, &StripeProcessor{}, first)
	assert.Same(t, first, p.Processor(context.Background()), "same key reuses the processor")
	assert.Equal(t, "sk_test_settings", p.key)

	p.Processor(context.Background())
	rotated := p.Processor(context.Background())
	assert.NotSame(t, first, rotated)
	assert.Equal(t, "sk_test_rotated", p.key)
}

func TestProviderFallsBackToConfig(t *testing.T) {
	settings := persistencemocks.NewMockSettingRepository(t)
	settings.EXPECT().GetValue(context.Background(), entity.SettingStripeAPIKey).
		Return("", fmt.Errorf("get setting: %w", errs.ErrNotFound)).Once()
	settings.EXPECT().GetValue(context.Background(), entity.SettingStripeAPIKey).
		Return("", errors.New("connection reset")).Once()
	settings.EXPECT().GetValue(context.Background(), entity.SettingStripeAPIKey).
		Return("  ", nil).Once()

	p := NewProvider(settings, " sk_test_config ", timeprovider.FixedTimeProvider{At: testNow}, logger.NewNoopLogger())

	for range 3 {
		assert.IsType(t, &StripeProcessor{}, p.Processor(context.Background()))
		assert.Equal(t, "sk_test_config", p.key)
	}
}

func TestProviderDisabledWithoutKey(t *testing.T) {
	p := NewProvider(nil, "", timeprovider.FixedTimeProvider{At: testNow}, logger.NewNoopLogger())

	processor := p.Processor(context.Background())
	assert.IsType(t, DisabledProcessor{}, processor)

	_, err := processor.ChargeCard(context.Background(), gateway.ChargeRequest{AmountCents: 500})
	apiErr := errs.FromError(err)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.Equal(t, int64(errs.CodePaymentsDisabled), apiErr.Code)
	assert.ErrorIs(t, err, errs.ErrPaymentsDisabled)
	assert.ErrorIs(t, processor.DeleteCard(context.Background(), "cus_1", "card_1"), errs.ErrPaymentsDisabled)
}
