package handlers

import (
	"testing"

	"github.com/deliverydesk/deliverydesk/internal/finance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() DeliveryRequest {
	return DeliveryRequest{
		ProjectID:    1,
		UserID:       2,
		Role:         "Backend",
		Description:  "API Implemented - App",
		DeliveryDate: "2025-05-07",
		Amount:       2000,
	}
}

func TestValidateDeliveryRequest(t *testing.T) {
	derived, date, err := validateDeliveryRequest(validRequest())
	require.NoError(t, err)

	assert.Equal(t, 2000.0, derived.Gross)
	assert.Equal(t, 1600.0, derived.Net)
	assert.Equal(t, 5, derived.Month)
	assert.Equal(t, 2025, derived.Year)
	assert.Equal(t, "2025-05-07", date.Format(dateLayout))
}

func TestValidateDeliveryRequestDefaultsToGross(t *testing.T) {
	req := validRequest()
	req.IsGross = nil

	derived, _, err := validateDeliveryRequest(req)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, derived.Gross)

	isGross := false
	req.IsGross = &isGross

	derived, _, err = validateDeliveryRequest(req)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, derived.Net)
	assert.InDelta(t, 2500.0, derived.Gross, 1e-9)
}

func TestValidateDeliveryRequestRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DeliveryRequest)
	}{
		{name: "unknown phase", mutate: func(r *DeliveryRequest) { r.Role = "Testing" }},
		{name: "bad date", mutate: func(r *DeliveryRequest) { r.DeliveryDate = "07/05/2025" }},
		{name: "negative amount", mutate: func(r *DeliveryRequest) { r.Amount = -5 }},
		{name: "zero amount", mutate: func(r *DeliveryRequest) { r.Amount = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, _, err := validateDeliveryRequest(req)
			assert.ErrorIs(t, err, finance.ErrValidation)
		})
	}
}
