package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
)

func TestPurchaseRequest_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want entity.Purchase
	}{
		{
			name: "extra lives",
			body: `{"type":"extra_lives","tier":2,"tierAmount":10,"cost":180}`,
			want: entity.ExtraLives{Tier: 2, TierAmount: 10, Cost: 180},
		},
		{
			name: "external currency redemption",
			body: `{"type":"external_currency_redemption","tier":1,"tierAmount":100,"cost":500,"gameAccountRef":"ff-998877"}`,
			want: entity.ExternalCurrencyRedemption{Tier: 1, TierAmount: 100, Cost: 500, GameAccountRef: "ff-998877"},
		},
		{
			name: "point purchase",
			body: `{"type":"point_purchase","accountId":"acc-1","tier":3,"tierAmount":10000,"cost":8500,"paymentRef":"TRX-991"}`,
			want: entity.PointPurchase{Tier: 3, TierAmount: 10000, Cost: 8500, PaymentRef: "TRX-991"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req PurchaseRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.Purchase)

			terms := req.Purchase.Terms()
			assert.Positive(t, terms.TierAmount)
			assert.Positive(t, terms.Cost)
		})
	}

	t.Run("Carries the account id", func(t *testing.T) {
		var req PurchaseRequest
		require.NoError(t, json.Unmarshal([]byte(`{"type":"point_purchase","accountId":"acc-1","tierAmount":1000,"cost":1000}`), &req))
		assert.Equal(t, "acc-1", req.AccountID)
	})

	t.Run("Rejects bodies missing the amount or price", func(t *testing.T) {
		cases := map[string]string{
			`{"type":"extra_lives","cost":180}`:                      "tierAmount",
			`{"type":"external_currency_redemption","tierAmount":5}`: "cost",
			`{"type":"point_purchase","tier":1,"tierAmount":1000}`:   "cost",
			`{"type":"point_purchase","tierAmount":1000,"cost":-1}`:  "cost",
			`{"type":"extra_lives","tierAmount":-3,"cost":100}`:      "tierAmount",
		}
		for body, field := range cases {
			var req PurchaseRequest
			err := json.Unmarshal([]byte(body), &req)
			require.ErrorIs(t, err, errs.ErrValidation, body)
			assert.Contains(t, errs.ValidationDetails(err), field, body)
		}
	})

	t.Run("Type is required", func(t *testing.T) {
		var req PurchaseRequest
		err := json.Unmarshal([]byte(`{"tierAmount":10,"cost":180}`), &req)
		assert.Contains(t, errs.ValidationDetails(err), "type")
	})
}
