package status

import (
	"testing"

	"stayadmin-service/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestForRequests(t *testing.T) {
	tests := []struct {
		name     string
		requests []model.Request
		want     Badge
	}{
		{
			name:     "nil requests is available",
			requests: nil,
			want:     Available,
		},
		{
			name:     "empty requests is available",
			requests: []model.Request{},
			want:     Available,
		},
		{
			name:     "plain requests are pending",
			requests: []model.Request{{}, {}},
			want:     Pending,
		},
		{
			name:     "requested flag acknowledges",
			requests: []model.Request{{}, {Requested: true}},
			want:     Acknowledged,
		},
		{
			name:     "confirmed occupies",
			requests: []model.Request{{Confirmed: true}},
			want:     Occupied,
		},
		{
			name:     "confirmed beats requested",
			requests: []model.Request{{Requested: true}, {Confirmed: true}},
			want:     Occupied,
		},
		{
			name:     "confirmed beats requested regardless of order",
			requests: []model.Request{{Confirmed: true}, {Requested: true}},
			want:     Occupied,
		},
		{
			name:     "single confirmed among many plain",
			requests: []model.Request{{}, {}, {Confirmed: true}, {}},
			want:     Occupied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForRequests(tt.requests))
		})
	}
}

func TestBadgeVariants(t *testing.T) {
	assert.Equal(t, VariantDestructive, Occupied.Variant)
	assert.Equal(t, VariantSecondary, Acknowledged.Variant)
	assert.Equal(t, VariantOutline, Pending.Variant)
	assert.Equal(t, VariantDefault, Available.Variant)
}
