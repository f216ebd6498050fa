package model_test

import (
	"testing"

	"github.com/ShubhamGaur-277/Booking-Service/internal/domains/price/model"

	"github.com/stretchr/testify/assert"
)

func TestPriceAt(t *testing.T) {
	t.Parallel()

	fullTier := model.PriceTier{
		SeatClass:   "A",
		MinPrice:    "320",
		NormalPrice: "400.50",
		MaxPrice:    "500",
	}

	tests := []struct {
		name             string
		tier             model.PriceTier
		occupancyPercent float64
		want             string
	}{
		{
			name:             "below low bound uses min price",
			tier:             fullTier,
			occupancyPercent: 30,
			want:             "320",
		},
		{
			name:             "low bound is inclusive to normal band",
			tier:             fullTier,
			occupancyPercent: 40,
			want:             "400.50",
		},
		{
			name:             "middle band uses normal price",
			tier:             fullTier,
			occupancyPercent: 55,
			want:             "400.50",
		},
		{
			name:             "high bound is inclusive to normal band",
			tier:             fullTier,
			occupancyPercent: 60,
			want:             "400.50",
		},
		{
			name:             "above high bound uses max price",
			tier:             fullTier,
			occupancyPercent: 75,
			want:             "500",
		},
		{
			name: "missing min price falls back to normal",
			tier: model.PriceTier{
				SeatClass:   "B",
				NormalPrice: "400.50",
				MaxPrice:    "500",
			},
			occupancyPercent: 10,
			want:             "400.50",
		},
		{
			name: "missing normal price falls back to max",
			tier: model.PriceTier{
				SeatClass: "B",
				MinPrice:  "320",
				MaxPrice:  "500",
			},
			occupancyPercent: 50,
			want:             "500",
		},
		{
			name: "missing max price falls back to normal",
			tier: model.PriceTier{
				SeatClass:   "B",
				MinPrice:    "320",
				NormalPrice: "400.50",
			},
			occupancyPercent: 90,
			want:             "400.50",
		},
		{
			name:             "empty occupancy prices below low bound",
			tier:             fullTier,
			occupancyPercent: 0,
			want:             "320",
		},
		{
			name:             "full occupancy prices above high bound",
			tier:             fullTier,
			occupancyPercent: 100,
			want:             "500",
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.want, test.tier.PriceAt(test.occupancyPercent))
		})
	}
}
