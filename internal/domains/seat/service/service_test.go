package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ShubhamGaur-277/Booking-Service/config"
	"github.com/ShubhamGaur-277/Booking-Service/infras/otel/mocks"
	priceMocks "github.com/ShubhamGaur-277/Booking-Service/internal/domains/price/mocks"
	priceModel "github.com/ShubhamGaur-277/Booking-Service/internal/domains/price/model"
	seatMocks "github.com/ShubhamGaur-277/Booking-Service/internal/domains/seat/mocks"
	"github.com/ShubhamGaur-277/Booking-Service/internal/domains/seat/model"
	"github.com/ShubhamGaur-277/Booking-Service/internal/domains/seat/service"
	cacheMocks "github.com/ShubhamGaur-277/Booking-Service/shared/cache/mocks"
	gDto "github.com/ShubhamGaur-277/Booking-Service/shared/dto"
	"github.com/ShubhamGaur-277/Booking-Service/shared/failure"
)

func TestSeatService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := seatMocks.NewMockSeat(ctrl)
	mockPriceRepo := priceMocks.NewMockPrice(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockPriceRepo, cfg, mockCache, mockOtel)

	seats := []model.Seat{
		{ID: 1, SeatIdentifier: "A1", SeatClass: "A", IsBooked: false},
		{ID: 2, SeatIdentifier: "A2", SeatClass: "A", IsBooked: true},
		{ID: 5, SeatIdentifier: "B1", SeatClass: "B", IsBooked: false},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Seat, error) {
						assert.Equal(t, "seat_class, id", params.SortBy)
						assert.Equal(t, "ASC", params.SortDir)

						return seats, nil
					})

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantLen: 3,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background(), gDto.QueryParams{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantLen > 0 {
					assert.Len(t, result, tt.wantLen)
				}
			}
		})
	}
}

func TestSeatService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := seatMocks.NewMockSeat(ctrl)
	mockPriceRepo := priceMocks.NewMockPrice(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockPriceRepo, cfg, mockCache, mockOtel)

	seat := model.Seat{ID: 7, SeatIdentifier: "A7", SeatClass: "A", IsBooked: false}

	tier := priceModel.PriceTier{
		ID:          1,
		SeatClass:   "A",
		MinPrice:    "320",
		NormalPrice: "400",
		MaxPrice:    "500",
	}

	tests := []struct {
		name      string
		id        int
		setupMock func()
		wantErr   bool
		wantCode  int
		wantPrice string
	}{
		{
			name: "cache hit",
			id:   7,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "low occupancy prices at minimum",
			id:   7,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(seat, nil)

				// 3 of 10 booked, 30% occupancy.
				mockRepo.EXPECT().
					Occupancy(gomock.Any(), "A").
					Return(model.Occupancy{Total: 10, Booked: 3}, nil)

				mockPriceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tier, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantPrice: "320",
		},
		{
			name: "half occupancy prices at normal",
			id:   7,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(seat, nil)

				mockRepo.EXPECT().
					Occupancy(gomock.Any(), "A").
					Return(model.Occupancy{Total: 10, Booked: 5}, nil)

				mockPriceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tier, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantPrice: "400",
		},
		{
			name: "high occupancy prices at maximum",
			id:   7,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(seat, nil)

				mockRepo.EXPECT().
					Occupancy(gomock.Any(), "A").
					Return(model.Occupancy{Total: 10, Booked: 7}, nil)

				mockPriceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tier, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantPrice: "500",
		},
		{
			name: "seat not found",
			id:   99,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Seat{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "price tier missing for class",
			id:   7,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(seat, nil)

				mockRepo.EXPECT().
					Occupancy(gomock.Any(), "A").
					Return(model.Occupancy{Total: 10, Booked: 3}, nil)

				mockPriceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(priceModel.PriceTier{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			id:   7,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Seat{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			if tt.wantPrice != "" {
				assert.Equal(t, tt.wantPrice, result.Price)
			}
		})
	}
}
