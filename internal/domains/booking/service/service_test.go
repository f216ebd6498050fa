package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ShubhamGaur-277/Booking-Service/config"
	kafkaMocks "github.com/ShubhamGaur-277/Booking-Service/infras/kafka/mocks"
	"github.com/ShubhamGaur-277/Booking-Service/infras/otel/mocks"
	"github.com/ShubhamGaur-277/Booking-Service/infras/postgres"
	bookingMocks "github.com/ShubhamGaur-277/Booking-Service/internal/domains/booking/mocks"
	"github.com/ShubhamGaur-277/Booking-Service/internal/domains/booking/model"
	"github.com/ShubhamGaur-277/Booking-Service/internal/domains/booking/model/dto"
	"github.com/ShubhamGaur-277/Booking-Service/internal/domains/booking/service"
	priceMocks "github.com/ShubhamGaur-277/Booking-Service/internal/domains/price/mocks"
	priceModel "github.com/ShubhamGaur-277/Booking-Service/internal/domains/price/model"
	seatMocks "github.com/ShubhamGaur-277/Booking-Service/internal/domains/seat/mocks"
	seatModel "github.com/ShubhamGaur-277/Booking-Service/internal/domains/seat/model"
	cacheMocks "github.com/ShubhamGaur-277/Booking-Service/shared/cache/mocks"
	"github.com/ShubhamGaur-277/Booking-Service/shared/failure"
)

type testDeps struct {
	repo     *bookingMocks.MockBooking
	seatRepo *seatMocks.MockSeat
	price    *priceMocks.MockPrice
	cache    *cacheMocks.MockRedisCache
	kafka    *kafkaMocks.MockClient
	sqlMock  sqlmock.Sqlmock
	svc      service.Booking
}

func newTestDeps(t *testing.T, ctrl *gomock.Controller) testDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	deps := testDeps{
		repo:     bookingMocks.NewMockBooking(ctrl),
		seatRepo: seatMocks.NewMockSeat(ctrl),
		price:    priceMocks.NewMockPrice(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		kafka:    kafkaMocks.NewMockClient(ctrl),
		sqlMock:  sqlMock,
	}

	deps.svc = service.New(deps.repo, deps.seatRepo, deps.price, conn, cfg, deps.cache, deps.kafka, mocks.NewOtel())

	return deps
}

func TestBookingService_SubmitBatch(t *testing.T) {
	tier := priceModel.PriceTier{
		ID:          1,
		SeatClass:   "A",
		MinPrice:    "320",
		NormalPrice: "400",
		MaxPrice:    "500",
	}

	t.Run("books two seats and commits once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		deps := newTestDeps(t, ctrl)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.seatRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(seatModel.Seat{ID: 1, SeatIdentifier: "A1", SeatClass: "A"}, nil)
		deps.seatRepo.EXPECT().
			ReserveTx(gomock.Any(), gomock.Any(), 1).
			Return(true, nil)
		deps.seatRepo.EXPECT().
			OccupancyTx(gomock.Any(), gomock.Any(), "A").
			Return(seatModel.Occupancy{Total: 10, Booked: 3}, nil)

		deps.seatRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(seatModel.Seat{ID: 2, SeatIdentifier: "A2", SeatClass: "A"}, nil)
		deps.seatRepo.EXPECT().
			ReserveTx(gomock.Any(), gomock.Any(), 2).
			Return(true, nil)
		deps.seatRepo.EXPECT().
			OccupancyTx(gomock.Any(), gomock.Any(), "A").
			Return(seatModel.Occupancy{Total: 10, Booked: 7}, nil)

		deps.price.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(tier, nil).
			Times(2)

		deps.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)

		deps.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := deps.svc.SubmitBatch(context.Background(), []dto.BookingItemRequest{
			{SeatID: 1, Name: "alice", Phone: 9876543210},
			{SeatID: 2, Name: "bob", Phone: 9123456780},
		})

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "320", res[0].Price)
		assert.Equal(t, "500", res[1].Price)
		assert.NotEmpty(t, res[0].BookingID)
		assert.NotEmpty(t, res[1].BookingID)
		assert.NotEqual(t, res[0].BookingID, res[1].BookingID)
	})

	t.Run("already booked seat aborts the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		deps := newTestDeps(t, ctrl)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.seatRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(seatModel.Seat{ID: 3, SeatIdentifier: "A3", SeatClass: "A", IsBooked: true}, nil)
		deps.seatRepo.EXPECT().
			ReserveTx(gomock.Any(), gomock.Any(), 3).
			Return(false, nil)

		res, err := deps.svc.SubmitBatch(context.Background(), []dto.BookingItemRequest{
			{SeatID: 3, Name: "alice", Phone: 9876543210},
		})

		assert.Nil(t, res)
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.Equal(t, "seat with seatId 3 is already booked", err.Error())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown seat aborts the batch with not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		deps := newTestDeps(t, ctrl)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.seatRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(seatModel.Seat{ID: 1, SeatIdentifier: "A1", SeatClass: "A"}, nil)
		deps.seatRepo.EXPECT().
			ReserveTx(gomock.Any(), gomock.Any(), 1).
			Return(true, nil)
		deps.seatRepo.EXPECT().
			OccupancyTx(gomock.Any(), gomock.Any(), "A").
			Return(seatModel.Occupancy{Total: 10, Booked: 3}, nil)
		deps.price.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(tier, nil)
		deps.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		deps.seatRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(seatModel.Seat{}, nil)

		res, err := deps.svc.SubmitBatch(context.Background(), []dto.BookingItemRequest{
			{SeatID: 1, Name: "alice", Phone: 9876543210},
			{SeatID: 99, Name: "bob", Phone: 9123456780},
		})

		assert.Nil(t, res)
		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing price tier aborts the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		deps := newTestDeps(t, ctrl)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.seatRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(seatModel.Seat{ID: 1, SeatIdentifier: "A1", SeatClass: "A"}, nil)
		deps.seatRepo.EXPECT().
			ReserveTx(gomock.Any(), gomock.Any(), 1).
			Return(true, nil)
		deps.seatRepo.EXPECT().
			OccupancyTx(gomock.Any(), gomock.Any(), "A").
			Return(seatModel.Occupancy{Total: 10, Booked: 3}, nil)
		deps.price.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(priceModel.PriceTier{}, nil)

		res, err := deps.svc.SubmitBatch(context.Background(), []dto.BookingItemRequest{
			{SeatID: 1, Name: "alice", Phone: 9876543210},
		})

		assert.Nil(t, res)
		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_Find(t *testing.T) {
	bookings := []model.Booking{
		{ID: "b-1", SeatID: 1, Name: "alice", Phone: 9876543210},
		{ID: "b-2", SeatID: 4, Name: "alice", Phone: 9876543210},
	}

	t.Run("missing both identifiers is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		deps := newTestDeps(t, ctrl)

		res, err := deps.svc.Find(context.Background(), "", "")

		assert.Nil(t, res)
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("non numeric phone is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		deps := newTestDeps(t, ctrl)

		res, err := deps.svc.Find(context.Background(), "", "not-a-number")

		assert.Nil(t, res)
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("finds bookings by name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		deps := newTestDeps(t, ctrl)

		deps.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		deps.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookings, nil)

		deps.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := deps.svc.Find(context.Background(), "alice", "")

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "b-1", res[0].BookingID)
		assert.Equal(t, 1, res[0].SeatID)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		deps := newTestDeps(t, ctrl)

		deps.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := deps.svc.Find(context.Background(), "", "9876543210")

		assert.NoError(t, err)
	})
}
