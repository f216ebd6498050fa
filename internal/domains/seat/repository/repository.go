package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/ShubhamGaur-277/Booking-Service/infras/otel"
	"github.com/ShubhamGaur-277/Booking-Service/infras/postgres"
	"github.com/ShubhamGaur-277/Booking-Service/internal/domains/seat/model"
	"github.com/ShubhamGaur-277/Booking-Service/shared/constant"
	gDto "github.com/ShubhamGaur-277/Booking-Service/shared/dto"
	"github.com/ShubhamGaur-277/Booking-Service/shared/logger"
	gRepo "github.com/ShubhamGaur-277/Booking-Service/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	occupancyQuery = "SELECT COUNT(*) AS total, COUNT(*) FILTER (WHERE is_booked) AS booked FROM seats WHERE seat_class = $1"
	reserveQuery   = "UPDATE seats SET is_booked = TRUE WHERE id = $1 AND NOT is_booked"
)

type Seat interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Seat, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Seat, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Seat, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	InsertBulk(ctx context.Context, models []model.Seat) error
	Occupancy(ctx context.Context, seatClass string) (model.Occupancy, error)
	OccupancyTx(ctx context.Context, sqltx *sqlx.Tx, seatClass string) (model.Occupancy, error)
	ReserveTx(ctx context.Context, sqltx *sqlx.Tx, id int) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Seat]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Seat {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Seat](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) occupancy(ctx context.Context, queryer sqlx.QueryerContext, seatClass string) (model.Occupancy, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".seat.occupancy")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, occupancyQuery)

	var occupancy model.Occupancy

	err := sqlx.GetContext(ctx, queryer, &occupancy, occupancyQuery, seatClass)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return occupancy, fmt.Errorf("failed to get seat occupancy: %w", err)
	}

	return occupancy, nil
}

func (repo *repositoryImpl) Occupancy(ctx context.Context, seatClass string) (model.Occupancy, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".seat.Occupancy")
	defer scope.End()

	return repo.occupancy(ctx, repo.db.Read, seatClass)
}

// OccupancyTx snapshots occupancy through the given transaction so reserves
// made earlier in the same batch are counted.
func (repo *repositoryImpl) OccupancyTx(ctx context.Context, sqltx *sqlx.Tx, seatClass string) (model.Occupancy, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".seat.OccupancyTx")
	defer scope.End()

	return repo.occupancy(ctx, sqltx, seatClass)
}

// ReserveTx marks the seat booked only if it is still free and reports whether
// this call won it. The filtered update makes check and act one statement.
func (repo *repositoryImpl) ReserveTx(ctx context.Context, sqltx *sqlx.Tx, id int) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".seat.ReserveTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, reserveQuery)

	result, err := sqltx.ExecContext(ctx, reserveQuery, id)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to reserve seat: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}
