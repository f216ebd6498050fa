package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/ShubhamGaur-277/Booking-Service/infras/otel"
	"github.com/ShubhamGaur-277/Booking-Service/infras/postgres"
	"github.com/ShubhamGaur-277/Booking-Service/internal/domains/price/model"
	gDto "github.com/ShubhamGaur-277/Booking-Service/shared/dto"
	gRepo "github.com/ShubhamGaur-277/Booking-Service/shared/repository"
)

type Price interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PriceTier, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	InsertBulk(ctx context.Context, models []model.PriceTier) error
}

type repositoryImpl struct {
	gRepo.Repository[model.PriceTier]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Price {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PriceTier](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
