package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"madison/infras/otel"
	"madison/infras/postgres"
	"madison/internal/domains/blog/model"
	gDto "madison/shared/dto"
	gRepo "madison/shared/repository"
)

type Blog interface {
	Insert(ctx context.Context, model model.Post) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Post, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Post, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Post]
}

func New(db *postgres.Connection, otel otel.Otel) Blog {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Post](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
