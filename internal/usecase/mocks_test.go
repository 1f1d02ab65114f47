package usecase

import (
	"context"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/stretchr/testify/mock"
)

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)

	game, _ := args.Get(0).(*entity.Game)

	return game, args.Error(1)
}

func (that *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

type mockMessageRepo struct {
	mock.Mock
}

func (that *mockMessageRepo) Append(ctx context.Context, gameID string, messages ...string) error {
	args := that.Called(ctx, gameID, messages)
	return args.Error(0)
}

func (that *mockMessageRepo) List(ctx context.Context, gameID string) ([]string, error) {
	args := that.Called(ctx, gameID)

	messages, _ := args.Get(0).([]string)

	return messages, args.Error(1)
}

type mockResultRepo struct {
	mock.Mock
}

func (that *mockResultRepo) Save(ctx context.Context, result entity.ArchivedGame) error {
	args := that.Called(ctx, result)
	return args.Error(0)
}

func (that *mockResultRepo) Recent(ctx context.Context, limit int) ([]entity.ArchivedGame, error) {
	args := that.Called(ctx, limit)

	results, _ := args.Get(0).([]entity.ArchivedGame)

	return results, args.Error(1)
}
