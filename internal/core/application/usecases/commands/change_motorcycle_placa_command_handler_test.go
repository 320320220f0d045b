package commands_test

import (
	"testing"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/motorcycle"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/results"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func placaTestMotorcycle(t *testing.T) *motorcycle.Motorcycle {
	t.Helper()
	return motorcycle.Create("moto-7", "ABC1234", "Honda CG 160", 2024).RequiredValue()
}

func TestChangeMotorcyclePlacaCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewChangeMotorcyclePlacaCommand("moto-7", "xyz-9876")

	moto := placaTestMotorcycle(t)

	repo := new(MockCreateMotoRepository)
	uow := new(MockCreateMotoUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MotorcycleRepository").Return(repo).Once(),
		repo.On("GetByCode", ctx, kernel.NewCodeId("MOTO-7")).Return(moto, nil).Once(),
		repo.On("UpdatePlaca", ctx, moto.ID(), "xyz9876").Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateMotoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeMotorcyclePlacaCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, result.IsSuccess())
	changed, _ := result.Value()
	assert.Equal(t, "xyz9876", changed.Placa())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeMotorcyclePlacaCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewChangeMotorcyclePlacaCommand("moto-99", "XYZ9876")

	repo := new(MockCreateMotoRepository)
	uow := new(MockCreateMotoUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MotorcycleRepository").Return(repo).Once(),
		repo.On("GetByCode", ctx, kernel.NewCodeId("MOTO-99")).
			Return(nil, errs.NewObjectNotFoundError("code", "MOTO-99")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateMotoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeMotorcyclePlacaCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, result.IsFailure())
	assert.True(t, result.HasKind(results.NotFound))
	repo.AssertNotCalled(t, "UpdatePlaca")
}

func TestChangeMotorcyclePlacaCommandHandler_Handle_InvalidPlate(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewChangeMotorcyclePlacaCommand("moto-7", "nope")

	moto := placaTestMotorcycle(t)

	repo := new(MockCreateMotoRepository)
	uow := new(MockCreateMotoUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MotorcycleRepository").Return(repo).Once(),
		repo.On("GetByCode", ctx, kernel.NewCodeId("MOTO-7")).Return(moto, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateMotoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeMotorcyclePlacaCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, result.IsFailure())
	assert.True(t, result.HasKind(results.InvalidPlate))
	repo.AssertNotCalled(t, "UpdatePlaca")
	uow.AssertNotCalled(t, "Commit", ctx)
}
