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

func TestDeleteMotorcycleByCodeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDeleteMotorcycleByCodeCommand("moto-7")

	moto := motorcycle.Create("moto-7", "ABC1234", "Honda CG 160", 2024).RequiredValue()

	repo := new(MockCreateMotoRepository)
	uow := new(MockCreateMotoUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MotorcycleRepository").Return(repo).Once(),
		repo.On("GetByCode", ctx, kernel.NewCodeId("MOTO-7")).Return(moto, nil).Once(),
		repo.On("Delete", ctx, moto.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateMotoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteMotorcycleByCodeCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.IsSuccess())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteMotorcycleByCodeCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDeleteMotorcycleByCodeCommand("moto-99")

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

	handler := commands.NewDeleteMotorcycleByCodeCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, result.IsFailure())
	assert.True(t, result.HasKind(results.NotFound))
	repo.AssertNotCalled(t, "Delete")
}
