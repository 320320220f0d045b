package commands_test

import (
	"context"
	"errors"
	"testing"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/motorcycle"
	"rental/internal/core/ports"
	"rental/internal/pkg/results"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateMotoRepository struct{ mock.Mock }

func (m *MockCreateMotoRepository) Add(ctx context.Context, moto *motorcycle.Motorcycle) error {
	args := m.Called(ctx, moto)
	return args.Error(0)
}

func (m *MockCreateMotoRepository) GetByCode(ctx context.Context, code kernel.CodeId) (*motorcycle.Motorcycle, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*motorcycle.Motorcycle), args.Error(1)
}

func (m *MockCreateMotoRepository) ExistsByPlacaOrCode(
	ctx context.Context, placa string, code kernel.CodeId,
) (bool, error) {
	args := m.Called(ctx, placa, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockCreateMotoRepository) UpdatePlaca(ctx context.Context, id kernel.UUID, placa string) error {
	args := m.Called(ctx, id, placa)
	return args.Error(0)
}

func (m *MockCreateMotoRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCreateMotoUoW struct{ mock.Mock }

func (m *MockCreateMotoUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateMotoUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateMotoUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateMotoUoW) MotorcycleRepository() ports.MotorcycleRepository {
	args := m.Called()
	return args.Get(0).(ports.MotorcycleRepository)
}

type MockCreateMotoUoWFactory struct{ mock.Mock }

func (m *MockCreateMotoUoWFactory) Create() commands.MotorcycleUoW {
	args := m.Called()
	return args.Get(0).(commands.MotorcycleUoW)
}

type MockCreateMotoPublisher struct{ mock.Mock }

func (m *MockCreateMotoPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	args := m.Called(ctx, eventType, payload)
	return args.Error(0)
}

func TestCreateMotorcycleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCreateMotorcycleCommand("moto-7", "abc-1234", "Honda CG 160", 2024)

	repo := new(MockCreateMotoRepository)
	uow := new(MockCreateMotoUoW)
	publisher := new(MockCreateMotoPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MotorcycleRepository").Return(repo).Once(),
		repo.On("ExistsByPlacaOrCode", ctx, "abc1234", kernel.NewCodeId("MOTO-7")).
			Return(false, nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*motorcycle.Motorcycle")).Return(nil).Once(),
		publisher.On("Publish", ctx, commands.MotorcycleCreatedEventType,
			mock.AnythingOfType("commands.MotorcycleCreatedEvent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateMotoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateMotorcycleCommandHandler(factory, publisher)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, result.IsSuccess())
	moto, _ := result.Value()
	assert.Equal(t, "abc1234", moto.Placa())

	event := publisher.Calls[0].Arguments[2].(commands.MotorcycleCreatedEvent)
	assert.Equal(t, moto.ID().String(), event.ID)
	assert.Equal(t, "MOTO-7", event.Code)
	assert.Equal(t, 2024, event.Year)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateMotorcycleCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateMotorcycleCommand{} // not constructed properly

	factory := new(MockCreateMotoUoWFactory)
	publisher := new(MockCreateMotoPublisher)
	handler := commands.NewCreateMotorcycleCommandHandler(factory, publisher)

	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateMotorcycleCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateMotorcycleCommandHandler_Handle_DomainFailure(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCreateMotorcycleCommand("moto-7", "bad", "Honda CG", 1800)

	factory := new(MockCreateMotoUoWFactory)
	publisher := new(MockCreateMotoPublisher)
	handler := commands.NewCreateMotorcycleCommandHandler(factory, publisher)

	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, result.IsFailure())
	assert.True(t, result.HasKind(results.InvalidPlate))
	assert.True(t, result.HasKind(results.InvalidYear))
	factory.AssertNotCalled(t, "Create")
}

func TestCreateMotorcycleCommandHandler_Handle_Conflict(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCreateMotorcycleCommand("moto-7", "ABC1234", "Honda CG", 2024)

	repo := new(MockCreateMotoRepository)
	uow := new(MockCreateMotoUoW)
	publisher := new(MockCreateMotoPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MotorcycleRepository").Return(repo).Once(),
		repo.On("ExistsByPlacaOrCode", ctx, "ABC1234", kernel.NewCodeId("MOTO-7")).
			Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateMotoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateMotorcycleCommandHandler(factory, publisher)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, result.IsFailure())
	assert.True(t, result.HasKind(results.Conflict))
	repo.AssertNotCalled(t, "Add")
	publisher.AssertNotCalled(t, "Publish")
}

func TestCreateMotorcycleCommandHandler_Handle_PublishError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCreateMotorcycleCommand("moto-7", "ABC1234", "Honda CG", 2024)

	repo := new(MockCreateMotoRepository)
	uow := new(MockCreateMotoUoW)
	publisher := new(MockCreateMotoPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MotorcycleRepository").Return(repo).Once(),
		repo.On("ExistsByPlacaOrCode", ctx, "ABC1234", kernel.NewCodeId("MOTO-7")).
			Return(false, nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*motorcycle.Motorcycle")).Return(nil).Once(),
		publisher.On("Publish", ctx, commands.MotorcycleCreatedEventType, mock.Anything).
			Return(errors.New("broker unavailable")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateMotoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateMotorcycleCommandHandler(factory, publisher)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "broker unavailable")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateMotorcycleCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCreateMotorcycleCommand("moto-7", "ABC1234", "Honda CG", 2024)

	repo := new(MockCreateMotoRepository)
	uow := new(MockCreateMotoUoW)
	publisher := new(MockCreateMotoPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MotorcycleRepository").Return(repo).Once(),
		repo.On("ExistsByPlacaOrCode", ctx, "ABC1234", kernel.NewCodeId("MOTO-7")).
			Return(false, nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*motorcycle.Motorcycle")).Return(nil).Once(),
		publisher.On("Publish", ctx, commands.MotorcycleCreatedEventType, mock.Anything).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateMotoUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateMotorcycleCommandHandler(factory, publisher)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
