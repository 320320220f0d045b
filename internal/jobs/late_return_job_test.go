package jobs

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rent"
	"rental/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *mockUnitOfWorkFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
}

type mockUnitOfWork struct {
	mock.Mock
}

func (m *mockUnitOfWork) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockUnitOfWork) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockUnitOfWork) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockUnitOfWork) MotorcycleRepository() ports.MotorcycleRepository {
	return m.Called().Get(0).(ports.MotorcycleRepository)
}

func (m *mockUnitOfWork) DriverRepository() ports.DriverRepository {
	return m.Called().Get(0).(ports.DriverRepository)
}

func (m *mockUnitOfWork) RentRepository() ports.RentRepository {
	return m.Called().Get(0).(ports.RentRepository)
}

type mockRentRepository struct {
	mock.Mock
}

func (m *mockRentRepository) Add(ctx context.Context, r *rent.VehicleRent) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRentRepository) GetByID(ctx context.Context, id kernel.UUID) (*rent.VehicleRent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rent.VehicleRent), args.Error(1)
}

func (m *mockRentRepository) GetForVehicleLocked(ctx context.Context, vehicleID kernel.UUID) ([]*rent.VehicleRent, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rent.VehicleRent), args.Error(1)
}

func (m *mockRentRepository) SetEndedAt(ctx context.Context, id kernel.UUID, endedAt time.Time) error {
	return m.Called(ctx, id, endedAt).Error(0)
}

func (m *mockRentRepository) GetOverdue(ctx context.Context, now time.Time) ([]*rent.VehicleRent, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rent.VehicleRent), args.Error(1)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	return m.Called(ctx, eventType, payload).Error(0)
}

func sweepDate(day int) time.Time {
	return time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC)
}

func newOverdueRental(t *testing.T) *rent.VehicleRent {
	t.Helper()

	result := rent.Create(kernel.NewUUID(), kernel.NewUUID(), sweepDate(1), sweepDate(8), 7, nil)
	require.True(t, result.IsSuccess())
	return result.RequiredValue()
}

func newTestJob(factory ports.UnitOfWorkFactory, publisher ports.EventPublisher) *LateReturnJob {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewLateReturnJob(factory, publisher, logger)
}

func overdueEventFor(rental *rent.VehicleRent) any {
	return mock.MatchedBy(func(payload any) bool {
		event, ok := payload.(RentOverdueEvent)
		return ok && event.RentID == rental.ID().String()
	})
}

func expectSweep(uow *mockUnitOfWork, repo *mockRentRepository, overdue []*rent.VehicleRent) {
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("RentRepository").Return(repo)
	repo.On("GetOverdue", mock.Anything, mock.Anything).Return(overdue, nil)
	uow.On("Rollback", mock.Anything).Return(nil)
}

func TestLateReturnJob_Run_NotifiesEachRentalOnce(t *testing.T) {
	ctx := t.Context()
	first := newOverdueRental(t)
	second := newOverdueRental(t)

	repo := new(mockRentRepository)
	uow := new(mockUnitOfWork)
	expectSweep(uow, repo, []*rent.VehicleRent{first, second})

	factory := new(mockUnitOfWorkFactory)
	factory.On("Create").Return(uow)

	publisher := new(mockEventPublisher)
	publisher.On("Publish", mock.Anything, RentOverdueEventType, overdueEventFor(first)).Return(nil).Once()
	publisher.On("Publish", mock.Anything, RentOverdueEventType, overdueEventFor(second)).Return(nil).Once()

	job := newTestJob(factory, publisher)
	job.run(ctx)
	job.run(ctx)

	publisher.AssertExpectations(t)
	publisher.AssertNumberOfCalls(t, "Publish", 2)
}

func TestLateReturnJob_Run_ConcurrentSweepsDoNotDoubleNotify(t *testing.T) {
	ctx := t.Context()
	rental := newOverdueRental(t)

	repo := new(mockRentRepository)
	uow := new(mockUnitOfWork)
	expectSweep(uow, repo, []*rent.VehicleRent{rental})

	factory := new(mockUnitOfWorkFactory)
	factory.On("Create").Return(uow)

	publisher := new(mockEventPublisher)
	publisher.On("Publish", mock.Anything, RentOverdueEventType, overdueEventFor(rental)).Return(nil).Once()

	job := newTestJob(factory, publisher)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			job.run(ctx)
		}()
	}
	wg.Wait()

	publisher.AssertExpectations(t)
	publisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestLateReturnJob_Run_FailedPublishIsRetriedNextSweep(t *testing.T) {
	ctx := t.Context()
	rental := newOverdueRental(t)

	repo := new(mockRentRepository)
	uow := new(mockUnitOfWork)
	expectSweep(uow, repo, []*rent.VehicleRent{rental})

	factory := new(mockUnitOfWorkFactory)
	factory.On("Create").Return(uow)

	publisher := new(mockEventPublisher)
	publisher.On("Publish", mock.Anything, RentOverdueEventType, overdueEventFor(rental)).
		Return(assert.AnError).Once()
	publisher.On("Publish", mock.Anything, RentOverdueEventType, overdueEventFor(rental)).
		Return(nil).Once()

	job := newTestJob(factory, publisher)
	job.run(ctx)
	job.run(ctx)
	job.run(ctx)

	publisher.AssertExpectations(t)
	publisher.AssertNumberOfCalls(t, "Publish", 2)
}
