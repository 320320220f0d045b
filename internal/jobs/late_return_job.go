package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"rental/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// RentOverdueEventType identifies overdue rental notifications on the broker.
const RentOverdueEventType = "rent.overdue"

// RentOverdueEvent is the payload published when a rental runs past its
// expected ending date without a devolution.
type RentOverdueEvent struct {
	RentID             string    `json:"rent_id"`
	DriverID           string    `json:"driver_id"`
	VehicleID          string    `json:"vehicle_id"`
	ExpectedEndingDate time.Time `json:"expected_ending_date"`
	DetectedAt         time.Time `json:"detected_at"`
}

// LateReturnJob watches for rentals that are still running past their
// expected ending date. Runs every minute; each overdue rental is logged and
// published once per process lifetime.
type LateReturnJob struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	cron       *cron.Cron
	logger     *slog.Logger

	// mu serializes sweeps. Cron runs each activation in its own goroutine,
	// so a sweep slowed down by the database or the broker can overlap the
	// next one; holding the lock for the whole run keeps the notified map
	// safe and prevents double notifications for the same rental.
	mu       sync.Mutex
	notified map[string]bool
}

// NewLateReturnJob creates a new job for detecting overdue rentals.
func NewLateReturnJob(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *LateReturnJob {
	return &LateReturnJob{
		uowFactory: uowFactory,
		publisher:  publisher,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "late_return_job"),
		notified:   make(map[string]bool),
	}
}

// Start begins the late return job to run every minute.
func (j *LateReturnJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Late return job started (running every minute)")
	return nil
}

// Stop stops the late return job.
func (j *LateReturnJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Late return job stopped")
}

func (j *LateReturnJob) run(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := time.Now().UTC()

	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Late return job failed to begin transaction", "error", err)
		return
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	overdue, err := uow.RentRepository().GetOverdue(ctx, now)
	if err != nil {
		j.logger.ErrorContext(ctx, "Late return job failed to query overdue rentals", "error", err)
		return
	}

	for _, rental := range overdue {
		rentID := rental.ID().String()
		if j.notified[rentID] {
			continue
		}

		j.logger.WarnContext(ctx, "Rental past its expected ending date",
			"rent_id", rentID,
			"driver_id", rental.DriverID().String(),
			"vehicle_id", rental.VehicleID().String(),
			"expected_ending_date", rental.ExpectedEndingDate(),
		)

		event := RentOverdueEvent{
			RentID:             rentID,
			DriverID:           rental.DriverID().String(),
			VehicleID:          rental.VehicleID().String(),
			ExpectedEndingDate: rental.ExpectedEndingDate(),
			DetectedAt:         now,
		}
		if err := j.publisher.Publish(ctx, RentOverdueEventType, event); err != nil {
			j.logger.ErrorContext(ctx, "Late return job failed to publish event",
				"rent_id", rentID, "error", err)
			continue
		}

		j.notified[rentID] = true
	}
}
