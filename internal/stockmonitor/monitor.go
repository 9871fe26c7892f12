package stockmonitor

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	db "github.com/uicmedicare/medicare-BE/internal/db/sqlc"
	"github.com/uicmedicare/medicare-BE/internal/feed"
	"github.com/uicmedicare/medicare-BE/internal/worker"
)

// Monitor runs the background jobs of the clinic: refreshing the per-branch
// notification feeds and scanning branch inventories for low stock.
type Monitor struct {
	store           db.Store
	taskDistributor worker.TaskDistributor
	feedHub         *feed.Hub
	seen            feed.SeenStore
	alertEmail      string
	pollInterval    time.Duration
	scanInterval    time.Duration
	scheduler       gocron.Scheduler
}

func NewMonitor(store db.Store, taskDistributor worker.TaskDistributor, feedHub *feed.Hub, seen feed.SeenStore, alertEmail string, pollInterval, scanInterval time.Duration) (*Monitor, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &Monitor{
		store:           store,
		taskDistributor: taskDistributor,
		feedHub:         feedHub,
		seen:            seen,
		alertEmail:      alertEmail,
		pollInterval:    pollInterval,
		scanInterval:    scanInterval,
		scheduler:       scheduler,
	}, nil
}

// Start registers the polling and scanning jobs and starts the scheduler.
func (m *Monitor) Start() error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(m.pollInterval),
		gocron.NewTask(
			func() {
				m.refreshFeeds()
			},
		),
	)
	if err != nil {
		return err
	}

	_, err = m.scheduler.NewJob(
		gocron.DurationJob(m.scanInterval),
		gocron.NewTask(
			func() {
				log.Info().
					Str("job", "low_stock_scan").
					Time("start_time", time.Now()).
					Msg("Starting low stock scan")

				m.scanLowStock()
			},
		),
	)
	if err != nil {
		return err
	}

	m.scheduler.Start()
	return nil
}

// Stop shuts down the scheduler and waits for running jobs to finish.
func (m *Monitor) Stop() error {
	return m.scheduler.Shutdown()
}

func (m *Monitor) refreshFeeds() {
	ctx, cancel := context.WithTimeout(context.Background(), m.pollInterval)
	defer cancel()

	m.feedHub.RefreshAll(ctx)
}

// scanLowStock walks every branch inventory and enqueues one alert task per
// medicine that dropped to or below its threshold. A seen marker keyed by the
// current quantity keeps a medicine from alerting again until its stock
// changes.
func (m *Monitor) scanLowStock() {
	ctx := context.Background()

	branches, err := m.store.ListBranches(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list branches for low stock scan")
		return
	}

	for _, branch := range branches {
		rows, err := m.store.ListLowStockInventory(ctx, branch.ID)
		if err != nil {
			log.Error().
				Err(err).
				Int64("branch_id", branch.ID).
				Msg("failed to list low stock inventory")
			continue
		}

		for _, row := range rows {
			alertKey := fmt.Sprintf("scan:%d:%d:%d", row.BranchID, row.MedicineID, row.QuantityOnHand)

			alreadySent, err := m.seen.Has(ctx, alertKey)
			if err != nil {
				log.Warn().
					Err(err).
					Str("alert_key", alertKey).
					Msg("failed to check low stock alert marker")
				continue
			}
			if alreadySent {
				continue
			}

			payload := &worker.PayloadLowStockAlert{
				BranchID:       row.BranchID,
				MedicineID:     row.MedicineID,
				MedicineName:   row.MedicineName,
				QuantityOnHand: row.QuantityOnHand,
				Threshold:      row.LowStockThreshold,
				Unit:           row.Unit,
				NotifyEmail:    m.alertEmail,
			}
			if err = m.taskDistributor.DistributeTaskLowStockAlert(ctx, payload); err != nil {
				log.Error().
					Err(err).
					Int64("branch_id", row.BranchID).
					Int64("medicine_id", row.MedicineID).
					Msg("failed to enqueue low stock alert task")
				continue
			}

			if err = m.seen.Set(ctx, alertKey); err != nil {
				log.Warn().
					Err(err).
					Str("alert_key", alertKey).
					Msg("failed to record low stock alert marker")
			}
		}
	}
}
