package service

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"sehat-clinic/config"
	"sehat-clinic/internal/delivery/dto"
	"sehat-clinic/internal/domain/entity"
	"sehat-clinic/internal/domain/repository"
	"sehat-clinic/internal/infrastructure/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	// Reminders claimed per transaction.
	dispatchBatchSize = 100

	// Upper bound on batches drained in one tick.
	dispatchMaxBatches = 10
)

// ReminderNotice is the JSON payload published for each due reminder.
type ReminderNotice struct {
	ReminderID     int    `json:"reminder_id"`
	PrescriptionID int    `json:"prescription_id"`
	PatientID      int    `json:"patient_id"`
	MedicationName string `json:"medication_name"`
	Dosage         string `json:"dosage"`
	ReminderTime   string `json:"reminder_time"`
}

// ReminderDispatcher periodically claims due pending reminders, marks them sent
// and publishes a notice for each on a redis channel. Every sent reminder is
// replaced by a pending one for the next day in the same transaction.
//
// Claiming uses FOR UPDATE SKIP LOCKED, so several processes can run a
// dispatcher against the same database without sending a reminder twice.
// Publication happens after commit: a reminder is delivered at most once.
type ReminderDispatcher struct {
	db           *gorm.DB
	redisClient  *redis.Client
	log          *logrus.Logger
	reminderRepo repository.ReminderRepository
	metrics      *metrics.Metrics

	channel  string
	interval time.Duration
	now      func() time.Time

	stopChan chan struct{}
	wg       sync.WaitGroup
	started  atomic.Bool
	stopped  atomic.Bool
}

func NewReminderDispatcher(
	db *gorm.DB,
	redisClient *redis.Client,
	log *logrus.Logger,
	reminderRepo repository.ReminderRepository,
	m *metrics.Metrics,
	cfg config.ReminderConfig,
) *ReminderDispatcher {
	return &ReminderDispatcher{
		db:           db,
		redisClient:  redisClient,
		log:          log,
		reminderRepo: reminderRepo,
		metrics:      m,
		channel:      cfg.Channel,
		interval:     cfg.DispatchInterval,
		now:          time.Now,
		stopChan:     make(chan struct{}),
	}
}

// Start launches the dispatch loop. Calling it more than once has no effect.
func (d *ReminderDispatcher) Start() {
	if !d.started.CompareAndSwap(false, true) {
		return
	}

	d.wg.Add(1)
	go d.loop()
	d.log.Infof("Reminder dispatcher started (interval %s, channel %s)", d.interval, d.channel)
}

// Stop waits for an in-flight dispatch to finish. Safe to call multiple times.
func (d *ReminderDispatcher) Stop() {
	if d.stopped.CompareAndSwap(false, true) {
		close(d.stopChan)
		d.wg.Wait()
		d.log.Info("Reminder dispatcher stopped")
	}
}

func (d *ReminderDispatcher) loop() {
	defer d.wg.Done()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stopChan:
			return
		case <-ticker.C:
			d.tick()
		}
	}
}

func (d *ReminderDispatcher) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), d.interval)
	defer cancel()

	for i := 0; i < dispatchMaxBatches; i++ {
		n, err := d.DispatchDue(ctx)
		if err != nil {
			d.log.Errorf("Failed to dispatch due reminders: %+v", err)
			return
		}
		if n < dispatchBatchSize {
			return
		}
	}
}

// DispatchDue claims one batch of due reminders and returns how many were sent.
func (d *ReminderDispatcher) DispatchDue(ctx context.Context) (int, error) {
	tx := d.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	now := WallClock(d.now())
	due, err := d.reminderRepo.LockDue(tx, now, dispatchBatchSize)
	if err != nil {
		return 0, err
	}
	if len(due) == 0 {
		return 0, tx.Commit().Error
	}

	ids := make([]int, len(due))
	for i, r := range due {
		ids[i] = r.ID
	}
	if err := d.reminderRepo.MarkSent(tx, ids); err != nil {
		return 0, err
	}
	if err := d.reminderRepo.CreateBatch(tx, RearmReminders(due, now)); err != nil {
		return 0, err
	}
	if err := tx.Commit().Error; err != nil {
		return 0, err
	}

	d.metrics.AddRemindersDispatched(len(due))
	for i := range due {
		d.publish(ctx, &due[i])
	}
	return len(due), nil
}

func (d *ReminderDispatcher) publish(ctx context.Context, r *entity.ReminderDetail) {
	payload, err := json.Marshal(ReminderNotice{
		ReminderID:     r.ID,
		PrescriptionID: r.PrescriptionID,
		PatientID:      r.PatientID,
		MedicationName: r.MedicationName,
		Dosage:         r.Dosage,
		ReminderTime:   r.ReminderTime.Format(dto.TimestampLayout),
	})
	if err != nil {
		d.log.Warnf("Failed to encode reminder %d: %+v", r.ID, err)
		return
	}

	if err := d.redisClient.Publish(ctx, d.channel, payload).Err(); err != nil {
		d.log.Warnf("Failed to publish reminder %d: %+v", r.ID, err)
	}
}
