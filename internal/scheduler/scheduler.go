package scheduler

// #region imports
import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/danielpatrickdp/socratic-tutor/internal/store"
)

// #endregion

// #region scheduler

// Rollup runs shortly after the learning day winds down.
const rollupSpec = "0 21 * * *"

// Scheduler runs periodic maintenance jobs against the store.
type Scheduler struct {
	cron  *cron.Cron
	store *store.Store
}

// New creates a scheduler over the given store.
func New(st *store.Store) *Scheduler {
	return &Scheduler{
		cron:  cron.New(cron.WithLocation(time.UTC)),
		store: st,
	}
}

// #endregion scheduler

// #region lifecycle

// Start registers the daily stats rollup and starts the cron loop.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(rollupSpec, func() {
		if err := s.store.RollupDaily(time.Now().UTC()); err != nil {
			log.Printf("[SCHED] daily rollup failed: %v", err)
			return
		}
		log.Printf("[SCHED] daily stats rollup complete")
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("[SCHED] daily stats rollup scheduled at 21:00 UTC")
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// #endregion lifecycle
