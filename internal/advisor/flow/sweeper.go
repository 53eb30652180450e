package flow

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper evicts idle sessions on a schedule.
type Sweeper struct {
	store *Store
	ttl   time.Duration
	cron  *cron.Cron
}

func NewSweeper(store *Store, ttl time.Duration) *Sweeper {
	return &Sweeper{
		store: store,
		ttl:   ttl,
		cron:  cron.New(),
	}
}

// Start schedules an hourly sweep.
func (s *Sweeper) Start() {
	_, err := s.cron.AddFunc("@every 1h", func() {
		if removed := s.store.Prune(s.ttl); removed > 0 {
			log.Printf("[info] operation=session_sweep removed=%d remaining=%d", removed, s.store.Len())
		}
	})
	if err != nil {
		log.Printf("Failed to create session sweep job: %v", err)
		return
	}

	log.Printf("Session sweeper started (hourly, ttl=%s)", s.ttl)
	s.cron.Start()
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
}
