package tasks

import (
	"log"

	"github.com/Priyans1727C/backend/repository"

	"github.com/robfig/cron/v3"
)

// ResetTokenTask purges used and expired password-reset tokens so the
// table does not grow without bound.
type ResetTokenTask struct {
	TokenRepo *repository.ResetTokenRepository
	Cron      *cron.Cron
}

func NewResetTokenTask(tokenRepo *repository.ResetTokenRepository) *ResetTokenTask {
	return &ResetTokenTask{
		TokenRepo: tokenRepo,
		Cron:      cron.New(),
	}
}

// Start runs one purge immediately, then hourly.
func (t *ResetTokenTask) Start() {
	go t.purge()

	if _, err := t.Cron.AddFunc("@hourly", t.purge); err != nil {
		log.Fatalf("cannot schedule reset-token purge: %v", err)
	}
	t.Cron.Start()
	log.Println("reset-token purge task started (hourly)")
}

func (t *ResetTokenTask) Stop() {
	t.Cron.Stop()
}

func (t *ResetTokenTask) purge() {
	n, err := t.TokenRepo.PurgeDead()
	if err != nil {
		log.Printf("reset-token purge failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("purged %d dead password-reset tokens", n)
	}
}
