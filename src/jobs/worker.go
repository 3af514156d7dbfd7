package jobs

import (
	"log"

	"Backend-Blueview/src/config"
	DB "Backend-Blueview/src/database"

	"github.com/hibiken/asynq"
)

// StartWorker runs the background task server. Call from a goroutine; it
// blocks. No-op without Redis.
func StartWorker(cfg *config.Config) {
	if DB.RedisURI == "" {
		log.Println("⚠️ Redis not available. Background report worker disabled.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: DB.RedisURI},
		asynq.Config{Concurrency: 2},
	)

	mux := asynq.NewServeMux()
	mux.Handle(TypeGenerateDailyReport, HandleGenerateDailyReportTask(cfg))
	mux.Handle(TypeSendDailyLogEmail, HandleSendDailyLogEmailTask(cfg))
	mux.HandleFunc(TypeAutoSendScan, HandleAutoSendScanTask)

	log.Println("✅ Report worker started")
	if err := srv.Run(mux); err != nil {
		log.Fatal("❌ Asynq server failed:", err)
	}
}

// StartScheduler registers the minutely auto-send scan. Call from a
// goroutine; it blocks. No-op without Redis.
func StartScheduler() {
	if DB.RedisURI == "" {
		return
	}

	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: DB.RedisURI},
		nil,
	)

	if _, err := scheduler.Register("@every 1m", NewAutoSendScanTask()); err != nil {
		log.Fatal("❌ Failed to register auto-send scan:", err)
	}

	log.Println("✅ Report scheduler started")
	if err := scheduler.Run(); err != nil {
		log.Fatal("❌ Asynq scheduler failed:", err)
	}
}
