package jobs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"Backend-Blueview/src/config"
	DB "Backend-Blueview/src/database"
	"Backend-Blueview/src/models"
	"Backend-Blueview/src/services/reports"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
)

// HandleGenerateDailyReportTask builds and distributes one project's report
// bundle.
func HandleGenerateDailyReportTask(cfg *config.Config) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload DailyReportPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Println("❌ Payload decode error:", err)
			return err
		}

		result, err := reports.GenerateDailyReport(ctx, cfg, payload.ProjectID, payload.ReportDate, payload.AdminID)
		if err != nil {
			log.Println("❌ Daily report generation failed:", err)
			return err
		}

		log.Printf("✅ Daily report generated: %s project=%s date=%s workers=%d emailSent=%v",
			result.ReportID, payload.ProjectID, result.ReportDate, result.WorkersCount, result.EmailSent)
		return nil
	}
}

// HandleSendDailyLogEmailTask emails one submitted field log's PDF.
func HandleSendDailyLogEmailTask(cfg *config.Config) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload DailyLogEmailPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Println("❌ Payload decode error:", err)
			return err
		}
		if err := reports.SendDailyLogEmail(ctx, cfg, payload.LogID); err != nil {
			log.Println("❌ Daily log email failed:", err)
			return err
		}
		return nil
	}
}

// HandleAutoSendScanTask enqueues generation for every project whose
// configured trigger time matches the current minute. The per-day task ID
// keeps a slow scan from double-sending.
func HandleAutoSendScanTask(ctx context.Context, t *asynq.Task) error {
	now := time.Now().UTC()
	currentMinute := now.Format("15:04")
	today := now.Format("2006-01-02")

	cursor, err := DB.ReportSettingsCollection.Find(ctx, bson.M{
		"auto_send_enabled":   true,
		"report_trigger_time": currentMinute,
	})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	settings := []models.ReportSettings{}
	if err := cursor.All(ctx, &settings); err != nil {
		return err
	}

	for _, s := range settings {
		if DB.AsynqClient == nil {
			continue
		}
		task, err := NewGenerateDailyReportTask(s.ProjectID, today, s.UpdatedBy)
		if err != nil {
			continue
		}
		taskID := "daily-report-" + s.ProjectID + "-" + today
		if _, err := DB.AsynqClient.Enqueue(task,
			asynq.TaskID(taskID),
			asynq.MaxRetry(3),
			asynq.Retention(24*time.Hour),
		); err != nil {
			log.Println("⚠️ Enqueue daily report failed:", err)
		} else {
			log.Println("✅ Enqueued auto daily report:", taskID)
		}
	}
	return nil
}
