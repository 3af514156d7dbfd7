package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeGenerateDailyReport = "report:generate_daily"

type DailyReportPayload struct {
	ProjectID  string `json:"project_id"`
	ReportDate string `json:"report_date"`
	AdminID    string `json:"admin_id"`
}

func NewGenerateDailyReportTask(projectID, reportDate, adminID string) (*asynq.Task, error) {
	payload, err := json.Marshal(DailyReportPayload{
		ProjectID:  projectID,
		ReportDate: reportDate,
		AdminID:    adminID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeGenerateDailyReport, payload), nil
}

// TypeSendDailyLogEmail delivers one submitted field log to the project's
// distribution list.
const TypeSendDailyLogEmail = "report:daily_log_email"

type DailyLogEmailPayload struct {
	LogID string `json:"log_id"`
}

func NewSendDailyLogEmailTask(logID string) (*asynq.Task, error) {
	payload, err := json.Marshal(DailyLogEmailPayload{LogID: logID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSendDailyLogEmail, payload), nil
}

// TypeAutoSendScan fires every minute and enqueues report generation for
// projects whose trigger time just came up.
const TypeAutoSendScan = "report:auto_send_scan"

func NewAutoSendScanTask() *asynq.Task {
	return asynq.NewTask(TypeAutoSendScan, nil)
}
