package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report types stored inside a GeneratedReport document
const (
	ReportTypeJobsiteLog      = "jobsite_log"
	ReportTypeSafetyMeeting   = "safety_meeting"
	ReportTypeManpowerSummary = "manpower_summary"
)

// ReportSettings per-project report distribution configuration
type ReportSettings struct {
	ID                       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProjectID                string             `json:"projectId" bson:"project_id"`
	EmailRecipients          []string           `json:"emailRecipients" bson:"email_recipients"`
	ReportTriggerTime        string             `json:"reportTriggerTime" bson:"report_trigger_time"` // 24hr HH:MM
	AutoSendEnabled          bool               `json:"autoSendEnabled" bson:"auto_send_enabled"`
	IncludeJobsiteLog        bool               `json:"includeJobsiteLog" bson:"include_jobsite_log"`
	IncludeSafetyOrientation bool               `json:"includeSafetyOrientation" bson:"include_safety_orientation"`
	IncludeSafetyMeeting     bool               `json:"includeSafetyMeeting" bson:"include_safety_meeting"`
	UpdatedBy                string             `json:"updatedBy,omitempty" bson:"updated_by,omitempty"`
	UpdatedAt                time.Time          `json:"updatedAt" bson:"updated_at"`
}

type ReportSettingsCreateRequest struct {
	ProjectID                string   `json:"project_id"`
	EmailRecipients          []string `json:"email_recipients" validate:"required,min=1,dive,email"`
	ReportTriggerTime        string   `json:"report_trigger_time"`
	AutoSendEnabled          bool     `json:"auto_send_enabled"`
	IncludeJobsiteLog        bool     `json:"include_jobsite_log"`
	IncludeSafetyOrientation bool     `json:"include_safety_orientation"`
	IncludeSafetyMeeting     bool     `json:"include_safety_meeting"`
}

// TradeMapping trade name → legal subcontractor entity printed on reports
type TradeMapping struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Trade     string             `json:"trade" bson:"trade" example:"Framing"`
	LegalName string             `json:"legalName" bson:"legal_name" example:"ODD LLC"`
	AdminID   string             `json:"adminId" bson:"admin_id"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
}

type TradeMappingCreateRequest struct {
	Trade     string `json:"trade" validate:"required"`
	LegalName string `json:"legal_name" validate:"required"`
}

// GeneratedReport archived PDF bundle for one (project, date). PDF blobs are
// stored base64 inside the document and stripped from listings.
type GeneratedReport struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProjectID       string             `json:"projectId" bson:"project_id"`
	ProjectName     string             `json:"projectName" bson:"project_name"`
	ReportDate      string             `json:"reportDate" bson:"report_date"`
	GeneratedAt     time.Time          `json:"generatedAt" bson:"generated_at"`
	GeneratedBy     string             `json:"generatedBy" bson:"generated_by"`
	WorkersCount    int                `json:"workersCount" bson:"workers_count"`
	Reports         map[string]string  `json:"-" bson:"reports"` // report type → base64 pdf (or "<type>_error" → message)
	EmailSent       bool               `json:"emailSent" bson:"email_sent"`
	EmailRecipients []string           `json:"emailRecipients" bson:"email_recipients"`
	EmailSentAt     *time.Time         `json:"emailSentAt,omitempty" bson:"email_sent_at,omitempty"`
}
