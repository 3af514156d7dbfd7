package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InspectionData per-card jobsite inspection result
type InspectionData struct {
	Cleanliness string  `json:"cleanliness" bson:"cleanliness"`
	Safety      string  `json:"safety" bson:"safety"`
	Comments    *string `json:"comments" bson:"comments"`
}

type PhotoData struct {
	Image       string  `json:"image" bson:"image"` // base64
	Description *string `json:"description" bson:"description"`
}

// SubcontractorCard one trade's section inside a daily log
type SubcontractorCard struct {
	CompanyName     string         `json:"company_name" bson:"company_name"`
	WorkerCount     int            `json:"worker_count" bson:"worker_count"`
	Photos          []PhotoData    `json:"photos" bson:"photos"`
	WorkDescription *string        `json:"work_description" bson:"work_description"`
	Inspection      InspectionData `json:"inspection" bson:"inspection"`
}

// ConditionalChecklist scaffolding / overhead-protection checklists, present
// only while the condition is active on site.
type ConditionalChecklist struct {
	ScaffoldingActive            bool           `json:"scaffolding_active" bson:"scaffolding_active"`
	ScaffoldingChecklist         map[string]any `json:"scaffolding_checklist,omitempty" bson:"scaffolding_checklist,omitempty"`
	OverheadProtectionActive     bool           `json:"overhead_protection_active" bson:"overhead_protection_active"`
	OverheadProtectionChecklist  map[string]any `json:"overhead_protection_checklist,omitempty" bson:"overhead_protection_checklist,omitempty"`
}

// DailyLog one field log per (project, calendar date)
type DailyLog struct {
	ID                    primitive.ObjectID    `json:"id,omitempty" bson:"_id,omitempty"`
	ProjectID             string                `json:"projectId" bson:"project_id"`
	LogDate               string                `json:"logDate" bson:"log_date"` // YYYY-MM-DD
	WeatherConditions     *string               `json:"weatherConditions" bson:"weather_conditions"`
	Temperature           *float64              `json:"temperature" bson:"temperature"`
	SubcontractorCards    []SubcontractorCard   `json:"subcontractorCards" bson:"subcontractor_cards"`
	ConditionalChecklists *ConditionalChecklist `json:"conditionalChecklists" bson:"conditional_checklists"`
	Notes                 *string               `json:"notes" bson:"notes"`
	Status                string                `json:"status" bson:"status"` // draft, submitted
	CreatedBy             string                `json:"createdBy" bson:"created_by"`
	SubmittedBy           string                `json:"submittedBy,omitempty" bson:"submitted_by,omitempty"`
	SubmittedAt           *time.Time            `json:"submittedAt,omitempty" bson:"submitted_at,omitempty"`
	CreatedAt             time.Time             `json:"createdAt" bson:"created_at"`
	UpdatedAt             time.Time             `json:"updatedAt" bson:"updated_at"`
}

type DailyLogCreateRequest struct {
	ProjectID             string                `json:"project_id" validate:"required"`
	LogDate               string                `json:"log_date" validate:"required"`
	WeatherConditions     *string               `json:"weather_conditions"`
	Temperature           *float64              `json:"temperature"`
	SubcontractorCards    []SubcontractorCard   `json:"subcontractor_cards"`
	ConditionalChecklists *ConditionalChecklist `json:"conditional_checklists"`
	Notes                 *string               `json:"notes"`
}

type DailyLogUpdateRequest struct {
	WeatherConditions     *string               `json:"weather_conditions"`
	Temperature           *float64              `json:"temperature"`
	SubcontractorCards    *[]SubcontractorCard  `json:"subcontractor_cards"`
	ConditionalChecklists *ConditionalChecklist `json:"conditional_checklists"`
	Notes                 *string               `json:"notes"`
}
