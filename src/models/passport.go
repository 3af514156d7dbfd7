package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkerPassport portable worker identity, one per OSHA card number. It
// follows the worker across job sites and accumulates visit history.
type WorkerPassport struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	OshaNumber       string             `json:"oshaNumber" bson:"osha_number"`
	OshaCardType     string             `json:"oshaCardType" bson:"osha_card_type"` // "10" or "30"
	OshaExpiryDate   *string            `json:"oshaExpiryDate,omitempty" bson:"osha_expiry_date,omitempty"`
	Trade            string             `json:"trade" bson:"trade"`
	Company          string             `json:"company" bson:"company"`
	Phone            string             `json:"phone,omitempty" bson:"phone,omitempty"`
	EmergencyContact *string            `json:"emergencyContact,omitempty" bson:"emergency_contact,omitempty"`
	OshaCardImage    *string            `json:"oshaCardImage,omitempty" bson:"osha_card_image,omitempty"`
	SitesVisited     []string           `json:"sitesVisited" bson:"sites_visited"`
	TotalCheckins    int                `json:"totalCheckins" bson:"total_checkins"`
	LastCheckin      *time.Time         `json:"lastCheckin,omitempty" bson:"last_checkin,omitempty"`
	LastProjectID    *string            `json:"lastProjectId,omitempty" bson:"last_project_id,omitempty"`
	IsActive         bool               `json:"isActive" bson:"is_active"`
	CreatedAt        time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updated_at"`
}

type PassportCreateRequest struct {
	Name             string  `json:"name" validate:"required"`
	OshaNumber       string  `json:"osha_number" validate:"required"`
	OshaCardType     string  `json:"osha_card_type"`
	OshaExpiryDate   *string `json:"osha_expiry_date"`
	Trade            string  `json:"trade"`
	Company          string  `json:"company"`
	Phone            string  `json:"phone"`
	EmergencyContact *string `json:"emergency_contact"`
	OshaCardImage    *string `json:"osha_card_image"`
}

// PassportCheckinRequest one NFC tap: which tag was scanned and which
// passport the device holds.
type PassportCheckinRequest struct {
	TagID            string `json:"tag_id" validate:"required"`
	DevicePassportID string `json:"device_passport_id" validate:"required"`
}

// BooksSigned which compliance books this tap signed.
type BooksSigned struct {
	DailySignin     bool `json:"daily_signin"`
	SafetyMeeting   bool `json:"safety_meeting"`
	SiteOrientation bool `json:"site_orientation"`
	FirstVisit      bool `json:"first_visit"`
}

type PassportCheckinResult struct {
	Success          bool         `json:"success"`
	AlreadyCheckedIn bool         `json:"already_checked_in"`
	CheckinID        string       `json:"checkin_id"`
	WorkerName       string       `json:"worker_name"`
	ProjectName      string       `json:"project_name,omitempty"`
	CheckInTime      time.Time    `json:"check_in_time"`
	BooksSigned      *BooksSigned `json:"books_signed,omitempty"`
	Message          string       `json:"message"`
}
