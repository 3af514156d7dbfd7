package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// How a check-in record came to exist.
const (
	CheckinMethodManual       = "manual"
	CheckinMethodNFC          = "nfc"
	CheckinMethodNFCPassport  = "nfc_passport"
	CheckinMethodSMSFastLogin = "sms_fast_login"
)

// CheckinRecord one attendance row. Worker fields are snapshots taken at
// check-in time so later passport edits don't rewrite history.
type CheckinRecord struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PassportID       string             `json:"passportId,omitempty" bson:"passport_id,omitempty"`
	WorkerID         string             `json:"workerId" bson:"worker_id"`
	WorkerName       string             `json:"workerName" bson:"worker_name"`
	WorkerTrade      string             `json:"workerTrade,omitempty" bson:"worker_trade,omitempty"`
	WorkerCompany    string             `json:"workerCompany,omitempty" bson:"worker_company,omitempty"`
	WorkerOshaNumber string             `json:"workerOshaNumber,omitempty" bson:"worker_osha_number,omitempty"`
	ProjectID        string             `json:"projectId" bson:"project_id"`
	NFCTagID         string             `json:"nfcTagId,omitempty" bson:"nfc_tag_id,omitempty"`
	CheckInTime      time.Time          `json:"checkInTime" bson:"check_in_time"`
	CheckOutTime     *time.Time         `json:"checkOutTime" bson:"check_out_time"`
	CheckInMethod    string             `json:"checkInMethod" bson:"check_in_method"`
	Date             string             `json:"date" bson:"date"` // YYYY-MM-DD, site-local
	AutoSigned       bool               `json:"autoSigned,omitempty" bson:"auto_signed,omitempty"`
	Latitude         *float64           `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude        *float64           `json:"longitude,omitempty" bson:"longitude,omitempty"`
	Notes            string             `json:"notes,omitempty" bson:"notes,omitempty"`
}

type CheckinCreateRequest struct {
	WorkerID      string   `json:"worker_id" validate:"required"`
	WorkerName    string   `json:"worker_name"`
	ProjectID     string   `json:"project_id" validate:"required"`
	CheckInMethod string   `json:"check_in_method"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Notes         string   `json:"notes"`
}

// NFCCheckinRequest plain (non-passport) tag scan from a registered worker.
type NFCCheckinRequest struct {
	TagID    string `json:"tag_id" validate:"required"`
	WorkerID string `json:"worker_id" validate:"required"`
}

// CheckinSnippet compact row used inside grouped stats.
type CheckinSnippet struct {
	WorkerName  string    `json:"workerName" bson:"worker_name"`
	WorkerTrade string    `json:"workerTrade" bson:"worker_trade"`
	CheckInTime time.Time `json:"checkInTime" bson:"check_in_time"`
}

// CompanyCheckinStats $group output: today's head count per company.
type CompanyCheckinStats struct {
	Company string           `json:"company" bson:"_id"`
	Count   int              `json:"count" bson:"count"`
	Workers []CheckinSnippet `json:"workers" bson:"workers"`
}
