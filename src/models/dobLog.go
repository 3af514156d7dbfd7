package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DOBWorkerEntry one worker row in a DOB field log. Credentials are copied
// from the worker record at append time.
type DOBWorkerEntry struct {
	WorkerID           string   `json:"workerId" bson:"worker_id"`
	Name               string   `json:"name" bson:"name"`
	Trade              string   `json:"trade" bson:"trade"`
	Company            string   `json:"company" bson:"company"`
	Osha30Number       *string  `json:"osha30Number" bson:"osha_30_number"`
	Osha30Expiry       *string  `json:"osha30Expiry" bson:"osha_30_expiry"`
	SSTNumber          *string  `json:"sstNumber" bson:"sst_number"`
	SSTExpiry          *string  `json:"sstExpiry" bson:"sst_expiry"`
	CheckInTime        string   `json:"checkInTime" bson:"check_in_time"`
	CheckOutTime       *string  `json:"checkOutTime" bson:"check_out_time"`
	GPSLat             *float64 `json:"gpsLat" bson:"gps_lat"`
	GPSLng             *float64 `json:"gpsLng" bson:"gps_lng"`
	SignatureConfirmed bool     `json:"signatureConfirmed" bson:"signature_confirmed"`
}

// DOBDailyLog NYC DOB compliant sign-in log, one per (project, date).
type DOBDailyLog struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProjectID      string             `json:"projectId" bson:"project_id"`
	ProjectName    string             `json:"projectName" bson:"project_name"`
	ProjectAddress string             `json:"projectAddress" bson:"project_address"`
	LogDate        string             `json:"logDate" bson:"log_date"` // YYYY-MM-DD
	Workers        []DOBWorkerEntry   `json:"workers" bson:"workers"`
	Status         string             `json:"status" bson:"status"`
	DOBCompliant   bool               `json:"dobCompliant" bson:"dob_compliant"`
	CreatedAt      time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updated_at"`
}

type DOBLogEntryRequest struct {
	WorkerID           string   `json:"worker_id" validate:"required"`
	CheckInTime        string   `json:"check_in_time" validate:"required"`
	CheckOutTime       *string  `json:"check_out_time"`
	GPSLat             *float64 `json:"gps_lat"`
	GPSLng             *float64 `json:"gps_lng"`
	SignatureConfirmed bool     `json:"signature_confirmed"`
}
