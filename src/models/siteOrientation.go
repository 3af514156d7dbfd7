package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrientationAcknowledgedItems the fixed checklist every auto-signed
// orientation acknowledges.
var OrientationAcknowledgedItems = []string{
	"Site safety rules",
	"Emergency procedures",
	"PPE requirements",
	"Hazard communication",
	"Incident reporting",
}

// SiteOrientation written once per worker per project, on the first visit.
type SiteOrientation struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PassportID        string             `json:"passportId" bson:"passport_id"`
	WorkerName        string             `json:"workerName" bson:"worker_name"`
	OshaNumber        string             `json:"oshaNumber" bson:"osha_number"`
	ProjectID         string             `json:"projectId" bson:"project_id"`
	OrientationDate   string             `json:"orientationDate" bson:"orientation_date"` // YYYY-MM-DD
	SignedAt          time.Time          `json:"signedAt" bson:"signed_at"`
	Signature         string             `json:"signature" bson:"signature"`
	AcknowledgedItems []string           `json:"acknowledgedItems" bson:"acknowledged_items"`
}
