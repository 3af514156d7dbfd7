package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeofenceEvent entry event from Radar.io webhook or client-side detection
type GeofenceEvent struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	WorkerID  string             `json:"workerId" bson:"worker_id"`
	ProjectID string             `json:"projectId" bson:"project_id"`
	Phone     string             `json:"phone" bson:"phone"`
	Latitude  float64            `json:"latitude" bson:"latitude"`
	Longitude float64            `json:"longitude" bson:"longitude"`
	EventType string             `json:"eventType" bson:"event_type"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
	SMSSent   bool               `json:"smsSent" bson:"sms_sent"`
	SMSStatus string             `json:"smsStatus,omitempty" bson:"sms_status,omitempty"`
}

type GeofenceEntryRequest struct {
	Phone     string  `json:"phone" validate:"required"`
	ProjectID string  `json:"project_id" validate:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SMSLog outbound SMS audit row; status is "sent", "failed" or "mocked" when
// Twilio credentials are absent.
type SMSLog struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Phone     string             `json:"phone" bson:"phone"`
	Message   string             `json:"message" bson:"message"`
	ProjectID string             `json:"projectId" bson:"project_id"`
	Token     string             `json:"-" bson:"token"`
	EventID   string             `json:"eventId" bson:"event_id"`
	SentAt    time.Time          `json:"sentAt" bson:"sent_at"`
	Status    string             `json:"status" bson:"status"`
	TwilioSID *string            `json:"twilioSid,omitempty" bson:"twilio_sid,omitempty"`
	Error     *string            `json:"error,omitempty" bson:"error,omitempty"`
}

// SMSCheckinRequest fast login via the SMS link
type SMSCheckinRequest struct {
	Token     string  `json:"token" validate:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
