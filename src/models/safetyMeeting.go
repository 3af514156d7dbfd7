package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SafetyMeetingAttendee one signature row on the meeting sheet. OshaNumber is
// the dedup key; a worker signs each day's meeting at most once.
type SafetyMeetingAttendee struct {
	WorkerName string `json:"workerName" bson:"worker_name"`
	OshaNumber string `json:"oshaNumber" bson:"osha_number"`
	Signature  string `json:"signature" bson:"signature"`
	SignedAt   string `json:"signedAt" bson:"signed_at"`
}

// SafetyMeeting one pre-shift meeting per project per day. AutoCreated marks
// sheets materialized by the first NFC tap rather than by a supervisor.
type SafetyMeeting struct {
	ID          primitive.ObjectID      `json:"id,omitempty" bson:"_id,omitempty"`
	ProjectID   string                  `json:"projectId" bson:"project_id"`
	MeetingDate string                  `json:"meetingDate" bson:"meeting_date"` // YYYY-MM-DD
	MeetingTime string                  `json:"meetingTime" bson:"meeting_time"` // HH:MM
	Topic       string                  `json:"topic,omitempty" bson:"topic,omitempty"`
	Notes       string                  `json:"notes,omitempty" bson:"notes,omitempty"`
	ConductedBy string                  `json:"conductedBy,omitempty" bson:"conducted_by,omitempty"`
	AutoCreated bool                    `json:"autoCreated" bson:"auto_created"`
	Attendees   []SafetyMeetingAttendee `json:"attendees" bson:"attendees"`
	CreatedAt   time.Time               `json:"createdAt,omitempty" bson:"created_at,omitempty"`
}

type SafetyMeetingCreateRequest struct {
	ProjectID   string `json:"project_id" validate:"required"`
	MeetingDate string `json:"meeting_date" validate:"required"`
	MeetingTime string `json:"meeting_time"`
	Topic       string `json:"topic"`
	Notes       string `json:"notes"`
	ConductedBy string `json:"conducted_by"`
}
