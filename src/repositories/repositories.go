package repositories

import (
	"context"
	"errors"
	"time"

	"Backend-Blueview/src/models"
)

// ErrNotFound covers both "no document" and "malformed identifier": references
// between collections are plain strings, so an unresolvable handle is treated
// the same as a missing row (clients see a 404 either way).
var ErrNotFound = errors.New("document not found")

// NFCTagRepository resolves physical tag ids to job sites.
type NFCTagRepository interface {
	// FindActive returns the tag only when it exists and is active.
	FindActive(ctx context.Context, tagID models.TagID) (*models.NFCTag, error)
}

// PassportRepository owns WorkerPassport documents.
type PassportRepository interface {
	FindByID(ctx context.Context, id models.PassportID) (*models.WorkerPassport, error)
	// MarkSiteVisited adds the project to the passport's visited-set ($addToSet,
	// so repeated calls cannot duplicate the entry).
	MarkSiteVisited(ctx context.Context, id models.PassportID, projectID models.ProjectID) error
	// RecordCheckin bumps the cumulative counter and last-check-in fields.
	RecordCheckin(ctx context.Context, id models.PassportID, projectID models.ProjectID, at time.Time) error
}

// CheckinRepository owns CheckinRecord documents.
type CheckinRepository interface {
	// FindOpenForDay returns the open (no check-out) record for the
	// (passport, project, calendar date) idempotency key, or ErrNotFound.
	FindOpenForDay(ctx context.Context, passportID models.PassportID, projectID models.ProjectID, date string) (*models.CheckinRecord, error)
	Insert(ctx context.Context, rec *models.CheckinRecord) (models.CheckinID, error)
}

// SafetyMeetingRepository owns the per-(project, day) meeting documents.
type SafetyMeetingRepository interface {
	// SignAttendee finds or creates today's meeting and appends the attendee
	// unless their OSHA number is already on it. Both steps are
	// single-document atomic. newlySigned reports a write happened;
	// alreadyAttendee reports the pre-existing-state success.
	SignAttendee(ctx context.Context, projectID models.ProjectID, date, meetingTime string, attendee models.SafetyMeetingAttendee) (newlySigned, alreadyAttendee bool, err error)
}

// OrientationRepository owns first-visit SiteOrientation records.
type OrientationRepository interface {
	Insert(ctx context.Context, rec *models.SiteOrientation) error
}

// ProjectRepository is consulted for response display only.
type ProjectRepository interface {
	FindName(ctx context.Context, id models.ProjectID) (string, error)
}
