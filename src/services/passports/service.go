package passports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Backend-Blueview/src/models"
	"Backend-Blueview/src/repositories"
)

// Client-facing failures of the auto-check-in workflow. Anything else coming
// out of AutoCheckin is a store failure and surfaces as a server error.
var (
	ErrInvalidTag       = errors.New("Invalid NFC tag")
	ErrPassportNotFound = errors.New("Passport not found - please register")
)

const autoSignature = "auto-signed"

// Service signs all three compliance books in one NFC tap: the daily sign-in
// sheet, today's pre-shift safety meeting, and (on a first visit) the site
// orientation log. Lookups fail fast before any write; the idempotency read
// happens-before every mutation; there is no rollback for writes already
// applied when a later step fails.
type Service struct {
	tags         repositories.NFCTagRepository
	passports    repositories.PassportRepository
	checkins     repositories.CheckinRepository
	meetings     repositories.SafetyMeetingRepository
	orientations repositories.OrientationRepository
	projects     repositories.ProjectRepository

	keys *keyedMutex
	now  func() time.Time
}

func NewService(
	tags repositories.NFCTagRepository,
	passports repositories.PassportRepository,
	checkins repositories.CheckinRepository,
	meetings repositories.SafetyMeetingRepository,
	orientations repositories.OrientationRepository,
	projects repositories.ProjectRepository,
) *Service {
	return &Service{
		tags:         tags,
		passports:    passports,
		checkins:     checkins,
		meetings:     meetings,
		orientations: orientations,
		projects:     projects,
		keys:         newKeyedMutex(),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// NewMongoService wires the service against the shared Mongo collections.
func NewMongoService() *Service {
	return NewService(
		repositories.MongoNFCTagRepo{},
		repositories.MongoPassportRepo{},
		repositories.MongoCheckinRepo{},
		repositories.MongoSafetyMeetingRepo{},
		repositories.MongoOrientationRepo{},
		repositories.MongoProjectRepo{},
	)
}

// AutoCheckin performs the compound sign-in sequence for one tag scan.
func (s *Service) AutoCheckin(ctx context.Context, tagID models.TagID, passportID models.PassportID) (*models.PassportCheckinResult, error) {
	// 1. Resolve the tag to its job site. No side effects yet.
	tag, err := s.tags.FindActive(ctx, tagID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidTag
		}
		return nil, err
	}
	projectID := models.ProjectID(tag.ProjectID)

	// 2. Resolve the passport.
	passport, err := s.passports.FindByID(ctx, passportID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPassportNotFound
		}
		return nil, err
	}

	now := s.now()
	today := now.Format("2006-01-02")

	unlock := s.keys.Lock(fmt.Sprintf("%s|%s|%s", passportID, projectID, today))
	defer unlock()

	// 3. Idempotency: an open record for today means everything was already
	// signed on the first tap. Zero writes on this path.
	if existing, err := s.checkins.FindOpenForDay(ctx, passportID, projectID, today); err == nil {
		return &models.PassportCheckinResult{
			Success:          true,
			AlreadyCheckedIn: true,
			CheckinID:        existing.ID.Hex(),
			WorkerName:       passport.Name,
			CheckInTime:      existing.CheckInTime,
			Message:          fmt.Sprintf("Welcome back %s! Already checked in today.", passport.Name),
		}, nil
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	// 4. Book 1 - daily sign-in sheet. Snapshot the passport fields so later
	// passport edits don't rewrite attendance history.
	checkinID, err := s.checkins.Insert(ctx, &models.CheckinRecord{
		PassportID:       string(passportID),
		WorkerID:         string(passportID), // backwards compatibility with pre-passport clients
		WorkerName:       passport.Name,
		WorkerTrade:      passport.Trade,
		WorkerCompany:    passport.Company,
		WorkerOshaNumber: passport.OshaNumber,
		ProjectID:        string(projectID),
		NFCTagID:         string(tagID),
		CheckInTime:      now,
		CheckOutTime:     nil,
		CheckInMethod:    models.CheckinMethodNFCPassport,
		Date:             today,
		AutoSigned:       true,
	})
	if err != nil {
		return nil, err
	}

	// 5. Book 2 - pre-shift safety meeting. Already-an-attendee still counts
	// as signed in the response; it just isn't a new write.
	newlySigned, alreadyAttendee, err := s.meetings.SignAttendee(ctx, projectID, today, now.Format("15:04"),
		models.SafetyMeetingAttendee{
			WorkerName: passport.Name,
			OshaNumber: passport.OshaNumber,
			Signature:  autoSignature,
			SignedAt:   now.Format(time.RFC3339),
		})
	if err != nil {
		return nil, err
	}

	// 6. Book 3 - site orientation, first visit to this project only.
	firstVisit := !visited(passport.SitesVisited, string(projectID))
	if firstVisit {
		err = s.orientations.Insert(ctx, &models.SiteOrientation{
			PassportID:        string(passportID),
			WorkerName:        passport.Name,
			OshaNumber:        passport.OshaNumber,
			ProjectID:         string(projectID),
			OrientationDate:   today,
			SignedAt:          now,
			Signature:         autoSignature,
			AcknowledgedItems: models.OrientationAcknowledgedItems,
		})
		if err != nil {
			return nil, err
		}
		if err := s.passports.MarkSiteVisited(ctx, passportID, projectID); err != nil {
			return nil, err
		}
	}

	// 7. Passport bookkeeping: counter, last check-in, last project.
	if err := s.passports.RecordCheckin(ctx, passportID, projectID, now); err != nil {
		return nil, err
	}

	// 8. Project name is display-only; a dangling reference doesn't fail the
	// check-in.
	projectName, err := s.projects.FindName(ctx, projectID)
	if err != nil {
		projectName = "Job Site"
	}

	return &models.PassportCheckinResult{
		Success:          true,
		AlreadyCheckedIn: false,
		CheckinID:        string(checkinID),
		WorkerName:       passport.Name,
		ProjectName:      projectName,
		CheckInTime:      now,
		BooksSigned: &models.BooksSigned{
			DailySignin:     true,
			SafetyMeeting:   newlySigned || alreadyAttendee,
			SiteOrientation: firstVisit,
			FirstVisit:      firstVisit,
		},
		Message: fmt.Sprintf("Welcome %s! All books signed automatically.", passport.Name),
	}, nil
}

func visited(sites []string, projectID string) bool {
	for _, s := range sites {
		if s == projectID {
			return true
		}
	}
	return false
}
