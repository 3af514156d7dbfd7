package passport

import (
	"context"
	"testing"
	"time"

	"Backend-Blueview/src/models"
	"Backend-Blueview/src/repositories"
	"Backend-Blueview/src/services/passports"
	"Backend-Blueview/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ---- Repository mocks ----

type mockTagRepo struct{ mock.Mock }

func (m *mockTagRepo) FindActive(ctx context.Context, tagID models.TagID) (*models.NFCTag, error) {
	args := m.Called(ctx, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NFCTag), args.Error(1)
}

type mockPassportRepo struct{ mock.Mock }

func (m *mockPassportRepo) FindByID(ctx context.Context, id models.PassportID) (*models.WorkerPassport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkerPassport), args.Error(1)
}

func (m *mockPassportRepo) MarkSiteVisited(ctx context.Context, id models.PassportID, projectID models.ProjectID) error {
	return m.Called(ctx, id, projectID).Error(0)
}

func (m *mockPassportRepo) RecordCheckin(ctx context.Context, id models.PassportID, projectID models.ProjectID, at time.Time) error {
	return m.Called(ctx, id, projectID, at).Error(0)
}

type mockCheckinRepo struct{ mock.Mock }

func (m *mockCheckinRepo) FindOpenForDay(ctx context.Context, passportID models.PassportID, projectID models.ProjectID, date string) (*models.CheckinRecord, error) {
	args := m.Called(ctx, passportID, projectID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CheckinRecord), args.Error(1)
}

func (m *mockCheckinRepo) Insert(ctx context.Context, rec *models.CheckinRecord) (models.CheckinID, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(models.CheckinID), args.Error(1)
}

type mockMeetingRepo struct{ mock.Mock }

func (m *mockMeetingRepo) SignAttendee(ctx context.Context, projectID models.ProjectID, date, meetingTime string, attendee models.SafetyMeetingAttendee) (bool, bool, error) {
	args := m.Called(ctx, projectID, date, meetingTime, attendee)
	return args.Bool(0), args.Bool(1), args.Error(2)
}

type mockOrientationRepo struct{ mock.Mock }

func (m *mockOrientationRepo) Insert(ctx context.Context, rec *models.SiteOrientation) error {
	return m.Called(ctx, rec).Error(0)
}

type mockProjectRepo struct{ mock.Mock }

func (m *mockProjectRepo) FindName(ctx context.Context, id models.ProjectID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type fixture struct {
	tags         *mockTagRepo
	passports    *mockPassportRepo
	checkins     *mockCheckinRepo
	meetings     *mockMeetingRepo
	orientations *mockOrientationRepo
	projects     *mockProjectRepo
	svc          *passports.Service
}

func newFixture() *fixture {
	f := &fixture{
		tags:         new(mockTagRepo),
		passports:    new(mockPassportRepo),
		checkins:     new(mockCheckinRepo),
		meetings:     new(mockMeetingRepo),
		orientations: new(mockOrientationRepo),
		projects:     new(mockProjectRepo),
	}
	f.svc = passports.NewService(f.tags, f.passports, f.checkins, f.meetings, f.orientations, f.projects)
	return f
}

const (
	testTagID      = "NT-001"
	testPassportID = "passport-abc-123"
	testProjectID  = "proj-1"
)

func activeTag() *models.NFCTag {
	return &models.NFCTag{TagID: testTagID, ProjectID: testProjectID, IsActive: true}
}

func samPassport(visited ...string) *models.WorkerPassport {
	if visited == nil {
		visited = []string{}
	}
	return &models.WorkerPassport{
		ID:           primitive.NewObjectID(),
		Name:         "Sam Rivera",
		OshaNumber:   "OSHA-12345",
		Trade:        "Electrician",
		Company:      "Volt Bros",
		SitesVisited: visited,
		IsActive:     true,
	}
}

func TestAutoCheckin(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Auto Check-in Tests")
	defer suiteResult.PrintSummary()

	record := func(name string, timer *test.TestTimer) {
		suiteResult.AddResult(test.TestResult{Name: name, Duration: timer.Stop(), Passed: true})
	}

	t.Run("TestFirstVisitSignsAllBooks", func(t *testing.T) {
		timer := test.NewTestTimer("First Visit Signs All Books")
		defer record("First Visit Signs All Books", timer)

		f := newFixture()
		f.tags.On("FindActive", mock.Anything, models.TagID(testTagID)).Return(activeTag(), nil)
		f.passports.On("FindByID", mock.Anything, models.PassportID(testPassportID)).Return(samPassport(), nil)
		f.checkins.On("FindOpenForDay", mock.Anything, models.PassportID(testPassportID), models.ProjectID(testProjectID), mock.Anything).
			Return(nil, repositories.ErrNotFound)
		f.checkins.On("Insert", mock.Anything, mock.Anything).Return(models.CheckinID("chk-1"), nil)
		f.meetings.On("SignAttendee", mock.Anything, models.ProjectID(testProjectID), mock.Anything, mock.Anything, mock.Anything).
			Return(true, false, nil)
		f.orientations.On("Insert", mock.Anything, mock.Anything).Return(nil)
		f.passports.On("MarkSiteVisited", mock.Anything, models.PassportID(testPassportID), models.ProjectID(testProjectID)).Return(nil)
		f.passports.On("RecordCheckin", mock.Anything, models.PassportID(testPassportID), models.ProjectID(testProjectID), mock.Anything).Return(nil)
		f.projects.On("FindName", mock.Anything, models.ProjectID(testProjectID)).Return("125 Court St", nil)

		result, err := f.svc.AutoCheckin(context.Background(), testTagID, testPassportID)

		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.False(t, result.AlreadyCheckedIn)
		assert.Equal(t, "chk-1", result.CheckinID)
		assert.Equal(t, "Sam Rivera", result.WorkerName)
		assert.Equal(t, "125 Court St", result.ProjectName)
		assert.Equal(t, "Welcome Sam Rivera! All books signed automatically.", result.Message)
		assert.NotNil(t, result.BooksSigned)
		assert.True(t, result.BooksSigned.DailySignin)
		assert.True(t, result.BooksSigned.SafetyMeeting)
		assert.True(t, result.BooksSigned.SiteOrientation)
		assert.True(t, result.BooksSigned.FirstVisit)

		f.tags.AssertExpectations(t)
		f.passports.AssertExpectations(t)
		f.checkins.AssertExpectations(t)
		f.meetings.AssertExpectations(t)
		f.orientations.AssertExpectations(t)
		f.projects.AssertExpectations(t)
	})

	t.Run("TestReturningWorkerSkipsOrientation", func(t *testing.T) {
		timer := test.NewTestTimer("Returning Worker Skips Orientation")
		defer record("Returning Worker Skips Orientation", timer)

		f := newFixture()
		f.tags.On("FindActive", mock.Anything, models.TagID(testTagID)).Return(activeTag(), nil)
		f.passports.On("FindByID", mock.Anything, models.PassportID(testPassportID)).
			Return(samPassport(testProjectID), nil)
		f.checkins.On("FindOpenForDay", mock.Anything, models.PassportID(testPassportID), models.ProjectID(testProjectID), mock.Anything).
			Return(nil, repositories.ErrNotFound)
		f.checkins.On("Insert", mock.Anything, mock.Anything).Return(models.CheckinID("chk-2"), nil)
		// Worker was already on today's meeting sheet from an earlier project tap
		f.meetings.On("SignAttendee", mock.Anything, models.ProjectID(testProjectID), mock.Anything, mock.Anything, mock.Anything).
			Return(false, true, nil)
		f.passports.On("RecordCheckin", mock.Anything, models.PassportID(testPassportID), models.ProjectID(testProjectID), mock.Anything).Return(nil)
		f.projects.On("FindName", mock.Anything, models.ProjectID(testProjectID)).Return("125 Court St", nil)

		result, err := f.svc.AutoCheckin(context.Background(), testTagID, testPassportID)

		assert.NoError(t, err)
		assert.True(t, result.BooksSigned.DailySignin)
		assert.True(t, result.BooksSigned.SafetyMeeting, "already being an attendee still reports the book signed")
		assert.False(t, result.BooksSigned.SiteOrientation)
		assert.False(t, result.BooksSigned.FirstVisit)

		f.orientations.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		f.passports.AssertNotCalled(t, "MarkSiteVisited", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("TestRepeatTapIsIdempotent", func(t *testing.T) {
		timer := test.NewTestTimer("Repeat Tap Is Idempotent")
		defer record("Repeat Tap Is Idempotent", timer)

		f := newFixture()
		checkInTime := time.Now().UTC().Add(-2 * time.Hour)
		existing := &models.CheckinRecord{
			ID:          primitive.NewObjectID(),
			PassportID:  testPassportID,
			ProjectID:   testProjectID,
			CheckInTime: checkInTime,
		}
		f.tags.On("FindActive", mock.Anything, models.TagID(testTagID)).Return(activeTag(), nil)
		f.passports.On("FindByID", mock.Anything, models.PassportID(testPassportID)).Return(samPassport(testProjectID), nil)
		f.checkins.On("FindOpenForDay", mock.Anything, models.PassportID(testPassportID), models.ProjectID(testProjectID), mock.Anything).
			Return(existing, nil)

		result, err := f.svc.AutoCheckin(context.Background(), testTagID, testPassportID)

		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.True(t, result.AlreadyCheckedIn)
		assert.Equal(t, existing.ID.Hex(), result.CheckinID)
		assert.Equal(t, checkInTime, result.CheckInTime)
		assert.Equal(t, "Welcome back Sam Rivera! Already checked in today.", result.Message)
		assert.Nil(t, result.BooksSigned)

		// The repeat path must not write anything
		f.checkins.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		f.meetings.AssertNotCalled(t, "SignAttendee", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.orientations.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		f.passports.AssertNotCalled(t, "RecordCheckin", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("TestInvalidTagFailsFast", func(t *testing.T) {
		timer := test.NewTestTimer("Invalid Tag Fails Fast")
		defer record("Invalid Tag Fails Fast", timer)

		f := newFixture()
		f.tags.On("FindActive", mock.Anything, models.TagID("NT-dead")).Return(nil, repositories.ErrNotFound)

		result, err := f.svc.AutoCheckin(context.Background(), "NT-dead", testPassportID)

		assert.ErrorIs(t, err, passports.ErrInvalidTag)
		assert.Nil(t, result)
		f.passports.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		f.checkins.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("TestUnknownPassportFailsBeforeAnyWrite", func(t *testing.T) {
		timer := test.NewTestTimer("Unknown Passport Fails Before Any Write")
		defer record("Unknown Passport Fails Before Any Write", timer)

		f := newFixture()
		f.tags.On("FindActive", mock.Anything, models.TagID(testTagID)).Return(activeTag(), nil)
		f.passports.On("FindByID", mock.Anything, models.PassportID("nobody")).Return(nil, repositories.ErrNotFound)

		result, err := f.svc.AutoCheckin(context.Background(), testTagID, "nobody")

		assert.ErrorIs(t, err, passports.ErrPassportNotFound)
		assert.Nil(t, result)
		f.checkins.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		f.meetings.AssertNotCalled(t, "SignAttendee", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("TestProjectNameFallback", func(t *testing.T) {
		timer := test.NewTestTimer("Project Name Fallback")
		defer record("Project Name Fallback", timer)

		f := newFixture()
		f.tags.On("FindActive", mock.Anything, models.TagID(testTagID)).Return(activeTag(), nil)
		f.passports.On("FindByID", mock.Anything, models.PassportID(testPassportID)).Return(samPassport(testProjectID), nil)
		f.checkins.On("FindOpenForDay", mock.Anything, models.PassportID(testPassportID), models.ProjectID(testProjectID), mock.Anything).
			Return(nil, repositories.ErrNotFound)
		f.checkins.On("Insert", mock.Anything, mock.Anything).Return(models.CheckinID("chk-3"), nil)
		f.meetings.On("SignAttendee", mock.Anything, models.ProjectID(testProjectID), mock.Anything, mock.Anything, mock.Anything).
			Return(true, false, nil)
		f.passports.On("RecordCheckin", mock.Anything, models.PassportID(testPassportID), models.ProjectID(testProjectID), mock.Anything).Return(nil)
		// Project doc was deleted after the tag was mounted
		f.projects.On("FindName", mock.Anything, models.ProjectID(testProjectID)).Return("", repositories.ErrNotFound)

		result, err := f.svc.AutoCheckin(context.Background(), testTagID, testPassportID)

		assert.NoError(t, err)
		assert.Equal(t, "Job Site", result.ProjectName)
	})

	t.Run("TestCheckinSnapshotFields", func(t *testing.T) {
		timer := test.NewTestTimer("Checkin Snapshot Fields")
		defer record("Checkin Snapshot Fields", timer)

		f := newFixture()
		f.tags.On("FindActive", mock.Anything, models.TagID(testTagID)).Return(activeTag(), nil)
		f.passports.On("FindByID", mock.Anything, models.PassportID(testPassportID)).Return(samPassport(testProjectID), nil)
		f.checkins.On("FindOpenForDay", mock.Anything, models.PassportID(testPassportID), models.ProjectID(testProjectID), mock.Anything).
			Return(nil, repositories.ErrNotFound)

		var inserted *models.CheckinRecord
		f.checkins.On("Insert", mock.Anything, mock.MatchedBy(func(rec *models.CheckinRecord) bool {
			inserted = rec
			return true
		})).Return(models.CheckinID("chk-4"), nil)
		f.meetings.On("SignAttendee", mock.Anything, models.ProjectID(testProjectID), mock.Anything, mock.Anything, mock.Anything).
			Return(true, false, nil)
		f.passports.On("RecordCheckin", mock.Anything, models.PassportID(testPassportID), models.ProjectID(testProjectID), mock.Anything).Return(nil)
		f.projects.On("FindName", mock.Anything, models.ProjectID(testProjectID)).Return("125 Court St", nil)

		_, err := f.svc.AutoCheckin(context.Background(), testTagID, testPassportID)

		assert.NoError(t, err)
		assert.NotNil(t, inserted)
		assert.Equal(t, "Sam Rivera", inserted.WorkerName)
		assert.Equal(t, "Electrician", inserted.WorkerTrade)
		assert.Equal(t, "Volt Bros", inserted.WorkerCompany)
		assert.Equal(t, "OSHA-12345", inserted.WorkerOshaNumber)
		assert.Equal(t, models.CheckinMethodNFCPassport, inserted.CheckInMethod)
		assert.True(t, inserted.AutoSigned)
		assert.Nil(t, inserted.CheckOutTime)
		assert.Equal(t, inserted.CheckInTime.Format("2006-01-02"), inserted.Date)
	})
}
