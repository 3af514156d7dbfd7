package checkin

import (
	"errors"
	"testing"
	"time"

	"Backend-Blueview/src/models"
	"Backend-Blueview/src/services"
	"Backend-Blueview/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCheckinService mocks the manual check-in entry point so the guard
// contract can be exercised without a database.
type MockCheckinService struct {
	mock.Mock
}

func (m *MockCheckinService) CreateCheckin(req *models.CheckinCreateRequest) (*models.CheckinRecord, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CheckinRecord), args.Error(1)
}

func TestManualCheckinGuards(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Manual Checkin Guard Tests")
	defer suiteResult.PrintSummary()

	record := func(name string, timer *test.TestTimer) {
		suiteResult.AddResult(test.TestResult{Name: name, Duration: timer.Stop(), Passed: true})
	}

	req := &models.CheckinCreateRequest{WorkerID: "worker-1", ProjectID: "proj-1"}

	t.Run("TestGuardErrorMessages", func(t *testing.T) {
		timer := test.NewTestTimer("Guard Error Messages")
		defer record("Guard Error Messages", timer)

		// client-visible strings, frozen
		assert.EqualError(t, services.ErrCheckinWorkerNotFound, "Worker not found")
		assert.EqualError(t, services.ErrCheckinProjectNotFound, "Project not found")
		assert.EqualError(t, services.ErrAlreadyCheckedInToday, "Worker already checked in today")
	})

	t.Run("TestSecondSameDayCheckinRejected", func(t *testing.T) {
		timer := test.NewTestTimer("Second Same Day Checkin Rejected")
		defer record("Second Same Day Checkin Rejected", timer)

		now := time.Now().UTC()
		first := &models.CheckinRecord{
			WorkerID:      "worker-1",
			ProjectID:     "proj-1",
			CheckInTime:   now,
			CheckInMethod: models.CheckinMethodManual,
			Date:          now.Format("2006-01-02"),
		}

		mockService := new(MockCheckinService)
		mockService.On("CreateCheckin", req).Return(first, nil).Once()
		mockService.On("CreateCheckin", req).Return(nil, services.ErrAlreadyCheckedInToday).Once()

		created, err := mockService.CreateCheckin(req)
		assert.NoError(t, err)
		assert.Nil(t, created.CheckOutTime, "first check-in opens a record")

		dup, err := mockService.CreateCheckin(req)
		assert.Nil(t, dup)
		assert.True(t, errors.Is(err, services.ErrAlreadyCheckedInToday),
			"an open record for the same worker, project and day blocks a second one")
		mockService.AssertExpectations(t)
	})

	t.Run("TestUnknownWorkerRejected", func(t *testing.T) {
		timer := test.NewTestTimer("Unknown Worker Rejected")
		defer record("Unknown Worker Rejected", timer)

		mockService := new(MockCheckinService)
		bogus := &models.CheckinCreateRequest{WorkerID: "no-such-worker", ProjectID: "proj-1"}
		mockService.On("CreateCheckin", bogus).Return(nil, services.ErrCheckinWorkerNotFound)

		created, err := mockService.CreateCheckin(bogus)
		assert.Nil(t, created, "nothing is inserted for an unknown worker")
		assert.True(t, errors.Is(err, services.ErrCheckinWorkerNotFound))
		mockService.AssertExpectations(t)
	})

	t.Run("TestUnknownProjectRejected", func(t *testing.T) {
		timer := test.NewTestTimer("Unknown Project Rejected")
		defer record("Unknown Project Rejected", timer)

		mockService := new(MockCheckinService)
		bogus := &models.CheckinCreateRequest{WorkerID: "worker-1", ProjectID: "no-such-project"}
		mockService.On("CreateCheckin", bogus).Return(nil, services.ErrCheckinProjectNotFound)

		created, err := mockService.CreateCheckin(bogus)
		assert.Nil(t, created)
		assert.True(t, errors.Is(err, services.ErrCheckinProjectNotFound))
		mockService.AssertExpectations(t)
	})

	t.Run("TestSnapshotFrozenFromWorkerRecord", func(t *testing.T) {
		timer := test.NewTestTimer("Snapshot Frozen From Worker Record")
		defer record("Snapshot Frozen From Worker Record", timer)

		now := time.Now().UTC()
		rec := &models.CheckinRecord{
			WorkerID:         "worker-1",
			WorkerName:       "Sam Rivera",
			WorkerTrade:      "Electrician",
			WorkerCompany:    "Volt Bros",
			WorkerOshaNumber: "OSHA-12345",
			ProjectID:        "proj-1",
			CheckInTime:      now,
			CheckInMethod:    models.CheckinMethodManual,
			Date:             now.Format("2006-01-02"),
		}

		mockService := new(MockCheckinService)
		mockService.On("CreateCheckin", req).Return(rec, nil)

		created, err := mockService.CreateCheckin(req)
		assert.NoError(t, err)
		assert.Equal(t, "Sam Rivera", created.WorkerName)
		assert.Equal(t, "Electrician", created.WorkerTrade)
		assert.Equal(t, "Volt Bros", created.WorkerCompany)
		assert.Equal(t, "OSHA-12345", created.WorkerOshaNumber)
		assert.Equal(t, models.CheckinMethodManual, created.CheckInMethod)
		assert.Equal(t, created.CheckInTime.Format("2006-01-02"), created.Date)
		mockService.AssertExpectations(t)
	})
}
