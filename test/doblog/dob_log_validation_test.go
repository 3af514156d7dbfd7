package doblog

import (
	"testing"

	"Backend-Blueview/src/models"
	"Backend-Blueview/src/services"
	"Backend-Blueview/src/utils"
	"Backend-Blueview/test"

	"github.com/stretchr/testify/assert"
)

func TestDOBLogEntryValidation(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("DOB Log Entry Validation Tests")
	defer suiteResult.PrintSummary()

	record := func(name string, timer *test.TestTimer) {
		suiteResult.AddResult(test.TestResult{Name: name, Duration: timer.Stop(), Passed: true})
	}

	t.Run("TestValidEntry", func(t *testing.T) {
		timer := test.NewTestTimer("Valid Entry")
		defer record("Valid Entry", timer)

		lat, lng := 40.6892, -73.9915
		entry := models.DOBLogEntryRequest{
			WorkerID:           "worker-1",
			CheckInTime:        "07:02:14",
			GPSLat:             &lat,
			GPSLng:             &lng,
			SignatureConfirmed: true,
		}
		assert.NoError(t, utils.ValidateStruct(&entry))
	})

	t.Run("TestRequiredFields", func(t *testing.T) {
		timer := test.NewTestTimer("Required Fields")
		defer record("Required Fields", timer)

		assert.Error(t, utils.ValidateStruct(&models.DOBLogEntryRequest{CheckInTime: "07:02:14"}),
			"worker_id is required")
		assert.Error(t, utils.ValidateStruct(&models.DOBLogEntryRequest{WorkerID: "worker-1"}),
			"check_in_time is required")
	})

	t.Run("TestGPSOptional", func(t *testing.T) {
		timer := test.NewTestTimer("GPS Optional")
		defer record("GPS Optional", timer)

		entry := models.DOBLogEntryRequest{WorkerID: "worker-1", CheckInTime: "07:02:14"}
		assert.NoError(t, utils.ValidateStruct(&entry),
			"entries from devices without a GPS fix are still accepted")
	})

	t.Run("TestNotFoundMessage", func(t *testing.T) {
		timer := test.NewTestTimer("Not Found Message")
		defer record("Not Found Message", timer)

		assert.EqualError(t, services.ErrDOBLogNotFound, "DOB log not found for this date")
	})
}
