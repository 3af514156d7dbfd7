package checkin

import (
	"testing"

	"Backend-Blueview/src/models"
	"Backend-Blueview/src/utils"
	"Backend-Blueview/test"

	"github.com/stretchr/testify/assert"
)

func TestCheckinRequestValidation(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Checkin Validation Tests")
	defer suiteResult.PrintSummary()

	record := func(name string, timer *test.TestTimer) {
		suiteResult.AddResult(test.TestResult{Name: name, Duration: timer.Stop(), Passed: true})
	}

	t.Run("TestManualCheckinRequest", func(t *testing.T) {
		timer := test.NewTestTimer("Manual Checkin Request")
		defer record("Manual Checkin Request", timer)

		valid := models.CheckinCreateRequest{
			WorkerID:   "worker-1",
			WorkerName: "Sam Rivera",
			ProjectID:  "proj-1",
		}
		assert.NoError(t, utils.ValidateStruct(&valid))

		assert.Error(t, utils.ValidateStruct(&models.CheckinCreateRequest{ProjectID: "proj-1"}),
			"worker_id is required")
		assert.Error(t, utils.ValidateStruct(&models.CheckinCreateRequest{WorkerID: "worker-1"}),
			"project_id is required")
	})

	t.Run("TestNFCCheckinRequest", func(t *testing.T) {
		timer := test.NewTestTimer("NFC Checkin Request")
		defer record("NFC Checkin Request", timer)

		valid := models.NFCCheckinRequest{TagID: "NT-001", WorkerID: "worker-1"}
		assert.NoError(t, utils.ValidateStruct(&valid))

		assert.Error(t, utils.ValidateStruct(&models.NFCCheckinRequest{WorkerID: "worker-1"}))
		assert.Error(t, utils.ValidateStruct(&models.NFCCheckinRequest{TagID: "NT-001"}))
	})

	t.Run("TestPassportCheckinRequest", func(t *testing.T) {
		timer := test.NewTestTimer("Passport Checkin Request")
		defer record("Passport Checkin Request", timer)

		valid := models.PassportCheckinRequest{TagID: "NT-001", DevicePassportID: "passport-abc"}
		assert.NoError(t, utils.ValidateStruct(&valid))

		assert.Error(t, utils.ValidateStruct(&models.PassportCheckinRequest{TagID: "NT-001"}))
		assert.Error(t, utils.ValidateStruct(&models.PassportCheckinRequest{DevicePassportID: "passport-abc"}))
	})

	t.Run("TestCheckinMethods", func(t *testing.T) {
		timer := test.NewTestTimer("Checkin Methods")
		defer record("Checkin Methods", timer)

		methods := []string{
			models.CheckinMethodManual,
			models.CheckinMethodNFC,
			models.CheckinMethodNFCPassport,
			models.CheckinMethodSMSFastLogin,
		}
		seen := map[string]bool{}
		for _, m := range methods {
			assert.NotEmpty(t, m)
			assert.False(t, seen[m], "method %q duplicated", m)
			seen[m] = true
		}
	})
}
