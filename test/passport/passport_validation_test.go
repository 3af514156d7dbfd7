package passport

import (
	"testing"

	"Backend-Blueview/src/models"
	"Backend-Blueview/src/utils"

	"github.com/stretchr/testify/assert"
)

func TestPassportCreateRequestValidation(t *testing.T) {
	valid := models.PassportCreateRequest{
		Name:       "Sam Rivera",
		OshaNumber: "OSHA-12345",
		Trade:      "Electrician",
		Company:    "Volt Bros",
	}
	assert.NoError(t, utils.ValidateStruct(&valid))

	// Name and OSHA number are the only hard requirements; everything else
	// can be filled in later when OCR came back partial.
	minimal := models.PassportCreateRequest{Name: "Sam Rivera", OshaNumber: "OSHA-12345"}
	assert.NoError(t, utils.ValidateStruct(&minimal))

	assert.Error(t, utils.ValidateStruct(&models.PassportCreateRequest{OshaNumber: "OSHA-12345"}))
	assert.Error(t, utils.ValidateStruct(&models.PassportCreateRequest{Name: "Sam Rivera"}))
}

func TestOrientationAcknowledgedItems(t *testing.T) {
	assert.Equal(t, []string{
		"Site safety rules",
		"Emergency procedures",
		"PPE requirements",
		"Hazard communication",
		"Incident reporting",
	}, models.OrientationAcknowledgedItems)
}
