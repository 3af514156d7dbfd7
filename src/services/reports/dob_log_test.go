package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDOBLogTemplate(t *testing.T) {
	html, err := renderTemplate(dobLogTmpl, dobLogPDFData{
		ProjectName:    "Court Street Tower",
		ProjectAddress: "125 Court St, Brooklyn NY",
		LogDate:        "2026-08-31",
		TotalWorkers:   2,
		Workers: []dobWorkerRow{
			{Index: 1, Name: "Sam Rivera", Trade: "Electrician", Company: "Volt Bros",
				Osha30Number: "30-555123", SSTNumber: "SST-9921", TimeIn: "07:02:14", GPS: "✓"},
			{Index: 2, Name: "Lee Park", Trade: "Carpenter", Company: "Framewell",
				Osha30Number: "N/A", SSTNumber: "N/A", TimeIn: "N/A", GPS: "✗"},
		},
		GeneratedAt: "2026-08-31 17:00 UTC",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "NYC DOB DAILY FIELD LOG")
	assert.Contains(t, html, "Court Street Tower")
	assert.Contains(t, html, "125 Court St, Brooklyn NY")
	assert.Contains(t, html, "30-555123")
	assert.Contains(t, html, "SST-9921")
	assert.Contains(t, html, "NYC DOB Compliant Format")
	// worker without GPS shows the empty mark, not a blank cell
	assert.Contains(t, html, "✗")
}

func TestDOBWorkerRowDefaults(t *testing.T) {
	sst := "SST-9921"
	assert.Equal(t, "N/A", orEmpty(deref(nil)), "missing credential renders as N/A")
	assert.Equal(t, "SST-9921", orEmpty(deref(&sst)))
}
