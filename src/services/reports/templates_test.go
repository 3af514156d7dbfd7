package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobsiteLogTemplate(t *testing.T) {
	html, err := renderTemplate(jobsiteLogTmpl, jobsiteLogData{
		ProjectAddress: "125 Court St, Brooklyn NY",
		ReportDate:     "2026-08-31",
		Weather:        "72°F, clear sky",
		Workers: []workerRow{
			{Index: 1, TimeIn: "07:02", Name: "Sam Rivera", Trade: "Electrician", Company: "Volt Bros", OshaNumber: "OSHA-12345"},
			{Index: 2, TimeIn: "07:15", Name: "Lee Park", Trade: "Carpenter", Company: "Framewell", OshaNumber: "OSHA-67890"},
		},
		TotalWorkers:   2,
		TotalCompanies: 2,
		GeneratedAt:    "2026-08-31 17:00 UTC",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "DAILY JOBSITE LOG")
	assert.Contains(t, html, "125 Court St, Brooklyn NY")
	assert.Contains(t, html, "Sam Rivera")
	assert.Contains(t, html, "OSHA-67890")
	assert.Contains(t, html, "72°F, clear sky")
}

func TestSafetyMeetingTemplate(t *testing.T) {
	html, err := renderTemplate(safetyMeetingTmpl, safetyMeetingData{
		ProjectAddress: "125 Court St",
		MeetingDate:    "2026-08-31",
		MeetingTime:    "07:00",
		ConductedBy:    "J. Alvarez",
		Topic:          "Ladder safety",
		Attendees: []attendeeRow{
			{Index: 1, Name: "Sam Rivera", OshaNumber: "OSHA-12345", Signed: true},
		},
		GeneratedAt: "2026-08-31 17:00 UTC",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "PRE-SHIFT SAFETY MEETING")
	assert.Contains(t, html, "Ladder safety")
	assert.Contains(t, html, "Sam Rivera")
}

func TestSafetyMeetingTemplateMissingTime(t *testing.T) {
	html, err := renderTemplate(safetyMeetingTmpl, safetyMeetingData{
		ProjectAddress: "125 Court St",
		MeetingDate:    "2026-08-31",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "N/A")
}

func TestManpowerSummaryTemplate(t *testing.T) {
	html, err := renderTemplate(manpowerSummaryTmpl, manpowerSummaryData{
		ProjectName:    "Court Street Tower",
		ProjectAddress: "125 Court St",
		ReportDate:     "2026-08-31",
		TotalWorkers:   3,
		Companies: []companySummaryRow{
			{Company: "Volt Bros", Trades: "Electrician", Count: 2},
			{Company: "Framewell", Trades: "Carpenter", Count: 1},
		},
		Workers: []workerRow{
			{Index: 1, TimeIn: "07:02", Name: "Sam Rivera", Trade: "Electrician", Company: "Volt Bros"},
		},
		GeneratedAt: "2026-08-31 17:00 UTC",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Court Street Tower")
	assert.Contains(t, html, "Volt Bros")
	assert.Contains(t, html, "Framewell")
}

func TestTemplatesEscapeUserInput(t *testing.T) {
	html, err := renderTemplate(safetyMeetingTmpl, safetyMeetingData{
		Topic: `<script>alert("x")</script>`,
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
