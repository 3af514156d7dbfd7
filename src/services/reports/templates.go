package reports

import (
	"bytes"
	"html/template"
)

// Report page templates. Styling mirrors the printed NYC DOB forms: navy
// section headers, striped worker tables, orange Blueview branding on the
// manpower summary.

const baseCSS = `
body { font-family: Helvetica, Arial, sans-serif; font-size: 9pt; color: #222; margin: 0; }
h1 { font-size: 14pt; text-align: center; margin: 4px 0; }
.subtitle { font-size: 9pt; text-align: center; color: #888; margin-bottom: 12px; }
h2.section { font-size: 11pt; color: #003366; margin: 14px 0 6px; }
table { border-collapse: collapse; width: 100%; }
table.data th { background: #003366; color: #fff; font-weight: bold; font-size: 8pt; padding: 4px; border: 0.5pt solid #999; }
table.data td { font-size: 8pt; padding: 4px; border: 0.5pt solid #999; text-align: center; }
table.data tr:nth-child(even) td { background: #F5F5F5; }
table.info td { font-size: 9pt; padding: 3px 6px; }
table.info td.label { font-weight: bold; white-space: nowrap; }
.footer { font-size: 7pt; color: #888; text-align: center; margin-top: 24px; }
`

type workerRow struct {
	Index      int
	TimeIn     string
	Name       string
	Trade      string
	Company    string
	OshaNumber string
}

type jobsiteLogData struct {
	ProjectAddress string
	ReportDate     string
	Weather        string
	Workers        []workerRow
	TotalWorkers   int
	TotalCompanies int
	GeneratedAt    string
}

var jobsiteLogTmpl = template.Must(template.New("jobsite_log").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><style>` + baseCSS + `</style></head><body>
<h1>NYC Buildings</h1>
<h1>DAILY JOBSITE LOG</h1>
<div class="subtitle">Superintendent Required Jobsite Log 3301-02</div>

<h2 class="section">1. Project Information</h2>
<table class="info">
<tr><td class="label">Address:</td><td>{{.ProjectAddress}}</td><td class="label">Date:</td><td>{{.ReportDate}}</td></tr>
<tr><td class="label">Weather:</td><td>{{.Weather}}</td><td></td><td></td></tr>
</table>

<h2 class="section">3. Activity Details - Manpower Log</h2>
<table class="data">
<tr><th>Time In</th><th>Worker Name</th><th>Trade</th><th>Legal Subcontractor</th><th>OSHA #</th></tr>
{{range .Workers}}<tr><td>{{.TimeIn}}</td><td>{{.Name}}</td><td>{{.Trade}}</td><td>{{.Company}}</td><td>{{.OshaNumber}}</td></tr>
{{else}}<tr><td></td><td>No check-ins recorded</td><td></td><td></td><td></td></tr>{{end}}
</table>

<p><b>Total Workers:</b> {{.TotalWorkers}} | <b>Total Companies:</b> {{.TotalCompanies}}</p>
<div class="footer">Generated by Blueview | {{.GeneratedAt}}</div>
</body></html>`))

type attendeeRow struct {
	Index      int
	Name       string
	OshaNumber string
	Signed     bool
}

type safetyMeetingData struct {
	ProjectAddress string
	MeetingDate    string
	MeetingTime    string
	ConductedBy    string
	Topic          string
	Notes          string
	Attendees      []attendeeRow
	GeneratedAt    string
}

var safetyMeetingTmpl = template.Must(template.New("safety_meeting").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><style>` + baseCSS + `</style></head><body>
<h1>PRE-SHIFT SAFETY MEETING</h1>

<table class="info">
<tr><td class="label">Date:</td><td>{{.MeetingDate}}</td><td class="label">Time:</td><td>{{if .MeetingTime}}{{.MeetingTime}}{{else}}N/A{{end}}</td></tr>
<tr><td class="label">Job Location:</td><td>{{.ProjectAddress}}</td><td class="label">Competent Person:</td><td>{{if .ConductedBy}}{{.ConductedBy}}{{else}}N/A{{end}}</td></tr>
</table>

<h2 class="section">Daily Work Activities To Be Performed During Shift:</h2>
<p>{{if .Topic}}{{.Topic}}{{else}}N/A{{end}}</p>

<h2 class="section">Safety Concerns or Risks:</h2>
<p>{{if .Notes}}{{.Notes}}{{else}}N/A{{end}}</p>

<h2 class="section">Attendance</h2>
<table class="data">
<tr><th>#</th><th>Name (Print)</th><th>OSHA Num.</th><th>Signature</th></tr>
{{range .Attendees}}<tr><td>{{.Index}}</td><td>{{.Name}}</td><td>{{.OshaNumber}}</td><td>{{if .Signed}}[Signed]{{end}}</td></tr>
{{else}}<tr><td></td><td>No attendees</td><td></td><td></td></tr>{{end}}
</table>

<div class="footer">Generated by Blueview | {{.GeneratedAt}}</div>
</body></html>`))

type companySummaryRow struct {
	Company string
	Trades  string
	Count   int
}

type manpowerSummaryData struct {
	ProjectName    string
	ProjectAddress string
	ReportDate     string
	TotalWorkers   int
	Companies      []companySummaryRow
	Workers        []workerRow
	GeneratedAt    string
}

var manpowerSummaryTmpl = template.Must(template.New("manpower_summary").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><style>` + baseCSS + `
h1.brand { font-size: 18pt; color: #FF6B00; }
table.infobox td.label { background: #003366; color: #fff; font-weight: bold; padding: 8px; border: 1pt solid #CCCCCC; }
table.infobox td { font-size: 10pt; padding: 8px; border: 1pt solid #CCCCCC; }
table.summary th { background: #FF6B00; }
table.summary tr:nth-child(even) td { background: #FFF5EB; }
</style></head><body>
<h1 class="brand">BLUEVIEW</h1>
<div class="subtitle" style="font-size:12pt;color:#222;">Daily Manpower Report</div>

<table class="infobox">
<tr><td class="label">PROJECT:</td><td>{{.ProjectName}}</td></tr>
<tr><td class="label">ADDRESS:</td><td>{{.ProjectAddress}}</td></tr>
<tr><td class="label">DATE:</td><td>{{.ReportDate}}</td></tr>
<tr><td class="label">TOTAL MANPOWER:</td><td>{{.TotalWorkers}} Workers</td></tr>
</table>

<h2 class="section">Manpower by Subcontractor</h2>
<table class="data summary">
<tr><th>Legal Subcontractor Name</th><th>Trade</th><th># Workers</th></tr>
{{range .Companies}}<tr><td>{{.Company}}</td><td>{{.Trades}}</td><td>{{.Count}}</td></tr>
{{else}}<tr><td>No workers checked in</td><td></td><td>0</td></tr>{{end}}
</table>

<h2 class="section">Worker Sign-In Ledger</h2>
<table class="data">
<tr><th>#</th><th>Time In</th><th>Worker Name</th><th>Trade</th><th>Company</th><th>OSHA #</th></tr>
{{range .Workers}}<tr><td>{{.Index}}</td><td>{{.TimeIn}}</td><td>{{.Name}}</td><td>{{.Trade}}</td><td>{{.Company}}</td><td>{{.OshaNumber}}</td></tr>
{{else}}<tr><td></td><td></td><td>No check-ins</td><td></td><td></td><td></td></tr>{{end}}
</table>

<div class="footer">Report Generated: {{.GeneratedAt}} | Blueview Construction Management</div>
</body></html>`))

func renderTemplate(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
