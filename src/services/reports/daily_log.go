package reports

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"Backend-Blueview/src/services"
)

type dailyLogCardView struct {
	CompanyName     string
	WorkerCount     int
	WorkDescription string
	Cleanliness     string
	Safety          string
}

type dailyLogPDFData struct {
	ProjectName string
	Location    string
	LogDate     string
	Weather     string
	Status      string
	Workers     []workerRow
	Cards       []dailyLogCardView
	Notes       string
	GeneratedAt string
}

var dailyLogTmpl = template.Must(template.New("daily_log").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><style>` + baseCSS + `
h1.brand { font-size: 24pt; color: #FF6B00; text-align: left; }
h2.section { color: #132F4C; font-size: 14pt; }
table.infobox td.label { background: #132F4C; color: #fff; padding: 8px; border: 1pt solid #2D4A6F; }
table.infobox td { font-size: 10pt; padding: 8px; border: 1pt solid #2D4A6F; }
table.data th { background: #FF6B00; }
.card { margin-bottom: 10px; }
</style></head><body>
<h1 class="brand">BLUEVIEW</h1>
<h2 class="section">Daily Field Report</h2>

<table class="infobox">
<tr><td class="label">Project:</td><td>{{.ProjectName}}</td></tr>
<tr><td class="label">Location:</td><td>{{.Location}}</td></tr>
<tr><td class="label">Date:</td><td>{{.LogDate}}</td></tr>
<tr><td class="label">Weather:</td><td>{{.Weather}}</td></tr>
<tr><td class="label">Status:</td><td>{{.Status}}</td></tr>
</table>

<h2 class="section">Workers On-Site ({{len .Workers}} total)</h2>
{{if .Workers}}<table class="data">
<tr><th>Name</th><th>Trade</th><th>Company</th><th>OSHA #</th><th>Check-In</th></tr>
{{range .Workers}}<tr><td>{{.Name}}</td><td>{{.Trade}}</td><td>{{.Company}}</td><td>{{.OshaNumber}}</td><td>{{.TimeIn}}</td></tr>
{{end}}</table>{{end}}

<h2 class="section">Work Summary by Subcontractor</h2>
{{range .Cards}}<div class="card">
<b>{{.CompanyName}}</b> ({{.WorkerCount}} workers)<br>
{{if .WorkDescription}}Work: {{.WorkDescription}}<br>{{end}}
Cleanliness: {{.Cleanliness}} | Safety: {{.Safety}}
</div>{{end}}

{{if .Notes}}<h2 class="section">Additional Notes</h2><p>{{.Notes}}</p>{{end}}

<div class="footer">Generated: {{.GeneratedAt}} | Blueview Site Operations Hub</div>
</body></html>`))

// GenerateDailyLogPDF renders one field log as a base64 PDF with its
// download filename.
func GenerateDailyLogPDF(ctx context.Context, logID string) (pdfBase64, filename string, err error) {
	logDoc, err := services.GetDailyLogByID(logID)
	if err != nil {
		return "", "", errors.New("daily log not found")
	}
	project, err := services.GetProjectByID(logDoc.ProjectID)
	if err != nil {
		return "", "", errors.New("project not found")
	}
	checkins, err := services.GetCheckinsByDate(logDoc.ProjectID, logDoc.LogDate)
	if err != nil {
		return "", "", err
	}

	weather := "Not recorded"
	if logDoc.WeatherConditions != nil && *logDoc.WeatherConditions != "" {
		weather = *logDoc.WeatherConditions
	}
	if logDoc.Temperature != nil {
		weather = fmt.Sprintf("%s (%.0f°F)", weather, *logDoc.Temperature)
	}

	cards := make([]dailyLogCardView, 0, len(logDoc.SubcontractorCards))
	for _, card := range logDoc.SubcontractorCards {
		view := dailyLogCardView{
			CompanyName: card.CompanyName,
			WorkerCount: card.WorkerCount,
			Cleanliness: strings.ToUpper(orEmpty(card.Inspection.Cleanliness)),
			Safety:      strings.ToUpper(orEmpty(card.Inspection.Safety)),
		}
		if card.WorkDescription != nil {
			view.WorkDescription = *card.WorkDescription
		}
		cards = append(cards, view)
	}

	notes := ""
	if logDoc.Notes != nil {
		notes = *logDoc.Notes
	}

	var rows []workerRow
	for i, c := range checkins {
		rows = append(rows, workerRow{
			Index:      i + 1,
			TimeIn:     c.CheckInTime.Format("3:04 PM"),
			Name:       orEmpty(c.WorkerName),
			Trade:      orEmpty(c.WorkerTrade),
			Company:    orEmpty(c.WorkerCompany),
			OshaNumber: orEmpty(c.WorkerOshaNumber),
		})
	}

	html, err := renderTemplate(dailyLogTmpl, dailyLogPDFData{
		ProjectName: project.Name,
		Location:    project.Location,
		LogDate:     logDoc.LogDate,
		Weather:     weather,
		Status:      strings.ToUpper(logDoc.Status),
		Workers:     rows,
		Cards:       cards,
		Notes:       notes,
		GeneratedAt: generatedStamp(),
	})
	if err != nil {
		return "", "", err
	}

	pdf, err := renderPDF(ctx, html)
	if err != nil {
		return "", "", fmt.Errorf("PDF generation failed: %v", err)
	}

	filename = fmt.Sprintf("DailyReport_%s_%s.pdf",
		strings.ReplaceAll(project.Name, " ", "_"), logDoc.LogDate)
	return base64.StdEncoding.EncodeToString(pdf), filename, nil
}
