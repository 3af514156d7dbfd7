package reports

import (
	"context"
	"encoding/base64"
	"fmt"
	"html/template"

	"Backend-Blueview/src/services"
	"Backend-Blueview/src/utils"
)

type dobWorkerRow struct {
	Index        int
	Name         string
	Trade        string
	Company      string
	Osha30Number string
	SSTNumber    string
	TimeIn       string
	GPS          string
}

type dobLogPDFData struct {
	ProjectName    string
	ProjectAddress string
	LogDate        string
	TotalWorkers   int
	Workers        []dobWorkerRow
	GeneratedAt    string
}

var dobLogTmpl = template.Must(template.New("dob_log").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><style>` + baseCSS + `</style></head><body>
<h1>NYC DOB DAILY FIELD LOG</h1>

<table class="info">
<tr><td class="label">Project Name:</td><td>{{.ProjectName}}</td></tr>
<tr><td class="label">Project Address:</td><td>{{.ProjectAddress}}</td></tr>
<tr><td class="label">Date:</td><td>{{.LogDate}}</td></tr>
<tr><td class="label">Total Workers:</td><td>{{.TotalWorkers}}</td></tr>
</table>

<h2 class="section">Worker Sign-In Log</h2>
<table class="data">
<tr><th>#</th><th>Name</th><th>Trade</th><th>Company</th><th>OSHA 30</th><th>SST</th><th>Time In</th><th>GPS</th></tr>
{{range .Workers}}<tr><td>{{.Index}}</td><td>{{.Name}}</td><td>{{.Trade}}</td><td>{{.Company}}</td><td>{{.Osha30Number}}</td><td>{{.SSTNumber}}</td><td>{{.TimeIn}}</td><td>{{.GPS}}</td></tr>
{{end}}</table>

<div class="footer">Generated: {{.GeneratedAt}} | NYC DOB Compliant Format</div>
</body></html>`))

// GenerateDOBLogPDF exports one day's DOB sign-in log in the printable
// compliance format. Empty logDate means today.
func GenerateDOBLogPDF(ctx context.Context, projectID, logDate string) (pdfBase64, filename string, err error) {
	if logDate == "" {
		logDate = utils.TodayDate()
	}

	logDoc, err := services.GetDOBDailyLog(projectID, logDate)
	if err != nil {
		return "", "", err
	}

	rows := make([]dobWorkerRow, 0, len(logDoc.Workers))
	for i, w := range logDoc.Workers {
		timeIn := "N/A"
		if len(w.CheckInTime) >= 8 {
			timeIn = w.CheckInTime[:8]
		} else if w.CheckInTime != "" {
			timeIn = w.CheckInTime
		}
		gps := "✗"
		if w.GPSLat != nil {
			gps = "✓"
		}
		rows = append(rows, dobWorkerRow{
			Index:        i + 1,
			Name:         orEmpty(w.Name),
			Trade:        orEmpty(w.Trade),
			Company:      orEmpty(w.Company),
			Osha30Number: orEmpty(deref(w.Osha30Number)),
			SSTNumber:    orEmpty(deref(w.SSTNumber)),
			TimeIn:       timeIn,
			GPS:          gps,
		})
	}

	projectName := logDoc.ProjectName
	projectAddress := logDoc.ProjectAddress
	if project, perr := services.GetProjectByID(projectID); perr == nil {
		projectName = project.Name
		if project.Address != nil {
			projectAddress = *project.Address
		}
	}

	html, err := renderTemplate(dobLogTmpl, dobLogPDFData{
		ProjectName:    projectName,
		ProjectAddress: projectAddress,
		LogDate:        logDate,
		TotalWorkers:   len(logDoc.Workers),
		Workers:        rows,
		GeneratedAt:    generatedStamp(),
	})
	if err != nil {
		return "", "", err
	}

	pdf, err := renderPDF(ctx, html)
	if err != nil {
		return "", "", fmt.Errorf("PDF generation failed: %v", err)
	}

	filename = fmt.Sprintf("DOB_DailyLog_%s_%s.pdf", projectID, logDate)
	return base64.StdEncoding.EncodeToString(pdf), filename, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
