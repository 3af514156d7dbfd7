package reports

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"time"

	"Backend-Blueview/src/config"
	DB "Backend-Blueview/src/database"
	"Backend-Blueview/src/models"
	"Backend-Blueview/src/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	gomail "gopkg.in/gomail.v2"
)

// ---- Report settings ----

// SaveReportSettings upserts a project's distribution configuration.
func SaveReportSettings(projectID string, req *models.ReportSettingsCreateRequest, adminID string) error {
	triggerTime := req.ReportTriggerTime
	if triggerTime == "" {
		triggerTime = "17:00"
	}
	_, err := DB.ReportSettingsCollection.UpdateOne(context.TODO(),
		bson.M{"project_id": projectID},
		bson.M{"$set": bson.M{
			"project_id":                 projectID,
			"email_recipients":           req.EmailRecipients,
			"report_trigger_time":        triggerTime,
			"auto_send_enabled":          req.AutoSendEnabled,
			"include_jobsite_log":        req.IncludeJobsiteLog,
			"include_safety_orientation": req.IncludeSafetyOrientation,
			"include_safety_meeting":     req.IncludeSafetyMeeting,
			"updated_by":                 adminID,
			"updated_at":                 time.Now().UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

// GetReportSettings returns a project's settings, or the defaults when none
// were ever saved.
func GetReportSettings(projectID string) (*models.ReportSettings, error) {
	var settings models.ReportSettings
	err := DB.ReportSettingsCollection.FindOne(context.TODO(),
		bson.M{"project_id": projectID}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return &models.ReportSettings{
			ProjectID:                projectID,
			EmailRecipients:          []string{},
			ReportTriggerTime:        "17:00",
			AutoSendEnabled:          true,
			IncludeJobsiteLog:        true,
			IncludeSafetyOrientation: true,
			IncludeSafetyMeeting:     true,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// ---- Trade mappings ----

// SaveTradeMapping upserts one trade to legal-entity mapping per admin.
func SaveTradeMapping(req *models.TradeMappingCreateRequest, adminID string) (*models.TradeMapping, error) {
	var mapping models.TradeMapping
	err := DB.TradeMappingCollection.FindOneAndUpdate(context.TODO(),
		bson.M{"trade": req.Trade, "admin_id": adminID},
		bson.M{
			"$set":         bson.M{"legal_name": req.LegalName},
			"$setOnInsert": bson.M{"trade": req.Trade, "admin_id": adminID, "created_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&mapping)
	if err != nil {
		return nil, err
	}
	return &mapping, nil
}

// GetTradeMappings lists an admin's mappings.
func GetTradeMappings(adminID string) ([]models.TradeMapping, error) {
	ctx := context.TODO()
	cursor, err := DB.TradeMappingCollection.Find(ctx, bson.M{"admin_id": adminID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	mappings := []models.TradeMapping{}
	if err := cursor.All(ctx, &mappings); err != nil {
		return nil, err
	}
	return mappings, nil
}

// DeleteTradeMapping removes one mapping. Scoped to the calling admin.
func DeleteTradeMapping(id, adminID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid mapping ID")
	}
	res, err := DB.TradeMappingCollection.DeleteOne(context.TODO(),
		bson.M{"_id": oid, "admin_id": adminID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// LegalSubcontractorName resolves a raw trade/company name through the
// admin's mappings; unmapped names print as-is.
func LegalSubcontractorName(name, adminID string) string {
	var mapping models.TradeMapping
	err := DB.TradeMappingCollection.FindOne(context.TODO(),
		bson.M{"trade": name, "admin_id": adminID}).Decode(&mapping)
	if err != nil {
		return name
	}
	return mapping.LegalName
}

// ---- PDF builders ----

func orEmpty(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func projectAddress(p *models.Project) string {
	if p == nil {
		return ""
	}
	if p.Address != nil && *p.Address != "" {
		return *p.Address
	}
	return p.Location
}

func workerRows(checkins []models.CheckinRecord, adminID string) []workerRow {
	rows := make([]workerRow, 0, len(checkins))
	for i, c := range checkins {
		rows = append(rows, workerRow{
			Index:      i + 1,
			TimeIn:     c.CheckInTime.Format("15:04"),
			Name:       orEmpty(c.WorkerName),
			Trade:      orEmpty(c.WorkerTrade),
			Company:    LegalSubcontractorName(orEmpty(c.WorkerCompany), adminID),
			OshaNumber: orEmpty(c.WorkerOshaNumber),
		})
	}
	return rows
}

func generatedStamp() string {
	return time.Now().UTC().Format("2006-01-02 15:04") + " UTC"
}

// GenerateJobsiteLogPDF renders the NYC DOB Daily Jobsite Log (Form 3301-02).
func GenerateJobsiteLogPDF(ctx context.Context, cfg *config.Config, projectID, reportDate, adminID string) ([]byte, error) {
	project, _ := services.GetProjectByID(projectID)
	checkins, err := services.GetCheckinsByDate(projectID, reportDate)
	if err != nil {
		return nil, err
	}

	weather := "N/A"
	if cfg.OpenWeatherAPIKey != "" && project != nil && project.Latitude != nil && project.Longitude != nil {
		if w, err := services.GetWeather(cfg.OpenWeatherAPIKey, *project.Latitude, *project.Longitude); err == nil {
			weather = strconv.Itoa(int(w.Temperature)) + "°F, " + w.Description
		}
	}

	companies := map[string]bool{}
	rows := workerRows(checkins, adminID)
	for _, r := range rows {
		companies[r.Company] = true
	}

	html, err := renderTemplate(jobsiteLogTmpl, jobsiteLogData{
		ProjectAddress: projectAddress(project),
		ReportDate:     reportDate,
		Weather:        weather,
		Workers:        rows,
		TotalWorkers:   len(checkins),
		TotalCompanies: len(companies),
		GeneratedAt:    generatedStamp(),
	})
	if err != nil {
		return nil, err
	}
	return renderPDF(ctx, html)
}

// GenerateSafetyMeetingPDF renders the pre-shift safety meeting sheet. When
// no meeting exists, the day's check-ins stand in as the attendance list.
func GenerateSafetyMeetingPDF(ctx context.Context, projectID, meetingDate string) ([]byte, error) {
	project, _ := services.GetProjectByID(projectID)

	data := safetyMeetingData{
		ProjectAddress: projectAddress(project),
		MeetingDate:    meetingDate,
		GeneratedAt:    generatedStamp(),
	}

	meetings, err := services.GetSafetyMeetings(projectID, meetingDate)
	if err != nil {
		return nil, err
	}
	if len(meetings) > 0 {
		meeting := meetings[0]
		data.MeetingTime = meeting.MeetingTime
		data.ConductedBy = meeting.ConductedBy
		data.Topic = meeting.Topic
		data.Notes = meeting.Notes
		for i, a := range meeting.Attendees {
			data.Attendees = append(data.Attendees, attendeeRow{
				Index:      i + 1,
				Name:       orEmpty(a.WorkerName),
				OshaNumber: orEmpty(a.OshaNumber),
				Signed:     a.Signature != "",
			})
		}
	} else {
		checkins, err := services.GetCheckinsByDate(projectID, meetingDate)
		if err != nil {
			return nil, err
		}
		for i, c := range checkins {
			data.Attendees = append(data.Attendees, attendeeRow{
				Index:      i + 1,
				Name:       orEmpty(c.WorkerName),
				OshaNumber: orEmpty(c.WorkerOshaNumber),
				Signed:     c.AutoSigned,
			})
		}
	}

	html, err := renderTemplate(safetyMeetingTmpl, data)
	if err != nil {
		return nil, err
	}
	return renderPDF(ctx, html)
}

// GenerateManpowerSummaryPDF renders the branded daily manpower summary.
func GenerateManpowerSummaryPDF(ctx context.Context, projectID, reportDate, adminID string) ([]byte, error) {
	project, _ := services.GetProjectByID(projectID)
	checkins, err := services.GetCheckinsByDate(projectID, reportDate)
	if err != nil {
		return nil, err
	}

	rows := workerRows(checkins, adminID)

	type agg struct {
		count  int
		trades map[string]bool
	}
	byCompany := map[string]*agg{}
	order := []string{}
	for _, r := range rows {
		a, ok := byCompany[r.Company]
		if !ok {
			a = &agg{trades: map[string]bool{}}
			byCompany[r.Company] = a
			order = append(order, r.Company)
		}
		a.count++
		a.trades[r.Trade] = true
	}

	companies := make([]companySummaryRow, 0, len(order))
	for _, name := range order {
		a := byCompany[name]
		trades := make([]string, 0, len(a.trades))
		for t := range a.trades {
			trades = append(trades, t)
		}
		sort.Strings(trades)
		tradeList := ""
		for i, t := range trades {
			if i > 0 {
				tradeList += ", "
			}
			tradeList += t
		}
		companies = append(companies, companySummaryRow{Company: name, Trades: tradeList, Count: a.count})
	}

	projectName := "Unknown"
	if project != nil {
		projectName = project.Name
	}
	html, err := renderTemplate(manpowerSummaryTmpl, manpowerSummaryData{
		ProjectName:    projectName,
		ProjectAddress: projectAddress(project),
		ReportDate:     reportDate,
		TotalWorkers:   len(checkins),
		Companies:      companies,
		Workers:        rows,
		GeneratedAt:    generatedStamp(),
	})
	if err != nil {
		return nil, err
	}
	return renderPDF(ctx, html)
}

// ---- Generation + distribution ----

// GenerateResult response for a manual or scheduled generation run.
type GenerateResult struct {
	ReportID         string   `json:"report_id"`
	ProjectName      string   `json:"project_name"`
	ReportDate       string   `json:"report_date"`
	WorkersCount     int      `json:"workers_count"`
	ReportsGenerated []string `json:"reports_generated"`
	EmailSent        bool     `json:"email_sent"`
	EmailRecipients  []string `json:"email_recipients"`
	EmailError       *string  `json:"email_error"`
}

// GenerateDailyReport builds the three PDFs, archives them and emails the
// bundle to the configured recipients. A PDF that fails records its error in
// the bundle instead of failing the run.
func GenerateDailyReport(ctx context.Context, cfg *config.Config, projectID, reportDate, adminID string) (*GenerateResult, error) {
	if reportDate == "" {
		reportDate = time.Now().UTC().Format("2006-01-02")
	}

	project, err := services.GetProjectByID(projectID)
	if err != nil {
		return nil, errors.New("project not found")
	}

	settings, err := GetReportSettings(projectID)
	if err != nil {
		return nil, err
	}

	checkinsCount := 0
	if checkins, err := services.GetCheckinsByDate(projectID, reportDate); err == nil {
		checkinsCount = len(checkins)
	}

	pdfs := map[string]string{}
	generated := []string{}

	if pdf, err := GenerateJobsiteLogPDF(ctx, cfg, projectID, reportDate, adminID); err != nil {
		pdfs[models.ReportTypeJobsiteLog+"_error"] = err.Error()
	} else {
		pdfs[models.ReportTypeJobsiteLog] = base64.StdEncoding.EncodeToString(pdf)
		generated = append(generated, models.ReportTypeJobsiteLog)
	}

	if pdf, err := GenerateSafetyMeetingPDF(ctx, projectID, reportDate); err != nil {
		pdfs[models.ReportTypeSafetyMeeting+"_error"] = err.Error()
	} else {
		pdfs[models.ReportTypeSafetyMeeting] = base64.StdEncoding.EncodeToString(pdf)
		generated = append(generated, models.ReportTypeSafetyMeeting)
	}

	if pdf, err := GenerateManpowerSummaryPDF(ctx, projectID, reportDate, adminID); err != nil {
		pdfs[models.ReportTypeManpowerSummary+"_error"] = err.Error()
	} else {
		pdfs[models.ReportTypeManpowerSummary] = base64.StdEncoding.EncodeToString(pdf)
		generated = append(generated, models.ReportTypeManpowerSummary)
	}

	record := models.GeneratedReport{
		ProjectID:       projectID,
		ProjectName:     project.Name,
		ReportDate:      reportDate,
		GeneratedAt:     time.Now().UTC(),
		GeneratedBy:     adminID,
		WorkersCount:    checkinsCount,
		Reports:         pdfs,
		EmailSent:       false,
		EmailRecipients: []string{},
	}
	insertRes, err := DB.GeneratedReportCollection.InsertOne(context.TODO(), record)
	if err != nil {
		return nil, err
	}
	reportID := insertRes.InsertedID.(primitive.ObjectID).Hex()

	result := &GenerateResult{
		ReportID:         reportID,
		ProjectName:      project.Name,
		ReportDate:       reportDate,
		WorkersCount:     checkinsCount,
		ReportsGenerated: generated,
		EmailRecipients:  settings.EmailRecipients,
	}

	if len(settings.EmailRecipients) > 0 && cfg.SMTPHost != "" {
		if err := sendReportEmail(cfg, settings.EmailRecipients, project.Name, reportDate, checkinsCount, pdfs); err != nil {
			errMsg := err.Error()
			result.EmailError = &errMsg
			log.Println("❌ Report email failed:", err)
		} else {
			result.EmailSent = true
			now := time.Now().UTC()
			if oid, err := primitive.ObjectIDFromHex(reportID); err == nil {
				_, _ = DB.GeneratedReportCollection.UpdateOne(context.TODO(),
					bson.M{"_id": oid},
					bson.M{"$set": bson.M{
						"email_sent":       true,
						"email_recipients": settings.EmailRecipients,
						"email_sent_at":    now,
					}})
			}
		}
	}
	return result, nil
}

var reportAttachmentNames = map[string]string{
	models.ReportTypeManpowerSummary: "ManpowerReport",
	models.ReportTypeJobsiteLog:      "JobsiteLog",
	models.ReportTypeSafetyMeeting:   "SafetyMeeting",
}

func sendReportEmail(cfg *config.Config, recipients []string, projectName, reportDate string, workersCount int, pdfs map[string]string) error {
	body := fmt.Sprintf(`
	<h2>Daily Manpower Report - %s</h2>
	<p><strong>Date:</strong> %s</p>
	<p><strong>Total Workers:</strong> %d</p>
	<p>Please find the attached daily reports.</p>
	<hr>
	<p><em>Generated by Blueview Construction Management</em></p>`,
		projectName, reportDate, workersCount)

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.SMTPFrom)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", fmt.Sprintf("Daily Manpower Report - %s - %s", projectName, reportDate))
	m.SetBody("text/html", body)

	for reportType, prefix := range reportAttachmentNames {
		encoded, ok := pdfs[reportType]
		if !ok {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			continue
		}
		m.Attach(fmt.Sprintf("%s_%s.pdf", prefix, reportDate),
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}))
	}

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}
	d := gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass)
	return d.DialAndSend(m)
}

// ---- Archive ----

// ReportListing compact row for the audit screen; PDF blobs stay behind.
type ReportListing struct {
	ID              string    `json:"id"`
	ProjectID       string    `json:"project_id"`
	ReportDate      string    `json:"report_date"`
	GeneratedAt     time.Time `json:"generated_at"`
	WorkersCount    int       `json:"workers_count"`
	EmailSent       bool      `json:"email_sent"`
	EmailRecipients []string  `json:"email_recipients"`
}

// ListReports returns the last 30 generated bundles for a project.
func ListReports(projectID string) ([]ReportListing, error) {
	ctx := context.TODO()
	opts := options.Find().SetSort(bson.M{"report_date": -1}).SetLimit(30)
	cursor, err := DB.GeneratedReportCollection.Find(ctx, bson.M{"project_id": projectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reports := []models.GeneratedReport{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}

	listings := make([]ReportListing, 0, len(reports))
	for _, r := range reports {
		listings = append(listings, ReportListing{
			ID:              r.ID.Hex(),
			ProjectID:       r.ProjectID,
			ReportDate:      r.ReportDate,
			GeneratedAt:     r.GeneratedAt,
			WorkersCount:    r.WorkersCount,
			EmailSent:       r.EmailSent,
			EmailRecipients: r.EmailRecipients,
		})
	}
	return listings, nil
}

// DownloadReport returns one archived PDF as base64 with its filename.
func DownloadReport(reportID, reportType string) (pdfBase64, filename, reportDate string, err error) {
	oid, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return "", "", "", errors.New("invalid report ID")
	}
	var report models.GeneratedReport
	err = DB.GeneratedReportCollection.FindOne(context.TODO(), bson.M{"_id": oid}).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return "", "", "", errors.New("report not found")
	}
	if err != nil {
		return "", "", "", err
	}

	pdfData, ok := report.Reports[reportType]
	if !ok || pdfData == "" {
		return "", "", "", fmt.Errorf("report type '%s' not found", reportType)
	}
	return pdfData, fmt.Sprintf("%s_%s.pdf", reportType, report.ReportDate), report.ReportDate, nil
}
