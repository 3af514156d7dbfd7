package reports

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"strconv"

	"Backend-Blueview/src/config"
	"Backend-Blueview/src/services"

	gomail "gopkg.in/gomail.v2"
)

// SendDailyLogEmail delivers a submitted field log to the project's email
// distribution list with the rendered PDF attached. Skips quietly when the
// project has no recipients or SMTP is not configured.
func SendDailyLogEmail(ctx context.Context, cfg *config.Config, logID string) error {
	logDoc, err := services.GetDailyLogByID(logID)
	if err != nil {
		return err
	}
	project, err := services.GetProjectByID(logDoc.ProjectID)
	if err != nil {
		return err
	}
	if len(project.EmailDistribution) == 0 {
		log.Printf("⚠️ No email distribution for project %s, skipping daily log email", project.Name)
		return nil
	}
	if cfg.SMTPHost == "" {
		log.Println("⚠️ SMTP not configured, skipping daily log email")
		return nil
	}

	pdfBase64, _, err := GenerateDailyLogPDF(ctx, logID)
	if err != nil {
		return err
	}
	pdfData, err := base64.StdEncoding.DecodeString(pdfBase64)
	if err != nil {
		return err
	}

	weather := "N/A"
	if logDoc.WeatherConditions != nil && *logDoc.WeatherConditions != "" {
		weather = *logDoc.WeatherConditions
	}

	body := fmt.Sprintf(`
	<h2>Daily Report - %s</h2>
	<p><strong>Project:</strong> %s</p>
	<p><strong>Date:</strong> %s</p>
	<p><strong>Weather:</strong> %s</p>
	<p><strong>Status:</strong> %s</p>
	<p>Full PDF report attached.</p>
	<hr>
	<p><em>- Blueview Site Operations Hub</em></p>`,
		project.Name, project.Name, logDoc.LogDate, weather, logDoc.Status)

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.SMTPFrom)
	m.SetHeader("To", project.EmailDistribution...)
	m.SetHeader("Subject", fmt.Sprintf("Daily Report: %s - %s", project.Name, logDoc.LogDate))
	m.SetBody("text/html", body)
	m.Attach(fmt.Sprintf("DailyReport_%s.pdf", logDoc.LogDate),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdfData)
			return err
		}))

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}
	d := gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass)
	if err := d.DialAndSend(m); err != nil {
		return err
	}
	log.Printf("✅ Daily log email sent for %s (%s)", project.Name, logDoc.LogDate)
	return nil
}
