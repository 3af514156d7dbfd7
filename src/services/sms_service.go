package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"Backend-Blueview/src/config"
	DB "Backend-Blueview/src/database"
	"Backend-Blueview/src/models"
	"Backend-Blueview/src/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const fastLoginTTL = 12 * time.Hour

// GeofenceEntryResult response for the entry-event webhook.
type GeofenceEntryResult struct {
	Status  string `json:"status"`
	Reason  string `json:"reason,omitempty"`
	EventID string `json:"event_id,omitempty"`
	Message string `json:"message,omitempty"`
}

// HandleGeofenceEntry processes a geofence entry webhook. Non-whitelisted
// phones are ignored rather than erroring so the webhook source doesn't retry.
// The SMS goes out in the background, like the rest of the outbound mail.
func HandleGeofenceEntry(cfg *config.Config, req *models.GeofenceEntryRequest) (*GeofenceEntryResult, error) {
	ctx := context.TODO()

	worker, err := FindWhitelistedByPhone(req.Phone)
	if err != nil {
		return &GeofenceEntryResult{Status: "ignored", Reason: "Phone not whitelisted"}, nil
	}

	event := models.GeofenceEvent{
		WorkerID:  worker.ID.Hex(),
		ProjectID: req.ProjectID,
		Phone:     req.Phone,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		EventType: "entry",
		Timestamp: time.Now().UTC(),
		SMSSent:   false,
	}
	res, err := DB.GeofenceEventCollection.InsertOne(ctx, event)
	if err != nil {
		return nil, err
	}
	eventID := res.InsertedID.(primitive.ObjectID).Hex()

	// One-time link token, unguessable and unique per event
	token := uuid.NewString() + utils.GenerateRandomString(16)
	if err := utils.StoreFastLoginToken(token, worker.ID.Hex(), fastLoginTTL); err != nil {
		log.Println("⚠️ Failed to store fast-login token:", err)
	}

	go sendCheckinSMS(cfg, req.Phone, token, req.ProjectID, eventID)

	return &GeofenceEntryResult{
		Status:  "processing",
		EventID: eventID,
		Message: "SMS check-in link will be sent",
	}, nil
}

// sendCheckinSMS sends the fast-login link via Twilio's REST API, or logs a
// mocked delivery when credentials are absent (development).
func sendCheckinSMS(cfg *config.Config, phone, token, projectID, eventID string) {
	projectName := "Job Site"
	if project, err := GetProjectByID(projectID); err == nil {
		projectName = project.Name
	}

	fastLoginURL := fmt.Sprintf("%s/checkin?token=%s&project=%s", cfg.AppURL, token, projectID)
	message := fmt.Sprintf("Blueview: You've arrived at %s. Tap to check in: %s", projectName, fastLoginURL)

	smsLog := models.SMSLog{
		Phone:     phone,
		Message:   message,
		ProjectID: projectID,
		Token:     token,
		EventID:   eventID,
		SentAt:    time.Now().UTC(),
	}

	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioPhoneNumber != "" {
		sid, err := twilioSend(cfg, phone, message)
		if err != nil {
			errMsg := err.Error()
			smsLog.Status = "failed"
			smsLog.Error = &errMsg
		} else {
			smsLog.Status = "sent"
			smsLog.TwilioSID = &sid
		}
	} else {
		smsLog.Status = "mocked"
		log.Printf("📱 [MOCKED SMS] To: %s, Message: %s", phone, message)
	}

	if _, err := DB.SMSLogCollection.InsertOne(context.TODO(), smsLog); err != nil {
		log.Println("❌ Failed to store SMS log:", err)
	}

	if oid, err := primitive.ObjectIDFromHex(eventID); err == nil {
		_, _ = DB.GeofenceEventCollection.UpdateOne(context.TODO(),
			bson.M{"_id": oid},
			bson.M{"$set": bson.M{"sms_sent": true, "sms_status": smsLog.Status}})
	}
}

var smsHTTP = &http.Client{Timeout: 15 * time.Second}

func twilioSend(cfg *config.Config, to, body string) (string, error) {
	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", cfg.TwilioAccountSID)
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", cfg.TwilioPhoneNumber)
	form.Set("Body", body)

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(cfg.TwilioAccountSID, cfg.TwilioAuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := smsHTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result struct {
		Sid     string `json:"sid"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("twilio error: %s", result.Message)
	}
	return result.Sid, nil
}

// FastLoginResult response for a consumed SMS link.
type FastLoginResult struct {
	Token       string         `json:"token"`
	Worker      map[string]any `json:"worker"`
	CheckinTime string         `json:"checkin_time"`
}

var ErrFastLoginInvalid = errors.New("Invalid or expired check-in link")

// FastLoginCheckin consumes an SMS link: authenticates the worker, records a
// GPS-confirmed check-in and invalidates the token.
func FastLoginCheckin(req *models.SMSCheckinRequest) (*FastLoginResult, error) {
	workerID, _, err := utils.ResolveFastLoginToken(req.Token)
	if err != nil {
		return nil, err
	}
	if workerID == "" {
		return nil, ErrFastLoginInvalid
	}

	worker, err := GetWorkerByID(workerID)
	if err != nil {
		return nil, ErrFastLoginInvalid
	}

	phone := ""
	if worker.Phone != nil {
		phone = *worker.Phone
	}
	jwtToken, err := utils.GenerateJWT(workerID, phone, models.RoleWorker)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rec := models.CheckinRecord{
		WorkerID:      workerID,
		WorkerName:    worker.Name,
		WorkerTrade:   worker.Trade,
		WorkerCompany: worker.Company,
		CheckInTime:   now,
		CheckOutTime:  nil,
		CheckInMethod: models.CheckinMethodSMSFastLogin,
		Date:          now.Format("2006-01-02"),
		Latitude:      &req.Latitude,
		Longitude:     &req.Longitude,
	}
	if _, err := DB.CheckinCollection.InsertOne(context.TODO(), rec); err != nil {
		return nil, err
	}

	if err := utils.InvalidateFastLoginToken(req.Token); err != nil {
		log.Println("⚠️ Failed to invalidate fast-login token:", err)
	}

	return &FastLoginResult{
		Token: jwtToken,
		Worker: map[string]any{
			"id":    workerID,
			"name":  worker.Name,
			"phone": worker.Phone,
			"trade": worker.Trade,
		},
		CheckinTime: now.Format(time.RFC3339),
	}, nil
}

// GetGeofenceEvents lists recent entry events for a project.
func GetGeofenceEvents(projectID string) ([]models.GeofenceEvent, error) {
	ctx := context.TODO()
	filter := bson.M{}
	if projectID != "" {
		filter["project_id"] = projectID
	}
	cursor, err := DB.GeofenceEventCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := []models.GeofenceEvent{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
