package services

import (
	"context"
	"errors"
	"time"

	DB "Backend-Blueview/src/database"
	"Backend-Blueview/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrDOBLogNotFound = errors.New("DOB log not found for this date")

// AppendDOBLogEntry records one worker on today's DOB sign-in log,
// materializing the log on first entry. A single upsert keeps concurrent
// first appends from creating two logs for the same day.
func AppendDOBLogEntry(projectID string, req *models.DOBLogEntryRequest) (logID string, created bool, err error) {
	ctx := context.TODO()

	worker, err := GetWorkerByID(req.WorkerID)
	if err != nil {
		return "", false, errors.New("Worker not found")
	}

	projectName := "Unknown"
	projectAddress := ""
	if project, err := GetProjectByID(projectID); err == nil {
		projectName = project.Name
		if project.Address != nil {
			projectAddress = *project.Address
		}
	}

	entry := models.DOBWorkerEntry{
		WorkerID:           req.WorkerID,
		Name:               worker.Name,
		Trade:              worker.Trade,
		Company:            worker.Company,
		Osha30Number:       worker.Osha30Number,
		Osha30Expiry:       worker.Osha30Expiry,
		SSTNumber:          worker.SSTNumber,
		SSTExpiry:          worker.SSTExpiry,
		CheckInTime:        req.CheckInTime,
		CheckOutTime:       req.CheckOutTime,
		GPSLat:             req.GPSLat,
		GPSLng:             req.GPSLng,
		SignatureConfirmed: req.SignatureConfirmed,
	}

	now := time.Now().UTC()
	today := now.Format("2006-01-02")

	res, err := DB.DOBDailyLogCollection.UpdateOne(ctx,
		bson.M{"project_id": projectID, "log_date": today},
		bson.M{
			"$push": bson.M{"workers": entry},
			"$set":  bson.M{"updated_at": now},
			"$setOnInsert": bson.M{
				"project_id":      projectID,
				"project_name":    projectName,
				"project_address": projectAddress,
				"log_date":        today,
				"status":          "active",
				"dob_compliant":   true,
				"created_at":      now,
			},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return "", false, err
	}

	if res.UpsertedID != nil {
		if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
			return oid.Hex(), true, nil
		}
		return "", true, nil
	}

	var existing models.DOBDailyLog
	if err := DB.DOBDailyLogCollection.FindOne(ctx,
		bson.M{"project_id": projectID, "log_date": today}).Decode(&existing); err != nil {
		return "", false, err
	}
	return existing.ID.Hex(), false, nil
}

// GetDOBDailyLog fetches one project's DOB log for a date.
func GetDOBDailyLog(projectID, logDate string) (*models.DOBDailyLog, error) {
	var log models.DOBDailyLog
	err := DB.DOBDailyLogCollection.FindOne(context.TODO(),
		bson.M{"project_id": projectID, "log_date": logDate}).Decode(&log)
	if err == mongo.ErrNoDocuments {
		return nil, ErrDOBLogNotFound
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}
