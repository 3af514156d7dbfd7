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

// CreateDailyLog opens a draft field log. One log per project per date.
func CreateDailyLog(req *models.DailyLogCreateRequest, createdBy string) (*models.DailyLog, error) {
	ctx := context.TODO()

	count, err := DB.DailyLogCollection.CountDocuments(ctx,
		bson.M{"project_id": req.ProjectID, "log_date": req.LogDate})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("daily log already exists for this project and date")
	}

	now := time.Now().UTC()
	cards := req.SubcontractorCards
	if cards == nil {
		cards = []models.SubcontractorCard{}
	}
	logDoc := models.DailyLog{
		ProjectID:             req.ProjectID,
		LogDate:               req.LogDate,
		WeatherConditions:     req.WeatherConditions,
		Temperature:           req.Temperature,
		SubcontractorCards:    cards,
		ConditionalChecklists: req.ConditionalChecklists,
		Notes:                 req.Notes,
		Status:                "draft",
		CreatedBy:             createdBy,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	res, err := DB.DailyLogCollection.InsertOne(ctx, logDoc)
	if err != nil {
		return nil, err
	}
	logDoc.ID = res.InsertedID.(primitive.ObjectID)
	return &logDoc, nil
}

// GetDailyLogs lists logs for a project, newest first.
func GetDailyLogs(projectID, date string) ([]models.DailyLog, error) {
	ctx := context.TODO()
	filter := bson.M{}
	if projectID != "" {
		filter["project_id"] = projectID
	}
	if date != "" {
		filter["log_date"] = date
	}
	cursor, err := DB.DailyLogCollection.Find(ctx, filter,
		options.Find().SetSort(bson.M{"log_date": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	logs := []models.DailyLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// GetDailyLogByID fetches one log.
func GetDailyLogByID(id string) (*models.DailyLog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid daily log ID")
	}
	var logDoc models.DailyLog
	err = DB.DailyLogCollection.FindOne(context.TODO(), bson.M{"_id": oid}).Decode(&logDoc)
	if err != nil {
		return nil, err
	}
	return &logDoc, nil
}

// UpdateDailyLog edits a draft. Submitted logs are immutable.
func UpdateDailyLog(id string, req *models.DailyLogUpdateRequest) (*models.DailyLog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid daily log ID")
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if req.WeatherConditions != nil {
		set["weather_conditions"] = *req.WeatherConditions
	}
	if req.Temperature != nil {
		set["temperature"] = *req.Temperature
	}
	if req.SubcontractorCards != nil {
		set["subcontractor_cards"] = *req.SubcontractorCards
	}
	if req.ConditionalChecklists != nil {
		set["conditional_checklists"] = *req.ConditionalChecklists
	}
	if req.Notes != nil {
		set["notes"] = *req.Notes
	}

	var updated models.DailyLog
	err = DB.DailyLogCollection.FindOneAndUpdate(context.TODO(),
		bson.M{"_id": oid, "status": "draft"},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New("daily log not found or already submitted")
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SubmitDailyLog freezes a draft. Submission is one-way.
func SubmitDailyLog(id, submittedBy string) (*models.DailyLog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid daily log ID")
	}

	now := time.Now().UTC()
	var submitted models.DailyLog
	err = DB.DailyLogCollection.FindOneAndUpdate(context.TODO(),
		bson.M{"_id": oid, "status": "draft"},
		bson.M{"$set": bson.M{
			"status":       "submitted",
			"submitted_by": submittedBy,
			"submitted_at": now,
			"updated_at":   now,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&submitted)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New("daily log not found or already submitted")
	}
	if err != nil {
		return nil, err
	}
	return &submitted, nil
}

// DeleteDailyLog removes a draft log.
func DeleteDailyLog(id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid daily log ID")
	}
	res, err := DB.DailyLogCollection.DeleteOne(context.TODO(), bson.M{"_id": oid, "status": "draft"})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("daily log not found or already submitted")
	}
	return nil
}
