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

var (
	ErrCheckinWorkerNotFound  = errors.New("Worker not found")
	ErrCheckinProjectNotFound = errors.New("Project not found")
	ErrAlreadyCheckedInToday  = errors.New("Worker already checked in today")
)

// CreateCheckin records a staff-driven (manual) check-in. Worker snapshot
// fields are frozen from the worker record, and a worker gets at most one
// open record per project per day.
func CreateCheckin(req *models.CheckinCreateRequest) (*models.CheckinRecord, error) {
	ctx := context.TODO()

	worker, err := GetWorkerByID(req.WorkerID)
	if err != nil {
		return nil, ErrCheckinWorkerNotFound
	}
	if _, err := GetProjectByID(req.ProjectID); err != nil {
		return nil, ErrCheckinProjectNotFound
	}

	now := time.Now().UTC()
	today := now.Format("2006-01-02")

	err = DB.CheckinCollection.FindOne(ctx, bson.M{
		"worker_id":      req.WorkerID,
		"project_id":     req.ProjectID,
		"date":           today,
		"check_out_time": nil,
	}).Err()
	if err == nil {
		return nil, ErrAlreadyCheckedInToday
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	method := req.CheckInMethod
	if method == "" {
		method = models.CheckinMethodManual
	}

	rec := models.CheckinRecord{
		WorkerID:      req.WorkerID,
		WorkerName:    worker.Name,
		WorkerTrade:   worker.Trade,
		WorkerCompany: worker.Company,
		ProjectID:     req.ProjectID,
		CheckInTime:   now,
		CheckOutTime:  nil,
		CheckInMethod: method,
		Date:          today,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Notes:         req.Notes,
	}
	if worker.OshaNumber != nil {
		rec.WorkerOshaNumber = *worker.OshaNumber
	}

	res, err := DB.CheckinCollection.InsertOne(ctx, rec)
	if err != nil {
		return nil, err
	}
	rec.ID = res.InsertedID.(primitive.ObjectID)
	return &rec, nil
}

// CheckoutCheckin stamps the check-out time on an open record.
func CheckoutCheckin(checkinID string) (*models.CheckinRecord, error) {
	oid, err := primitive.ObjectIDFromHex(checkinID)
	if err != nil {
		return nil, errors.New("invalid checkin ID")
	}

	now := time.Now().UTC()
	var rec models.CheckinRecord
	err = DB.CheckinCollection.FindOneAndUpdate(context.TODO(),
		bson.M{"_id": oid, "check_out_time": nil},
		bson.M{"$set": bson.M{"check_out_time": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New("checkin not found or already checked out")
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CheckoutOpenForWorker closes today's open record for a worker on a project.
// Used by the plain NFC checkout tap.
func CheckoutOpenForWorker(workerID, projectID string) (*models.CheckinRecord, error) {
	now := time.Now().UTC()
	var rec models.CheckinRecord
	err := DB.CheckinCollection.FindOneAndUpdate(context.TODO(),
		bson.M{
			"worker_id":      workerID,
			"project_id":     projectID,
			"date":           now.Format("2006-01-02"),
			"check_out_time": nil,
		},
		bson.M{"$set": bson.M{"check_out_time": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New("no open check-in found for today")
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetCheckinsByDate lists a project's records for one date (default today).
func GetCheckinsByDate(projectID, date string) ([]models.CheckinRecord, error) {
	ctx := context.TODO()
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	filter := bson.M{"date": date}
	if projectID != "" {
		filter["project_id"] = projectID
	}
	opts := options.Find().SetSort(bson.M{"check_in_time": 1})
	cursor, err := DB.CheckinCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.CheckinRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetActiveCheckins lists today's still-on-site records for a project.
func GetActiveCheckins(projectID string) ([]models.CheckinRecord, error) {
	ctx := context.TODO()
	filter := bson.M{
		"date":           time.Now().UTC().Format("2006-01-02"),
		"check_out_time": nil,
	}
	if projectID != "" {
		filter["project_id"] = projectID
	}
	cursor, err := DB.CheckinCollection.Find(ctx, filter, options.Find().SetSort(bson.M{"check_in_time": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.CheckinRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetTodayStats groups today's check-ins by company for the dashboard.
func GetTodayStats(projectID string) ([]models.CompanyCheckinStats, error) {
	ctx := context.TODO()
	match := bson.M{"date": time.Now().UTC().Format("2006-01-02")}
	if projectID != "" {
		match["project_id"] = projectID
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$worker_company",
			"count": bson.M{"$sum": 1},
			"workers": bson.M{"$push": bson.M{
				"worker_name":   "$worker_name",
				"worker_trade":  "$worker_trade",
				"check_in_time": "$check_in_time",
			}},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	cursor, err := DB.CheckinCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stats := []models.CompanyCheckinStats{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
