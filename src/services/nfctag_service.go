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

// RegisterNFCTag binds a physical tag to a project. A tag id can only be
// registered once; stale tags are deactivated, not rebound.
func RegisterNFCTag(req *models.NFCTagRegisterRequest) (*models.NFCTag, error) {
	ctx := context.TODO()

	if _, err := GetProjectByID(req.ProjectID); err != nil {
		return nil, errors.New("project not found")
	}

	count, err := DB.NFCTagCollection.CountDocuments(ctx, bson.M{"tag_id": req.TagID})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("NFC tag already registered")
	}

	tag := models.NFCTag{
		TagID:        req.TagID,
		ProjectID:    req.ProjectID,
		Location:     req.Location,
		IsActive:     true,
		RegisteredAt: time.Now().UTC(),
	}
	res, err := DB.NFCTagCollection.InsertOne(ctx, tag)
	if err != nil {
		return nil, err
	}
	tag.ID = res.InsertedID.(primitive.ObjectID)
	return &tag, nil
}

// GetNFCTags lists registered tags, optionally for one project.
func GetNFCTags(projectID string) ([]models.NFCTag, error) {
	ctx := context.TODO()
	filter := bson.M{}
	if projectID != "" {
		filter["project_id"] = projectID
	}
	cursor, err := DB.NFCTagCollection.Find(ctx, filter, options.Find().SetSort(bson.M{"registered_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tags := []models.NFCTag{}
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// GetNFCTagInfo resolves a scanned tag to its tag + project pair. Used by the
// kiosk screen before any check-in happens.
func GetNFCTagInfo(tagID string) (*models.NFCTag, *models.Project, error) {
	var tag models.NFCTag
	err := DB.NFCTagCollection.FindOne(context.TODO(),
		bson.M{"tag_id": tagID, "is_active": true}).Decode(&tag)
	if err != nil {
		return nil, nil, errors.New("Invalid NFC tag")
	}

	project, err := GetProjectByID(tag.ProjectID)
	if err != nil {
		return &tag, nil, nil
	}
	return &tag, project, nil
}

// DeactivateNFCTag disables a tag without deleting its registration history.
func DeactivateNFCTag(tagID string) error {
	res, err := DB.NFCTagCollection.UpdateOne(context.TODO(),
		bson.M{"tag_id": tagID}, bson.M{"$set": bson.M{"is_active": false}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// NFCCheckin handles a plain (non-passport) tag scan by a registered worker.
// Idempotent per worker/project/day like the passport flow, but signs no books.
func NFCCheckin(req *models.NFCCheckinRequest) (*models.CheckinRecord, bool, error) {
	ctx := context.TODO()

	var tag models.NFCTag
	err := DB.NFCTagCollection.FindOne(ctx, bson.M{"tag_id": req.TagID, "is_active": true}).Decode(&tag)
	if err != nil {
		return nil, false, errors.New("Invalid NFC tag")
	}

	worker, err := GetWorkerByID(req.WorkerID)
	if err != nil {
		return nil, false, errors.New("worker not found")
	}

	now := time.Now().UTC()
	today := now.Format("2006-01-02")

	var existing models.CheckinRecord
	err = DB.CheckinCollection.FindOne(ctx, bson.M{
		"worker_id":      req.WorkerID,
		"project_id":     tag.ProjectID,
		"date":           today,
		"check_out_time": nil,
	}).Decode(&existing)
	if err == nil {
		return &existing, true, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, false, err
	}

	rec := models.CheckinRecord{
		WorkerID:      req.WorkerID,
		WorkerName:    worker.Name,
		WorkerTrade:   worker.Trade,
		WorkerCompany: worker.Company,
		ProjectID:     tag.ProjectID,
		NFCTagID:      req.TagID,
		CheckInTime:   now,
		CheckOutTime:  nil,
		CheckInMethod: models.CheckinMethodNFC,
		Date:          today,
	}
	if worker.OshaNumber != nil {
		rec.WorkerOshaNumber = *worker.OshaNumber
	}

	res, err := DB.CheckinCollection.InsertOne(ctx, rec)
	if err != nil {
		return nil, false, err
	}
	rec.ID = res.InsertedID.(primitive.ObjectID)
	return &rec, false, nil
}

// NFCCheckout closes today's open record after a checkout tap.
func NFCCheckout(req *models.NFCCheckinRequest) (*models.CheckinRecord, error) {
	var tag models.NFCTag
	err := DB.NFCTagCollection.FindOne(context.TODO(),
		bson.M{"tag_id": req.TagID, "is_active": true}).Decode(&tag)
	if err != nil {
		return nil, errors.New("Invalid NFC tag")
	}
	return CheckoutOpenForWorker(req.WorkerID, tag.ProjectID)
}
