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

// CreateWorker registers a legacy (staff-entered) worker record.
func CreateWorker(req *models.WorkerCreateRequest, createdBy string) (*models.Worker, error) {
	now := time.Now().UTC()
	worker := models.Worker{
		Name:          req.Name,
		Trade:         req.Trade,
		Company:       req.Company,
		OshaNumber:    req.OshaNumber,
		Signature:     req.Signature,
		IDPhoto:       req.IDPhoto,
		OshaCardPhoto: req.OshaCardPhoto,
		CreatedBy:     createdBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	res, err := DB.WorkerCollection.InsertOne(context.TODO(), worker)
	if err != nil {
		return nil, err
	}
	worker.ID = res.InsertedID.(primitive.ObjectID)
	return &worker, nil
}

// GetAllWorkers lists workers, optionally filtered by company.
func GetAllWorkers(company string) ([]models.Worker, error) {
	ctx := context.TODO()
	filter := bson.M{}
	if company != "" {
		filter["company"] = company
	}
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := DB.WorkerCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	workers := []models.Worker{}
	if err := cursor.All(ctx, &workers); err != nil {
		return nil, err
	}
	return workers, nil
}

// GetWorkerByID fetches one worker.
func GetWorkerByID(id string) (*models.Worker, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid worker ID")
	}
	var worker models.Worker
	err = DB.WorkerCollection.FindOne(context.TODO(), bson.M{"_id": oid}).Decode(&worker)
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

// UpdateWorker applies a partial update.
func UpdateWorker(id string, req *models.WorkerUpdateRequest) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid worker ID")
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Trade != nil {
		set["trade"] = *req.Trade
	}
	if req.Company != nil {
		set["company"] = *req.Company
	}
	if req.OshaNumber != nil {
		set["osha_number"] = *req.OshaNumber
	}
	if req.Signature != nil {
		set["signature"] = *req.Signature
	}
	if req.IDPhoto != nil {
		set["id_photo"] = *req.IDPhoto
	}
	if req.OshaCardPhoto != nil {
		set["osha_card_photo"] = *req.OshaCardPhoto
	}

	res, err := DB.WorkerCollection.UpdateOne(context.TODO(), bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteWorker removes a worker record.
func DeleteWorker(id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid worker ID")
	}
	res, err := DB.WorkerCollection.DeleteOne(context.TODO(), bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ---- SMS check-in whitelist (subcontractor-managed phones) ----

// CreateWorkerPhone whitelists a phone number for geofence SMS check-in.
// One phone maps to at most one whitelisted worker.
func CreateWorkerPhone(req *models.WorkerPhoneCreateRequest, subcontractorID string) (*models.Worker, error) {
	ctx := context.TODO()

	count, err := DB.WorkerCollection.CountDocuments(ctx, bson.M{"phone": req.Phone, "is_whitelisted": true})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("phone already whitelisted")
	}

	var sub models.Subcontractor
	company := ""
	if err := DB.SubcontractorCollection.FindOne(ctx, bson.M{"user_id": subcontractorID}).Decode(&sub); err == nil {
		company = sub.CompanyName
	}

	now := time.Now().UTC()
	worker := models.Worker{
		Name:            req.Name,
		Trade:           req.Trade,
		Company:         company,
		Phone:           &req.Phone,
		Osha30Number:    req.Osha30Number,
		Osha30Expiry:    req.Osha30Expiry,
		SSTNumber:       req.SSTNumber,
		SSTExpiry:       req.SSTExpiry,
		IDPhoto:         req.IDPhoto,
		SubcontractorID: subcontractorID,
		IsWhitelisted:   true,
		CreatedBy:       subcontractorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	res, err := DB.WorkerCollection.InsertOne(ctx, worker)
	if err != nil {
		return nil, err
	}
	worker.ID = res.InsertedID.(primitive.ObjectID)
	return &worker, nil
}

// GetWorkerPhones lists a subcontractor's whitelisted workers. Admin passes
// an empty subcontractorID and sees all of them.
func GetWorkerPhones(subcontractorID string) ([]models.Worker, error) {
	ctx := context.TODO()
	filter := bson.M{"is_whitelisted": true}
	if subcontractorID != "" {
		filter["subcontractor_id"] = subcontractorID
	}
	cursor, err := DB.WorkerCollection.Find(ctx, filter, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	workers := []models.Worker{}
	if err := cursor.All(ctx, &workers); err != nil {
		return nil, err
	}
	return workers, nil
}

// FindWhitelistedByPhone resolves a phone to its whitelisted worker.
func FindWhitelistedByPhone(phone string) (*models.Worker, error) {
	var worker models.Worker
	err := DB.WorkerCollection.FindOne(context.TODO(),
		bson.M{"phone": phone, "is_whitelisted": true}).Decode(&worker)
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

// UpdateWorkerPhone edits a whitelisted worker row. Scoped to the owning
// subcontractor unless subcontractorID is empty (admin).
func UpdateWorkerPhone(id string, req *models.WorkerUpdateRequest, subcontractorID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid worker ID")
	}
	filter := bson.M{"_id": oid, "is_whitelisted": true}
	if subcontractorID != "" {
		filter["subcontractor_id"] = subcontractorID
	}

	updates := bson.M{"updated_at": time.Now().UTC()}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Trade != nil {
		updates["trade"] = *req.Trade
	}
	res, err := DB.WorkerCollection.UpdateOne(context.TODO(), filter, bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteWorkerPhone removes a whitelisted phone. Subcontractors may only
// delete their own rows; admin passes an empty subcontractorID.
func DeleteWorkerPhone(id, subcontractorID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid worker ID")
	}
	filter := bson.M{"_id": oid, "is_whitelisted": true}
	if subcontractorID != "" {
		filter["subcontractor_id"] = subcontractorID
	}
	res, err := DB.WorkerCollection.DeleteOne(context.TODO(), filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
