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

// CreateMaterialRequest opens a new request from a subcontractor.
func CreateMaterialRequest(req *models.MaterialRequestCreateRequest, subcontractorID string) (*models.MaterialRequest, error) {
	ctx := context.TODO()

	company := ""
	var sub models.Subcontractor
	if err := DB.SubcontractorCollection.FindOne(ctx, bson.M{"user_id": subcontractorID}).Decode(&sub); err == nil {
		company = sub.CompanyName
	}

	priority := req.Priority
	if priority == "" {
		priority = "normal"
	}

	now := time.Now().UTC()
	request := models.MaterialRequest{
		ProjectID:       req.ProjectID,
		SubcontractorID: subcontractorID,
		CompanyName:     company,
		Items:           req.Items,
		Priority:        priority,
		NeededBy:        req.NeededBy,
		Notes:           req.Notes,
		Status:          models.MaterialStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	res, err := DB.MaterialRequestCollection.InsertOne(ctx, request)
	if err != nil {
		return nil, err
	}
	request.ID = res.InsertedID.(primitive.ObjectID)
	return &request, nil
}

// GetMaterialRequests lists requests. Admin passes an empty subcontractorID
// and sees everything; subcontractors only their own.
func GetMaterialRequests(subcontractorID, projectID, status string) ([]models.MaterialRequest, error) {
	ctx := context.TODO()
	filter := bson.M{}
	if subcontractorID != "" {
		filter["subcontractor_id"] = subcontractorID
	}
	if projectID != "" {
		filter["project_id"] = projectID
	}
	if status != "" {
		filter["status"] = status
	}
	cursor, err := DB.MaterialRequestCollection.Find(ctx, filter,
		options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	requests := []models.MaterialRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

var validMaterialStatuses = map[string]bool{
	models.MaterialStatusPending:   true,
	models.MaterialStatusApproved:  true,
	models.MaterialStatusOrdered:   true,
	models.MaterialStatusDelivered: true,
	models.MaterialStatusRejected:  true,
}

// UpdateMaterialRequest triages a request (admin) or edits its items.
func UpdateMaterialRequest(id string, req *models.MaterialRequestUpdateRequest) (*models.MaterialRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid request ID")
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if req.Status != nil {
		if !validMaterialStatuses[*req.Status] {
			return nil, errors.New("invalid status")
		}
		set["status"] = *req.Status
	}
	if req.AdminNotes != nil {
		set["admin_notes"] = *req.AdminNotes
	}
	if req.Items != nil {
		set["items"] = *req.Items
	}

	var updated models.MaterialRequest
	err = DB.MaterialRequestCollection.FindOneAndUpdate(context.TODO(),
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteMaterialRequest removes a request. Subcontractors may only delete
// their own pending requests; admin passes an empty subcontractorID.
func DeleteMaterialRequest(id, subcontractorID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid request ID")
	}
	filter := bson.M{"_id": oid}
	if subcontractorID != "" {
		filter["subcontractor_id"] = subcontractorID
		filter["status"] = models.MaterialStatusPending
	}
	res, err := DB.MaterialRequestCollection.DeleteOne(context.TODO(), filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
