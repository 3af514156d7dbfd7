package services

import (
	"context"
	"errors"
	"strings"
	"time"

	DB "Backend-Blueview/src/database"
	"Backend-Blueview/src/models"
	"Backend-Blueview/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateSubcontractor creates the login account and the company profile in
// one call.
func CreateSubcontractor(req *models.SubcontractorCreateRequest) (*models.Subcontractor, error) {
	ctx := context.TODO()
	email := strings.ToLower(req.Email)

	count, err := DB.UserCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	assigned := req.AssignedProjects
	if assigned == nil {
		assigned = []string{}
	}
	user := models.User{
		Email:            email,
		Password:         hashed,
		Name:             req.ContactName,
		Role:             models.RoleSubcontractor,
		Phone:            req.Phone,
		Company:          req.CompanyName,
		AssignedProjects: assigned,
		CreatedAt:        now,
	}
	userRes, err := DB.UserCollection.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}

	sub := models.Subcontractor{
		UserID:           userRes.InsertedID.(primitive.ObjectID).Hex(),
		CompanyName:      req.CompanyName,
		ContactName:      req.ContactName,
		Phone:            req.Phone,
		Trade:            req.Trade,
		AssignedProjects: assigned,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	subRes, err := DB.SubcontractorCollection.InsertOne(ctx, sub)
	if err != nil {
		return nil, err
	}
	sub.ID = subRes.InsertedID.(primitive.ObjectID)
	return &sub, nil
}

// GetSubcontractors lists profiles, optionally only those assigned to a
// project.
func GetSubcontractors(projectID string) ([]models.Subcontractor, error) {
	ctx := context.TODO()
	filter := bson.M{}
	if projectID != "" {
		filter["assigned_projects"] = projectID
	}
	cursor, err := DB.SubcontractorCollection.Find(ctx, filter,
		options.Find().SetSort(bson.M{"company_name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subs := []models.Subcontractor{}
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// GetSubcontractorByUserID resolves the company profile behind an account.
func GetSubcontractorByUserID(userID string) (*models.Subcontractor, error) {
	var sub models.Subcontractor
	err := DB.SubcontractorCollection.FindOne(context.TODO(), bson.M{"user_id": userID}).Decode(&sub)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// UpdateSubcontractor applies a partial update; project assignments sync to
// the login account.
func UpdateSubcontractor(id string, req *models.SubcontractorUpdateRequest) (*models.Subcontractor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid subcontractor ID")
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if req.CompanyName != nil {
		set["company_name"] = *req.CompanyName
	}
	if req.ContactName != nil {
		set["contact_name"] = *req.ContactName
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if req.Trade != nil {
		set["trade"] = *req.Trade
	}
	if req.AssignedProjects != nil {
		set["assigned_projects"] = *req.AssignedProjects
	}

	var updated models.Subcontractor
	err = DB.SubcontractorCollection.FindOneAndUpdate(context.TODO(),
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, err
	}

	if req.AssignedProjects != nil {
		if userOID, err := primitive.ObjectIDFromHex(updated.UserID); err == nil {
			_, _ = DB.UserCollection.UpdateOne(context.TODO(),
				bson.M{"_id": userOID},
				bson.M{"$set": bson.M{"assigned_projects": *req.AssignedProjects}})
		}
	}
	return &updated, nil
}

// DeleteSubcontractor removes the profile and its login account.
func DeleteSubcontractor(id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid subcontractor ID")
	}

	var sub models.Subcontractor
	err = DB.SubcontractorCollection.FindOne(context.TODO(), bson.M{"_id": oid}).Decode(&sub)
	if err == mongo.ErrNoDocuments {
		return mongo.ErrNoDocuments
	}
	if err != nil {
		return err
	}

	if _, err := DB.SubcontractorCollection.DeleteOne(context.TODO(), bson.M{"_id": oid}); err != nil {
		return err
	}
	if userOID, err := primitive.ObjectIDFromHex(sub.UserID); err == nil {
		_, _ = DB.UserCollection.DeleteOne(context.TODO(), bson.M{"_id": userOID})
	}
	return nil
}
