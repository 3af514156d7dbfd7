package passports

import (
	"context"
	"time"

	DB "Backend-Blueview/src/database"
	"Backend-Blueview/src/models"
	"Backend-Blueview/src/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreatePassport registers a passport once per OSHA number. First write wins:
// a duplicate registration returns the existing record instead of erroring.
func CreatePassport(req *models.PassportCreateRequest) (*models.WorkerPassport, bool, error) {
	ctx := context.TODO()

	var existing models.WorkerPassport
	err := DB.WorkerPassportCollection.FindOne(ctx, bson.M{"osha_number": req.OshaNumber}).Decode(&existing)
	if err == nil {
		return &existing, false, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, false, err
	}

	cardType := req.OshaCardType
	if cardType == "" {
		cardType = "10"
	}
	trade := req.Trade
	if trade == "" {
		trade = "General Labor"
	}

	now := time.Now().UTC()
	passport := models.WorkerPassport{
		Name:             req.Name,
		OshaNumber:       req.OshaNumber,
		OshaCardType:     cardType,
		OshaExpiryDate:   req.OshaExpiryDate,
		Trade:            trade,
		Company:          req.Company,
		Phone:            req.Phone,
		EmergencyContact: req.EmergencyContact,
		OshaCardImage:    req.OshaCardImage,
		CreatedAt:        now,
		UpdatedAt:        now,
		IsActive:         true,
		SitesVisited:     []string{},
		TotalCheckins:    0,
	}

	res, err := DB.WorkerPassportCollection.InsertOne(ctx, passport)
	if err != nil {
		return nil, false, err
	}
	passport.ID = res.InsertedID.(primitive.ObjectID)
	return &passport, true, nil
}

// GetPassport fetches a passport by its id.
func GetPassport(passportID string) (*models.WorkerPassport, error) {
	oid, err := primitive.ObjectIDFromHex(passportID)
	if err != nil {
		return nil, repositories.ErrNotFound
	}
	var passport models.WorkerPassport
	err = DB.WorkerPassportCollection.FindOne(context.TODO(), bson.M{"_id": oid}).Decode(&passport)
	if err == mongo.ErrNoDocuments {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &passport, nil
}

// GetPassportByOsha fetches a passport by OSHA card number.
func GetPassportByOsha(oshaNumber string) (*models.WorkerPassport, error) {
	var passport models.WorkerPassport
	err := DB.WorkerPassportCollection.FindOne(context.TODO(), bson.M{"osha_number": oshaNumber}).Decode(&passport)
	if err == mongo.ErrNoDocuments {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &passport, nil
}
