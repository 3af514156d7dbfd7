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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Owner endpoints manage paying companies (admin accounts). They sit above
// the normal role system and are guarded by the owner master key instead.

// ListAdmins returns every admin account.
func ListAdmins() ([]models.User, error) {
	cursor, err := DB.UserCollection.Find(context.TODO(),
		bson.M{"role": models.RoleAdmin},
		options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())

	admins := []models.User{}
	if err := cursor.All(context.TODO(), &admins); err != nil {
		return nil, err
	}
	for i := range admins {
		admins[i].Password = ""
	}
	return admins, nil
}

// OwnerCreateAdmin provisions a new company admin account.
func OwnerCreateAdmin(email, password, companyName, contactName string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" || companyName == "" {
		return nil, errors.New("Email, password, and company name required")
	}

	count, err := DB.UserCollection.CountDocuments(context.TODO(), bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("Email already registered")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	if contactName == "" {
		contactName = "Admin"
	}

	admin := models.User{
		ID:               primitive.NewObjectID(),
		Email:            email,
		Password:         hashed,
		Name:             contactName,
		Company:          companyName,
		Role:             models.RoleAdmin,
		AssignedProjects: []string{},
		CreatedAt:        time.Now().UTC(),
	}
	if _, err := DB.UserCollection.InsertOne(context.TODO(), admin); err != nil {
		return nil, err
	}

	admin.Password = ""
	return &admin, nil
}

// OwnerUpdateAdmin applies the owner-editable fields to an admin account.
func OwnerUpdateAdmin(adminID string, companyName, password *string) error {
	oid, err := primitive.ObjectIDFromHex(adminID)
	if err != nil {
		return errors.New("Admin not found")
	}

	updates := bson.M{}
	if companyName != nil {
		updates["company"] = *companyName
	}
	if password != nil {
		hashed, err := utils.HashPassword(*password)
		if err != nil {
			return err
		}
		updates["password"] = hashed
	}
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now().UTC()

	res, err := DB.UserCollection.UpdateOne(context.TODO(),
		bson.M{"_id": oid, "role": models.RoleAdmin},
		bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("Admin not found")
	}
	return nil
}

// OwnerDeleteAdmin removes an admin account.
func OwnerDeleteAdmin(adminID string) error {
	oid, err := primitive.ObjectIDFromHex(adminID)
	if err != nil {
		return errors.New("Admin not found")
	}
	res, err := DB.UserCollection.DeleteOne(context.TODO(),
		bson.M{"_id": oid, "role": models.RoleAdmin})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("Admin not found")
	}
	return nil
}
