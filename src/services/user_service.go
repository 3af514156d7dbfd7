package services

import (
	"context"
	"fmt"
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

// AdminExists reports whether any admin account has been created yet.
func AdminExists() (bool, error) {
	count, err := DB.UserCollection.CountDocuments(context.TODO(), bson.M{"role": models.RoleAdmin})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InitAdmin creates the first admin account. Refuses once one exists.
func InitAdmin(email, password, name string) (*models.User, error) {
	ctx := context.TODO()
	exists, err := AdminExists()
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("admin already initialized")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Email:            strings.ToLower(email),
		Password:         hashed,
		Name:             name,
		Role:             models.RoleAdmin,
		AssignedProjects: []string{},
		CreatedAt:        time.Now().UTC(),
	}
	res, err := DB.UserCollection.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return &user, nil
}

// CreateCPUser registers a CP (competent person) or subcontractor account.
func CreateCPUser(req *models.CPCreateRequest) (*models.User, error) {
	ctx := context.TODO()
	email := strings.ToLower(req.Email)

	count, err := DB.UserCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("email already registered")
	}

	role := req.Role
	if role == "" {
		role = models.RoleCP
	}
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Email:            email,
		Password:         hashed,
		Name:             req.Name,
		Role:             role,
		Phone:            req.Phone,
		Company:          req.Company,
		AssignedProjects: req.AssignedProjects,
		CreatedAt:        time.Now().UTC(),
	}
	if user.AssignedProjects == nil {
		user.AssignedProjects = []string{}
	}
	res, err := DB.UserCollection.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return &user, nil
}

// ListUsers returns all accounts, optionally filtered by role.
func ListUsers(role string) ([]models.User, error) {
	ctx := context.TODO()
	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := DB.UserCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// UpdateUser applies a partial update to an account.
func UpdateUser(userID string, updates bson.M) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID")
	}
	allowed := bson.M{}
	for _, k := range []string{"name", "phone", "company", "assigned_projects", "role"} {
		if v, ok := updates[k]; ok {
			allowed[k] = v
		}
	}
	if pw, ok := updates["password"].(string); ok && pw != "" {
		hashed, err := utils.HashPassword(pw)
		if err != nil {
			return err
		}
		allowed["password"] = hashed
	}
	if len(allowed) == 0 {
		return fmt.Errorf("no valid fields to update")
	}
	res, err := DB.UserCollection.UpdateOne(context.TODO(), bson.M{"_id": oid}, bson.M{"$set": allowed})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteUser removes an account.
func DeleteUser(userID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID")
	}
	res, err := DB.UserCollection.DeleteOne(context.TODO(), bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
