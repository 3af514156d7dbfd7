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
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// AuthenticateUser verifies email/password credentials.
func AuthenticateUser(email, password string) (*models.User, error) {
	var user models.User
	err := DB.UserCollection.FindOne(context.TODO(), bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if !utils.VerifyPassword(password, user.Password) {
		return nil, fmt.Errorf("invalid credentials")
	}
	return &user, nil
}

// GetUserByID loads the account behind a JWT.
func GetUserByID(userID string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}
	var user models.User
	if err := DB.UserCollection.FindOne(context.TODO(), bson.M{"_id": oid}).Decode(&user); err != nil {
		return nil, fmt.Errorf("user not found")
	}
	return &user, nil
}

// GoogleLogin finds or creates the account for a Google sign-in. New accounts
// get the worker role and a random password they will never use.
func GoogleLogin(req *models.GoogleAuthRequest) (*models.User, bool, error) {
	ctx := context.TODO()
	email := strings.ToLower(req.Email)

	var user models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == nil {
		return &user, false, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, false, err
	}

	hashed, err := utils.HashPassword(utils.GenerateRandomString(32))
	if err != nil {
		return nil, false, err
	}
	user = models.User{
		Email:            email,
		Password:         hashed,
		Name:             req.Name,
		Role:             models.RoleWorker,
		PhotoURL:         req.PhotoURL,
		AuthProvider:     "google",
		AssignedProjects: []string{},
		CreatedAt:        time.Now().UTC(),
	}
	res, err := DB.UserCollection.InsertOne(ctx, user)
	if err != nil {
		return nil, false, err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return &user, true, nil
}

// GetGoogleOAuthConfig builds the OAuth2 config for browser-driven flows.
func GetGoogleOAuthConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}
