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

// CreateProject registers a new job site.
func CreateProject(req *models.ProjectCreateRequest, createdBy string) (*models.Project, error) {
	radius := req.GeofenceRadius
	if radius == 0 {
		radius = 100
	}
	emails := req.EmailDistribution
	if emails == nil {
		emails = []string{}
	}

	now := time.Now().UTC()
	project := models.Project{
		Name:              req.Name,
		Location:          req.Location,
		Address:           req.Address,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		EmailDistribution: emails,
		GeofenceRadius:    radius,
		CreatedBy:         createdBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if req.Latitude != nil && req.Longitude != nil {
		project.Geofence = &models.Geofence{
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
			Radius:    radius,
			Active:    true,
		}
	}

	res, err := DB.ProjectCollection.InsertOne(context.TODO(), project)
	if err != nil {
		return nil, err
	}
	project.ID = res.InsertedID.(primitive.ObjectID)
	return &project, nil
}

// GetAllProjects returns every job site, newest first.
func GetAllProjects() ([]models.Project, error) {
	ctx := context.TODO()
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := DB.ProjectCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProjectsByIDs returns only the named job sites. Used to scope the
// project list for cp accounts to their assignments.
func GetProjectsByIDs(ids []string) ([]models.Project, error) {
	if len(ids) == 0 {
		return []models.Project{}, nil
	}
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}

	ctx := context.TODO()
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := DB.ProjectCollection.Find(ctx, bson.M{"_id": bson.M{"$in": oids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProjectByID fetches one job site.
func GetProjectByID(id string) (*models.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid project ID")
	}
	var project models.Project
	err = DB.ProjectCollection.FindOne(context.TODO(), bson.M{"_id": oid}).Decode(&project)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject applies a partial update; geofence is recomputed when the
// coordinates or radius change.
func UpdateProject(id string, req *models.ProjectUpdateRequest) (*models.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid project ID")
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Location != nil {
		set["location"] = *req.Location
	}
	if req.Address != nil {
		set["address"] = *req.Address
	}
	if req.Latitude != nil {
		set["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		set["longitude"] = *req.Longitude
	}
	if req.EmailDistribution != nil {
		set["email_distribution"] = *req.EmailDistribution
	}
	if req.GeofenceRadius != nil {
		set["geofence_radius"] = *req.GeofenceRadius
	}
	if req.DropboxFolder != nil {
		set["dropbox_folder"] = *req.DropboxFolder
	}

	var updated models.Project
	err = DB.ProjectCollection.FindOneAndUpdate(context.TODO(),
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, err
	}

	if req.Latitude != nil || req.Longitude != nil || req.GeofenceRadius != nil {
		if updated.Latitude != nil && updated.Longitude != nil {
			geofence := models.Geofence{
				Latitude:  *updated.Latitude,
				Longitude: *updated.Longitude,
				Radius:    updated.GeofenceRadius,
				Active:    true,
			}
			_, err = DB.ProjectCollection.UpdateOne(context.TODO(),
				bson.M{"_id": oid}, bson.M{"$set": bson.M{"geofence": geofence}})
			if err != nil {
				return nil, err
			}
			updated.Geofence = &geofence
		}
	}
	return &updated, nil
}

// DeleteProject removes a job site.
func DeleteProject(id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid project ID")
	}
	res, err := DB.ProjectCollection.DeleteOne(context.TODO(), bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
