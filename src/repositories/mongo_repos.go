package repositories

import (
	"context"
	"time"

	DB "Backend-Blueview/src/database"
	"Backend-Blueview/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// objectID parses a wire identifier; failure maps to ErrNotFound at this
// boundary rather than a distinct validation error.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

// ---- NFC tags ----

type MongoNFCTagRepo struct{}

func (MongoNFCTagRepo) FindActive(ctx context.Context, tagID models.TagID) (*models.NFCTag, error) {
	var tag models.NFCTag
	err := DB.NFCTagCollection.FindOne(ctx, bson.M{"tag_id": string(tagID), "is_active": true}).Decode(&tag)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// ---- Worker passports ----

type MongoPassportRepo struct{}

func (MongoPassportRepo) FindByID(ctx context.Context, id models.PassportID) (*models.WorkerPassport, error) {
	oid, err := objectID(string(id))
	if err != nil {
		return nil, err
	}
	var passport models.WorkerPassport
	err = DB.WorkerPassportCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&passport)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &passport, nil
}

func (MongoPassportRepo) MarkSiteVisited(ctx context.Context, id models.PassportID, projectID models.ProjectID) error {
	oid, err := objectID(string(id))
	if err != nil {
		return err
	}
	_, err = DB.WorkerPassportCollection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$addToSet": bson.M{"sites_visited": string(projectID)}},
	)
	return err
}

func (MongoPassportRepo) RecordCheckin(ctx context.Context, id models.PassportID, projectID models.ProjectID, at time.Time) error {
	oid, err := objectID(string(id))
	if err != nil {
		return err
	}
	_, err = DB.WorkerPassportCollection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{
			"$inc": bson.M{"total_checkins": 1},
			"$set": bson.M{"last_checkin": at, "last_project_id": string(projectID), "updated_at": at},
		},
	)
	return err
}

// ---- Check-ins ----

type MongoCheckinRepo struct{}

func (MongoCheckinRepo) FindOpenForDay(ctx context.Context, passportID models.PassportID, projectID models.ProjectID, date string) (*models.CheckinRecord, error) {
	var rec models.CheckinRecord
	err := DB.CheckinCollection.FindOne(ctx, bson.M{
		"passport_id":    string(passportID),
		"project_id":     string(projectID),
		"date":           date,
		"check_out_time": nil,
	}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (MongoCheckinRepo) Insert(ctx context.Context, rec *models.CheckinRecord) (models.CheckinID, error) {
	res, err := DB.CheckinCollection.InsertOne(ctx, rec)
	if err != nil {
		return "", err
	}
	return models.CheckinID(res.InsertedID.(primitive.ObjectID).Hex()), nil
}

// ---- Safety meetings ----

type MongoSafetyMeetingRepo struct{}

func (MongoSafetyMeetingRepo) SignAttendee(ctx context.Context, projectID models.ProjectID, date, meetingTime string, attendee models.SafetyMeetingAttendee) (bool, bool, error) {
	filter := bson.M{"project_id": string(projectID), "meeting_date": date}

	// Find-or-create first: $setOnInsert materializes an empty auto-created
	// meeting exactly once even when two workers tap simultaneously.
	_, err := DB.SafetyMeetingCollection.UpdateOne(ctx, filter,
		bson.M{"$setOnInsert": bson.M{
			"project_id":   string(projectID),
			"meeting_date": date,
			"meeting_time": meetingTime,
			"auto_created": true,
			"attendees":    []models.SafetyMeetingAttendee{},
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, false, err
	}

	// Guarded append: matches only while this OSHA number is absent.
	push, err := DB.SafetyMeetingCollection.UpdateOne(ctx,
		bson.M{
			"project_id":            string(projectID),
			"meeting_date":          date,
			"attendees.osha_number": bson.M{"$ne": attendee.OshaNumber},
		},
		bson.M{"$push": bson.M{"attendees": attendee}},
	)
	if err != nil {
		return false, false, err
	}
	if push.ModifiedCount > 0 {
		return true, false, nil
	}
	return false, true, nil
}

// ---- Site orientations ----

type MongoOrientationRepo struct{}

func (MongoOrientationRepo) Insert(ctx context.Context, rec *models.SiteOrientation) error {
	_, err := DB.SiteOrientationCollection.InsertOne(ctx, rec)
	return err
}

// ---- Projects ----

type MongoProjectRepo struct{}

func (MongoProjectRepo) FindName(ctx context.Context, id models.ProjectID) (string, error) {
	oid, err := objectID(string(id))
	if err != nil {
		return "", err
	}
	var project struct {
		Name string `bson:"name"`
	}
	err = DB.ProjectCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&project)
	if err == mongo.ErrNoDocuments {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return project.Name, nil
}
