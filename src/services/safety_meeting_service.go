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

// CreateSafetyMeeting records a supervisor-led meeting. If the NFC flow
// already auto-created today's sheet, the supervisor's topic and conductor
// are merged onto it instead of opening a second sheet.
func CreateSafetyMeeting(req *models.SafetyMeetingCreateRequest, conductedBy string) (*models.SafetyMeeting, error) {
	ctx := context.TODO()
	now := time.Now().UTC()

	meetingTime := req.MeetingTime
	if meetingTime == "" {
		meetingTime = now.Format("15:04")
	}
	if conductedBy == "" {
		conductedBy = req.ConductedBy
	}

	var meeting models.SafetyMeeting
	err := DB.SafetyMeetingCollection.FindOneAndUpdate(ctx,
		bson.M{"project_id": req.ProjectID, "meeting_date": req.MeetingDate},
		bson.M{
			"$set": bson.M{
				"meeting_time": meetingTime,
				"topic":        req.Topic,
				"notes":        req.Notes,
				"conducted_by": conductedBy,
				"auto_created": false,
			},
			"$setOnInsert": bson.M{
				"project_id":   req.ProjectID,
				"meeting_date": req.MeetingDate,
				"attendees":    []models.SafetyMeetingAttendee{},
				"created_at":   now,
			},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&meeting)
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// GetSafetyMeetings lists meetings for a project, newest first. Date filters
// to a single day when given.
func GetSafetyMeetings(projectID, date string) ([]models.SafetyMeeting, error) {
	ctx := context.TODO()
	filter := bson.M{}
	if projectID != "" {
		filter["project_id"] = projectID
	}
	if date != "" {
		filter["meeting_date"] = date
	}
	cursor, err := DB.SafetyMeetingCollection.Find(ctx, filter,
		options.Find().SetSort(bson.M{"meeting_date": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	meetings := []models.SafetyMeeting{}
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}

// GetSafetyMeetingByID fetches one meeting sheet.
func GetSafetyMeetingByID(id string) (*models.SafetyMeeting, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid meeting ID")
	}
	var meeting models.SafetyMeeting
	err = DB.SafetyMeetingCollection.FindOne(context.TODO(), bson.M{"_id": oid}).Decode(&meeting)
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// SignSafetyMeeting appends a manual signature to a meeting sheet. Same
// OSHA-number dedup guard as the automatic flow.
func SignSafetyMeeting(meetingID string, attendee models.SafetyMeetingAttendee) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(meetingID)
	if err != nil {
		return false, errors.New("invalid meeting ID")
	}
	if attendee.SignedAt == "" {
		attendee.SignedAt = time.Now().UTC().Format(time.RFC3339)
	}

	res, err := DB.SafetyMeetingCollection.UpdateOne(context.TODO(),
		bson.M{"_id": oid, "attendees.osha_number": bson.M{"$ne": attendee.OshaNumber}},
		bson.M{"$push": bson.M{"attendees": attendee}},
	)
	if err != nil {
		return false, err
	}
	if res.MatchedCount == 0 {
		// Distinguish unknown meeting from duplicate signature.
		count, err := DB.SafetyMeetingCollection.CountDocuments(context.TODO(), bson.M{"_id": oid})
		if err != nil {
			return false, err
		}
		if count == 0 {
			return false, mongo.ErrNoDocuments
		}
		return false, nil // already signed
	}
	return true, nil
}

// GetSiteOrientations lists orientation records for a project.
func GetSiteOrientations(projectID string) ([]models.SiteOrientation, error) {
	ctx := context.TODO()
	filter := bson.M{}
	if projectID != "" {
		filter["project_id"] = projectID
	}
	cursor, err := DB.SiteOrientationCollection.Find(ctx, filter,
		options.Find().SetSort(bson.M{"signed_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orientations := []models.SiteOrientation{}
	if err := cursor.All(ctx, &orientations); err != nil {
		return nil, err
	}
	return orientations, nil
}
