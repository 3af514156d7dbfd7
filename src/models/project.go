package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project a job site
type Project struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name              string             `json:"name" bson:"name" example:"125 Court St"`
	Location          string             `json:"location" bson:"location"`
	Address           *string            `json:"address" bson:"address"`
	Latitude          *float64           `json:"latitude" bson:"latitude"`
	Longitude         *float64           `json:"longitude" bson:"longitude"`
	EmailDistribution []string           `json:"emailDistribution" bson:"email_distribution"`
	GeofenceRadius    int                `json:"geofenceRadius" bson:"geofence_radius"` // meters
	Geofence          *Geofence          `json:"geofence,omitempty" bson:"geofence,omitempty"`
	DropboxFolder     *string            `json:"dropboxFolder,omitempty" bson:"dropbox_folder,omitempty"`
	CreatedBy         string             `json:"createdBy,omitempty" bson:"created_by,omitempty"`
	CreatedAt         time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updated_at"`
}

// Geofence configuration for SMS check-in triggering
type Geofence struct {
	Latitude  float64 `json:"latitude" bson:"latitude" validate:"required"`
	Longitude float64 `json:"longitude" bson:"longitude" validate:"required"`
	Radius    int     `json:"radius" bson:"radius"`
	Active    bool    `json:"active" bson:"active"`
}

type ProjectCreateRequest struct {
	Name              string   `json:"name" validate:"required"`
	Location          string   `json:"location" validate:"required"`
	Address           *string  `json:"address"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	EmailDistribution []string `json:"email_distribution"`
	GeofenceRadius    int      `json:"geofence_radius"`
}

type ProjectUpdateRequest struct {
	Name              *string   `json:"name"`
	Location          *string   `json:"location"`
	Address           *string   `json:"address"`
	Latitude          *float64  `json:"latitude"`
	Longitude         *float64  `json:"longitude"`
	EmailDistribution *[]string `json:"email_distribution"`
	GeofenceRadius    *int      `json:"geofence_radius"`
	DropboxFolder     *string   `json:"dropbox_folder"`
}
