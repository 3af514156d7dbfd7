package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NFCTag a physical tag mounted at a job-site entrance, bound to one project.
type NFCTag struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	TagID        string             `json:"tagId" bson:"tag_id"`
	ProjectID    string             `json:"projectId" bson:"project_id"`
	Location     string             `json:"location,omitempty" bson:"location,omitempty"`
	IsActive     bool               `json:"isActive" bson:"is_active"`
	RegisteredAt time.Time          `json:"registeredAt" bson:"registered_at"`
}

type NFCTagRegisterRequest struct {
	TagID     string `json:"tag_id" validate:"required"`
	ProjectID string `json:"project_id" validate:"required"`
	Location  string `json:"location"`
}
