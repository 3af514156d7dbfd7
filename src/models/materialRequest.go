package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Material request statuses
const (
	MaterialStatusPending   = "pending"
	MaterialStatusApproved  = "approved"
	MaterialStatusOrdered   = "ordered"
	MaterialStatusDelivered = "delivered"
	MaterialStatusRejected  = "rejected"
)

type MaterialItem struct {
	Name     string  `json:"name" bson:"name"`
	Quantity float64 `json:"quantity" bson:"quantity"`
	Unit     string  `json:"unit" bson:"unit"`
	Notes    *string `json:"notes" bson:"notes"`
}

// MaterialRequest submitted by a subcontractor, triaged by admin
type MaterialRequest struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProjectID       string             `json:"projectId" bson:"project_id"`
	SubcontractorID string             `json:"subcontractorId" bson:"subcontractor_id"`
	CompanyName     string             `json:"companyName" bson:"company_name"`
	Items           []MaterialItem     `json:"items" bson:"items"`
	Priority        string             `json:"priority" bson:"priority"` // low, normal, high, urgent
	NeededBy        *string            `json:"neededBy" bson:"needed_by"`
	Notes           *string            `json:"notes" bson:"notes"`
	Status          string             `json:"status" bson:"status"`
	AdminNotes      *string            `json:"adminNotes" bson:"admin_notes"`
	CreatedAt       time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updated_at"`
}

type MaterialRequestCreateRequest struct {
	ProjectID string         `json:"project_id" validate:"required"`
	Items     []MaterialItem `json:"items" validate:"required,min=1"`
	Priority  string         `json:"priority"`
	NeededBy  *string        `json:"needed_by"`
	Notes     *string        `json:"notes"`
}

type MaterialRequestUpdateRequest struct {
	Status     *string         `json:"status"`
	AdminNotes *string         `json:"admin_notes"`
	Items      *[]MaterialItem `json:"items"`
}
