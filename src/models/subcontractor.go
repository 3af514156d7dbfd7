package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subcontractor company profile backing a subcontractor-role user
type Subcontractor struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID           string             `json:"userId" bson:"user_id"`
	CompanyName      string             `json:"companyName" bson:"company_name"`
	ContactName      string             `json:"contactName" bson:"contact_name"`
	Phone            string             `json:"phone" bson:"phone"`
	Trade            string             `json:"trade" bson:"trade"`
	AssignedProjects []string           `json:"assignedProjects" bson:"assigned_projects"`
	CreatedAt        time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updated_at"`
}

type SubcontractorCreateRequest struct {
	Email            string   `json:"email" validate:"required,email"`
	Password         string   `json:"password" validate:"required,min=8"`
	CompanyName      string   `json:"company_name" validate:"required"`
	ContactName      string   `json:"contact_name" validate:"required"`
	Phone            string   `json:"phone" validate:"required"`
	Trade            string   `json:"trade" validate:"required"`
	AssignedProjects []string `json:"assigned_projects"`
}

type SubcontractorUpdateRequest struct {
	CompanyName      *string   `json:"company_name"`
	ContactName      *string   `json:"contact_name"`
	Phone            *string   `json:"phone"`
	Trade            *string   `json:"trade"`
	AssignedProjects *[]string `json:"assigned_projects"`
}
