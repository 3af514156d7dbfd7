package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles
const (
	RoleAdmin         = "admin"
	RoleCP            = "cp" // competent person / site supervisor
	RoleSubcontractor = "subcontractor"
	RoleWorker        = "worker"
)

// User backend account (admin, cp, subcontractor, worker)
type User struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email            string             `json:"email" bson:"email"`
	Password         string             `json:"-" bson:"password,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Role             string             `json:"role" bson:"role"`
	Phone            string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Company          string             `json:"company,omitempty" bson:"company,omitempty"`
	PhotoURL         *string            `json:"photoUrl,omitempty" bson:"photo_url,omitempty"`
	AuthProvider     string             `json:"authProvider,omitempty" bson:"auth_provider,omitempty"`
	AssignedProjects []string           `json:"assignedProjects" bson:"assigned_projects"`
	WorkerPassportID *string            `json:"workerPassportId" bson:"worker_passport_id"`
	DropboxConnected bool               `json:"dropboxConnected,omitempty" bson:"dropbox_connected,omitempty"`
	CreatedAt        time.Time          `json:"createdAt" bson:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleAuthRequest struct {
	IDToken  string  `json:"id_token" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Name     string  `json:"name" validate:"required"`
	PhotoURL *string `json:"photo_url"`
}

// CPCreateRequest admin creates a competent-person account
type CPCreateRequest struct {
	Email            string   `json:"email" validate:"required,email"`
	Password         string   `json:"password" validate:"required,min=8"`
	Name             string   `json:"name" validate:"required"`
	Role             string   `json:"role" validate:"omitempty,oneof=cp subcontractor"`
	Phone            string   `json:"phone"`
	Company          string   `json:"company"`
	AssignedProjects []string `json:"assigned_projects"`
}
