package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Worker legacy per-employer worker record (pre-passport). Still used by the
// staff-driven check-in screens and the SMS fast-login whitelist.
type Worker struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Trade          string             `json:"trade" bson:"trade"`
	Company        string             `json:"company" bson:"company"`
	Phone          *string            `json:"phone,omitempty" bson:"phone,omitempty"`
	OshaNumber     *string            `json:"oshaNumber" bson:"osha_number"`
	Osha30Number   *string            `json:"osha30Number,omitempty" bson:"osha_30_number,omitempty"`
	Osha30Expiry   *string            `json:"osha30Expiry,omitempty" bson:"osha_30_expiry,omitempty"`
	SSTNumber      *string            `json:"sstNumber,omitempty" bson:"sst_number,omitempty"`
	SSTExpiry      *string            `json:"sstExpiry,omitempty" bson:"sst_expiry,omitempty"`
	Signature      *string            `json:"signature,omitempty" bson:"signature,omitempty"` // base64
	IDPhoto        *string            `json:"idPhoto,omitempty" bson:"id_photo,omitempty"`    // base64 selfie
	OshaCardPhoto  *string            `json:"oshaCardPhoto,omitempty" bson:"osha_card_photo,omitempty"`
	SubcontractorID string            `json:"subcontractorId,omitempty" bson:"subcontractor_id,omitempty"`
	IsWhitelisted  bool               `json:"isWhitelisted,omitempty" bson:"is_whitelisted,omitempty"`
	CreatedBy      string             `json:"createdBy,omitempty" bson:"created_by,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updated_at"`
}

type WorkerCreateRequest struct {
	Name          string  `json:"name" validate:"required"`
	Trade         string  `json:"trade" validate:"required"`
	Company       string  `json:"company" validate:"required"`
	OshaNumber    *string `json:"osha_number"`
	Signature     *string `json:"signature"`
	IDPhoto       *string `json:"id_photo"`
	OshaCardPhoto *string `json:"osha_card_photo"`
}

type WorkerUpdateRequest struct {
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	Trade         *string `json:"trade"`
	Company       *string `json:"company"`
	OshaNumber    *string `json:"osha_number"`
	Signature     *string `json:"signature"`
	IDPhoto       *string `json:"id_photo"`
	OshaCardPhoto *string `json:"osha_card_photo"`
}

// WorkerPhoneCreateRequest subcontractor whitelists a phone for SMS check-in
type WorkerPhoneCreateRequest struct {
	Name         string  `json:"name" validate:"required"`
	Phone        string  `json:"phone" validate:"required"`
	Trade        string  `json:"trade" validate:"required"`
	Osha30Number *string `json:"osha_30_number"`
	Osha30Expiry *string `json:"osha_30_expiry"`
	SSTNumber    *string `json:"sst_number"`
	SSTExpiry    *string `json:"sst_expiry"`
	IDPhoto      *string `json:"id_photo"`
}
