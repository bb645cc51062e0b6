package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification informs the original reporter of a status change
type Notification struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	UserName  string             `json:"userName" bson:"userName"`
	ReportID  primitive.ObjectID `json:"reportId" bson:"reportId"`
	Message   string             `json:"message" bson:"message"`
	Type      string             `json:"type" bson:"type"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	Read      bool               `json:"read" bson:"read"`
}
