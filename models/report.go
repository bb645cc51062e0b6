package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Partition names one of the four disjoint storage areas a report can live in
type Partition string

// Report partitions, one mongo collection each
const (
	PartitionActive    Partition = "active"
	PartitionOngoing   Partition = "ongoing"
	PartitionCompleted Partition = "completed"
	PartitionCancelled Partition = "cancelled"
)

// Partitions lists every partition in lifecycle order
var Partitions = []Partition{PartitionActive, PartitionOngoing, PartitionCompleted, PartitionCancelled}

// Report statuses
const (
	StatusPending   = "Pending"
	StatusOngoing   = "Ongoing"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Status returns the canonical status of reports held in the partition
func (p Partition) Status() string {
	switch p {
	case PartitionOngoing:
		return StatusOngoing
	case PartitionCompleted:
		return StatusCompleted
	case PartitionCancelled:
		return StatusCancelled
	default:
		return StatusPending
	}
}

// Terminal reports whether reports in the partition can no longer transition
func (p Partition) Terminal() bool {
	return p == PartitionCompleted || p == PartitionCancelled
}

// Responder types a report can be routed to
const (
	ResponderBarangay = "Barangay"
	ResponderNGO      = "NGO"
	ResponderPCG      = "PCG"
	ResponderBFAR     = "BFAR"
)

// ResponderTypes lists the responder organizations
var ResponderTypes = []string{ResponderBarangay, ResponderNGO, ResponderPCG, ResponderBFAR}

// ValidResponderType returns true if t is one of ResponderTypes
func ValidResponderType(t string) bool {
	for _, rt := range ResponderTypes {
		if rt == t {
			return true
		}
	}
	return false
}

// Report holds the structure shared by all report collections in mongo.
// Outside the active partition exactly one of DateOngoing, DateCompleted and
// DateCancelled is set.
type Report struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id"`
	Type            string             `json:"type" bson:"type"`
	Description     string             `json:"description" bson:"description"`
	Address         string             `json:"address" bson:"address"`
	Comment         string             `json:"comment,omitempty" bson:"comment,omitempty"`
	PredictedLaw    string             `json:"predictedLaw,omitempty" bson:"predictedLaw,omitempty"`
	ReportedBy      string             `json:"reportedBy" bson:"reportedBy"`
	ResponderType   string             `json:"responderType" bson:"responderType"`
	Status          string             `json:"status" bson:"status"`
	DateReported    time.Time          `json:"dateReported" bson:"dateReported"`
	DateOngoing     *time.Time         `json:"dateOngoing,omitempty" bson:"dateOngoing,omitempty"`
	DateCompleted   *time.Time         `json:"dateCompleted,omitempty" bson:"dateCompleted,omitempty"`
	DateCancelled   *time.Time         `json:"dateCancelled,omitempty" bson:"dateCancelled,omitempty"`
	StatusUpdatedAt *time.Time         `json:"statusUpdatedAt,omitempty" bson:"statusUpdatedAt,omitempty"`
}

// ReportRequest is the body accepted when a citizen submits a report
type ReportRequest struct {
	Type          string `json:"type"`
	Description   string `json:"description"`
	Address       string `json:"address"`
	Comment       string `json:"comment"`
	PredictedLaw  string `json:"predictedLaw"`
	ReportedBy    string `json:"reportedBy"`
	ResponderType string `json:"responderType"`
}

// StatusRequest is the body of a status transition request
type StatusRequest struct {
	Status string `json:"status"`
}

// ReportFilter narrows a partition listing. Empty fields match everything.
type ReportFilter struct {
	ResponderType string
}
