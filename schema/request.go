package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RequestCollection  = "requests"
	ResponseCollection = "responses"
)

type RequestStatus string

const (
	RequestStatusActive    RequestStatus = "active"
	RequestStatusAnswered  RequestStatus = "answered"
	RequestStatusCompleted RequestStatus = "completed"
)

type GeoJSON struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// Request is a location-anchored question posted by a user. Its location is
// fixed at creation time and never updated afterwards.
type Request struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Owner       string             `bson:"owner" json:"owner"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Location    *GeoJSON           `bson:"location" json:"location"`
	Status      RequestStatus      `bson:"status" json:"status"`
	Country     string             `bson:"country,omitempty" json:"country,omitempty"`
	State       string             `bson:"state,omitempty" json:"state,omitempty"`
	County      string             `bson:"county,omitempty" json:"county,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// Coordinate returns the request location as a latitude/longitude pair.
// The second value is false when the stored GeoJSON point is malformed.
func (r Request) Coordinate() (Location, bool) {
	if r.Location == nil || len(r.Location.Coordinates) != 2 {
		return Location{}, false
	}
	return Location{
		Longitude: r.Location.Coordinates[0],
		Latitude:  r.Location.Coordinates[1],
	}, true
}

// Response is the single answer submitted against a request. The responses
// collection carries a unique index on request_id so that a request can never
// accumulate more than one response.
type Response struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RequestID   primitive.ObjectID `bson:"request_id" json:"request_id"`
	Responder   string             `bson:"responder" json:"responder"`
	Comment     string             `bson:"comment" json:"comment"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	CompletedAt *time.Time         `bson:"completed_at" json:"completed_at"`
}
