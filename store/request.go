package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tasukeru/tasukeru-api/schema"
)

var (
	ErrRequestNotFound   = fmt.Errorf("request not found")
	ErrInvalidTransition = fmt.Errorf("request state does not allow this operation")
	ErrNotAllowed        = fmt.Errorf("only the request owner may do this")
)

// RequestOperator - operations over the requests collection
type RequestOperator interface {
	CreateRequest(owner, title, description string, loc schema.Location) (*schema.Request, error)
	GetRequest(requestID primitive.ObjectID) (*schema.Request, error)
	GetActiveRequests() ([]schema.Request, error)
	ListRequestsByOwner(owner string) ([]schema.Request, error)
	DeleteRequest(requestID primitive.ObjectID, requester string) error
}

// CreateRequest inserts a new request in the active state. The anchor point
// is stored as a GeoJSON point and is never updated afterwards.
func (m *mongoDB) CreateRequest(owner, title, description string, loc schema.Location) (*schema.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	now := time.Now().UTC()
	request := schema.Request{
		Owner:       owner,
		Title:       title,
		Description: description,
		Location: &schema.GeoJSON{
			Type:        "Point",
			Coordinates: []float64{loc.Longitude, loc.Latitude},
		},
		Status:    schema.RequestStatusActive,
		Country:   loc.Country,
		State:     loc.State,
		County:    loc.County,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := c.InsertOne(ctx, request)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"owner":  owner,
			"error":  err,
		}).Error("create request")
		return nil, err
	}

	request.ID = result.InsertedID.(primitive.ObjectID)
	return &request, nil
}

// GetRequest finds a request by its ID
func (m *mongoDB) GetRequest(requestID primitive.ObjectID) (*schema.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	var request schema.Request
	if err := c.FindOne(ctx, bson.M{"_id": requestID}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

// GetActiveRequests returns all open requests in creation order. This is the
// pool the proximity query filters; the scan over it happens in the geo
// package, not in the database.
func (m *mongoDB) GetActiveRequests() ([]schema.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	opts := options.Find().SetSort(bson.M{"created_at": 1})
	cur, err := c.Find(ctx, bson.M{"status": schema.RequestStatusActive}, opts)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("list active requests")
		return nil, err
	}

	requests := make([]schema.Request, 0)
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// ListRequestsByOwner returns all requests of an account, newest first,
// regardless of their state.
func (m *mongoDB) ListRequestsByOwner(owner string) ([]schema.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := c.Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, err
	}

	requests := make([]schema.Request, 0)
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// DeleteRequest removes a request and, to keep the status/response pairing
// consistent, cascades to its response. Only the owner may delete and the
// current state does not matter.
func (m *mongoDB) DeleteRequest(requestID primitive.ObjectID, requester string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	requests := m.client.Database(m.database).Collection(schema.RequestCollection)
	responses := m.client.Database(m.database).Collection(schema.ResponseCollection)

	var request schema.Request
	if err := requests.FindOne(ctx, bson.M{"_id": requestID}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrRequestNotFound
		}
		return err
	}

	if request.Owner != requester {
		return ErrNotAllowed
	}

	if _, err := requests.DeleteOne(ctx, bson.M{"_id": requestID, "owner": requester}); err != nil {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"request_id": requestID.Hex(),
			"error":      err,
		}).Error("delete request")
		return err
	}

	if _, err := responses.DeleteMany(ctx, bson.M{"request_id": requestID}); err != nil {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"request_id": requestID.Hex(),
			"error":      err,
		}).Error("cascade delete responses")
		return err
	}

	return nil
}
