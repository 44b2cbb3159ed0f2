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
	ErrResponseNotFound = fmt.Errorf("response not found")
	ErrAlreadyAnswered  = fmt.Errorf("request has already been answered")
	ErrAlreadyCompleted = fmt.Errorf("response has already been completed")
	ErrResponseMismatch = fmt.Errorf("response does not belong to the request")
	ErrSelfResponse     = fmt.Errorf("answering your own request is not allowed")
)

// ResponseOperator - operations over the responses collection
type ResponseOperator interface {
	SubmitResponse(requestID primitive.ObjectID, responder, comment string) (*schema.Response, error)
	CompleteRequest(requestID, responseID primitive.ObjectID) error
	GetResponseForRequest(requestID primitive.ObjectID) (*schema.Response, error)
	ListResponsesByResponder(responder string) ([]schema.Response, error)
}

// SubmitResponse answers an open request. The status flip is a compare-and-set
// on the request document, so of two concurrent submissions exactly one wins;
// the response row is inserted only after winning, and the unique index on
// request_id backs the whole thing up.
func (m *mongoDB) SubmitResponse(requestID primitive.ObjectID, responder, comment string) (*schema.Response, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	requests := m.client.Database(m.database).Collection(schema.RequestCollection)
	responses := m.client.Database(m.database).Collection(schema.ResponseCollection)

	now := time.Now().UTC()

	filter := bson.M{
		"_id":    requestID,
		"status": schema.RequestStatusActive,
		"owner":  bson.M{"$ne": responder},
	}
	update := bson.M{"$set": bson.M{
		"status":     schema.RequestStatusAnswered,
		"updated_at": now,
	}}

	var request schema.Request
	if err := requests.FindOneAndUpdate(ctx, filter, update).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, m.explainSubmitRejection(ctx, requestID, responder)
		}

		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"request_id": requestID.Hex(),
			"error":      err,
		}).Error("answer request")
		return nil, err
	}

	response := schema.Response{
		RequestID: requestID,
		Responder: responder,
		Comment:   comment,
		CreatedAt: now,
	}

	result, err := responses.InsertOne(ctx, response)
	if err != nil {
		if isDuplicateKeyError(err) {
			// cannot happen through this code path; a second response row
			// means someone wrote to the collection behind our back
			log.WithFields(log.Fields{
				"prefix":     mongoLogPrefix,
				"request_id": requestID.Hex(),
			}).Error("duplicate response for answered request")
			return nil, ErrAlreadyAnswered
		}

		// the status flip committed but the response insert did not. Reopen
		// the request so it does not stay answered with nothing behind it;
		// no submitter can have flipped it again in between since it is not
		// active. The reconciler sweep backs this up if the reopen fails too.
		m.reopenAnsweredRequest(requestID)
		return nil, err
	}

	response.ID = result.InsertedID.(primitive.ObjectID)
	return &response, nil
}

// explainSubmitRejection turns a missed compare-and-set into the reason it
// missed. The re-read races with other writers, so the answered case doubles
// as the lost-a-race answer.
func (m *mongoDB) explainSubmitRejection(ctx context.Context, requestID primitive.ObjectID, responder string) error {
	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	var request schema.Request
	if err := c.FindOne(ctx, bson.M{"_id": requestID}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrRequestNotFound
		}
		return err
	}

	switch request.Status {
	case schema.RequestStatusAnswered:
		return ErrAlreadyAnswered
	case schema.RequestStatusCompleted:
		return ErrInvalidTransition
	}

	if request.Owner == responder {
		return ErrSelfResponse
	}

	return ErrAlreadyAnswered
}

// CompleteRequest closes an answered request and stamps its response. Both
// writes carry their own compare-and-set guard, so a concurrent completion
// loses cleanly instead of stamping twice.
func (m *mongoDB) CompleteRequest(requestID, responseID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	requests := m.client.Database(m.database).Collection(schema.RequestCollection)
	responses := m.client.Database(m.database).Collection(schema.ResponseCollection)

	var response schema.Response
	if err := responses.FindOne(ctx, bson.M{"_id": responseID}).Decode(&response); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrResponseNotFound
		}
		return err
	}

	if response.RequestID != requestID {
		return ErrResponseMismatch
	}
	if response.CompletedAt != nil {
		return ErrAlreadyCompleted
	}

	now := time.Now().UTC()

	filter := bson.M{"_id": requestID, "status": schema.RequestStatusAnswered}
	update := bson.M{"$set": bson.M{
		"status":     schema.RequestStatusCompleted,
		"updated_at": now,
	}}

	var request schema.Request
	if err := requests.FindOneAndUpdate(ctx, filter, update).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return m.explainCompleteRejection(ctx, requestID, responseID)
		}
		return err
	}

	result, err := responses.UpdateOne(ctx,
		bson.M{"_id": responseID, "request_id": requestID, "completed_at": nil},
		bson.M{"$set": bson.M{"completed_at": now}},
	)
	if err != nil {
		// the request is completed but the response carries no stamp. Back
		// the status out to answered so the caller can complete again.
		rctx, rcancel := context.WithTimeout(context.Background(), defaultTimeout)
		defer rcancel()

		if _, rerr := requests.UpdateOne(rctx,
			bson.M{"_id": requestID, "status": schema.RequestStatusCompleted},
			bson.M{"$set": bson.M{
				"status":     schema.RequestStatusAnswered,
				"updated_at": time.Now().UTC(),
			}},
		); rerr != nil {
			log.WithFields(log.Fields{
				"prefix":     mongoLogPrefix,
				"request_id": requestID.Hex(),
				"error":      rerr,
			}).Error("revert completion after failed response stamp")
		}
		return err
	}
	if result.MatchedCount == 0 {
		return ErrAlreadyCompleted
	}

	return nil
}

// reopenAnsweredRequest flips a request back from answered to active. It runs
// on its own context: the caller typically gets here because its context
// already expired.
func (m *mongoDB) reopenAnsweredRequest(requestID primitive.ObjectID) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	requests := m.client.Database(m.database).Collection(schema.RequestCollection)

	if _, err := requests.UpdateOne(ctx,
		bson.M{"_id": requestID, "status": schema.RequestStatusAnswered},
		bson.M{"$set": bson.M{
			"status":     schema.RequestStatusActive,
			"updated_at": time.Now().UTC(),
		}},
	); err != nil {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"request_id": requestID.Hex(),
			"error":      err,
		}).Error("reopen request after failed response insert")
	}
}

func (m *mongoDB) explainCompleteRejection(ctx context.Context, requestID, responseID primitive.ObjectID) error {
	requests := m.client.Database(m.database).Collection(schema.RequestCollection)
	responses := m.client.Database(m.database).Collection(schema.ResponseCollection)

	var request schema.Request
	if err := requests.FindOne(ctx, bson.M{"_id": requestID}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrRequestNotFound
		}
		return err
	}

	if request.Status == schema.RequestStatusCompleted {
		var response schema.Response
		if err := responses.FindOne(ctx, bson.M{"_id": responseID}).Decode(&response); err == nil &&
			response.CompletedAt != nil {
			return ErrAlreadyCompleted
		}
	}

	return ErrInvalidTransition
}

// GetResponseForRequest returns the response of a request if there is one
func (m *mongoDB) GetResponseForRequest(requestID primitive.ObjectID) (*schema.Response, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ResponseCollection)

	var response schema.Response
	if err := c.FindOne(ctx, bson.M{"request_id": requestID}).Decode(&response); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrResponseNotFound
		}
		return nil, err
	}

	return &response, nil
}

// ListResponsesByResponder returns all responses of an account, newest first
func (m *mongoDB) ListResponsesByResponder(responder string) ([]schema.Response, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ResponseCollection)

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := c.Find(ctx, bson.M{"responder": responder}, opts)
	if err != nil {
		return nil, err
	}

	result := make([]schema.Response, 0)
	if err := cur.All(ctx, &result); err != nil {
		return nil, err
	}

	return result, nil
}

func isDuplicateKeyError(err error) bool {
	if we, ok := err.(mongo.WriteException); ok {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return false
}
