package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tasukeru/tasukeru-api/schema"
)

// Reconciler - consistency sweeps over the request/response pairing
type Reconciler interface {
	SweepOrphanResponses() (int64, error)
	ReopenAnsweredWithoutResponse() (int64, error)
	FindCompletedWithoutResponse() ([]schema.Request, error)
}

// SweepOrphanResponses deletes responses whose request no longer exists and
// returns how many were removed. The sweep takes its time; it runs from the
// background worker, never from a request handler.
func (m *mongoDB) SweepOrphanResponses() (int64, error) {
	ctx := context.Background()

	requests := m.client.Database(m.database).Collection(schema.RequestCollection)
	responses := m.client.Database(m.database).Collection(schema.ResponseCollection)

	cur, err := responses.Find(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var removed int64

	for cur.Next(ctx) {
		var response schema.Response
		if err := cur.Decode(&response); err != nil {
			return removed, err
		}

		err := requests.FindOne(ctx, bson.M{"_id": response.RequestID}).Err()
		if err == nil {
			continue
		}
		if err != mongo.ErrNoDocuments {
			return removed, err
		}

		result, err := responses.DeleteOne(ctx, bson.M{"_id": response.ID})
		if err != nil {
			log.WithFields(log.Fields{
				"prefix":      mongoLogPrefix,
				"response_id": response.ID.Hex(),
				"error":       err,
			}).Error("delete orphan response")
			return removed, err
		}
		removed += result.DeletedCount
	}

	return removed, cur.Err()
}

// ReopenAnsweredWithoutResponse flips requests back to active when their
// status claims an answer but no response row exists. Such a request is the
// leftover of an interrupted submission whose inline reopen also failed; the
// flip is status-guarded, so a request that meanwhile got a real response is
// left alone.
func (m *mongoDB) ReopenAnsweredWithoutResponse() (int64, error) {
	ctx := context.Background()

	requests := m.client.Database(m.database).Collection(schema.RequestCollection)
	responses := m.client.Database(m.database).Collection(schema.ResponseCollection)

	cur, err := requests.Find(ctx, bson.M{"status": schema.RequestStatusAnswered})
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var reopened int64

	for cur.Next(ctx) {
		var request schema.Request
		if err := cur.Decode(&request); err != nil {
			return reopened, err
		}

		err := responses.FindOne(ctx, bson.M{"request_id": request.ID}).Err()
		if err == nil {
			continue
		}
		if err != mongo.ErrNoDocuments {
			return reopened, err
		}

		result, err := requests.UpdateOne(ctx,
			bson.M{"_id": request.ID, "status": schema.RequestStatusAnswered},
			bson.M{"$set": bson.M{
				"status":     schema.RequestStatusActive,
				"updated_at": time.Now().UTC(),
			}},
		)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix":     mongoLogPrefix,
				"request_id": request.ID.Hex(),
				"error":      err,
			}).Error("reopen answered request without response")
			return reopened, err
		}
		reopened += result.ModifiedCount
	}

	return reopened, cur.Err()
}

// FindCompletedWithoutResponse returns completed requests that have no
// response. A completed request cannot be reopened without guessing what
// happened to its answer, so callers only report these.
func (m *mongoDB) FindCompletedWithoutResponse() ([]schema.Request, error) {
	ctx := context.Background()

	requests := m.client.Database(m.database).Collection(schema.RequestCollection)
	responses := m.client.Database(m.database).Collection(schema.ResponseCollection)

	cur, err := requests.Find(ctx, bson.M{"status": schema.RequestStatusCompleted})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	corrupted := make([]schema.Request, 0)

	for cur.Next(ctx) {
		var request schema.Request
		if err := cur.Decode(&request); err != nil {
			return nil, err
		}

		err := responses.FindOne(ctx, bson.M{"request_id": request.ID}).Err()
		if err == mongo.ErrNoDocuments {
			corrupted = append(corrupted, request)
			continue
		}
		if err != nil {
			return nil, err
		}
	}

	return corrupted, cur.Err()
}
