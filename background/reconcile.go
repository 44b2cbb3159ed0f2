package background

import (
	log "github.com/sirupsen/logrus"
)

// ReconcileResponses is a background job that repairs the request/response
// pairing. Deleting a request cascades to its response nowadays, but data
// written before that correction can still hold responses whose request is
// gone; those are dropped. An answered request without a response is the
// leftover of an interrupted submission and is reopened. A completed request
// without a response cannot be repaired automatically and is only reported.
func (m *BackgroundManager) ReconcileResponses() error {
	removed, err := m.mongo.SweepOrphanResponses()
	if err != nil {
		return err
	}

	if removed > 0 {
		log.WithFields(log.Fields{
			"prefix":  "background",
			"removed": removed,
		}).Info("swept orphan responses")
	}

	reopened, err := m.mongo.ReopenAnsweredWithoutResponse()
	if err != nil {
		return err
	}

	if reopened > 0 {
		log.WithFields(log.Fields{
			"prefix":   "background",
			"reopened": reopened,
		}).Info("reopened answered requests without a response")
	}

	corrupted, err := m.mongo.FindCompletedWithoutResponse()
	if err != nil {
		return err
	}

	for _, r := range corrupted {
		log.WithFields(log.Fields{
			"prefix":     "background",
			"request_id": r.ID.Hex(),
			"status":     r.Status,
		}).Error("request is completed but has no response")
	}

	return nil
}
