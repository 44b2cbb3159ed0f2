package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tasukeru/tasukeru-api/store"
)

// BackgroundManager is a struct for tasukeru background manager. The
// reconciliation jobs touch only the mongo collections, so the worker runs
// without a postgres connection.
type BackgroundManager struct {
	mongo store.MongoStore

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		mongo:      store.NewMongoStore(mongoClient, viper.GetString("mongo.database")),
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("tasukeru-worker", 5)
	return m.worker.Launch()
}
