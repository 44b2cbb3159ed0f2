package store

import (
	"github.com/jinzhu/gorm"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tasukeru/tasukeru-api/geo"
	"github.com/tasukeru/tasukeru-api/schema"
	"github.com/tasukeru/tasukeru-api/utils"
)

// tasukeru main datastore
type TasukeruCore interface {
	Ping() error

	// Account
	CreateAccount(string, string, map[string]interface{}) (*schema.Account, error)
	GetAccount(string) (*schema.Account, error)
	UpdateAccountMetadata(string, map[string]interface{}) error
	UpdateAccountGeoPosition(accountNumber string, latitude, longitude float64) error
	DeleteAccount(string) error

	// Request lifecycle
	CreateRequest(owner, title, description string, loc schema.Location) (*schema.Request, error)
	GetRequest(requestID primitive.ObjectID) (*schema.Request, *schema.Response, error)
	ListNearbyRequests(center schema.Location, radiusKm float64) ([]geo.Nearby, error)
	ListRequestsByOwner(owner string) ([]schema.Request, error)
	DeleteRequest(requestID primitive.ObjectID, requester string) error

	// Response lifecycle
	SubmitResponse(requestID primitive.ObjectID, responder, comment string) (*schema.Response, error)
	CompleteRequest(requestID, responseID primitive.ObjectID) error
	ListResponsesByResponder(responder string) ([]schema.Response, error)
}

// TasukeruStore is an implementation of TasukeruCore. Accounts live in
// postgres, requests and responses live in mongo.
type TasukeruStore struct {
	ormDB  *gorm.DB
	mongo  MongoStore
	finder geo.NearbyFinder
}

func NewTasukeruStore(ormDB *gorm.DB, mongo MongoStore) *TasukeruStore {
	return &TasukeruStore{
		ormDB:  ormDB,
		mongo:  mongo,
		finder: geo.NewLinearFinder(),
	}
}

// Ping is to check the storage health status
func (s *TasukeruStore) Ping() error {
	if err := s.ormDB.DB().Ping(); err != nil {
		return err
	}
	return s.mongo.Ping()
}

// CreateRequest resolves political geo info for the anchor point on a best
// effort basis and persists a new active request.
func (s *TasukeruStore) CreateRequest(owner, title, description string, loc schema.Location) (*schema.Request, error) {
	if resolved, err := utils.PoliticalGeoInfo(loc); err == nil {
		loc = resolved
	}

	return s.mongo.CreateRequest(owner, title, description, loc)
}

// GetRequest returns a request together with its response, if one has been
// submitted already.
func (s *TasukeruStore) GetRequest(requestID primitive.ObjectID) (*schema.Request, *schema.Response, error) {
	request, err := s.mongo.GetRequest(requestID)
	if err != nil {
		return nil, nil, err
	}

	if request.Status == schema.RequestStatusActive {
		return request, nil, nil
	}

	response, err := s.mongo.GetResponseForRequest(requestID)
	if err != nil && err != ErrResponseNotFound {
		return nil, nil, err
	}

	return request, response, nil
}

// ListNearbyRequests fetches the open request pool and narrows it down to the
// ones within radiusKm of center, nearest first. The pool read is a snapshot:
// a request answered a moment ago may still show up once more.
func (s *TasukeruStore) ListNearbyRequests(center schema.Location, radiusKm float64) ([]geo.Nearby, error) {
	pool, err := s.mongo.GetActiveRequests()
	if err != nil {
		return nil, err
	}

	return s.finder.FindNearby(center, radiusKm, pool), nil
}

func (s *TasukeruStore) ListRequestsByOwner(owner string) ([]schema.Request, error) {
	return s.mongo.ListRequestsByOwner(owner)
}

func (s *TasukeruStore) DeleteRequest(requestID primitive.ObjectID, requester string) error {
	return s.mongo.DeleteRequest(requestID, requester)
}

func (s *TasukeruStore) SubmitResponse(requestID primitive.ObjectID, responder, comment string) (*schema.Response, error) {
	return s.mongo.SubmitResponse(requestID, responder, comment)
}

func (s *TasukeruStore) CompleteRequest(requestID, responseID primitive.ObjectID) error {
	return s.mongo.CompleteRequest(requestID, responseID)
}

func (s *TasukeruStore) ListResponsesByResponder(responder string) ([]schema.Response, error) {
	return s.mongo.ListResponsesByResponder(responder)
}
