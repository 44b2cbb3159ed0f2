package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tasukeru/tasukeru-api/api/mocks"
	"github.com/tasukeru/tasukeru-api/schema"
	"github.com/tasukeru/tasukeru-api/store"
)

func TestSubmitResponse(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockTasukeruCore(ctl)
	s := Server{store: a}

	requestID := primitive.NewObjectID()
	response := &schema.Response{
		ID:        primitive.NewObjectID(),
		RequestID: requestID,
		Responder: "responder-1",
		Comment:   "I can help",
	}

	a.EXPECT().
		SubmitResponse(requestID, "responder-1", "I can help").
		Return(response, nil).
		Times(1)

	router := testRouter("responder-1")
	router.POST("/:requestID/responses", s.submitResponse)

	req := httptest.NewRequest("POST", "/"+requestID.Hex()+"/responses", strings.NewReader(`{"comment":"I can help"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Result schema.Response `json:"result"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, requestID, jResp.Result.RequestID, "wrong request id")
	assert.Nil(t, jResp.Result.CompletedAt, "should not be completed")
}

func TestSubmitResponseLostRace(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockTasukeruCore(ctl)
	s := Server{store: a}

	requestID := primitive.NewObjectID()

	a.EXPECT().
		SubmitResponse(requestID, "responder-2", "me too").
		Return(nil, store.ErrAlreadyAnswered).
		Times(1)

	router := testRouter("responder-2")
	router.POST("/:requestID/responses", s.submitResponse)

	req := httptest.NewRequest("POST", "/"+requestID.Hex()+"/responses", strings.NewReader(`{"comment":"me too"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1202), jResp.Code, "wrong error code")
}

func TestSubmitResponseToOwnRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockTasukeruCore(ctl)
	s := Server{store: a}

	requestID := primitive.NewObjectID()

	a.EXPECT().
		SubmitResponse(requestID, "owner-1", "").
		Return(nil, store.ErrSelfResponse).
		Times(1)

	router := testRouter("owner-1")
	router.POST("/:requestID/responses", s.submitResponse)

	req := httptest.NewRequest("POST", "/"+requestID.Hex()+"/responses", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1206), jResp.Code, "wrong error code")
}

func TestCompleteRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockTasukeruCore(ctl)
	s := Server{store: a}

	requestID := primitive.NewObjectID()
	responseID := primitive.NewObjectID()

	a.EXPECT().
		CompleteRequest(requestID, responseID).
		Return(nil).
		Times(1)

	router := testRouter("owner-1")
	router.PATCH("/:requestID/responses/:responseID", s.completeRequest)

	req := httptest.NewRequest("PATCH", "/"+requestID.Hex()+"/responses/"+responseID.Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestCompleteRequestTwice(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockTasukeruCore(ctl)
	s := Server{store: a}

	requestID := primitive.NewObjectID()
	responseID := primitive.NewObjectID()

	a.EXPECT().
		CompleteRequest(requestID, responseID).
		Return(store.ErrAlreadyCompleted).
		Times(1)

	router := testRouter("owner-1")
	router.PATCH("/:requestID/responses/:responseID", s.completeRequest)

	req := httptest.NewRequest("PATCH", "/"+requestID.Hex()+"/responses/"+responseID.Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1203), jResp.Code, "wrong error code")
}

func TestCompleteRequestMismatchedResponse(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockTasukeruCore(ctl)
	s := Server{store: a}

	requestID := primitive.NewObjectID()
	responseID := primitive.NewObjectID()

	a.EXPECT().
		CompleteRequest(requestID, responseID).
		Return(store.ErrResponseMismatch).
		Times(1)

	router := testRouter("owner-1")
	router.PATCH("/:requestID/responses/:responseID", s.completeRequest)

	req := httptest.NewRequest("PATCH", "/"+requestID.Hex()+"/responses/"+responseID.Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1205), jResp.Code, "wrong error code")
}

func TestListMyResponses(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockTasukeruCore(ctl)
	s := Server{store: a}

	a.EXPECT().
		ListResponsesByResponder("responder-1").
		Return([]schema.Response{
			{ID: primitive.NewObjectID(), Responder: "responder-1", Comment: "done"},
		}, nil).
		Times(1)

	router := testRouter("responder-1")
	router.GET("/me", s.listMyResponses)

	req := httptest.NewRequest("GET", "/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Result []schema.Response `json:"result"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp.Result, 1, "wrong result size")
}
