package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tasukeru/tasukeru-api/store"
)

// submitResponse is the API for answering an open request. A request takes
// exactly one response; of two concurrent submissions one wins and the other
// gets a conflict.
func (s *Server) submitResponse(c *gin.Context) {
	responder := c.GetString("requester")

	requestID, err := primitive.ObjectIDFromHex(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var params struct {
		Comment string `json:"comment"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	response, err := s.store.SubmitResponse(requestID, responder, params.Comment)
	if err != nil {
		switch err {
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		case store.ErrAlreadyAnswered:
			abortWithEncoding(c, http.StatusConflict, errorAlreadyAnswered)
		case store.ErrInvalidTransition:
			abortWithEncoding(c, http.StatusConflict, errorInvalidTransition)
		case store.ErrSelfResponse:
			abortWithEncoding(c, http.StatusForbidden, errorSelfResponse)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": response})
}

// completeRequest is the API for closing an answered request
func (s *Server) completeRequest(c *gin.Context) {
	requestID, err := primitive.ObjectIDFromHex(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	responseID, err := primitive.ObjectIDFromHex(c.Param("responseID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.store.CompleteRequest(requestID, responseID); err != nil {
		switch err {
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		case store.ErrResponseNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorResponseNotFound)
		case store.ErrResponseMismatch:
			abortWithEncoding(c, http.StatusBadRequest, errorResponseMismatch)
		case store.ErrAlreadyCompleted:
			abortWithEncoding(c, http.StatusConflict, errorAlreadyCompleted)
		case store.ErrInvalidTransition:
			abortWithEncoding(c, http.StatusConflict, errorInvalidTransition)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// listMyResponses is the API for the responder's private answer history
func (s *Server) listMyResponses(c *gin.Context) {
	responder := c.GetString("requester")

	responses, err := s.store.ListResponsesByResponder(responder)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": responses})
}
