package api

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tasukeru/tasukeru-api/schema"
	"github.com/tasukeru/tasukeru-api/store"
)

const defaultNearbyRadiusKm = 10.0

// createRequest is the API for posting a new location-anchored request
func (s *Server) createRequest(c *gin.Context) {
	owner := c.GetString("requester")

	var params struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Location    struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"location"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Title == "" ||
		params.Location.Latitude < -90 || params.Location.Latitude > 90 ||
		params.Location.Longitude < -180 || params.Location.Longitude > 180 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	request, err := s.store.CreateRequest(owner, params.Title, params.Description, schema.Location{
		Latitude:  params.Location.Latitude,
		Longitude: params.Location.Longitude,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}

// listNearbyRequests is the API that populates the map: all open requests
// within the radius, nearest first. Falls back to the account's last reported
// position when the query carries no explicit center.
func (s *Server) listNearbyRequests(c *gin.Context) {
	center, ok := s.queryCenter(c)
	if !ok {
		return
	}

	radiusKm := defaultNearbyRadiusKm
	if v := c.Query("radius_km"); v != "" {
		// ParseFloat accepts "NaN" and "Inf", neither of which is a radius
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(r) || math.IsInf(r, 0) {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		radiusKm = r
	}

	nearby, err := s.store.ListNearbyRequests(center, radiusKm)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": nearby})
}

// queryCenter resolves the center point of a nearby query from the lat/lng
// query parameters or, failing that, the account's last known location.
func (s *Server) queryCenter(c *gin.Context) (schema.Location, bool) {
	latParam := c.Query("lat")
	lngParam := c.Query("lng")

	if latParam != "" && lngParam != "" {
		lat, latErr := strconv.ParseFloat(latParam, 64)
		lng, lngErr := strconv.ParseFloat(lngParam, 64)
		if latErr != nil || lngErr != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return schema.Location{}, false
		}
		return schema.Location{Latitude: lat, Longitude: lng}, true
	}

	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return schema.Location{}, false
	}

	if loc := account.Profile.State.LastLocation; loc != nil {
		return *loc, true
	}

	abortWithEncoding(c, http.StatusBadRequest, errorUnknownAccountLocation)
	return schema.Location{}, false
}

// listMyRequests is the API for the owner's private request list. Unlike the
// map it includes answered and completed requests.
func (s *Server) listMyRequests(c *gin.Context) {
	owner := c.GetString("requester")

	requests, err := s.store.ListRequestsByOwner(owner)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": requests})
}

// requestDetail is the API to query a single request along with its response
// once one has been submitted
func (s *Server) requestDetail(c *gin.Context) {
	requestID, err := primitive.ObjectIDFromHex(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	request, response, err := s.store.GetRequest(requestID)
	if err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"request":  request,
			"response": response,
		},
	})
}

// deleteRequest is the API for an owner to withdraw a request. The response,
// if any, goes with it.
func (s *Server) deleteRequest(c *gin.Context) {
	requester := c.GetString("requester")

	requestID, err := primitive.ObjectIDFromHex(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.store.DeleteRequest(requestID, requester); err != nil {
		switch err {
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		case store.ErrNotAllowed:
			abortWithEncoding(c, http.StatusForbidden, errorNotAllowed)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
