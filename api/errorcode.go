package api

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/tasukeru/tasukeru-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid signature",
		1001: "invalid authorization format",
		1002: "difference between the request time and the current time is too large",
		1003: "invalid token",

		1006: "invalid value of client version",
		1007: "API for this client version has been discontinued",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "this account has been registered or has been taken",
		1101: "account not found",
		1102: "unknown account location",

		1200: store.ErrRequestNotFound.Error(),
		1201: store.ErrInvalidTransition.Error(),
		1202: store.ErrAlreadyAnswered.Error(),
		1203: store.ErrAlreadyCompleted.Error(),
		1204: store.ErrNotAllowed.Error(),
		1205: store.ErrResponseMismatch.Error(),
		1206: store.ErrSelfResponse.Error(),
		1207: store.ErrResponseNotFound.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidSignature           = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorAuthorizationExpired       = errorJSON(1002)
	errorInvalidToken               = errorJSON(1003)
	errorInvalidClientVersion       = errorJSON(1006)
	errorUnsupportedClientVersion   = errorJSON(1007)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken           = errorJSON(1100)
	errorAccountNotFound        = errorJSON(1101)
	errorUnknownAccountLocation = errorJSON(1102)

	errorRequestNotFound   = errorJSON(1200)
	errorInvalidTransition = errorJSON(1201)
	errorAlreadyAnswered   = errorJSON(1202)
	errorAlreadyCompleted  = errorJSON(1203)
	errorNotAllowed        = errorJSON(1204)
	errorResponseMismatch  = errorJSON(1205)
	errorSelfResponse      = errorJSON(1206)
	errorResponseNotFound  = errorJSON(1207)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// localized translates an error object for the Accept-Language of the
// request, falling back to the built-in English message.
func localized(localizer *i18n.Localizer, obj ErrorResponse) ErrorResponse {
	if localizer == nil {
		return obj
	}

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID: fmt.Sprintf("error.%d", obj.Code),
		DefaultMessage: &i18n.Message{
			ID:    fmt.Sprintf("error.%d", obj.Code),
			Other: obj.Message,
		},
	})
	if err != nil {
		return obj
	}

	obj.Message = msg
	return obj
}
