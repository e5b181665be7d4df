package wrapper

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/golangid/meetup/candihelper"
	"github.com/golangid/meetup/candishared"
	"github.com/golangid/meetup/logger"
)

// HTTPResponse default http response format
type HTTPResponse struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Meta    interface{} `json:"meta,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// NewHTTPResponse for create common response
func NewHTTPResponse(code int, message string, params ...interface{}) *HTTPResponse {
	commonResponse := new(HTTPResponse)

	for _, param := range params {
		switch val := param.(type) {
		case *candishared.Meta, candishared.Meta:
			commonResponse.Meta = val
		case candihelper.MultiError:
			commonResponse.Errors = val.ToMap()
		case error:
			commonResponse.Errors = errorDetail(val)
		default:
			commonResponse.Data = param
		}
	}

	if code < http.StatusBadRequest {
		commonResponse.Success = true
	}
	commonResponse.Code = code
	commonResponse.Message = message
	return commonResponse
}

// NewHTTPResponseFromError build failed response, status code taken from error kind
func NewHTTPResponseFromError(err error) *HTTPResponse {
	code := candishared.HTTPStatusFromError(err)
	message := err.Error()
	var validationErr *candishared.ValidationError
	if errors.As(err, &validationErr) {
		message = validationErr.Message
	}
	if code == http.StatusInternalServerError {
		logger.LogE(err.Error())
		return NewHTTPResponse(code, http.StatusText(code))
	}
	return NewHTTPResponse(code, message, err)
}

func errorDetail(err error) map[string]string {
	var validationErr *candishared.ValidationError
	if errors.As(err, &validationErr) && validationErr.Fields != nil && validationErr.Fields.HasError() {
		return validationErr.Fields.ToMap()
	}
	return candihelper.NewMultiError().Append("detail", err).ToMap()
}

// JSON for set http JSON response (Content-Type: application/json) with parameter is http response writer
func (resp *HTTPResponse) JSON(w http.ResponseWriter) error {
	w.Header().Set(candihelper.HeaderContentType, candihelper.HeaderMIMEApplicationJSON)
	w.WriteHeader(resp.Code)
	return json.NewEncoder(w).Encode(resp)
}
