package httpx

import (
	"net/http"

	"github.com/resumeworks/resumesrv/internal/common/apperrors"
)

// ErrorBody is the serialized shape of a failure: the human-readable message,
// the error-kind tag, and the offending ids or input when known.
type ErrorBody struct {
	Message string         `json:"message"`
	Type    string         `json:"type,omitempty"`
	Ctx     map[string]any `json:"ctx,omitempty"`
}

type Error struct {
	Description string `json:"description"`
	Type        string `json:"type,omitempty"`
	Ctx         map[string]any `json:"ctx,omitempty"`
	StatusCode  int    `json:"http_status_code"`
}

func (e *Error) Send(w http.ResponseWriter) {
	if w == nil {
		return
	}
	rsp := &envelope{
		Error: &ErrorBody{
			Message: e.Description,
			Type:    e.Type,
			Ctx:     e.Ctx,
		},
	}
	rspJson, err := json.Marshal(rsp)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Unable to parse error"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	w.Write(rspJson)
}

func (e *Error) Error() string {
	return e.Description
}

func (current Error) Is(other error) bool {
	return current.Error() == other.Error()
}

// errorTypeResolver maps an error value to its kind tag for serialization.
// The domain layer registers its taxonomy at server setup.
var errorTypeResolver func(error) string

func SetErrorTypeResolver(f func(error) string) {
	errorTypeResolver = f
}

// SendError writes a tagged error value as the error half of the envelope.
func SendError(w http.ResponseWriter, err apperrors.Error) {
	if err == nil {
		return
	}
	statusCode := err.StatusCode()
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}
	var errType string
	if errorTypeResolver != nil {
		errType = errorTypeResolver(err)
	}
	httperror := &Error{
		StatusCode:  statusCode,
		Description: err.ErrorAll(),
		Type:        errType,
		Ctx:         err.Ctx(),
	}
	httperror.Send(w)
}

// Common Errors

func ErrReqMethodNotSupported() *Error {
	return &Error{
		Description: "Request Method Not Supported",
		StatusCode:  http.StatusMethodNotAllowed,
	}
}

func ErrUnableToParseReqData() *Error {
	return &Error{
		Description: "Unable to parse request",
		StatusCode:  http.StatusBadRequest,
	}
}

func ErrUnableToReadRequest() *Error {
	return &Error{
		Description: "Unable to read request",
		StatusCode:  http.StatusBadRequest,
	}
}

func ErrApplicationError(err ...string) *Error {
	var s string
	if len(err) > 0 {
		s = err[0]
	} else {
		s = "Unable to process request"
	}
	return &Error{
		Description: s,
		StatusCode:  http.StatusInternalServerError,
	}
}

func ErrInvalidRequest(str ...string) *Error {
	var s string
	if len(str) > 0 {
		s = str[0]
	} else {
		s = "empty request values or invalid request"
	}
	return &Error{
		Description: s,
		StatusCode:  http.StatusBadRequest,
	}
}
