package exceptions

import (
	"fmt"
	"meetingassist-service/internal/pkg/constvars"
	"runtime"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"-"`

	cause error
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	loc := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, loc.File, loc.Line, loc.FunctionName)
}

// Unwrap exposes the original cause so errors.Is can match sentinel errors
// such as context.DeadlineExceeded through the wrapper.
func (e *CustomError) Unwrap() error {
	return e.cause
}

// BuildNewCustomError wraps err into a CustomError carrying both the client-safe
// message and the developer message, recording the caller location. When err is
// already a CustomError the original locations are preserved and the new caller
// is appended, so the log shows the full propagation path.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)

	if custom, ok := err.(*CustomError); ok && custom != nil {
		custom.Locations = append(custom.Locations, location)
		return custom
	}

	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{location},
		cause:         err,
	}
}

// IsHTTPErrRetryable reports whether the wrapped status code indicates a
// transient upstream failure worth retrying.
func IsHTTPErrRetryable(err error) bool {
	custom, ok := err.(*CustomError)
	if !ok {
		return false
	}
	switch custom.StatusCode {
	case constvars.StatusRequestTimeout,
		constvars.StatusTooManyRequests,
		constvars.StatusBadGateway,
		constvars.StatusServiceUnavailable,
		constvars.StatusGatewayTimeout:
		return true
	}
	return false
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{File: "unknown", FunctionName: "unknown"}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
