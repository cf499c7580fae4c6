package exceptions

import "net/http"

var ErrInvalidPriority = &Exception{
	Message:    "priority must be one of low, medium, high",
	StatusCode: http.StatusBadRequest,
}
