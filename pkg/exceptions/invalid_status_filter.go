package exceptions

import "net/http"

var ErrInvalidStatusFilter = &Exception{
	Message:    "status must be one of all, active, completed",
	StatusCode: http.StatusBadRequest,
}
