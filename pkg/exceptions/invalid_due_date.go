package exceptions

import "net/http"

var ErrInvalidDueDate = &Exception{
	Message:    "due date must be formatted as YYYY-MM-DD",
	StatusCode: http.StatusBadRequest,
}
