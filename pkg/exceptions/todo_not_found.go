package exceptions

import "net/http"

var ErrTodoNotFound = &Exception{
	Message:    "todo not found",
	StatusCode: http.StatusNotFound,
}
