package response

import (
	"encoding/json"
	"net/http"
)

// Wire bodies are fixed flat objects rather than a success/data envelope;
// clients match on the exact keys.

type MessageBody struct {
	Message string `json:"message"`
}

type CreatedBody struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

type ErrorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Message(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, MessageBody{Message: message})
}

func Created(w http.ResponseWriter, id int, message string) {
	JSON(w, http.StatusCreated, CreatedBody{ID: id, Message: message})
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorBody{Error: message})
}

func ValidationError(w http.ResponseWriter, fields map[string]string) {
	JSON(w, http.StatusBadRequest, ErrorBody{
		Error:  "Validation failed",
		Fields: fields,
	})
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message)
}
