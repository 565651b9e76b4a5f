package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const contentTypeJSON = "application/json"

// WriteJSON encodes data and sends it with the given status. When data
// cannot be encoded nothing has been written yet, so the client gets a
// plain 500 instead of a half-written body.
//
// It returns the number of body bytes written.
func WriteJSON(w http.ResponseWriter, data any, status int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	h := w.Header()
	h.Set("Content-Type", contentTypeJSON)
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)

	return w.Write(body)
}
