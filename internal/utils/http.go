package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var errTrailingData = errors.New("unexpected data after the JSON body")

const internalErrorBody = `{"detail":"Internal Server Error"}`

// ReadJSON decodes the request body into v. The body must hold exactly one
// JSON value.
func ReadJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

// WriteJSON answers with data encoded as JSON and the given status.
//
// When data cannot be encoded nothing of it is sent: the client gets a 500
// with the usual {"detail": ...} body and the encoding error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) error {
	body, err := json.Marshal(data)
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, internalErrorBody)
		return fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.WriteHeader(statusCode)
	_, err = w.Write(body)
	return err
}
