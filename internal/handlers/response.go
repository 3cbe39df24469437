package handlers

import (
	"encoding/json"
	"net/http"
)

// EncodeJSON marshals v without touching the response, so encoding failures
// can still be answered with a proper error status.
func EncodeJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}

// WriteRawJSON writes an already encoded JSON body.
func WriteRawJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// WriteJSON encodes v and writes it with the given status. If v cannot be
// encoded a 500 detail response is written instead and the error returned.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	body, err := EncodeJSON(v)
	if err != nil {
		WriteDetail(w, http.StatusInternalServerError, "Internal server error")
		return err
	}
	WriteRawJSON(w, status, body)
	return nil
}

// WriteDetail writes a standardised {"detail": msg} error response.
func WriteDetail(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"detail": msg,
	})
}
