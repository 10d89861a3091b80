// Package web holds the small HTTP plumbing shared by all handlers: JSON
// response helpers and router-level middleware.
package web

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
)

// Respond writes v as a JSON body with the given status code.  A nil v
// writes the status code only.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the conventional error body used across the API.
func Error(w http.ResponseWriter, status int, msg string) {
	Respond(w, status, map[string]any{"error": msg})
}

// Decode reads a JSON request body into dst.  Unknown fields are tolerated;
// handlers whitelist columns themselves before touching the store.
func Decode(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// DecodeFields reads a JSON object twice: into the typed dst (for the id)
// and into fields (for the partial-update column set).  The id key is
// removed from fields so it never reaches a SET clause.
func DecodeFields(r *http.Request, dst any, fields map[string]any) error {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return err
	}
	if err := json.Unmarshal(body, &fields); err != nil {
		return err
	}
	delete(fields, "id")

	// JSON numbers decode as float64; integral values are narrowed so they
	// bind cleanly to integer columns.
	for k, v := range fields {
		if f, ok := v.(float64); ok && f == math.Trunc(f) {
			fields[k] = int64(f)
		}
	}
	return nil
}
