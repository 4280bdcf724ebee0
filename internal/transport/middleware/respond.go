package middleware

import (
	"encoding/json"
	"net/http"
)

// writeDetail writes a {"detail": msg} error body, the same shape the REST
// handlers use for errors.
func writeDetail(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": msg})
}
