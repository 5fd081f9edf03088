package api

import (
	"encoding/json"
	"net/http"

	"log/slog"
)

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

// writeMessage emits the `{"message": ...}` envelope used by validation and
// generic failures.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, map[string]string{"message": msg}, status)
}

// writeNotFound emits the `{"error": ...}` envelope; consumers match the
// message by substring, so the text is part of the contract.
func writeNotFound(w http.ResponseWriter, msg string) {
	writeJSON(w, map[string]string{"error": msg}, http.StatusNotFound)
}
