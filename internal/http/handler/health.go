package handler

import (
	"encoding/json"
	"net/http"
)

var Health = "GET /healthz"

func HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "UP"})
}
