package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const timeLayout = time.RFC3339

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err ErrorResp) {
	respondJSON(w, toStatusCode(err.Error.Code), err)
}

func respondBadRequest(w http.ResponseWriter, format string, args ...any) {
	respondError(w, ErrorResp{Error: Error{
		Code:    BADREQUEST,
		Message: fmt.Sprintf(format, args...),
	}})
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
