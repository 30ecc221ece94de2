package handlers

import (
	"dispatch-toolkit/internal/api/dto"
	"dispatch-toolkit/internal/domain"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("encode failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// allowMethod writes a 405 and returns false when r does not use method.
func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// decodeJSON reads exactly one JSON object into dst. It writes a 400 and
// returns false on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

func toNotification(n domain.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		Title:       n.Title,
		Description: n.Description,
		Severity:    string(n.Severity),
	}
}

func toDocumentRecord(d dto.DocumentRecord) domain.DocumentRecord {
	return domain.DocumentRecord{
		Temperature:  d.Temperature,
		PONumber:     d.PONumber,
		SealNumber:   d.SealNumber,
		Location:     d.Location,
		DeliveryTime: d.DeliveryTime,
	}
}

func fromDocumentRecord(r domain.DocumentRecord) dto.DocumentRecord {
	return dto.DocumentRecord{
		Temperature:  r.Temperature,
		PONumber:     r.PONumber,
		SealNumber:   r.SealNumber,
		Location:     r.Location,
		DeliveryTime: r.DeliveryTime,
	}
}
