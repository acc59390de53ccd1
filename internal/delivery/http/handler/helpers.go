package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"sehat-clinic/internal/delivery/http/middleware"
	"sehat-clinic/pkg/response"

	"github.com/gorilla/mux"
)

// pathID reads a positive integer path variable, writing a 400 when it is malformed.
func pathID(w http.ResponseWriter, r *http.Request, name, label string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid "+label+" ID")
		return 0, false
	}
	return id, true
}

// currentPatient reads the authenticated patient, writing a 401 when the request carries none.
func currentPatient(w http.ResponseWriter, r *http.Request) (int, bool) {
	patientID, ok := middleware.GetPatientIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return 0, false
	}
	return patientID, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}
	return true
}
