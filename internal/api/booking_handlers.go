package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"dptravels/internal/catalog"
	"dptravels/internal/entities"
	httperrors "dptravels/internal/errors"
	"dptravels/internal/service"
)

// LegacyBookingRoutes maps the old per-destination paths to the catalog
// destination each one books. The handlers behind them are identical; only
// the destination differs.
var LegacyBookingRoutes = map[string]string{
	"/send-gtk":     "Gangtok",
	"/send-pelling": "Pelling",
	"/send-Zuluk":   "Zuluk",
	"/send-namchi":  "Namchi",
	"/send-guru":    "Guru Dongmar Lake",
	"/send-tsomo":   "Tsomo Lake",
}

type SubmissionHandler struct {
	Service *service.BookingService
}

func NewSubmissionHandler(svc *service.BookingService) *SubmissionHandler {
	return &SubmissionHandler{Service: svc}
}

// SendQuery handles POST /send-query.
func (h *SubmissionHandler) SendQuery(w http.ResponseWriter, r *http.Request) {
	var q entities.ContactQuery
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeError(w, httperrors.BadRequest("Invalid request body."))
		return
	}

	if err := h.Service.SubmitQuery(r.Context(), q); err != nil {
		h.writeFailure(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, SubmissionResponse{
		Success: true,
		Message: "Your message has been sent successfully!",
	})
}

// SendBooking handles POST /send-booking.
func (h *SubmissionHandler) SendBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, httperrors.BadRequest("Invalid request body."))
		return
	}
	h.submitBooking(w, r, req)
}

// SendBookingFor returns the handler for one legacy destination route. The
// destination is pinned by the routing table; the body may use either the
// uniform schema or the old form field names. The old forms had no date
// field, so an absent date means today.
func (h *SubmissionHandler) SendBookingFor(destination string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var legacy legacyBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&legacy); err != nil {
			writeError(w, httperrors.BadRequest("Invalid request body."))
			return
		}

		req := entities.BookingRequest{
			Name:        legacy.Name,
			Email:       legacy.Email,
			Phone:       legacy.Phone,
			Destination: destination,
			Cab:         legacy.Cab,
			Travellers:  legacy.Travellers,
			BookingDate: legacy.BookingDate,
			Message:     legacy.Message,
		}
		if req.Phone == "" {
			req.Phone = legacy.Ctno
		}
		if req.Travellers == "" {
			req.Travellers = legacy.NofTravellers
		}
		if req.Cab == "" {
			req.Cab = legacy.Veh
		}
		if req.BookingDate == "" {
			req.BookingDate = time.Now().Format("2006-01-02")
		}

		h.submitBooking(w, r, req)
	}
}

func (h *SubmissionHandler) submitBooking(w http.ResponseWriter, r *http.Request, req entities.BookingRequest) {
	if err := h.Service.SubmitBooking(r.Context(), req); err != nil {
		h.writeFailure(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, SubmissionResponse{
		Success: true,
		Message: "Booking request sent successfully!",
	})
}

// writeFailure converts a service error into the JSON failure contract.
// Anything that is not an HTTPError is a bug surfaced as a generic 500.
func (h *SubmissionHandler) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	var httpErr *httperrors.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			logrus.WithFields(logrus.Fields{
				"path":    r.URL.Path,
				"details": httpErr.Details,
			}).Error("Submission failed")
		}
		writeError(w, httpErr)
		return
	}
	logrus.WithFields(logrus.Fields{"path": r.URL.Path, "error": err}).Error("Unexpected submission error")
	writeError(w, httperrors.SendFailed("Failed to send email.", ""))
}

// ListDestinations handles GET /api/destinations; the booking form fetches
// the catalog from here instead of carrying its own copy.
func ListDestinations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.All())
}

// HealthCheck handles GET /health.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Message: "Server alive"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithField("error", err).Error("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, httpErr *httperrors.HTTPError) {
	writeJSON(w, httpErr.Code, SubmissionResponse{
		Success: false,
		Error:   httpErr.Message,
		Details: httpErr.Details,
	})
}
