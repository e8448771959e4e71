// Package api exposes HTTP handlers for the enrollment service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"example.com/enrollment/internal/domain"
	"example.com/enrollment/internal/events"
	"example.com/enrollment/internal/observability"
	"example.com/enrollment/internal/view"
)

// Handler coordinates HTTP requests with the enrollment store.
type Handler struct {
	store     *domain.Store
	publisher events.Publisher
}

// NewHandler builds a Handler. A nil publisher disables event delivery.
func NewHandler(store *domain.Store, publisher events.Publisher) *Handler {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Handler{store: store, publisher: publisher}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/activities", h.activities)
	mux.HandleFunc("/activities/views", h.activityViews)
	mux.HandleFunc("/activities/", h.activityAction)
	mux.HandleFunc("/healthz", healthz)
	mux.HandleFunc("/", root)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// root redirects the bare path to the static client.
func root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
		return
	}
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	listing := make(map[string]ActivityDetail)
	for _, activity := range h.store.ListActivities() {
		listing[activity.Name] = ActivityDetail{
			Description:     activity.Description,
			Schedule:        activity.Schedule,
			MaxParticipants: activity.MaxParticipants,
			Participants:    activity.Participants,
		}
	}
	writeJSON(w, http.StatusOK, listing)
}

func (h *Handler) activityViews(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	views := view.Project(h.store.ListActivities())
	records := make([]ActivityViewRecord, 0, len(views))
	for _, v := range views {
		participants := make([]ParticipantRecord, 0, len(v.Participants))
		for _, p := range v.Participants {
			participants = append(participants, ParticipantRecord{ID: p.ID, Label: p.Label})
		}
		records = append(records, ActivityViewRecord{
			Name:         v.Name,
			Description:  v.Description,
			Schedule:     v.Schedule,
			SpotsLeft:    v.SpotsLeft,
			Participants: participants,
		})
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) activityAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	slash := strings.LastIndex(rest, "/")
	if slash <= 0 {
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
		return
	}
	name, action := rest[:slash], rest[slash+1:]
	email := r.URL.Query().Get("email")

	switch action {
	case "signup":
		h.signup(w, r, name, email)
	case "unregister":
		h.unregister(w, r, name, email)
	default:
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
	}
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request, name, email string) {
	after, err := h.store.Signup(name, email)
	if err != nil {
		status, kind, detail := failureResponse(err)
		observability.RecordSignup(kind)
		writeError(w, status, kind, detail)
		return
	}

	observability.RecordSignup("success")
	observability.RecordSpotsAvailable(after.Name, after.SpotsLeft())
	h.publish(r, events.TypeSignedUp, after, email)

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request, name, email string) {
	after, err := h.store.Withdraw(name, email)
	if err != nil {
		status, kind, detail := failureResponse(err)
		observability.RecordWithdrawal(kind)
		writeError(w, status, kind, detail)
		return
	}

	observability.RecordWithdrawal("success")
	observability.RecordSpotsAvailable(after.Name, after.SpotsLeft())
	h.publish(r, events.TypeWithdrawn, after, email)

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// publish delivers the enrollment event. Events are advisory, so a delivery
// failure is logged and never surfaced to the client.
func (h *Handler) publish(r *http.Request, eventType string, after domain.Activity, email string) {
	event := events.EnrollmentChanged{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		Activity:   after.Name,
		Email:      email,
		SpotsLeft:  after.SpotsLeft(),
		OccurredAt: time.Now().UTC(),
	}
	if err := h.publisher.PublishEnrollmentChanged(r.Context(), event); err != nil {
		log.Printf("publish %s for %q: %v", eventType, after.Name, err)
	}
}

// failureResponse maps a store error to an HTTP status, a machine-readable
// kind, and the human-readable detail clients surface verbatim.
func failureResponse(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrUnknownActivity):
		return http.StatusNotFound, "unknown_activity", "Activity not found"
	case errors.Is(err, domain.ErrInvalidParticipant):
		return http.StatusBadRequest, "invalid_participant", "Email is required"
	case errors.Is(err, domain.ErrDuplicateParticipant):
		return http.StatusBadRequest, "duplicate_participant", "Student is already signed up for this activity"
	case errors.Is(err, domain.ErrActivityFull):
		return http.StatusBadRequest, "activity_full", "Activity is full"
	case errors.Is(err, domain.ErrParticipantNotFound):
		return http.StatusBadRequest, "participant_not_found", "Student is not signed up for this activity"
	}
	return http.StatusInternalServerError, "server_error", err.Error()
}

// ActivityDetail is the per-activity value in the GET /activities listing.
type ActivityDetail struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// ActivityViewRecord is one entry of the ordered GET /activities/views
// response.
type ActivityViewRecord struct {
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	Schedule     string              `json:"schedule"`
	SpotsLeft    int                 `json:"spots_left"`
	Participants []ParticipantRecord `json:"participants"`
}

// ParticipantRecord pairs a participant id with its display label.
type ParticipantRecord struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// MessageResponse carries the confirmation text for successful mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
