// Package api - Form instance handlers
// Field events and submissions are applied to the instance's own engine.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"kitchhub/core/engine"
	"kitchhub/core/form"
	"kitchhub/core/submission"
	"kitchhub/internal/errors"
)

// handleCreateForm handles POST /forms
func (s *Server) handleCreateForm(w http.ResponseWriter, r *http.Request) {
	id, f := s.sessions.Create()
	s.writeJSON(w, FormCreatedResponse{ID: id.String(), Fields: f.States()}, http.StatusCreated)
}

// handleDeleteForm handles DELETE /forms/{id}
func (s *Server) handleDeleteForm(w http.ResponseWriter, r *http.Request) {
	id, ok := s.formID(w, r)
	if !ok {
		return
	}
	if !s.sessions.Delete(id) {
		s.writeDomainError(w, errors.NotFound("form", id.String()))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleFieldEvent handles POST /forms/{id}/events
func (s *Server) handleFieldEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := s.formID(w, r)
	if !ok {
		return
	}

	var req FieldEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if req.Field == "" {
		s.writeDomainError(w, errors.Input("field is required"))
		return
	}
	if req.Type != EventBlur && req.Type != EventInput {
		s.writeDomainError(w, errors.Input(`type must be "blur" or "input"`))
		return
	}

	var resp FieldEventResponse
	found := s.sessions.With(id, func(f *form.Engine) {
		resp = applyEvent(f, &req)
	})
	if !found {
		s.writeDomainError(w, errors.NotFound("form", id.String()))
		return
	}
	s.writeJSON(w, resp, http.StatusOK)
}

// applyEvent drives the engine for one UI event
func applyEvent(f *form.Engine, req *FieldEventRequest) FieldEventResponse {
	resp := FieldEventResponse{Field: req.Field}

	kind, validated := form.ParseFieldKind(req.Field)
	if !validated {
		// Not gated: report as valid, nothing to show
		resp.Status = form.StatusValid
		return resp
	}

	var state form.FieldState
	switch req.Type {
	case EventBlur:
		f.Blur(req.Field, req.toValue())
		state = f.State(kind)
		resp.Rechecked = true
	case EventInput:
		state, resp.Rechecked = f.Edit(req.Field, req.toValue())
	}

	resp.Status = state.Status()
	resp.ShowError = state.ShowsError()
	if resp.ShowError {
		resp.Message = form.Message(kind)
	}
	return resp
}

// handleSubmit handles POST /forms/{id}/submit
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := s.formID(w, r)
	if !ok {
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	var (
		result  form.SubmissionResult
		receipt *submission.Receipt
		err     error
	)
	found := s.sessions.With(id, func(f *form.Engine) {
		result, receipt, err = engine.Submit(r.Context(), f, req.toValues(), s.submitter)
	})
	if !found {
		s.writeDomainError(w, errors.NotFound("form", id.String()))
		return
	}
	if err != nil {
		s.writeDomainError(w, errors.Internal("submission failed", err))
		return
	}

	resp := SubmitResponse{Result: result, Receipt: receipt}
	if !result.IsAccepted() {
		resp.Messages = result.Messages()
		s.logger.Debug("form rejected",
			zap.String("form_id", id.String()),
			zap.String("first_invalid_field", result.FirstInvalidField),
		)
		s.writeJSON(w, resp, http.StatusUnprocessableEntity)
		return
	}
	s.writeJSON(w, resp, http.StatusOK)
}

// formID parses the {id} URL parameter
func (s *Server) formID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		s.writeDomainError(w, errors.NotFound("form", raw))
		return uuid.UUID{}, false
	}
	return id, true
}
