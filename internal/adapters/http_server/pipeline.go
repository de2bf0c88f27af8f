package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"staybook/internal/domain"
)

const internalMessage = "An error occurred on the server, please double-check your request!"

// HandlerFunc is a route handler that reports failures instead of writing them.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorStage renders err and returns true, or returns false to forward it.
type ErrorStage func(w http.ResponseWriter, r *http.Request, err error) bool

// Pipeline dispatches handler errors through an ordered list of stages.
// The terminal stage always handles, so every request gets a JSON response.
type Pipeline struct {
	stages []ErrorStage
	log    zerolog.Logger
}

func NewPipeline(l zerolog.Logger, stages ...ErrorStage) *Pipeline {
	return &Pipeline{stages: stages, log: l}
}

// DefaultStages is the error chain mounted on every resource route.
func DefaultStages() []ErrorStage {
	return []ErrorStage{NotFoundStage, ValidationStage, UnauthorizedStage, ThrottledStage}
}

func (p *Pipeline) Handle(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			p.Dispatch(w, r, err)
		}
	}
}

func (p *Pipeline) Dispatch(w http.ResponseWriter, r *http.Request, err error) {
	for _, stage := range p.stages {
		if stage(w, r, err) {
			return
		}
	}
	p.terminal(w, r, err)
}

// terminal logs the full error and answers with a generic message.
func (p *Pipeline) terminal(w http.ResponseWriter, r *http.Request, err error) {
	p.log.Error().
		Err(err).
		Str("request_id", chimw.GetReqID(r.Context())).
		Str("method", r.Method).
		Str("route", routePattern(r)).
		Msg("unhandled error")
	writeMessage(w, http.StatusInternalServerError, internalMessage)
}

func NotFoundStage(w http.ResponseWriter, r *http.Request, err error) bool {
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		return false
	}
	writeMessage(w, http.StatusNotFound, nf.Error())
	return true
}

func ValidationStage(w http.ResponseWriter, r *http.Request, err error) bool {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	writeMessage(w, http.StatusBadRequest, ve.Message)
	return true
}

// UnauthorizedStage only sees login failures; the auth middleware answers
// token failures itself.
func UnauthorizedStage(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, domain.ErrUnauthorized) {
		return false
	}
	writeMessage(w, http.StatusUnauthorized, "Invalid credentials!")
	return true
}

func ThrottledStage(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, domain.ErrThrottled) {
		return false
	}
	writeMessage(w, http.StatusTooManyRequests, "Too many login attempts, try again later.")
	return true
}

type messageBody struct {
	Message string `json:"message"`
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageBody{Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}
