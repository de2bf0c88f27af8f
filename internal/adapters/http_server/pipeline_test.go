package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"staybook/internal/domain"
)

func TestPipeline_StageOrder(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", domain.NewNotFound("Booking", "7"), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", domain.NewNotFound("Booking", "7")), http.StatusNotFound},
		{"validation", domain.NewValidation("bad"), http.StatusBadRequest},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"throttled", domain.ErrThrottled, http.StatusTooManyRequests},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	p := NewPipeline(zerolog.Nop(), DefaultStages()...)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h := p.Handle(func(http.ResponseWriter, *http.Request) error { return tc.err })
			h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestPipeline_FirstHandlingStageWins(t *testing.T) {
	var calls []string
	stage := func(name string, handles bool) ErrorStage {
		return func(w http.ResponseWriter, r *http.Request, err error) bool {
			calls = append(calls, name)
			if handles {
				w.WriteHeader(http.StatusTeapot)
			}
			return handles
		}
	}
	p := NewPipeline(zerolog.Nop(), stage("a", false), stage("b", true), stage("c", true))

	rec := httptest.NewRecorder()
	p.Dispatch(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("x"))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestPipeline_NoErrorWritesNothingExtra(t *testing.T) {
	p := NewPipeline(zerolog.Nop(), DefaultStages()...)
	rec := httptest.NewRecorder()
	p.Handle(func(w http.ResponseWriter, r *http.Request) error {
		writeJSON(w, http.StatusCreated, map[string]string{"id": "1"})
		return nil
	})(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"1"}`, rec.Body.String())
}
