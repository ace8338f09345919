package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/retro-board/internal/domain/query"
	"github.com/jsamuelsen11/retro-board/internal/domain/retro"
	"github.com/jsamuelsen11/retro-board/internal/domain/step"
	"github.com/jsamuelsen11/retro-board/internal/ports"
)

const testSessionID = "s-1"

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func readyView() *ports.BoardView {
	return &ports.BoardView{
		SessionID: testSessionID,
		ShareID:   "retro-1",
		UserID:    "u1",
		Version:   3,
		Phase:     ports.PhaseReady,
		Name:      "Sprint 12",
		Step:      step.Brainstorm,
		Columns: []ports.ColumnView{{
			ID:   "c1",
			Name: "Went well",
			Cards: []retro.Card{
				{ID: "1", ColumnID: "c1", Text: "foo"},
				{ID: "2", ColumnID: "c1", Text: "bar", Votes: []string{"u1", "u2"}},
			},
		}},
		Queries: query.Set{query.FamilyJoinRetro: query.Success()},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
