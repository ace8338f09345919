// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/retro-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/retro-board/internal/domain/retro"
	"github.com/jsamuelsen11/retro-board/internal/ports"
)

// SessionHandler handles HTTP requests for viewer sessions on a retro board.
type SessionHandler struct {
	svc ports.RetroService
}

// NewSessionHandler creates a new SessionHandler with the given service port.
func NewSessionHandler(svc ports.RetroService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// viewFunc is a session operation that returns the updated board view.
type viewFunc func(ctx context.Context, sessionID string) (*ports.BoardView, error)

// serveView runs fn against the session in the path and writes its view.
func (h *SessionHandler) serveView(w http.ResponseWriter, r *http.Request, fn viewFunc) {
	id, err := pathParam(r, "id", "session_id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	v, err := fn(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBoardViewResponse(v))
}

// serveViewWithParam is serveView for operations addressed by a second path
// parameter such as a column or card id.
func (h *SessionHandler) serveViewWithParam(
	w http.ResponseWriter,
	r *http.Request,
	param, field string,
	fn func(ctx context.Context, sessionID, arg string) (*ports.BoardView, error),
) {
	arg, err := pathParam(r, param, field)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.serveView(w, r, func(ctx context.Context, sessionID string) (*ports.BoardView, error) {
		return fn(ctx, sessionID, arg)
	})
}

// OpenSession handles POST /api/v1/retros/{shareId}/sessions.
func (h *SessionHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	shareID, err := pathParam(r, "shareId", "share_id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.OpenSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	v, err := h.svc.Open(r.Context(), shareID, req.UserID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/sessions/"+v.SessionID)
	writeJSON(w, http.StatusCreated, dto.ToBoardViewResponse(v))
}

// GetSession handles GET /api/v1/sessions/{id}.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, h.svc.View)
}

// CloseSession handles DELETE /api/v1/sessions/{id}.
func (h *SessionHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id", "session_id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.Close(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Search handles PUT /api/v1/sessions/{id}/search.
func (h *SessionHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req dto.SearchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.serveView(w, r, func(ctx context.Context, sessionID string) (*ports.BoardView, error) {
		return h.svc.Search(ctx, sessionID, *req.Query)
	})
}

// ToggleSort handles POST /api/v1/sessions/{id}/sort.
func (h *SessionHandler) ToggleSort(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, h.svc.ToggleSort)
}

// ToggleColumn handles POST /api/v1/sessions/{id}/columns/{columnId}/visibility.
func (h *SessionHandler) ToggleColumn(w http.ResponseWriter, r *http.Request) {
	h.serveViewWithParam(w, r, "columnId", "column_id", h.svc.ToggleColumn)
}

// AddColumn handles POST /api/v1/sessions/{id}/columns. The command runs
// asynchronously; its outcome appears in the add_column query.
func (h *SessionHandler) AddColumn(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id", "session_id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AddColumnRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.AddColumn(r.Context(), id, req.Name, req.Icon); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// AddCard handles POST /api/v1/sessions/{id}/columns/{columnId}/cards. The
// command runs asynchronously; its outcome appears in the add_card query.
func (h *SessionHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id", "session_id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	columnID, err := pathParam(r, "columnId", "column_id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AddCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.AddCard(r.Context(), id, columnID, req.Text); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// StartDrag handles POST /api/v1/sessions/{id}/drag.
func (h *SessionHandler) StartDrag(w http.ResponseWriter, r *http.Request) {
	var req dto.DragRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.serveView(w, r, func(ctx context.Context, sessionID string) (*ports.BoardView, error) {
		return h.svc.StartDrag(ctx, sessionID, req.CardID)
	})
}

// DropOnColumn handles POST /api/v1/sessions/{id}/drop/columns/{columnId}.
func (h *SessionHandler) DropOnColumn(w http.ResponseWriter, r *http.Request) {
	h.serveViewWithParam(w, r, "columnId", "column_id", h.svc.DropOnColumn)
}

// DropOnCard handles POST /api/v1/sessions/{id}/drop/cards/{cardId}.
func (h *SessionHandler) DropOnCard(w http.ResponseWriter, r *http.Request) {
	h.serveViewWithParam(w, r, "cardId", "card_id", h.svc.DropOnCard)
}

// ConfirmJoin handles POST /api/v1/sessions/{id}/join/confirm.
func (h *SessionHandler) ConfirmJoin(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, h.svc.ConfirmJoin)
}

// CancelJoin handles POST /api/v1/sessions/{id}/join/cancel.
func (h *SessionHandler) CancelJoin(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, h.svc.CancelJoin)
}

// Messages handles GET /api/v1/sessions/{id}/messages. Reading drains them.
func (h *SessionHandler) Messages(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id", "session_id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	msgs, err := h.svc.Messages(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMessageListResponse(msgs))
}

// Moderator handles GET /api/v1/sessions/{id}/moderator.
func (h *SessionHandler) Moderator(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id", "session_id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	m, err := h.svc.Moderator(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToModeratorResponse(m))
}

// NextStep handles POST /api/v1/sessions/{id}/steps/next.
func (h *SessionHandler) NextStep(w http.ResponseWriter, r *http.Request) {
	h.changeStep(w, r, h.svc.NextStep)
}

// PreviousStep handles POST /api/v1/sessions/{id}/steps/previous.
func (h *SessionHandler) PreviousStep(w http.ResponseWriter, r *http.Request) {
	h.changeStep(w, r, h.svc.PreviousStep)
}

// changeStep answers 202 when a step change was issued and 204 when the
// board was already at the boundary.
func (h *SessionHandler) changeStep(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, sessionID string) (bool, error),
) {
	id, err := pathParam(r, "id", "session_id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	issued, err := fn(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if !issued {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// Export handles GET /api/v1/sessions/{id}/export.csv.
func (h *SessionHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id", "session_id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	rows, err := h.svc.ExportRows(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeCSV(w, r, retro.ExportFilename, rows)
}
