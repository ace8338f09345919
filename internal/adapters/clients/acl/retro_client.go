package acl

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/retro-board/internal/adapters/clients/acl/retroapi"
	"github.com/jsamuelsen11/retro-board/internal/domain/retro"
	"github.com/jsamuelsen11/retro-board/internal/domain/step"
	"github.com/jsamuelsen11/retro-board/internal/platform/httpclient"
	"github.com/jsamuelsen11/retro-board/internal/ports"
)

// Compile-time interface check.
var _ ports.RetroChannel = (*RetroClient)(nil)

// RetroClient is the outbound adapter for the upstream retro API. It
// implements [ports.RetroChannel]; wire types are translated by
// [retroapi] and HTTP errors are mapped to domain errors by
// [TranslateHTTPError].
//
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting, retries of idempotent calls, and OpenTelemetry tracing.
type RetroClient struct {
	req *Requester
}

// NewRetroClient creates a RetroClient that sends requests through client.
// The client's BaseURL should point at the retro API root.
func NewRetroClient(client *httpclient.Client, logger *slog.Logger) *RetroClient {
	return &RetroClient{req: NewRequester(client, logger)}
}

func retroPath(shareID string, parts ...string) string {
	p := "/api/v1/retros/" + url.PathEscape(shareID)
	for _, part := range parts {
		p += "/" + url.PathEscape(part)
	}
	return p
}

// JoinRetro sends POST /api/v1/retros/{shareId}/join. Joining is
// idempotent upstream, so the call may be retried.
func (c *RetroClient) JoinRetro(ctx context.Context, shareID, userID string) (*retro.Retro, error) {
	var dto retroapi.RetroDTO
	body := retroapi.JoinRequestDTO{UserID: userID}
	if err := c.req.Do(httpclient.AllowReplay(ctx), http.MethodPost, retroPath(shareID, "join"), http.StatusOK, body, &dto); err != nil {
		return nil, err
	}
	r := retroapi.ToDomainRetro(&dto)
	if r.ShareID == "" {
		r.ShareID = shareID
	}
	return &r, nil
}

// AddColumn sends POST /api/v1/retros/{shareId}/columns.
func (c *RetroClient) AddColumn(ctx context.Context, shareID string, col retro.Column) (*retro.Column, error) {
	var dto retroapi.ColumnDTO
	if err := c.req.Do(ctx, http.MethodPost, retroPath(shareID, "columns"), http.StatusCreated, retroapi.ToAddColumnRequest(col), &dto); err != nil {
		return nil, err
	}
	created := retroapi.ToDomainColumn(&dto)
	return &created, nil
}

// AddCard sends POST /api/v1/retros/{shareId}/cards.
func (c *RetroClient) AddCard(ctx context.Context, shareID, columnID, text string) (*retro.Card, error) {
	var dto retroapi.CardDTO
	body := retroapi.AddCardRequestDTO{ColumnID: columnID, Text: text}
	if err := c.req.Do(ctx, http.MethodPost, retroPath(shareID, "cards"), http.StatusCreated, body, &dto); err != nil {
		return nil, err
	}
	card := retroapi.ToDomainCard(&dto)
	return &card, nil
}

// EditCard sends PATCH /api/v1/retros/{shareId}/cards/{cardId}.
func (c *RetroClient) EditCard(ctx context.Context, shareID string, edit retro.CardEdit) (*retro.Card, error) {
	if err := edit.Validate(); err != nil {
		return nil, err
	}
	var dto retroapi.CardDTO
	if err := c.req.Do(ctx, http.MethodPatch, retroPath(shareID, "cards", edit.ID), http.StatusOK, retroapi.ToEditCardRequest(edit), &dto); err != nil {
		return nil, err
	}
	card := retroapi.ToDomainCard(&dto)
	return &card, nil
}

// RemoveCard sends DELETE /api/v1/retros/{shareId}/cards/{cardId}.
func (c *RetroClient) RemoveCard(ctx context.Context, shareID, cardID string) error {
	return c.req.Do(ctx, http.MethodDelete, retroPath(shareID, "cards", cardID), http.StatusNoContent, nil, nil)
}

// ChangeStep sends PUT /api/v1/retros/{shareId}/step.
func (c *RetroClient) ChangeStep(ctx context.Context, shareID string, key step.Key) error {
	body := retroapi.ChangeStepRequestDTO{Step: key.String()}
	return c.req.Do(ctx, http.MethodPut, retroPath(shareID, "step"), http.StatusNoContent, body, nil)
}
