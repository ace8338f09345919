// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/retro-board/internal/domain/query"
	"github.com/jsamuelsen11/retro-board/internal/domain/retro"
	"github.com/jsamuelsen11/retro-board/internal/ports"
)

// BoardViewResponse represents one viewer's board in HTTP responses.
// Outside the ready phase only the session fields, phase, error and
// queries are populated.
type BoardViewResponse struct {
	SessionID string `json:"session_id"`
	ShareID   string `json:"share_id"`
	UserID    string `json:"user_id"`
	Version   uint64 `json:"version"`
	Phase     string `json:"phase"`
	Error     string `json:"error,omitempty"`

	Name        string `json:"name,omitempty"`
	Step        string `json:"step,omitempty"`
	IsModerator bool   `json:"is_moderator"`

	Search         string `json:"search"`
	SearchLabel    string `json:"search_label,omitempty"`
	SortVotes      bool   `json:"sort_votes"`
	ShowSortToggle bool   `json:"show_sort_toggle"`
	SortLabel      string `json:"sort_label,omitempty"`

	ShowRemainingVotes bool `json:"show_remaining_votes"`
	RemainingVotes     int  `json:"remaining_votes"`

	Columns    []ColumnResponse         `json:"columns"`
	Users      []UserResponse           `json:"users"`
	DraggingID string                   `json:"dragging_id,omitempty"`
	JoinDialog *JoinDialogResponse      `json:"join_dialog,omitempty"`
	Queries    map[string]QueryResponse `json:"queries"`
}

// ColumnResponse is one column with its visible cards.
type ColumnResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Icon        string         `json:"icon,omitempty"`
	Hidden      bool           `json:"hidden"`
	ToggleLabel string         `json:"toggle_label"`
	Cards       []CardResponse `json:"cards"`
}

// CardResponse is a single card.
type CardResponse struct {
	ID       string   `json:"id"`
	ColumnID string   `json:"column_id"`
	Text     string   `json:"text"`
	Votes    []string `json:"votes"`
}

// UserResponse is a present participant.
type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
}

// JoinDialogResponse is the pending card join awaiting confirmation.
type JoinDialogResponse struct {
	Dragged      CardResponse `json:"dragged"`
	Target       CardResponse `json:"target"`
	TitleLabel   string       `json:"title_label"`
	ConfirmLabel string       `json:"confirm_label"`
	CancelLabel  string       `json:"cancel_label"`
}

// QueryResponse is the status of one command family.
type QueryResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ModeratorResponse represents the moderator panel.
type ModeratorResponse struct {
	TitleLabel         string `json:"title_label"`
	Step               string `json:"step"`
	HasPrevious        bool   `json:"has_previous"`
	PreviousLabel      string `json:"previous_label"`
	HasNext            bool   `json:"has_next"`
	NextLabel          string `json:"next_label"`
	ShowRemainingVotes bool   `json:"show_remaining_votes"`
	RemainingVotes     int    `json:"remaining_votes"`
	DownloadLabel      string `json:"download_label"`
	ExportFilename     string `json:"export_filename"`
}

// MessageResponse is one drained notification.
type MessageResponse struct {
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// MessageListResponse represents the drained notifications of a session.
type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	Count    int               `json:"count"`
}

// ToBoardViewResponse converts a ports.BoardView to an HTTP response DTO.
// Every known command family is reported so clients never see a missing key.
func ToBoardViewResponse(v *ports.BoardView) BoardViewResponse {
	resp := BoardViewResponse{
		SessionID:          v.SessionID,
		ShareID:            v.ShareID,
		UserID:             v.UserID,
		Version:            v.Version,
		Phase:              string(v.Phase),
		Error:              v.Error,
		Name:               v.Name,
		Step:               v.Step.String(),
		IsModerator:        v.IsModerator,
		Search:             v.Search,
		SearchLabel:        v.SearchLabel,
		SortVotes:          v.SortVotes,
		ShowSortToggle:     v.ShowSortToggle,
		SortLabel:          v.SortLabel,
		ShowRemainingVotes: v.ShowRemainingVotes,
		RemainingVotes:     v.RemainingVotes,
		Columns:            make([]ColumnResponse, len(v.Columns)),
		Users:              make([]UserResponse, len(v.Users)),
		DraggingID:         v.DraggingID,
		Queries:            make(map[string]QueryResponse, len(query.Families)),
	}

	for i, col := range v.Columns {
		resp.Columns[i] = ColumnResponse{
			ID:          col.ID,
			Name:        col.Name,
			Icon:        col.Icon,
			Hidden:      col.Hidden,
			ToggleLabel: col.ToggleLabel,
			Cards:       toCardResponses(col.Cards),
		}
	}

	for i, u := range v.Users {
		resp.Users[i] = UserResponse{ID: u.ID, Name: u.Name, Initials: u.Initials}
	}

	if d := v.JoinDialog; d != nil {
		resp.JoinDialog = &JoinDialogResponse{
			Dragged:      toCardResponse(d.Dragged),
			Target:       toCardResponse(d.Target),
			TitleLabel:   d.TitleLabel,
			ConfirmLabel: d.ConfirmLabel,
			CancelLabel:  d.CancelLabel,
		}
	}

	for _, f := range query.Families {
		q := v.Queries.Get(f)
		resp.Queries[f.String()] = QueryResponse{Status: q.State().String(), Error: q.Error}
	}

	return resp
}

// ToModeratorResponse converts a ports.ModeratorView to an HTTP response DTO.
func ToModeratorResponse(m *ports.ModeratorView) ModeratorResponse {
	return ModeratorResponse{
		TitleLabel:         m.TitleLabel,
		Step:               m.Step.String(),
		HasPrevious:        m.HasPrevious,
		PreviousLabel:      m.PreviousLabel,
		HasNext:            m.HasNext,
		NextLabel:          m.NextLabel,
		ShowRemainingVotes: m.ShowRemainingVotes,
		RemainingVotes:     m.RemainingVotes,
		DownloadLabel:      m.DownloadLabel,
		ExportFilename:     m.ExportFilename,
	}
}

// ToMessageListResponse converts drained notifications to an HTTP list
// response DTO.
func ToMessageListResponse(msgs []ports.Message) MessageListResponse {
	items := make([]MessageResponse, len(msgs))
	for i, m := range msgs {
		items[i] = MessageResponse{
			Text:      m.Text,
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
		}
	}
	return MessageListResponse{
		Messages: items,
		Count:    len(items),
	}
}

func toCardResponses(cards []retro.Card) []CardResponse {
	out := make([]CardResponse, len(cards))
	for i, c := range cards {
		out[i] = toCardResponse(c)
	}
	return out
}

func toCardResponse(c retro.Card) CardResponse {
	votes := c.Votes
	if votes == nil {
		votes = []string{}
	}
	return CardResponse{
		ID:       c.ID,
		ColumnID: c.ColumnID,
		Text:     c.Text,
		Votes:    votes,
	}
}
