// Package acl implements the Anti-Corruption Layer between the upstream retro
// API and the board domain. Wire types and their translators live in
// acl/retroapi; the HTTP client and the shared error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/retro-board/internal/domain"
)

const maxErrorBodySize = 1 << 20

// problemDetail is the subset of an RFC 7807 body the upstream sends.
type problemDetail struct {
	Detail string        `json:"detail"`
	Errors []fieldDetail `json:"errors"`
}

type fieldDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// statusErrors maps upstream statuses to domain sentinels. 5xx is handled
// separately.
var statusErrors = map[int]error{
	http.StatusNotFound:        domain.ErrNotFound,
	http.StatusGone:            domain.ErrNotFound,
	http.StatusConflict:        domain.ErrConflict,
	http.StatusLocked:          domain.ErrConflict,
	http.StatusUnauthorized:    domain.ErrForbidden,
	http.StatusForbidden:       domain.ErrForbidden,
	http.StatusTooManyRequests: domain.ErrUnavailable,
}

// TranslateHTTPError maps an upstream error response to a domain error. The
// detail of an application/problem+json body becomes the message; 400 and
// 422 bodies that list field errors become a *domain.ValidationError.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch code := resp.StatusCode; {
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		if len(pd.Errors) > 0 {
			return toValidationError(pd.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	case statusErrors[code] != nil:
		return fmt.Errorf("%s: %w", detail, statusErrors[code])
	default:
		return fmt.Errorf("unexpected status %d: %s", code, detail)
	}
}

// parseProblemDetail reads an RFC 7807 body. Anything else yields the zero
// value.
func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationError keys field errors by their location minus the "body."
// prefix.
func toValidationError(details []fieldDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		fields[strings.TrimPrefix(d.Location, "body.")] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
