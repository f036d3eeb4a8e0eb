package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// Exit codes, one per error kind.
const (
	ExitSuccess      = 0
	ExitServer       = 1
	ExitValidation   = 2
	ExitUnauthorized = 3
	ExitNotFound     = 4
	ExitConflict     = 5
	ExitTimeout      = 6
)

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch domain.KindOf(err) {
	case domain.KindNone:
		return ExitSuccess
	case domain.KindValidation:
		return ExitValidation
	case domain.KindUnauthorized:
		return ExitUnauthorized
	case domain.KindNotFound:
		return ExitNotFound
	case domain.KindConflict:
		return ExitConflict
	case domain.KindTimeout:
		return ExitTimeout
	default:
		return ExitServer
	}
}

// errorResponse is the JSON error body written to stderr in json format.
type errorResponse struct {
	Kind    domain.ErrorKind    `json:"kind"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

// WriteError reports err on w in the given format.
func WriteError(w io.Writer, format string, err error) {
	var ve *domain.ValidationError
	errors.As(err, &ve)

	if format == formatJSON {
		resp := errorResponse{Kind: domain.KindOf(err), Message: err.Error()}
		if ve != nil {
			resp.Fields = ve.Errors
		}
		json.NewEncoder(w).Encode(resp) //nolint:errcheck
		return
	}

	fmt.Fprintf(w, "Error [%s]: %v\n", domain.KindOf(err), err)
	if ve != nil {
		for _, fe := range ve.Errors {
			fmt.Fprintf(w, "  %s: %s\n", fe.Field, fe.Message)
		}
	}
}

// printer renders command results either as JSON or as aligned text.
type printer struct {
	format string
	w      io.Writer
}

// emit writes v as JSON, or calls text with a tabwriter in text format.
func (p *printer) emit(v any, text func(tw *tabwriter.Writer)) error {
	if p.format == formatJSON {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	text(tw)
	return tw.Flush()
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
