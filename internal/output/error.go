package output

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	rdxerr "github.com/mrz1836/rolodex/pkg/errors"
)

// ErrorOutput is the JSON envelope of a failed command.
type ErrorOutput struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error details.
type ErrorDetail struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	Suggestion string            `json:"suggestion,omitempty"`
	ExitCode   int               `json:"exit_code"`
}

// Describe converts err into its printable detail.
func Describe(err error) ErrorDetail {
	var re *rdxerr.RolodexError
	if errors.As(err, &re) {
		msg := re.Message
		var inner *rdxerr.RolodexError
		if re.Cause != nil && !errors.As(re.Cause, &inner) {
			msg = fmt.Sprintf("%s: %v", msg, re.Cause)
		}
		return ErrorDetail{
			Code:       re.Code,
			Message:    msg,
			Details:    re.Details,
			Suggestion: re.Suggestion,
			ExitCode:   re.ExitCode,
		}
	}
	return ErrorDetail{
		Code:     rdxerr.Code(err),
		Message:  err.Error(),
		ExitCode: rdxerr.ExitGeneral,
	}
}

// FormatError writes err in format. A nil error writes nothing.
func FormatError(w io.Writer, err error, format Format) error {
	if err == nil {
		return nil
	}

	d := Describe(err)
	if format == FormatJSON {
		return WriteJSON(w, ErrorOutput{Error: d})
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Error: %s\n", d.Message)
	if len(d.Details) > 0 {
		keys := make([]string, 0, len(d.Details))
		for k := range d.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			fmt.Fprintf(&sb, "  %s: %s\n", k, d.Details[k])
		}
	}
	if d.Suggestion != "" {
		fmt.Fprintf(&sb, "\nSuggestion: %s\n", d.Suggestion)
	}

	_, writeErr := io.WriteString(w, sb.String())
	return writeErr
}

// FormatSuccess writes a success message.
func FormatSuccess(w io.Writer, message string, format Format) error {
	if format == FormatJSON {
		return WriteJSON(w, map[string]string{"status": "success", "message": message})
	}
	_, err := fmt.Fprintln(w, message)
	return err
}
