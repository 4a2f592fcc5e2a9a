package report

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/npillmayer/integrate"
)

// MessageOK is the message of a successful integration.
const MessageOK = "OK"

// Summary is the flat form of an integration result.
type Summary struct {
	Value        float64
	AbsError     float64
	Subdivisions int
	Neval        int
	Message      string         // MessageOK or the error text
	Kind         integrate.Kind // 0 for successful integrations and foreign errors
}

// Summarize creates a summary from the return values of an integration.
// For integration errors, the outcome attached to the error is used.
func Summarize(out integrate.Outcome, err error) Summary {
	if err == nil {
		return summary(out, MessageOK, 0)
	}
	var failure integrate.Failure
	if errors.As(err, &failure) {
		out = failure.Result()
	}
	return summary(out, err.Error(), integrate.KindOf(err))
}

// SummarizeAll creates summaries for the results of a batch integration.
func SummarizeAll(results []integrate.TaskResult) []Summary {
	s := make([]Summary, len(results))
	for i, r := range results {
		s[i] = Summarize(r.Outcome, r.Err)
	}
	return s
}

func summary(out integrate.Outcome, msg string, kind integrate.Kind) Summary {
	return Summary{
		Value:        out.Value,
		AbsError:     out.AbsError,
		Subdivisions: out.Subdivisions,
		Neval:        out.Neval,
		Message:      msg,
		Kind:         kind,
	}
}

// OK is true for summaries of successful integrations.
func (s Summary) OK() bool {
	return s.Message == MessageOK
}

// Outcome returns the integration result held by s.
func (s Summary) Outcome() integrate.Outcome {
	return integrate.Outcome{
		Value:        s.Value,
		AbsError:     s.AbsError,
		Subdivisions: s.Subdivisions,
		Neval:        s.Neval,
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("%v (%d subdivisions): %s", s.Outcome(), s.Subdivisions, s.Message)
}

// field names, in display order
const (
	fieldValue        = "value"
	fieldAbsError     = "abs.error"
	fieldSubdivisions = "subdivisions"
	fieldNeval        = "neval"
	fieldMessage      = "message"
	fieldKind         = "kind"
)

type field struct {
	name, text string
}

// fields lists the displayable fields of s. Kind is not displayed.
func (s Summary) fields() []field {
	return []field{
		{fieldValue, strconv.FormatFloat(s.Value, 'g', -1, 64)},
		{fieldAbsError, strconv.FormatFloat(s.AbsError, 'g', -1, 64)},
		{fieldSubdivisions, strconv.Itoa(s.Subdivisions)},
		{fieldNeval, strconv.Itoa(s.Neval)},
		{fieldMessage, s.Message},
	}
}

func kindName(k integrate.Kind) string {
	if k == 0 {
		return ""
	}
	return k.String()
}

func kindFromName(name string) (integrate.Kind, error) {
	if name == "" {
		return 0, nil
	}
	for k := integrate.MaxSubdivisions; k <= integrate.EvaluationFailure; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("report: unknown kind of failure %q", name)
}
