package report

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/integrate"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSummarizeSuccess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "integrate")
	defer teardown()
	//
	out, err := integrate.Integrate(func(x float64) float64 { return math.Exp(-x) }, 0, math.Inf(1))
	s := Summarize(out, err)
	if !s.OK() || s.Message != "OK" || s.Kind != 0 {
		t.Fatalf("expected successful summary, have %v", s)
	}
	if s.Outcome() != out {
		t.Errorf("expected summary to hold outcome %v, have %v", out, s.Outcome())
	}
	if math.Abs(s.Value-1) > 1e-6 {
		t.Errorf("expected ∫exp(-x) = 1, have %g", s.Value)
	}
	t.Logf("summary: %v", s)
}

func TestSummarizeFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "integrate")
	defer teardown()
	//
	partial := integrate.Outcome{Value: 3, AbsError: 7, Subdivisions: 100, Neval: 4179}
	s := Summarize(integrate.Outcome{}, &integrate.Error{Kind: integrate.Divergence, Outcome: partial})
	if s.OK() || s.Message != "the integral is probably divergent" || s.Kind != integrate.Divergence {
		t.Errorf("unexpected summary %v", s)
	}
	if s.Outcome() != partial {
		t.Errorf("expected outcome of the error, have %v", s.Outcome())
	}
	s = Summarize(integrate.Outcome{}, errors.New("disk full"))
	if s.OK() || s.Message != "disk full" || s.Kind != 0 {
		t.Errorf("unexpected summary for foreign error %v", s)
	}
}

func TestSummarizeAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "integrate")
	defer teardown()
	//
	results := []integrate.TaskResult{
		{Outcome: integrate.Outcome{Value: 1}},
		{Err: &integrate.Error{Kind: integrate.InvalidInput}},
	}
	s := SummarizeAll(results)
	if len(s) != 2 || !s[0].OK() || s[1].Kind != integrate.InvalidInput {
		t.Errorf("unexpected summaries %v", s)
	}
}

func TestConsolePlain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "integrate")
	defer teardown()
	//
	var buf bytes.Buffer
	c := NewConsole(&buf, nil)
	if c.Colored() {
		t.Fatalf("a buffer is not a terminal")
	}
	s := Summary{Value: 0.5, AbsError: 1.5e-05, Subdivisions: 3, Neval: 150, Message: "OK"}
	if err := c.Print(s); err != nil {
		t.Fatal(err)
	}
	want := "value:        0.5\n" +
		"abs.error:    1.5e-05\n" +
		"subdivisions: 3\n" +
		"neval:        150\n" +
		"message:      OK\n"
	if buf.String() != want {
		t.Errorf("expected\n%s\nhave\n%s", want, buf.String())
	}
}

func TestConsoleColored(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "integrate")
	defer teardown()
	//
	var buf bytes.Buffer
	c := NewConsole(&buf, nil)
	c.ForceColors(true)
	err := c.PrintAll([]Summary{
		{Message: "OK"},
		{Message: "roundoff error was detected", Kind: integrate.Roundoff},
	})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("expected escape sequences in colored output, have %q", out)
	}
	if !strings.Contains(out, "roundoff error was detected") || strings.Count(out, "value:") != 2 {
		t.Errorf("expected both summaries in output, have %q", out)
	}
}

func TestHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "integrate")
	defer teardown()
	//
	s := Summary{
		Value:        math.Pi,
		AbsError:     2.5e-10,
		Subdivisions: 5,
		Neval:        285,
		Message:      "non-finite function value: f(0) = +Inf",
		Kind:         integrate.NonFiniteValue,
	}
	var buf bytes.Buffer
	if err := WriteHTML(&buf, s); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	t.Logf("HTML = %s", out)
	if !strings.HasPrefix(out, `<table class="integrate-summary" data-kind="NonFiniteValue">`) {
		t.Errorf("unexpected table element in %s", out)
	}
	if !strings.Contains(out, `<tr class="failure"><th>message</th>`) {
		t.Errorf("expected message row to be marked as failure")
	}
	r, err := ReadHTML(strings.NewReader("<p>result:</p>" + out))
	if err != nil {
		t.Fatal(err)
	}
	if r != s {
		t.Errorf("expected to read back %v, have %v", s, r)
	}
}

func TestReadHTMLWithoutTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "integrate")
	defer teardown()
	//
	if _, err := ReadHTML(strings.NewReader("<p>nothing here</p>")); err == nil {
		t.Errorf("expected an error for input without a summary table")
	}
}
