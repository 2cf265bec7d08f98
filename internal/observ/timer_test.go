package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin(PhaseTokenize)
	time.Sleep(time.Millisecond)
	tm.End(idx, "3 files")

	report := tm.Report()
	if len(report.Phases) != 1 {
		t.Fatalf("phases: %+v", report.Phases)
	}
	p := report.Phases[0]
	if p.Name != "tokenize" || p.Note != "3 files" {
		t.Errorf("phase: %+v", p)
	}
	if p.DurationMS <= 0 {
		t.Errorf("duration: %f", p.DurationMS)
	}
	if report.TotalMS < p.DurationMS {
		t.Errorf("total %f < phase %f", report.TotalMS, p.DurationMS)
	}
}

func TestTimerEndOutOfRange(t *testing.T) {
	tm := NewTimer()
	tm.End(0, "")  // no phases yet
	tm.End(-1, "")
	if got := tm.Report(); len(got.Phases) != 0 {
		t.Fatalf("report: %+v", got)
	}
}

func TestSummary(t *testing.T) {
	tm := NewTimer()
	a := tm.Begin(PhaseTokenize)
	tm.End(a, "2 files")
	b := tm.Begin(PhaseReport)
	tm.End(b, "")

	s := tm.Summary()
	if !strings.HasPrefix(s, "timings:\n") {
		t.Errorf("summary prefix: %q", s)
	}
	for _, want := range []string{"tokenize", "// 2 files", "report", "total"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary misses %q:\n%s", want, s)
		}
	}
	if strings.Count(s, "\n") != 4 {
		t.Errorf("summary lines:\n%q", s)
	}
}

func TestEmptyReport(t *testing.T) {
	tm := NewTimer()
	r := tm.Report()
	if r.TotalMS != 0 || len(r.Phases) != 0 {
		t.Fatalf("empty report: %+v", r)
	}
}
