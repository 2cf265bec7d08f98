// Package observ times the stages of an analysis run. The check command
// prints the summary when --timings is set.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// PhaseName labels one stage of a run.
type PhaseName string

// The stages a check run goes through, in order.
const (
	PhaseTokenize PhaseName = "tokenize"
	PhaseReport   PhaseName = "report"
)

// Phase is one timed stage. The note carries a short result summary,
// such as the file count.
type Phase struct {
	Name  PhaseName
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer accumulates phase timings over one run. Not safe for concurrent
// use; a run times its phases from the command goroutine.
type Timer struct {
	phases []Phase
}

func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 8)} }

// Begin opens a phase and returns its handle for End.
func (t *Timer) Begin(name PhaseName) int {
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	return len(t.phases) - 1
}

// End closes the phase and attaches the note. Stale handles are ignored.
func (t *Timer) End(idx int, note string) {
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = time.Since(p.Start)
	p.Note = note
}

// Summary renders the timings block printed under the findings.
func (t *Timer) Summary() string {
	report := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&sb, "  %-20s %7.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			sb.WriteString("  // ")
			sb.WriteString(p.Note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-20s %7.2f ms\n", "total", report.TotalMS)
	return sb.String()
}

// PhaseTiming is the serializable form of one closed phase.
type PhaseTiming struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report totals the recorded phases.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseTiming `json:"phases"`
}

func (t *Timer) Report() Report {
	if len(t.phases) == 0 {
		return Report{}
	}
	report := Report{
		Phases: make([]PhaseTiming, len(t.phases)),
	}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Phases[i] = PhaseTiming{
			Name:       string(phase.Name),
			DurationMS: float64(phase.Dur) / float64(time.Millisecond),
			Note:       phase.Note,
		}
	}
	report.TotalMS = float64(total) / float64(time.Millisecond)
	return report
}
