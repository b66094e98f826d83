package ui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/mwlab/sart/internal/sart"
	"github.com/mwlab/sart/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

type trialCall struct {
	block int
	cond  sart.Condition
	trial sart.TrialSpec
	resp  *sart.Response
	out   sart.Outcome
}

type probeCall struct {
	block       int
	trialNum    int
	tut, freely int
}

// fakeSink captures rows instead of writing CSV.
type fakeSink struct {
	trials []trialCall
	probes []probeCall
}

func (f *fakeSink) Trial(block int, cond sart.Condition, trial sart.TrialSpec, resp *sart.Response, out sart.Outcome) error {
	f.trials = append(f.trials, trialCall{block, cond, trial, resp, out})
	return nil
}

func (f *fakeSink) Probe(block int, cond sart.Condition, trialNum, tut, freely int) error {
	f.probes = append(f.probes, probeCall{block, trialNum, tut, freely})
	return nil
}

func demoModel(t *testing.T) (Model, *fakeSink) {
	t.Helper()
	base := sart.Params{
		TotalTrials:     2,
		TargetDigit:     3,
		NonTargetDigits: []int{0, 1, 2, 4, 5, 6, 7, 8, 9},
		Probes:          sart.ProbeByStep,
		Steps:           1,
		ProbeMin:        2,
		ProbeMax:        2,
	}
	s, err := session.Plan(1, base, rand.New(rand.NewSource(17)))
	if err != nil {
		t.Fatalf("session.Plan error: %v", err)
	}
	sink := &fakeSink{}
	timing := Timing{Fixation: time.Millisecond, Stimulus: time.Millisecond, ISI: time.Millisecond}
	return NewModel(s, sink, timing), sink
}

// expire delivers the pending phase timer directly instead of waiting
// for tea.Tick.
func expire(m Model) (Model, tea.Cmd) {
	return Update(phaseMsg{seq: m.seq}, m)
}

func TestNewModel(t *testing.T) {
	m, _ := demoModel(t)
	if m.State != stateInstruction {
		t.Error("expected initial state to be stateInstruction")
	}
	if m.blockIdx != 0 || m.trialIdx != 0 {
		t.Error("expected model to start at the first trial of the first block")
	}
	if m.ErrorMessage != "" {
		t.Error("expected initial error message to be empty")
	}
}

func TestInstructionView(t *testing.T) {
	m, _ := demoModel(t)
	view := View(m)

	if !strings.Contains(view, "Block 1 of 4") {
		t.Error("expected view to show block position")
	}
	// Block 1 of order 1 is response inhibition.
	if !strings.Contains(view, "withhold") {
		t.Error("expected inhibition instructions to mention withholding")
	}
}

func TestNonInhibitionInstructionView(t *testing.T) {
	m, _ := demoModel(t)
	m.blockIdx = 1 // order 1: block 2 is non-inhibition
	view := View(m)

	if !strings.Contains(view, "every digit") {
		t.Error("expected non-inhibition instructions to say respond to every digit")
	}
	if strings.Contains(view, "withhold") {
		t.Error("non-inhibition instructions must not mention withholding")
	}
}

func TestTrialPhaseSequence(t *testing.T) {
	m, _ := demoModel(t)

	m, cmd := Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	if m.State != stateFixation {
		t.Fatalf("state after start = %v, want fixation", m.State)
	}
	if cmd == nil {
		t.Fatal("expected a fixation timer to be scheduled")
	}

	m, cmd = expire(m)
	if m.State != stateStimulus {
		t.Fatalf("state after fixation = %v, want stimulus", m.State)
	}
	if cmd == nil {
		t.Fatal("expected a stimulus timer to be scheduled")
	}

	m, _ = expire(m)
	if m.State != stateISI {
		t.Fatalf("state after stimulus window = %v, want ISI", m.State)
	}
}

func TestStaleTimerIgnored(t *testing.T) {
	m, _ := demoModel(t)
	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)

	// A timer armed for an earlier phase must not advance the state.
	m2, _ := Update(phaseMsg{seq: m.seq - 1}, m)
	if m2.State != stateFixation {
		t.Errorf("stale timer advanced state to %v", m2.State)
	}
}

func TestResponseCapture(t *testing.T) {
	m, sink := demoModel(t)
	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	m, _ = expire(m) // fixation -> stimulus

	m, _ = Update(tea.KeyMsg{Type: tea.KeyLeft}, m)
	if m.response == nil || m.response.Side != sart.Left {
		t.Fatal("expected a left response to be captured")
	}
	if m.response.RT < 0 {
		t.Errorf("reaction time = %v, want non-negative", m.response.RT)
	}

	// A second key inside the window must not overwrite the first.
	m, _ = Update(tea.KeyMsg{Type: tea.KeyRight}, m)
	if m.response.Side != sart.Left {
		t.Error("second key press overwrote the first response")
	}

	m, _ = expire(m) // stimulus -> ISI, records the trial
	if len(sink.trials) != 1 {
		t.Fatalf("recorded %d trials, want 1", len(sink.trials))
	}
	got := sink.trials[0]
	if got.block != 1 || got.cond != sart.ResponseInhibition {
		t.Errorf("trial row block=%d cond=%v, want block 1 RI", got.block, got.cond)
	}
	if got.resp == nil || got.resp.Side != sart.Left {
		t.Error("trial row is missing the captured response")
	}
}

func TestWithholdRecordsNoResponse(t *testing.T) {
	m, sink := demoModel(t)
	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	m, _ = expire(m) // fixation -> stimulus
	m, _ = expire(m) // stimulus -> ISI without a key press

	if len(sink.trials) != 1 {
		t.Fatalf("recorded %d trials, want 1", len(sink.trials))
	}
	if sink.trials[0].resp != nil {
		t.Error("expected a nil response for a withheld trial")
	}
}

// runTrial drives one full trial without a response.
func runTrial(m Model) Model {
	m, _ = expire(m) // fixation -> stimulus
	m, _ = expire(m) // stimulus -> ISI
	m, _ = expire(m) // ISI -> next phase
	return m
}

func TestProbeAfterFinalTrial(t *testing.T) {
	// The demo preset has a single 2-trial step with a probe after it.
	m, sink := demoModel(t)
	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)

	m = runTrial(m) // trial 1 -> fixation of trial 2
	if m.State != stateFixation {
		t.Fatalf("state after trial 1 = %v, want fixation", m.State)
	}
	m = runTrial(m) // trial 2 -> probe
	if m.State != stateProbe {
		t.Fatalf("state after trial 2 = %v, want probe", m.State)
	}

	// First rating answers the task-unrelated-thought item.
	m, _ = Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}}, m)
	if m.State != stateProbe {
		t.Fatal("probe should wait for the second rating")
	}
	view := View(m)
	if !strings.Contains(view, "freely") {
		t.Error("expected the second probe question after the first rating")
	}

	// Non-rating keys are ignored.
	m, _ = Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'9'}}, m)
	if len(sink.probes) != 0 {
		t.Fatal("out-of-scale key must not complete the probe")
	}

	m, _ = Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}}, m)
	if len(sink.probes) != 1 {
		t.Fatalf("recorded %d probes, want 1", len(sink.probes))
	}
	p := sink.probes[0]
	if p.tut != 5 || p.freely != 2 || p.trialNum != 2 {
		t.Errorf("probe row = %+v, want tut=5 freely=2 trial=2", p)
	}

	if m.State != stateBlockSummary {
		t.Errorf("state after probe = %v, want block summary", m.State)
	}
}

func TestBlockSummaryAndSessionEnd(t *testing.T) {
	m, sink := demoModel(t)

	for block := 1; block <= session.BlocksPerSession; block++ {
		m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
		m = runTrial(m)
		m = runTrial(m)
		if m.State != stateProbe {
			t.Fatalf("block %d: state = %v, want probe", block, m.State)
		}
		m, _ = Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}}, m)
		m, _ = Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}}, m)

		if m.State != stateBlockSummary {
			t.Fatalf("block %d: state = %v, want summary", block, m.State)
		}
		view := View(m)
		if !strings.Contains(view, "Accuracy") {
			t.Error("expected the summary to show accuracy")
		}
		m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	}

	if m.State != stateDone {
		t.Fatalf("state after last block = %v, want done", m.State)
	}
	if len(sink.trials) != 8 {
		t.Errorf("recorded %d trials, want 8", len(sink.trials))
	}
	if len(sink.probes) != 4 {
		t.Errorf("recorded %d probes, want 4", len(sink.probes))
	}
	if len(m.Summaries()) != 4 {
		t.Errorf("collected %d summaries, want 4", len(m.Summaries()))
	}

	view := View(m)
	if !strings.Contains(view, "Session complete") {
		t.Error("expected the completion screen")
	}
	// Order 1 ends on a negative induction.
	if !strings.Contains(view, "mood-repair") {
		t.Error("expected the mood-repair reminder for order 1")
	}

	_, cmd := Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	if cmd == nil {
		t.Fatal("expected quit after the completion screen")
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := demoModel(t)
	_, cmd := Update(tea.KeyMsg{Type: tea.KeyEsc}, m)
	if cmd == nil {
		t.Fatal("expected esc to quit")
	}
}

func TestErrorDisplay(t *testing.T) {
	m, _ := demoModel(t)
	m.ErrorMessage = "test error"
	if !strings.Contains(View(m), "test error") {
		t.Error("expected view to show error message")
	}
}
