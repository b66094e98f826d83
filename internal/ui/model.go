package ui

import (
	"time"

	"github.com/mwlab/sart/internal/sart"
	"github.com/mwlab/sart/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

// state represents the different screens of the TUI.
type state int

const (
	stateInstruction state = iota
	stateFixation
	stateStimulus
	stateISI
	stateProbe
	stateBlockSummary
	stateDone
)

// Sink receives scored trials and probe answers as they happen.
// Satisfied by *data.Recorder.
type Sink interface {
	Trial(block int, cond sart.Condition, trial sart.TrialSpec, resp *sart.Response, out sart.Outcome) error
	Probe(block int, cond sart.Condition, trialNum, tut, freely int) error
}

// Timing holds the presentation windows for one trial. The stimulus
// window is also the response window: keys after it are ignored.
type Timing struct {
	Fixation time.Duration
	Stimulus time.Duration
	ISI      time.Duration
}

// Model drives one session through its four blocks.
type Model struct {
	State   state
	Session *session.Session
	Sink    Sink
	Timing  Timing
	Keys    KeyMap

	ErrorMessage string

	blockIdx   int
	trialIdx   int // 0-based into the current block's trials
	stimulusAt time.Time
	response   *sart.Response
	responses  []*sart.Response // one per finished trial of the block
	summaries  []sart.BlockSummary

	// probe sub-state: the two Likert answers, 0 while unanswered
	probeTUT int

	// seq invalidates pending phase timers whenever the phase changes
	seq int
}

// NewModel returns a model positioned at the first block's
// instruction screen.
func NewModel(s *session.Session, sink Sink, timing Timing) Model {
	return Model{
		State:   stateInstruction,
		Session: s,
		Sink:    sink,
		Timing:  timing,
		Keys:    DefaultKeys(),
	}
}

// block returns the current block.
func (m Model) block() session.Block {
	return m.Session.Blocks[m.blockIdx]
}

// trial returns the current trial of the current block.
func (m Model) trial() sart.TrialSpec {
	return m.block().Plan.Trials[m.trialIdx]
}

// Summaries returns the per-block summaries collected so far.
func (m Model) Summaries() []sart.BlockSummary {
	return m.summaries
}

// Init implements tea.Model. The session starts on a key press, so
// there is nothing to schedule yet.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return Update(msg, m)
}

// View implements tea.Model.
func (m Model) View() string {
	return View(m)
}
