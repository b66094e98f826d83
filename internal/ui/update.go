package ui

import (
	"time"

	"github.com/mwlab/sart/internal/sart"
	"github.com/mwlab/sart/internal/session"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// phaseMsg is sent when the current phase's timer expires. The seq
// field lets Update drop timers left over from an earlier phase.
type phaseMsg struct {
	seq int
}

// Update handles messages and advances the session state machine.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.Keys.Quit) {
		return m, tea.Quit
	}

	switch m.State {
	case stateInstruction:
		if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.Keys.Continue) {
			return m.startFixation()
		}

	case stateFixation:
		if p, ok := msg.(phaseMsg); ok && p.seq == m.seq {
			m.State = stateStimulus
			m.stimulusAt = time.Now()
			m.response = nil
			return m.schedule(m.Timing.Stimulus)
		}

	case stateStimulus:
		switch msg := msg.(type) {
		case tea.KeyMsg:
			// First key inside the response window wins; the digit
			// stays up for its full duration either way.
			if m.response == nil {
				rt := time.Since(m.stimulusAt)
				switch {
				case key.Matches(msg, m.Keys.Left):
					m.response = &sart.Response{Side: sart.Left, RT: rt}
				case key.Matches(msg, m.Keys.Right):
					m.response = &sart.Response{Side: sart.Right, RT: rt}
				}
			}
			return m, nil
		case phaseMsg:
			if msg.seq == m.seq {
				return m.finishTrial()
			}
		}

	case stateISI:
		if p, ok := msg.(phaseMsg); ok && p.seq == m.seq {
			if m.block().Plan.IsProbeAfter(m.trialIdx + 1) {
				m.State = stateProbe
				m.probeTUT = 0
				m.seq++
				return m, nil
			}
			return m.advanceTrial()
		}

	case stateProbe:
		if k, ok := msg.(tea.KeyMsg); ok {
			if rating, ok := likertRating(k); ok {
				if m.probeTUT == 0 {
					m.probeTUT = rating
					return m, nil
				}
				b := m.block()
				if err := m.Sink.Probe(b.Number, b.Condition, m.trialIdx+1, m.probeTUT, rating); err != nil {
					m.ErrorMessage = err.Error()
				}
				return m.advanceTrial()
			}
		}

	case stateBlockSummary:
		if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.Keys.Continue) {
			m.blockIdx++
			if m.blockIdx >= session.BlocksPerSession {
				m.State = stateDone
				return m, nil
			}
			m.State = stateInstruction
			return m, nil
		}

	case stateDone:
		if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.Keys.Continue) {
			return m, tea.Quit
		}
	}

	return m, nil
}

// startFixation begins the current trial.
func (m Model) startFixation() (Model, tea.Cmd) {
	m.State = stateFixation
	return m.schedule(m.Timing.Fixation)
}

// finishTrial scores and records the trial, then enters the ISI.
func (m Model) finishTrial() (Model, tea.Cmd) {
	b := m.block()
	trial := m.trial()
	out := sart.ScoreTrial(trial, m.response)
	if err := m.Sink.Trial(b.Number, b.Condition, trial, m.response, out); err != nil {
		m.ErrorMessage = err.Error()
	}
	m.responses = append(m.responses, m.response)
	m.State = stateISI
	return m.schedule(m.Timing.ISI)
}

// advanceTrial moves to the next trial, or closes the block when none
// remain.
func (m Model) advanceTrial() (Model, tea.Cmd) {
	m.trialIdx++
	if m.trialIdx >= len(m.block().Plan.Trials) {
		m.summaries = append(m.summaries, sart.Summarize(m.block().Plan.Trials, m.responses))
		m.responses = nil
		m.trialIdx = 0
		m.State = stateBlockSummary
		m.seq++
		return m, nil
	}
	return m.startFixation()
}

// schedule arms the phase timer for the state just entered.
func (m Model) schedule(d time.Duration) (Model, tea.Cmd) {
	m.seq++
	seq := m.seq
	return m, tea.Tick(d, func(time.Time) tea.Msg {
		return phaseMsg{seq: seq}
	})
}

// likertRating maps a digit key to a 1-7 scale value.
func likertRating(k tea.KeyMsg) (int, bool) {
	s := k.String()
	if len(s) == 1 && s[0] >= '1' && s[0] <= '7' {
		return int(s[0] - '0'), true
	}
	return 0, false
}
