package ui

import (
	"fmt"
	"strings"

	"github.com/mwlab/sart/internal/sart"
	"github.com/mwlab/sart/internal/session"
)

// View renders the current state of the model to a string.
func View(m Model) string {
	var body string
	switch m.State {
	case stateInstruction:
		body = instructionView(m)
	case stateFixation, stateISI:
		body = fixationView(m)
	case stateStimulus:
		body = stimulusView(m)
	case stateProbe:
		body = probeView(m)
	case stateBlockSummary:
		body = summaryView(m)
	case stateDone:
		body = doneView(m)
	}

	if m.ErrorMessage != "" {
		body += "\n\n" + Current.Error.Render(m.ErrorMessage)
	}
	return body
}

// cue renders the colored condition indicator shown on every screen
// of a block.
func cue(cond sart.Condition) string {
	if cond == sart.ResponseInhibition {
		return Current.CueRI.Render("●")
	}
	return Current.CueNRI.Render("●")
}

func instructionView(m Model) string {
	var b strings.Builder
	blk := m.block()

	b.WriteString(Current.Title.Render(fmt.Sprintf("SART — Block %d of %d", blk.Number, session.BlocksPerSession)))
	b.WriteString("  " + cue(blk.Condition))
	b.WriteString("\n\n")

	b.WriteString(Current.Instruction.Render(
		"A digit will appear to the left or right of the fixation cross.\n" +
			"Press the arrow key matching its side as quickly as you can."))
	b.WriteString("\n")

	if blk.Condition == sart.ResponseInhibition {
		b.WriteString(Current.Instruction.Render(
			"When the digit is 3, do NOT press anything — withhold your response."))
	} else {
		b.WriteString(Current.Instruction.Render(
			"Respond to every digit, including 3."))
	}
	b.WriteString("\n")
	b.WriteString(Current.Instruction.Render(
		"From time to time you will be asked two short questions about\n" +
			"what you were just thinking. Answer with the number keys."))
	b.WriteString("\n\n")

	h := NewHelpModel()
	b.WriteString(Current.Help.Render(h.View(m.Keys.ForState(m.State))))
	return b.String()
}

func fixationView(m Model) string {
	var b strings.Builder
	b.WriteString(cue(m.block().Condition))
	b.WriteString("\n\n\n")
	b.WriteString(Current.Fixation.Render("        +        "))
	b.WriteString("\n")
	return b.String()
}

func stimulusView(m Model) string {
	trial := m.trial()
	digit := fmt.Sprintf("%d", trial.Digit)

	var line string
	if trial.Side == sart.Left {
		line = digit + "       +         "
	} else {
		line = "        +       " + digit
	}

	var b strings.Builder
	b.WriteString(cue(m.block().Condition))
	b.WriteString("\n\n\n")
	b.WriteString(Current.Stimulus.Render(line))
	b.WriteString("\n")
	return b.String()
}

// probeQuestions are the two mind-wandering items, asked in order.
var probeQuestions = [2]string{
	"To what extent were your thoughts unrelated to the task?",
	"To what extent were your thoughts moving about freely?",
}

func probeView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Attention check"))
	b.WriteString("\n\n")

	question := probeQuestions[0]
	if m.probeTUT != 0 {
		question = probeQuestions[1]
	}
	b.WriteString(Current.Probe.Render(question))
	b.WriteString("\n\n")
	b.WriteString(Current.Scale.Render("1 — not at all        7 — completely"))
	b.WriteString("\n\n")
	b.WriteString(Current.Help.Render("Press a number from 1 to 7"))
	return b.String()
}

func summaryView(m Model) string {
	var b strings.Builder
	blk := m.block()
	s := m.summaries[len(m.summaries)-1]

	b.WriteString(Current.Title.Render(fmt.Sprintf("Block %d complete", blk.Number)))
	b.WriteString("\n\n")

	b.WriteString(Current.Summary.Render(fmt.Sprintf("Accuracy: %d/%d (%.1f%%)",
		s.Correct, s.TotalTrials, s.Accuracy()*100)))
	b.WriteString("\n")
	if s.TargetTrials > 0 {
		b.WriteString(Current.Summary.Render(fmt.Sprintf("Commission errors: %d/%d targets (%.1f%%)",
			s.CommissionErrors, s.TargetTrials, s.CommissionRate()*100)))
		b.WriteString("\n")
	}
	b.WriteString(Current.Summary.Render(fmt.Sprintf("Omission errors: %d/%d non-targets (%.1f%%)",
		s.OmissionErrors, s.NonTargetTrials, s.OmissionRate()*100)))
	b.WriteString("\n")
	if s.RTCount > 0 {
		b.WriteString(Current.Summary.Render(fmt.Sprintf("Mean RT: %dms (n=%d)",
			s.MeanRT.Milliseconds(), s.RTCount)))
		b.WriteString("\n")
	}

	b.WriteString("\n" + Current.Help.Render("Press enter when ready to continue"))
	return b.String()
}

func doneView(m Model) string {
	var b strings.Builder
	b.WriteString(Current.Title.Render("Session complete"))
	b.WriteString("\n\n")
	b.WriteString(Current.Instruction.Render("Thank you. Your responses have been saved."))
	if m.Session.Order.MoodRepair() {
		b.WriteString("\n")
		b.WriteString(Current.Instruction.Render(
			"Please let the experimenter know you are done so the\n" +
				"mood-repair phase can be run."))
	}
	b.WriteString("\n\n" + Current.Help.Render("Press enter to exit"))
	return b.String()
}
