package sart

import "time"

// Response is a key press collected during a trial's response window.
// A nil *Response means the participant withheld (or missed) the
// response.
type Response struct {
	Side Side
	RT   time.Duration // measured from stimulus onset
}

// OutcomeKind classifies a scored trial.
type OutcomeKind int

const (
	// CorrectResponse: non-target trial answered on the correct side.
	CorrectResponse OutcomeKind = iota
	// CorrectWithhold: target trial with no response.
	CorrectWithhold
	// CommissionError: response on a target trial.
	CommissionError
	// OmissionError: no response on a non-target trial.
	OmissionError
	// WrongSide: non-target trial answered on the wrong side.
	WrongSide
)

func (k OutcomeKind) String() string {
	switch k {
	case CorrectResponse:
		return "correct"
	case CorrectWithhold:
		return "correct_withhold"
	case CommissionError:
		return "commission_error"
	case OmissionError:
		return "omission_error"
	case WrongSide:
		return "wrong_side"
	default:
		return "unknown"
	}
}

// Outcome is the scored result of one trial.
type Outcome struct {
	Kind    OutcomeKind
	Correct bool
}

// ScoreTrial applies the response rule to one trial: a target trial is
// correct when no response was made; a non-target trial is correct
// when the response side matches the stimulus side.
func ScoreTrial(trial TrialSpec, resp *Response) Outcome {
	if trial.IsTarget {
		if resp == nil {
			return Outcome{Kind: CorrectWithhold, Correct: true}
		}
		return Outcome{Kind: CommissionError}
	}
	switch {
	case resp == nil:
		return Outcome{Kind: OmissionError}
	case resp.Side == trial.Side:
		return Outcome{Kind: CorrectResponse, Correct: true}
	default:
		return Outcome{Kind: WrongSide}
	}
}

// BlockSummary aggregates the outcomes of one block.
type BlockSummary struct {
	TotalTrials      int
	Correct          int
	TargetTrials     int
	NonTargetTrials  int
	CommissionErrors int
	OmissionErrors   int

	// MeanRT averages reaction times over correct non-target
	// responses only; RTCount is the number averaged.
	MeanRT  time.Duration
	RTCount int
}

// Summarize scores every trial against its response (indexed by trial
// order; responses may be shorter than trials, missing entries count
// as no response).
func Summarize(trials []TrialSpec, responses []*Response) BlockSummary {
	var s BlockSummary
	var rtTotal time.Duration
	for i, trial := range trials {
		var resp *Response
		if i < len(responses) {
			resp = responses[i]
		}
		out := ScoreTrial(trial, resp)

		s.TotalTrials++
		if out.Correct {
			s.Correct++
		}
		if trial.IsTarget {
			s.TargetTrials++
		} else {
			s.NonTargetTrials++
		}
		switch out.Kind {
		case CommissionError:
			s.CommissionErrors++
		case OmissionError:
			s.OmissionErrors++
		case CorrectResponse:
			rtTotal += resp.RT
			s.RTCount++
		}
	}
	if s.RTCount > 0 {
		s.MeanRT = rtTotal / time.Duration(s.RTCount)
	}
	return s
}

// Accuracy is the fraction of correct trials, 0 for an empty block.
func (s BlockSummary) Accuracy() float64 {
	if s.TotalTrials == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.TotalTrials)
}

// CommissionRate is the fraction of target trials answered, 0 when
// the block had no targets.
func (s BlockSummary) CommissionRate() float64 {
	if s.TargetTrials == 0 {
		return 0
	}
	return float64(s.CommissionErrors) / float64(s.TargetTrials)
}

// OmissionRate is the fraction of non-target trials left unanswered,
// 0 when the block had no non-targets.
func (s BlockSummary) OmissionRate() float64 {
	if s.NonTargetTrials == 0 {
		return 0
	}
	return float64(s.OmissionErrors) / float64(s.NonTargetTrials)
}
