// Package data persists session results as an append-only CSV file,
// one row per trial or probe, flushed as soon as it is written.
package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mwlab/sart/internal/sart"
)

var header = []string{
	"participant", "order", "timestamp",
	"phase", "block_condition", "block_number", "trial_number",
	"digit", "side", "is_target",
	"response", "accuracy", "outcome", "reaction_time_ms",
	"tut_rating", "fmt_rating",
}

// Recorder writes one session's rows to a timestamped CSV file.
type Recorder struct {
	file        *os.File
	w           *csv.Writer
	participant string
	order       int
	now         func() time.Time
}

// NewRecorder creates dir if needed and opens
// participant_<code>_<timestamp>.csv with the header already written.
func NewRecorder(dir, participant string, order int) (*Recorder, error) {
	return newRecorder(dir, participant, order, time.Now)
}

func newRecorder(dir, participant string, order int, now func() time.Time) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	name := fmt.Sprintf("participant_%s_%s.csv", participant, now().Format("20060102-150405"))
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("create result file: %w", err)
	}

	r := &Recorder{
		file:        f,
		w:           csv.NewWriter(f),
		participant: participant,
		order:       order,
		now:         now,
	}
	if err := r.w.Write(header); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}
	r.w.Flush()
	return r, r.w.Error()
}

// Path returns the result file's path.
func (r *Recorder) Path() string {
	return r.file.Name()
}

// Trial appends one scored SART trial.
func (r *Recorder) Trial(block int, cond sart.Condition, trial sart.TrialSpec, resp *sart.Response, out sart.Outcome) error {
	response, rt := "", ""
	if resp != nil {
		response = resp.Side.String()
		rt = strconv.FormatInt(resp.RT.Milliseconds(), 10)
	}
	accuracy := "0"
	if out.Correct {
		accuracy = "1"
	}
	return r.append([]string{
		r.participant, strconv.Itoa(r.order), r.now().Format(time.RFC3339),
		"sart_trial", cond.String(), strconv.Itoa(block), strconv.Itoa(trial.Index),
		strconv.Itoa(trial.Digit), trial.Side.String(), strconv.FormatBool(trial.IsTarget),
		response, accuracy, out.Kind.String(), rt,
		"", "",
	})
}

// Probe appends one mind-wandering probe response: task-unrelated
// thought and freely-moving thought ratings on a 1-7 scale, taken
// after the trial at trialNum.
func (r *Recorder) Probe(block int, cond sart.Condition, trialNum, tut, freely int) error {
	return r.append([]string{
		r.participant, strconv.Itoa(r.order), r.now().Format(time.RFC3339),
		"mind_wandering_probe", cond.String(), strconv.Itoa(block), strconv.Itoa(trialNum),
		"", "", "",
		"", "", "", "",
		strconv.Itoa(tut), strconv.Itoa(freely),
	})
}

func (r *Recorder) append(row []string) error {
	if err := r.w.Write(row); err != nil {
		return err
	}
	r.w.Flush()
	return r.w.Error()
}

// Close flushes and closes the result file.
func (r *Recorder) Close() error {
	r.w.Flush()
	if err := r.w.Error(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}
