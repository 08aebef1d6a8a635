package endorse

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Actions are the host calls a run is made of. Implemented by
// nationstates.Client.
type Actions interface {
	Login(ctx context.Context, nation string, password string) (string, error)
	CrossList(ctx context.Context, point string, excluded string) ([]string, error)
	Endorse(ctx context.Context, nation string, localID string) (bool, error)
}

// Reporter is told the outcome for each nation as it happens.
type Reporter interface {
	Endorsed(nation string)
	Failed(nation string)
}

type Settings struct {
	WANation string
	Password string
	Point    string

	// Stop after resolving the list
	DryRun bool
}

type Summary struct {
	Targets  []string
	Endorsed []string
	Failed   []string
}

type Runner struct {
	actions  Actions
	reporter Reporter
	settings Settings
	runID    uuid.UUID
}

func NewRunner(actions Actions, reporter Reporter, settings Settings) *Runner {
	return &Runner{
		actions:  actions,
		reporter: reporter,
		settings: settings,
		runID:    uuid.New(),
	}
}

// Run logs in once, resolves the cross list once and endorses every nation
// on it in order. A rejected endorsement is reported and the loop moves on;
// any other error ends the run.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {

	log := logrus.WithFields(logrus.Fields{
		"run": r.runID.String(),
	})

	localID, err := r.actions.Login(ctx, r.settings.WANation, r.settings.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to log in as %s: %w", r.settings.WANation, err)
	}

	targets, err := r.actions.CrossList(ctx, r.settings.Point, r.settings.WANation)
	if err != nil {
		return nil, fmt.Errorf("failed to get cross list of %s: %w", r.settings.Point, err)
	}

	log.WithFields(logrus.Fields{
		"point":   r.settings.Point,
		"targets": len(targets),
	}).Infoln("Resolved targets")

	summary := &Summary{
		Targets: targets,
	}

	if r.settings.DryRun {
		log.Infoln("Dry run, not endorsing")
		return summary, nil
	}

	for _, nation := range targets {

		endorsed, err := r.actions.Endorse(ctx, nation, localID)
		if err != nil {
			return summary, fmt.Errorf("failed to endorse %s: %w", nation, err)
		}

		if endorsed {
			summary.Endorsed = append(summary.Endorsed, nation)
			r.reporter.Endorsed(nation)
		} else {
			summary.Failed = append(summary.Failed, nation)
			r.reporter.Failed(nation)
		}
	}

	log.WithFields(logrus.Fields{
		"endorsed": len(summary.Endorsed),
		"failed":   len(summary.Failed),
	}).Infoln("Run complete")

	return summary, nil
}

// WriterReporter prints one plain line per nation.
type WriterReporter struct {
	out io.Writer
}

func NewWriterReporter(out io.Writer) *WriterReporter {
	return &WriterReporter{out: out}
}

func (w *WriterReporter) Endorsed(nation string) {
	fmt.Fprintf(w.out, "Endorsed %s\n", nation)
}

func (w *WriterReporter) Failed(nation string) {
	fmt.Fprintf(w.out, "Failed to endorse %s\n", nation)
}
