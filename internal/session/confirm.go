package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var ErrConfirmationDeclined = errors.New("request was not confirmed")

// Confirmer gates a human-facing request. Confirm blocks until the request
// may be sent and returns an error if it must not be.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) error
}

type Mode string

const (
	ModePrompt Mode = "prompt"
	ModeLine   Mode = "line"
	ModeDelay  Mode = "delay"
)

// NewConfirmer returns the confirmer for the given mode. interval is only
// used by ModeDelay.
func NewConfirmer(mode Mode, interval time.Duration) (Confirmer, error) {
	switch Mode(strings.ToLower(string(mode))) {
	case ModePrompt, "":
		return NewPromptConfirmer(), nil
	case ModeLine:
		return NewLineConfirmer(os.Stdin, os.Stdout), nil
	case ModeDelay:
		if interval <= 0 {
			return nil, fmt.Errorf("delay confirmer needs a positive interval, got %s", interval)
		}
		return NewDelayConfirmer(interval), nil
	default:
		return nil, fmt.Errorf("unknown confirm mode: %s", mode)
	}
}

// PromptConfirmer asks on the terminal. Enter accepts.
type PromptConfirmer struct{}

func NewPromptConfirmer() *PromptConfirmer {
	return &PromptConfirmer{}
}

func (p *PromptConfirmer) Confirm(ctx context.Context, prompt string) error {

	confirmed := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Affirmative("Send").
				Negative("Abort").
				Value(&confirmed),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return fmt.Errorf("confirmation cancelled: %w", err)
	}

	if !confirmed {
		return ErrConfirmationDeclined
	}

	return nil
}

// LineConfirmer writes the prompt and waits for a line on in. Used where
// there is no interactive terminal to draw a form on.
type LineConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLineConfirmer(in io.Reader, out io.Writer) *LineConfirmer {
	return &LineConfirmer{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (l *LineConfirmer) Confirm(ctx context.Context, prompt string) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	fmt.Fprint(l.out, prompt)

	read := make(chan error, 1)
	go func() {
		_, err := l.in.ReadString('\n')
		read <- err
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-read:
		if err != nil {
			// EOF means nobody is there to press enter
			return fmt.Errorf("%w: %v", ErrConfirmationDeclined, err)
		}
		return nil
	}
}

// DelayConfirmer replaces the human with a fixed pace between requests.
type DelayConfirmer struct {
	limiter *rate.Limiter
}

func NewDelayConfirmer(interval time.Duration) *DelayConfirmer {
	return &DelayConfirmer{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

func (d *DelayConfirmer) Confirm(ctx context.Context, prompt string) error {

	logrus.WithFields(logrus.Fields{
		"prompt": prompt,
	}).Infoln("Waiting for next request slot")

	return d.limiter.Wait(ctx)
}
