// Package prompt gates state-changing transactions behind operator confirmation.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// ErrOperationCancelled is returned when the operator declines to continue.
var ErrOperationCancelled = errors.New("operation cancelled")

// Confirmer asks for permission before an irreversible action.
type Confirmer interface {
	Confirm(ctx context.Context, action string) error
}

// Terminal reads y/N answers line by line. Confirmations from concurrent
// network tasks are serialized so questions never interleave.
type Terminal struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Confirm defaults to no: only "y" or "yes" lets the caller proceed.
func (t *Terminal) Confirm(ctx context.Context, action string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	_, _ = color.New(color.FgYellow).Fprintf(t.out, "%s\n", action)
	_, _ = fmt.Fprint(t.out, "Are you sure you want to continue? [y/N] ")

	// EOF leaves answer empty, which reads as no.
	answer, _ := t.in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return nil
	default:
		_, _ = color.New(color.FgRed).Fprintln(t.out, "Operation cancelled.")
		return ErrOperationCancelled
	}
}

// AutoApprove confirms everything. It backs the --yes flag.
type AutoApprove struct{}

func (AutoApprove) Confirm(context.Context, string) error {
	return nil
}

// Refuse declines everything, for non-interactive runs without --yes.
type Refuse struct{}

func (Refuse) Confirm(_ context.Context, action string) error {
	return fmt.Errorf("%s: no terminal to confirm on, rerun with --yes: %w", action, ErrOperationCancelled)
}
