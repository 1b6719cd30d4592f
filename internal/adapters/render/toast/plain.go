package toast

import (
	"context"
	"fmt"
	"io"

	"github.com/mcarrasqub/itimer/internal/domain"
)

// printedSet remembers which stack entries were already printed. It only
// holds IDs still present in the latest snapshot.
type printedSet struct {
	ids map[string]struct{}
}

func newPrintedSet() *printedSet {
	return &printedSet{ids: map[string]struct{}{}}
}

// fresh returns the entries of snapshot not printed before and forgets IDs
// that left the stack.
func (p *printedSet) fresh(snapshot []domain.Notification) []domain.Notification {
	current := make(map[string]struct{}, len(snapshot))
	var out []domain.Notification
	for _, entry := range snapshot {
		current[entry.ID] = struct{}{}
		if _, ok := p.ids[entry.ID]; !ok {
			out = append(out, entry)
		}
	}
	p.ids = current
	return out
}

func (p *printedSet) len() int {
	return len(p.ids)
}

// RunPlain prints each notification once, when it first appears, until done
// closes or ctx is done.
func RunPlain(ctx context.Context, source Source, done <-chan struct{}, w io.Writer) error {
	return runPlain(ctx, source, done, w, newPrintedSet())
}

func runPlain(ctx context.Context, source Source, done <-chan struct{}, w io.Writer, printed *printedSet) error {
	flush := func() error {
		for _, entry := range printed.fresh(source.Snapshot()) {
			if _, err := fmt.Fprintln(w, PlainLine(entry)); err != nil {
				return fmt.Errorf("write notification: %w", err)
			}
		}
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-done:
			return flush()
		case <-source.Changes():
			if err := flush(); err != nil {
				return err
			}
		}
	}
}
