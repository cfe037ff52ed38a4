// Package console implements the txwatch.ChangeNotifier interface by printing
// one human-readable line per change event. It is the default sink.
package console

import (
	"context"
	"fmt"
	"io"

	"github.com/gabapcia/addrwatch/internal/txwatch"
)

type notifier struct {
	out io.Writer
}

// Compile-time assertion that *notifier satisfies txwatch.ChangeNotifier.
var _ txwatch.ChangeNotifier = (*notifier)(nil)

// New creates a console notifier writing to the given output, typically
// os.Stdout.
func New(out io.Writer) *notifier {
	return &notifier{
		out: out,
	}
}

// NotifyChange prints one line per change event.
func (n *notifier) NotifyChange(ctx context.Context, event txwatch.ChangeEvent) error {
	_, err := fmt.Fprintf(n.out, "New transaction for %s, hash: %s\n", event.Address, event.NewHash)
	return err
}
