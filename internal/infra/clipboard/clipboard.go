// Package clipboard adapts the system clipboard for the payment verification
// service's copy-to-clipboard action.
package clipboard

import (
	"context"
	"fmt"

	sysclipboard "github.com/atotto/clipboard"

	"github.com/voidbay/paygate/internal/paymentverify"
)

var _ paymentverify.Clipboard = (*Writer)(nil)

// Writer writes text to the system clipboard.
type Writer struct{}

// New creates a system clipboard writer.
func New() *Writer {
	return &Writer{}
}

// WriteText places text on the system clipboard. The underlying call is
// synchronous and does not take a context; ctx is checked up front so an
// already-cancelled caller skips the write.
func (w *Writer) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := sysclipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing to system clipboard: %w", err)
	}

	return nil
}
