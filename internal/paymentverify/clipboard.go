package paymentverify

import "context"

// Clipboard places text on the user's clipboard. It is an external
// collaborator; the gate only requires that writes are idempotent and copy
// the given text verbatim.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}
