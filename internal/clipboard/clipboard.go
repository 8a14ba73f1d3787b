package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// FailureNotice is shown when the document could not be copied.
const FailureNotice = "Copy failed. Try the Download option instead."

// ErrUnavailable is returned when the host has no clipboard utility.
var ErrUnavailable = errors.New("clipboard unavailable")

var (
	writeAll    = clipboard.WriteAll
	unsupported = func() bool { return clipboard.Unsupported }
)

// Copy writes doc to the system clipboard. Failures are not retried.
func Copy(doc string) error {
	if unsupported() {
		return ErrUnavailable
	}
	if err := writeAll(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
