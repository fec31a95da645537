package si

import (
	"fmt"
	"sync/atomic"
)

// nameCounter synthesizes default SI names, replacing the Python original's
// module-level itertools.count(). Shared across every SI produced by this
// process; there is no teardown.
var nameCounter uint64

// nextName returns the next "SI_<n>" default name, starting at 0.
func nextName() string {
	n := atomic.AddUint64(&nameCounter, 1) - 1
	return fmt.Sprintf("SI_%d", n)
}
