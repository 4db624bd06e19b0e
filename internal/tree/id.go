package tree

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// newID mints a fresh node id. ULIDs carry 80 bits of entropy, so a
// collision within a single session is vanishingly unlikely; the taken
// check re-rolls anyway so an id is never reused even in that case.
func newID(taken func(string) bool) string {
	for {
		id := strings.ToLower(ulid.Make().String())
		if !taken(id) {
			return id
		}
	}
}
