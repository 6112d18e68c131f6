package sources

import (
	"testing"

	"go.uber.org/goleak"
)

// The run cache is created without a janitor, so fetchers must not leave
// goroutines behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreAnyFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreAnyFunction("net/http.(*persistConn).writeLoop"),
	)
}
