// Package testing switches the console into test mode. Test files import it
// for its side effect so that binaries skip their runtime startup.
package testing

import (
	"os"
	"sync"

	"github.com/odyssey-erp/floorconsole/internal/app"
)

var once sync.Once

func ensureTestMode() {
	once.Do(func() {
		_ = os.Setenv("FLOOR_TEST_MODE", "1")
		// Never read a developer's .env during tests.
		if os.Getenv("ENV_FILE") == "" {
			_ = os.Setenv("ENV_FILE", os.DevNull)
		}
		app.RefreshTestMode()
	})
}

func init() {
	ensureTestMode()
}
