package algorithms

import (
	"fmt"
	"os"
	"sync"

	apperrors "accelbench/internal/errors"
)

// DisableAcceleratedEnv, when set to any non-empty value before the first call to
// LoadAccelerated, keeps the process in reference-only mode.
const DisableAcceleratedEnv = "ACCELBENCH_DISABLE_ACCELERATED"

var (
	// registeredAccelerated is set by accelerated.go unless built with -tags noaccel.
	registeredAccelerated Suite

	acceleratedOnce   sync.Once
	loadedAccelerated Suite
	loadErr           error
)

// LoadAccelerated resolves the accelerated suite once per process. Later calls
// return the same suite and error.
func LoadAccelerated() (Suite, error) {
	acceleratedOnce.Do(func() {
		switch {
		case registeredAccelerated == nil:
			loadErr = fmt.Errorf("%w: binary built with the noaccel tag", apperrors.ErrAcceleratedUnavailable)
		case os.Getenv(DisableAcceleratedEnv) != "":
			loadErr = fmt.Errorf("%w: disabled by %s", apperrors.ErrAcceleratedUnavailable, DisableAcceleratedEnv)
		default:
			loadedAccelerated = registeredAccelerated
		}
	})
	return loadedAccelerated, loadErr
}

// AcceleratedAvailable reports whether LoadAccelerated succeeded.
func AcceleratedAvailable() bool {
	_, err := LoadAccelerated()
	return err == nil
}
