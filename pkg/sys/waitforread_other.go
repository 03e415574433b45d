//go:build !unix

package sys

import (
	"errors"
	"os"
	"time"
)

func waitForRead(time.Duration, *os.File) (bool, error) {
	return false, errors.ErrUnsupported
}
