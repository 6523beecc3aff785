package sqlite

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/heartmarshall/radiocatalog/internal/domain"
)

// AcquireRunLock creates "<dbPath>.lock" exclusively. The returned release
// func removes it. An existing lock file yields domain.ErrRunInProgress; a
// crashed run leaves the file behind and it must be removed by hand.
func AcquireRunLock(dbPath string) (func(), error) {
	lockPath := dbPath + ".lock"

	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil, fmt.Errorf("lock file %s: %w", lockPath, domain.ErrRunInProgress)
	}
	if err != nil {
		return nil, fmt.Errorf("create lock file: %w", err)
	}

	_, werr := f.WriteString(strconv.Itoa(os.Getpid()))
	cerr := f.Close()
	if err := errors.Join(werr, cerr); err != nil {
		_ = os.Remove(lockPath)
		return nil, fmt.Errorf("write lock file: %w", err)
	}

	return func() { _ = os.Remove(lockPath) }, nil
}
