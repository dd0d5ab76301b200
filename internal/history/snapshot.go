package history

import (
	"fmt"
	"io"
	"os"

	"github.com/yohoo/startpage/internal/domain"
	"github.com/yohoo/startpage/internal/utils"
)

// Snapshot copies the history database to a private temporary file and
// returns its path along with a cleanup function. The browser holds an
// exclusive lock on the canonical store while running, so queries must
// always go through a snapshot.
//
// The caller must defer cleanup regardless of what happens afterwards;
// cleanup removes the temporary file and never fails loudly.
func Snapshot(src string) (string, func(), error) {
	in, err := os.Open(src)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("%w: %s", domain.ErrStoreNotFound, src)
		}
		return "", nil, fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, err)
	}
	defer utils.Close(in)

	out, err := os.CreateTemp("", "history-snapshot-*.db")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create snapshot file: %w", err)
	}

	cleanup := func() { _ = os.Remove(out.Name()) }

	if _, err := io.Copy(out, in); err != nil {
		utils.Close(out)
		cleanup()
		return "", nil, fmt.Errorf("failed to copy history store: %w", err)
	}
	if err := out.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to finalize snapshot: %w", err)
	}

	return out.Name(), cleanup, nil
}
