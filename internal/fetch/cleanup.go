package fetch

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/JonMunkholm/cclookup/internal/logging"
)

// Cleanup removes the input files after a run. Failures are logged and
// returned joined but never stop the remaining removals. Files that are
// already gone are ignored.
func Cleanup(paths []string, logger *slog.Logger) error {
	logger = logging.OrDefault(logger)
	logger.Info("cleaning up downloaded files")

	var errs []error
	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true

		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logger.Error("error deleting file", "path", p, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
