package core

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/JonMunkholm/cclookup/internal/logging"
)

// LoadCatalog opens the emoji.json document at path and decodes it.
func LoadCatalog(path string, logger *slog.Logger) ([]EmojiEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open emoji catalog: %w", ErrDataAccess, err)
	}
	defer f.Close()

	entries, err := ParseCatalog(f, logger)
	if err != nil {
		return nil, fmt.Errorf("emoji catalog %s: %w", path, err)
	}
	return entries, nil
}

// ParseCatalog decodes a JSON array of emoji entries. Unknown fields are
// ignored.
func ParseCatalog(r io.Reader, logger *slog.Logger) ([]EmojiEntry, error) {
	logger = logging.OrDefault(logger)

	sanitized, counter := WrapForReading(r)

	var entries []EmojiEntry
	if err := json.NewDecoder(sanitized).Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	logger.Info("loaded emoji catalog", "entries", len(entries), "bytes", counter.BytesRead)
	return entries, nil
}
