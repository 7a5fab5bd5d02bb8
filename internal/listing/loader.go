package listing

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for listing files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based listing loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "listing-loader").Logger(),
	}
}

// Load reads a listing file and returns its object IDs.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]int, error) {
	l.logger.Info().Str("file", filePath).Msg("loading listing file")

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open listing file %s: %w", filePath, err)
	}
	defer file.Close()

	ids, err := parseIDs(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("ids_loaded", len(ids)).
		Msg("listing file loaded successfully")

	return ids, nil
}

// parseIDs reads one object ID per line, skipping blank lines.
func parseIDs(ctx context.Context, r io.Reader) ([]int, error) {
	var ids []int

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		id, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("invalid object ID %q: %w", line, err)
		}
		ids = append(ids, id)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading listing: %w", err)
	}

	return ids, nil
}
