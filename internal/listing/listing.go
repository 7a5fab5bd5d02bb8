package listing

import (
	"context"

	"github.com/rs/zerolog"
)

// Loader defines the interface for loading object-ID listing files. A
// listing file contains one integer object ID per line; blank lines are
// skipped.
type Loader interface {
	// Load reads a listing and returns the object IDs in file order.
	Load(ctx context.Context, ref string) ([]int, error)
}

// DefaultFeatured returns the built-in featured artworks listing.
func DefaultFeatured() []int {
	return []int{
		436535, 436532, 459055, 438817, 436105,
		435809, 436231, 437853, 459080, 438754,
		436524, 436535, 437329, 459052, 436947,
		11237, 435568, 436151, 437392, 438421,
	}
}

// DefaultMerchandise returns the built-in merchandise listing. It is
// configured independently from the featured listing and never derived
// from it.
func DefaultMerchandise() []int {
	return []int{
		436535, 436532, 459055, 438817, 436105,
		435809, 436231, 437853, 459080, 438754,
		436524, 437329, 459052, 436947, 435568,
		436151, 437392, 438421, 11237, 437112,
	}
}

// Resolve loads a listing through the given loader, falling back to the
// built-in default when no ref is configured or the load fails. A failed
// load is logged, not fatal: a misconfigured listing should not take the
// storefront down.
func Resolve(ctx context.Context, loader Loader, ref string, fallback []int, logger zerolog.Logger) []int {
	if ref == "" {
		return fallback
	}

	ids, err := loader.Load(ctx, ref)
	if err != nil {
		logger.Warn().Err(err).Str("ref", ref).Msg("failed to load listing, using built-in default")
		return fallback
	}
	if len(ids) == 0 {
		logger.Warn().Str("ref", ref).Msg("listing is empty, using built-in default")
		return fallback
	}

	return ids
}
