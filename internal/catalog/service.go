package catalog

import (
	"context"

	"museum-shop/internal/model"
	"museum-shop/internal/museum"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Default values substituted for missing optional text fields.
const (
	defaultTitle  = "Untitled"
	defaultArtist = "Unknown Artist"
	defaultDate   = "Date Unknown"
)

// Service defines operations for the storefront catalog.
type Service interface {
	// Artworks retrieves the featured artworks listing.
	Artworks(ctx context.Context) ([]model.CatalogItem, error)

	// Merchandise retrieves the merchandise listing with prices assigned.
	Merchandise(ctx context.Context) ([]model.MerchandiseItem, error)
}

// catalogService implements Service by aggregating per-object fetches
// against the external collection source.
type catalogService struct {
	client      museum.Client
	featured    []int
	merchandise []int
	logger      zerolog.Logger
}

// NewService creates a new catalog service over the given object-ID lists.
// The two lists are configured independently and never derived from one
// another.
func NewService(client museum.Client, featured, merchandise []int, logger zerolog.Logger) Service {
	return &catalogService{
		client:      client,
		featured:    featured,
		merchandise: merchandise,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// fetchResult is the option-style outcome of a single object fetch. Absent
// covers unavailable objects and objects without a usable thumbnail; neither
// is an error from the caller's point of view.
type fetchResult struct {
	item model.CatalogItem
	ok   bool
}

// Artworks retrieves the featured artworks listing. Objects that cannot be
// fetched or lack a thumbnail are silently dropped; the result order follows
// fetch completion, not the configured list.
func (s *catalogService) Artworks(ctx context.Context) ([]model.CatalogItem, error) {
	items := s.collect(ctx, s.featured)

	if err := ctx.Err(); err != nil {
		s.logger.Error().Err(err).Msg("artwork aggregation aborted")
		return nil, model.ErrFetchFailed
	}

	s.logger.Debug().
		Int("requested", len(s.featured)).
		Int("returned", len(items)).
		Msg("aggregated featured artworks")

	return items, nil
}

// Merchandise retrieves the merchandise listing with the fixed price tier
// applied per object ID.
func (s *catalogService) Merchandise(ctx context.Context) ([]model.MerchandiseItem, error) {
	items := s.collect(ctx, s.merchandise)

	if err := ctx.Err(); err != nil {
		s.logger.Error().Err(err).Msg("merchandise aggregation aborted")
		return nil, model.ErrFetchFailed
	}

	merchandise := make([]model.MerchandiseItem, len(items))
	for i, item := range items {
		merchandise[i] = model.MerchandiseItem{
			CatalogItem: item,
			Price:       PriceFor(item.ObjectID),
		}
	}

	s.logger.Debug().
		Int("requested", len(s.merchandise)).
		Int("returned", len(merchandise)).
		Msg("aggregated merchandise")

	return merchandise, nil
}

// collect fans out one fetch per ID with no concurrency limit, waits for all
// of them, and compacts the present results. Completion order is preserved,
// so the output order is not guaranteed to match the input list.
func (s *catalogService) collect(ctx context.Context, ids []int) []model.CatalogItem {
	results := make(chan fetchResult, len(ids))

	var g errgroup.Group
	for _, id := range ids {
		g.Go(func() error {
			results <- s.fetch(ctx, id)
			return nil
		})
	}

	// Fetch failures are mapped to absence inside fetch, never returned.
	_ = g.Wait()
	close(results)

	items := make([]model.CatalogItem, 0, len(ids))
	for res := range results {
		if res.ok {
			items = append(items, res.item)
		}
	}
	return items
}

// fetch retrieves one object and normalizes it, reporting absence when the
// source fails, responds with non-success, or omits the thumbnail.
func (s *catalogService) fetch(ctx context.Context, id int) fetchResult {
	obj, err := s.client.GetObject(ctx, id)
	if err != nil {
		s.logger.Debug().Err(err).Int("object_id", id).Msg("dropping unavailable object")
		return fetchResult{}
	}

	// Content-quality filter: listings only show objects with a thumbnail.
	if obj.PrimaryImageSmall == "" {
		s.logger.Debug().Int("object_id", id).Msg("dropping object without thumbnail")
		return fetchResult{}
	}

	return fetchResult{item: normalize(obj), ok: true}
}

// normalize converts a raw museum object into a catalog item, substituting
// defaults for missing optional text fields.
func normalize(obj *model.MuseumObject) model.CatalogItem {
	item := model.CatalogItem{
		ObjectID:          obj.ObjectID,
		Title:             obj.Title,
		ArtistDisplayName: obj.ArtistDisplayName,
		PrimaryImage:      obj.PrimaryImage,
		PrimaryImageSmall: obj.PrimaryImageSmall,
		ObjectDate:        obj.ObjectDate,
		Department:        obj.Department,
		Culture:           obj.Culture,
		Medium:            obj.Medium,
	}

	if item.Title == "" {
		item.Title = defaultTitle
	}
	if item.ArtistDisplayName == "" {
		item.ArtistDisplayName = defaultArtist
	}
	if item.ObjectDate == "" {
		item.ObjectDate = defaultDate
	}

	return item
}
