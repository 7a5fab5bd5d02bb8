package catalog

import (
	"context"
	"testing"

	"museum-shop/internal/model"
	"museum-shop/internal/museum"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMuseumClient is a mock implementation of museum.Client.
type MockMuseumClient struct {
	mock.Mock
}

func (m *MockMuseumClient) GetObject(ctx context.Context, id int) (*model.MuseumObject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MuseumObject), args.Error(1)
}

func testObject(id int) *model.MuseumObject {
	return &model.MuseumObject{
		ObjectID:          id,
		Title:             "The Harvesters",
		ArtistDisplayName: "Pieter Bruegel the Elder",
		PrimaryImage:      "https://images.example.org/full.jpg",
		PrimaryImageSmall: "https://images.example.org/small.jpg",
		ObjectDate:        "1565",
		Department:        "European Paintings",
		Culture:           "Netherlandish",
		Medium:            "Oil on wood",
	}
}

func objectIDs(items []model.CatalogItem) []int {
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ObjectID
	}
	return ids
}

func TestCatalogService_Artworks(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Object without thumbnail is excluded", func(t *testing.T) {
		noThumb := testObject(2)
		noThumb.PrimaryImageSmall = ""

		client := new(MockMuseumClient)
		client.On("GetObject", mock.Anything, 1).Return(testObject(1), nil)
		client.On("GetObject", mock.Anything, 2).Return(noThumb, nil)
		client.On("GetObject", mock.Anything, 3).Return(testObject(3), nil)

		service := NewService(client, []int{1, 2, 3}, nil, logger)

		items, err := service.Artworks(context.Background())
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{1, 3}, objectIDs(items))
		client.AssertExpectations(t)
	})

	t.Run("Failed fetch is dropped, not propagated", func(t *testing.T) {
		client := new(MockMuseumClient)
		client.On("GetObject", mock.Anything, 1).Return(testObject(1), nil)
		client.On("GetObject", mock.Anything, 2).Return(nil, museum.ErrObjectUnavailable)

		service := NewService(client, []int{1, 2}, nil, logger)

		items, err := service.Artworks(context.Background())
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{1}, objectIDs(items))
	})

	t.Run("All fetches failing yields empty list, not error", func(t *testing.T) {
		client := new(MockMuseumClient)
		client.On("GetObject", mock.Anything, mock.Anything).Return(nil, museum.ErrObjectUnavailable)

		service := NewService(client, []int{1, 2, 3}, nil, logger)

		items, err := service.Artworks(context.Background())
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("Missing optional fields get defaults", func(t *testing.T) {
		sparse := &model.MuseumObject{
			ObjectID:          7,
			PrimaryImageSmall: "https://images.example.org/small.jpg",
		}

		client := new(MockMuseumClient)
		client.On("GetObject", mock.Anything, 7).Return(sparse, nil)

		service := NewService(client, []int{7}, nil, logger)

		items, err := service.Artworks(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Untitled", items[0].Title)
		assert.Equal(t, "Unknown Artist", items[0].ArtistDisplayName)
		assert.Equal(t, "Date Unknown", items[0].ObjectDate)
		assert.Empty(t, items[0].PrimaryImage)
		assert.Empty(t, items[0].Culture)
	})

	t.Run("Cancelled context reports fetch failure", func(t *testing.T) {
		client := new(MockMuseumClient)
		client.On("GetObject", mock.Anything, mock.Anything).Return(nil, context.Canceled)

		service := NewService(client, []int{1, 2}, nil, logger)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := service.Artworks(ctx)
		assert.ErrorIs(t, err, model.ErrFetchFailed)
	})
}

func TestCatalogService_Merchandise(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Prices assigned per object ID", func(t *testing.T) {
		client := new(MockMuseumClient)
		client.On("GetObject", mock.Anything, 101).Return(testObject(101), nil)
		client.On("GetObject", mock.Anything, 104).Return(testObject(104), nil)

		service := NewService(client, nil, []int{101, 104}, logger)

		items, err := service.Merchandise(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 2)

		priced := make(map[int]float64, len(items))
		for _, item := range items {
			priced[item.ObjectID] = item.Price
		}
		assert.Equal(t, 49.99, priced[101])
		assert.Equal(t, 149.99, priced[104])
	})

	t.Run("Uses the merchandise list, not the featured list", func(t *testing.T) {
		client := new(MockMuseumClient)
		client.On("GetObject", mock.Anything, 20).Return(testObject(20), nil)

		service := NewService(client, []int{10}, []int{20}, logger)

		items, err := service.Merchandise(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 20, items[0].ObjectID)
		client.AssertNotCalled(t, "GetObject", mock.Anything, 10)
	})
}
