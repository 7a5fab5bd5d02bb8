package model

// MuseumObject is the raw payload returned by the external collection API.
// Every field is optional from our point of view; the response body is
// externally controlled.
type MuseumObject struct {
	ObjectID          int    `json:"objectID"`
	Title             string `json:"title"`
	ArtistDisplayName string `json:"artistDisplayName"`
	PrimaryImage      string `json:"primaryImage"`
	PrimaryImageSmall string `json:"primaryImageSmall"`
	ObjectDate        string `json:"objectDate"`
	Department        string `json:"department"`
	Culture           string `json:"culture"`
	Medium            string `json:"medium"`
}

// CatalogItem is a normalized collection object suitable for the storefront.
// Items without a thumbnail never become CatalogItems.
type CatalogItem struct {
	ObjectID          int    `json:"objectID"`
	Title             string `json:"title"`
	ArtistDisplayName string `json:"artistDisplayName"`
	PrimaryImage      string `json:"primaryImage"`
	PrimaryImageSmall string `json:"primaryImageSmall"`
	ObjectDate        string `json:"objectDate"`
	Department        string `json:"department"`
	Culture           string `json:"culture"`
	Medium            string `json:"medium"`
}

// MerchandiseItem is a CatalogItem offered for sale at a fixed price.
type MerchandiseItem struct {
	CatalogItem
	Price float64 `json:"price"`
}

// CartLine is a merchandise item plus a quantity. A cart holds at most one
// line per object ID.
type CartLine struct {
	MerchandiseItem
	Quantity int `json:"quantity"`
}
