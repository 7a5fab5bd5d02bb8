package model

import "time"

// Customer holds the checkout form fields. Presence is the only thing
// validated; formats are accepted as submitted.
type Customer struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Zip     string `json:"zip" validate:"required"`
}

// OrderLine is one purchased item as recorded on an order. It is a snapshot
// taken at submission time, decoupled from the live catalog.
type OrderLine struct {
	ObjectID int     `json:"objectID"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is a confirmed order held for the lifetime of the process.
type Order struct {
	ID        string      `json:"id"`
	Customer  Customer    `json:"customer"`
	Items     []OrderLine `json:"items"`
	Total     float64     `json:"total"`
	Timestamp time.Time   `json:"timestamp"`
	Status    string      `json:"status"`
}

// OrderRequest represents the request payload for placing an order. The
// total is trusted as declared by the caller and never recomputed.
type OrderRequest struct {
	Customer *Customer   `json:"customer"`
	Items    []OrderLine `json:"items"`
	Total    float64     `json:"total"`
}

// OrderReceipt represents the response payload for a successful order.
type OrderReceipt struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

// OrderSummary is the read-side view of an order.
type OrderSummary struct {
	ID        string    `json:"id"`
	Total     float64   `json:"total"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	ItemCount int       `json:"itemCount"`
}

// OrderListResponse wraps the summaries returned by the orders listing.
type OrderListResponse struct {
	Orders []OrderSummary `json:"orders"`
}
