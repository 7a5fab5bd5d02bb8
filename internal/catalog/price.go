package catalog

// priceTable holds the five fixed price tiers merchandise is sold at.
var priceTable = [...]float64{29.99, 49.99, 79.99, 99.99, 149.99}

// PriceFor maps an object ID to its price tier. Pure and total: the same ID
// always yields the same price, within and across processes.
func PriceFor(id int) float64 {
	seed := id % 100
	if seed < 0 {
		seed = -seed
	}
	return priceTable[seed%len(priceTable)]
}
