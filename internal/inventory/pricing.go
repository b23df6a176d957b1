package inventory

// DynamicPrice applies the linear demand surcharge to a movie's base
// ticket price: price = base × (1 + occupancy).  A fuller hall costs more,
// up to double the base when sold out.  The function is pure; occupancy is
// computed by the caller under the show lock and passed in, so no locking
// happens here.  The result is truncated to a whole currency unit.
func DynamicPrice(baseCost int, occupancy float64) int {
	return int(float64(baseCost) * (1 + occupancy))
}
