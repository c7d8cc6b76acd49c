package catalog

import (
	"math"

	"github.com/wicaksana/atelier/internal/domain"
)

// EffectivePrice returns the base price after applying the discount
// percentage. The discount is clamped into [0, 100] so the result always
// satisfies 0 <= effective <= base for well-formed prices. A NaN base price
// propagates; bucket matching treats it as matching no bucket.
func EffectivePrice(p domain.Product) float64 {
	d := p.DiscountPercent
	if d < 0 {
		d = 0
	}
	if d > 100 {
		d = 100
	}
	return p.Price * (1 - float64(d)/100)
}

// InBucket reports whether a price belongs to the given bucket. BucketAll
// accepts everything, including NaN; the four concrete buckets reject NaN
// because every range comparison against NaN is false.
func InBucket(price float64, b PriceBucket) bool {
	switch b {
	case "", BucketAll:
		return true
	case BucketUnder100K:
		return price < 100_000
	case Bucket100Kto500K:
		return price >= 100_000 && price < 500_000
	case Bucket500Kto1M:
		return price >= 500_000 && price < 1_000_000
	case BucketOver1M:
		return price >= 1_000_000
	}
	return false
}

// priceOrder compares effective prices for sorting, pushing NaN to the end
// regardless of direction so unpriced products never interleave.
func priceOrder(a, b float64) int {
	switch {
	case math.IsNaN(a) && math.IsNaN(b):
		return 0
	case math.IsNaN(a):
		return 1
	case math.IsNaN(b):
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
