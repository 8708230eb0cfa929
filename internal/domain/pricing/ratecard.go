package pricing

import (
	"sort"

	"booking-core/internal/pkg/errs"
)

// Allotment assigns a share of the requested duration to one price
// tier. The same Price row may back several allotments, but a single
// allotment never covers more minutes than its tier.
type Allotment struct {
	Price   Price
	Minutes int
}

// ResolveRateCard decomposes a total requested duration over the given
// rate card, longest tier first. The card must already be filtered to
// the customer's group and plan.
//
// The longest available tier is always used in priority. E.g. for a 12
// hour reservation with tiers of 3 hours and 7 hours plus the base
// hourly price, the decomposition is 7 + 3 + 1 + 1. Whenever no tier
// fits the remaining duration, the base (one hour) tier fills the gap,
// so the allotted minutes always sum exactly to the request. A card
// whose extended tiers cover the request exactly never needs a base
// row; the error is raised only when a gap remains and no base row can
// fill it.
//
// Tiers with a non-positive duration other than the base row are
// ignored rather than looping forever.
func ResolveRateCard(card []Price, totalMinutes int) ([]Allotment, error) {
	var allotments []Allotment
	remaining := totalMinutes
	for remaining > 0 {
		tier, ok := longestFit(card, remaining)
		if !ok {
			if tier, ok = baseTier(card); !ok {
				return nil, errs.Mark(errs.New("rate card has no base price"), errs.ErrRateCardExhausted)
			}
		}

		current := remaining
		if tier.TierMinutes() < current {
			current = tier.TierMinutes()
		}
		allotments = append(allotments, Allotment{Price: tier, Minutes: current})
		remaining -= current
	}

	sort.SliceStable(allotments, func(i, j int) bool {
		return allotments[i].Minutes > allotments[j].Minutes
	})
	return allotments, nil
}

// longestFit returns the price with the largest duration not exceeding
// the remaining minutes.
func longestFit(card []Price, remaining int) (Price, bool) {
	var best Price
	found := false
	for _, p := range card {
		if p.DurationMinutes <= 0 || p.DurationMinutes > remaining {
			continue
		}
		if !found || p.DurationMinutes > best.DurationMinutes {
			best = p
			found = true
		}
	}
	return best, found
}

// baseTier finds the fallback hourly price: a 60 minute row, or a row
// without a duration.
func baseTier(card []Price) (Price, bool) {
	for _, p := range card {
		if p.DurationMinutes == minutesPerHour {
			return p, true
		}
	}
	for _, p := range card {
		if p.DurationMinutes <= 0 {
			return p, true
		}
	}
	return Price{}, false
}
