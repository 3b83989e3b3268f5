package engine

import "github.com/skylark-hq/skylark/internal/models"

// Base minutes per prep tier, plus a flat penalty for non-veg dishes. The
// kitchen works lines in parallel, so the base estimate is the slowest single
// item, not a sum; a volume buffer then accounts for throughput loss on
// larger tickets.
const (
	quickMinutes  = 10
	mediumMinutes = 20
	slowMinutes   = 35
	nonVegPenalty = 10

	volumeFreeLines  = 2
	volumeStepMinute = 5
)

// EstimatePrepTime derives the estimated minutes for a cart. Stay bookings
// contribute no kitchen time. An empty cart yields 0. Pure function.
func EstimatePrepTime(cart Cart) int {
	if len(cart) == 0 {
		return 0
	}

	baseTime := 0
	for _, entry := range cart {
		if entry.Category == models.CategoryStay {
			continue
		}
		itemTime := 0
		switch entry.PrepTime {
		case models.PrepQuick:
			itemTime = quickMinutes
		case models.PrepMedium:
			itemTime = mediumMinutes
		case models.PrepSlow:
			itemTime = slowMinutes
		}
		if !entry.IsVeg {
			itemTime += nonVegPenalty
		}
		if itemTime > baseTime {
			baseTime = itemTime
		}
	}

	volumeBuffer := 0
	if lines := len(cart); lines > volumeFreeLines {
		volumeBuffer = (lines - volumeFreeLines) * volumeStepMinute
	}
	return baseTime + volumeBuffer
}
