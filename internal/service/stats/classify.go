package stats

import (
	"math"

	"github.com/macrolog/macrolog-backend/internal/domain"
)

// Band thresholds in percent. Deviations in the direction that serves the
// user's goal get the gradual band; everything else gets the strict band.
const (
	gradualOnTrack   = 10
	gradualClose     = 20
	gradualNeedsWork = 30
	strictOnTrack    = 5
)

// ClassifyCalories maps a measured calorie figure against the target and
// maintenance pair into an adherence tier. This is the single canonical rule;
// the totals widget, the weekly views, and the admin grid must all call it
// rather than carry their own thresholds.
//
// A deviation is "aligned" when it points the way the user is trying to go:
// under target while cutting, over target while bulking. Aligned deviations
// get the gradual 10/20/30 band on |percent|; non-aligned ones (including
// everything in maintain mode) only pass within the strict 5% band.
func ClassifyCalories(measured, target, maintenance float64) domain.Tier {
	if measured == 0 || target == 0 {
		return domain.TierNoData
	}

	diff := measured - target
	percent := math.Abs(diff / target * 100)

	isDeficitGoal := target < maintenance
	isSurplusGoal := target > maintenance
	aligned := (isDeficitGoal && diff < 0) || (isSurplusGoal && diff > 0)

	if aligned {
		switch {
		case percent <= gradualOnTrack:
			return domain.TierOnTrack
		case percent <= gradualClose:
			return domain.TierClose
		case percent <= gradualNeedsWork:
			return domain.TierNeedsWork
		default:
			return domain.TierOffTrack
		}
	}

	if percent <= strictOnTrack {
		return domain.TierOnTrack
	}
	return domain.TierOffTrack
}

// ClassifyProtein maps measured protein against its target. One-sided:
// exceeding the target is always fine, only the shortfall is graded.
func ClassifyProtein(measured, target float64) domain.Tier {
	if measured == 0 || target == 0 {
		return domain.TierNoData
	}

	percentBelow := (target - measured) / target * 100
	switch {
	case percentBelow <= gradualOnTrack:
		return domain.TierOnTrack
	case percentBelow <= gradualClose:
		return domain.TierClose
	case percentBelow <= gradualNeedsWork:
		return domain.TierNeedsWork
	default:
		return domain.TierOffTrack
	}
}
