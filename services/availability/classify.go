package availability

import "glamora/models"

// ClassifyDay reduces a day's slot counts to the coarse calendar status. The
// result depends only on whether the provider works that weekday and on how
// many slots remain available.
func ClassifyDay(worksWeekday bool, availableCount int) models.DayStatus {
	switch {
	case !worksWeekday:
		return models.DayStatusClosed
	case availableCount == 0:
		return models.DayStatusFull
	case availableCount <= 3:
		return models.DayStatusLimited
	default:
		return models.DayStatusAvailable
	}
}
