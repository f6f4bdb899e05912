package services

import "github.com/terraincognita07/constancia/internal/models"

// WeeklyGoals is configuration, not derived data: the per-kind targets a
// user is expected to hit inside one Monday-based week.
type WeeklyGoals struct {
	Contacts int
	Demos    int
	Plans    int
}

func DefaultWeeklyGoals() WeeklyGoals {
	return WeeklyGoals{
		Contacts: 30,
		Demos:    5,
		Plans:    3,
	}
}

func (goals WeeklyGoals) For(kind models.EventKind) int {
	switch kind {
	case models.KindContact:
		return goals.Contacts
	case models.KindDemo:
		return goals.Demos
	case models.KindPlan:
		return goals.Plans
	default:
		return 0
	}
}
