package services

import (
	"hash/fnv"
	"time"

	"github.com/terraincognita07/constancia/internal/models"
)

// Daily status values shown at the top of the dashboard.
const (
	DayStatusNoContacts     = "no_contacts"
	DayStatusContactsNoDemo = "contacts_no_demo"
	DayStatusFullDay        = "full_day"
)

var dayStatusMessages = map[string]string{
	DayStatusNoContacts:     "No contacts yet today.",
	DayStatusContactsNoDemo: "Good start. How about a demo today?",
	DayStatusFullDay:        "Full day. Keep it up.",
}

var motivationalLines = []string{
	"Persistence wins.",
	"It's not luck, it's volume.",
	"Even one today counts.",
	"Small days stack into big weeks.",
	"Show up again tomorrow.",
}

// DashboardService assembles the daily nudge: today's status, the streak
// with its badge, and a motivational line that stays stable for a given user
// and day instead of reshuffling on every page load.
type DashboardService struct {
	analytics *AnalyticsService
}

func NewDashboardService(analytics *AnalyticsService) *DashboardService {
	return &DashboardService{analytics: analytics}
}

type DashboardView struct {
	Status       string           `json:"status"`
	Message      string           `json:"message"`
	Motivational string           `json:"motivational"`
	Streak       int              `json:"streak"`
	Badge        string           `json:"badge,omitempty"`
	Weekly       []WeeklyProgress `json:"weekly"`
}

func (service *DashboardService) Build(userName string, now time.Time) DashboardView {
	status := service.dayStatus(userName, now)
	streak := service.analytics.Streak(userName, now)

	return DashboardView{
		Status:       status,
		Message:      dayStatusMessages[status],
		Motivational: pickMotivationalLine(userName, now),
		Streak:       streak,
		Badge:        BadgeForStreak(streak),
		Weekly:       service.analytics.WeeklyOverview(userName, now),
	}
}

func (service *DashboardService) dayStatus(userName string, now time.Time) string {
	contactsToday := service.analytics.DailyTotal(userName, models.KindContact, now) > 0
	demosToday := service.analytics.DailyTotal(userName, models.KindDemo, now) > 0

	switch {
	case !contactsToday:
		return DayStatusNoContacts
	case !demosToday:
		return DayStatusContactsNoDemo
	default:
		return DayStatusFullDay
	}
}

func pickMotivationalLine(userName string, now time.Time) string {
	seed := fnv.New32a()
	seed.Write([]byte(userName))
	seed.Write([]byte(DayKey(now)))
	return motivationalLines[seed.Sum32()%uint32(len(motivationalLines))]
}
