package services

import (
	"sort"
	"time"

	"github.com/terraincognita07/constancia/internal/models"
)

// AnalyticsService derives daily and weekly totals, goal progress, streaks
// and chart series from the append-only ledgers. Everything here is a pure
// read over the in-memory document.
type AnalyticsService struct {
	document *models.Document
	goals    WeeklyGoals
}

func NewAnalyticsService(document *models.Document, goals WeeklyGoals) *AnalyticsService {
	return &AnalyticsService{document: document, goals: goals}
}

// WeeklyProgress reports the raw weekly total next to the configured goal;
// the ratio is capped at 1.0 for display.
type WeeklyProgress struct {
	Kind  models.EventKind `json:"kind"`
	Total int              `json:"total"`
	Goal  int              `json:"goal"`
	Ratio float64          `json:"ratio"`
}

// SeriesPoint is one chart row: every date that appears in at least one
// ledger, with absent kinds zero-filled.
type SeriesPoint struct {
	Date     string `json:"date"`
	Contacts int    `json:"contacts"`
	Demos    int    `json:"demos"`
	Plans    int    `json:"plans"`
}

// DailyTotal sums every entry for the exact (user, kind, day) triple.
// Duplicate dates are expected; they were appended, not merged.
func (service *AnalyticsService) DailyTotal(userName string, kind models.EventKind, day time.Time) int {
	return service.dailyTotalByKey(userName, kind, DayKey(day))
}

func (service *AnalyticsService) dailyTotalByKey(userName string, kind models.EventKind, dayValue string) int {
	total := 0
	for _, entry := range service.document.EventsByKind(kind)[userName] {
		if entry.Date == dayValue {
			total += entry.Count
		}
	}
	return total
}

// WeeklyTotal sums the seven days starting at the Monday on or before the
// given reference day.
func (service *AnalyticsService) WeeklyTotal(userName string, kind models.EventKind, reference time.Time) int {
	start := WeekStart(reference)
	total := 0
	for offset := 0; offset < 7; offset++ {
		total += service.DailyTotal(userName, kind, start.AddDate(0, 0, offset))
	}
	return total
}

func (service *AnalyticsService) WeeklyProgressFor(userName string, kind models.EventKind, reference time.Time) WeeklyProgress {
	total := service.WeeklyTotal(userName, kind, reference)
	goal := service.goals.For(kind)

	ratio := 0.0
	if goal > 0 {
		ratio = float64(total) / float64(goal)
		if ratio > 1.0 {
			ratio = 1.0
		}
	}

	return WeeklyProgress{Kind: kind, Total: total, Goal: goal, Ratio: ratio}
}

func (service *AnalyticsService) WeeklyOverview(userName string, reference time.Time) []WeeklyProgress {
	kinds := []models.EventKind{models.KindContact, models.KindDemo, models.KindPlan}
	overview := make([]WeeklyProgress, 0, len(kinds))
	for _, kind := range kinds {
		overview = append(overview, service.WeeklyProgressFor(userName, kind, reference))
	}
	return overview
}

// Streak counts consecutive qualifying days ending at the reference day,
// walking backward one day at a time. A day qualifies when the user has any
// contact or demo entry with count > 0. The reference day itself is the
// anchor: without an entry there the streak is 0 no matter what came before.
func (service *AnalyticsService) Streak(userName string, reference time.Time) int {
	qualifying := service.qualifyingDays(userName)

	streak := 0
	for cursor := DateAtLocation(reference, reference.Location()); ; cursor = cursor.AddDate(0, 0, -1) {
		if _, ok := qualifying[DayKey(cursor)]; !ok {
			break
		}
		streak++
	}
	return streak
}

func (service *AnalyticsService) qualifyingDays(userName string) map[string]struct{} {
	days := map[string]struct{}{}
	for _, kind := range []models.EventKind{models.KindContact, models.KindDemo} {
		for _, entry := range service.document.EventsByKind(kind)[userName] {
			if entry.Count > 0 {
				days[entry.Date] = struct{}{}
			}
		}
	}
	return days
}

// MergeSeries joins the three ledgers into one date-ascending table: a full
// outer join on date with zeros where a kind has no entries.
func (service *AnalyticsService) MergeSeries(userName string) []SeriesPoint {
	dates := map[string]struct{}{}
	for _, kind := range []models.EventKind{models.KindContact, models.KindDemo, models.KindPlan} {
		for _, entry := range service.document.EventsByKind(kind)[userName] {
			dates[entry.Date] = struct{}{}
		}
	}

	ordered := make([]string, 0, len(dates))
	for date := range dates {
		ordered = append(ordered, date)
	}
	sort.Strings(ordered)

	series := make([]SeriesPoint, 0, len(ordered))
	for _, date := range ordered {
		series = append(series, SeriesPoint{
			Date:     date,
			Contacts: service.dailyTotalByKey(userName, models.KindContact, date),
			Demos:    service.dailyTotalByKey(userName, models.KindDemo, date),
			Plans:    service.dailyTotalByKey(userName, models.KindPlan, date),
		})
	}
	return series
}
