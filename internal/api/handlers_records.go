package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/constancia/internal/models"
	"github.com/terraincognita07/constancia/internal/services"
)

// CreateRecord appends the day's outreach counts. Posting twice for the same
// date appends again; totals are summed at read time.
func (handler *Handler) CreateRecord(c *fiber.Ctx) error {
	var input recordInput
	if err := c.BodyParser(&input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	day, err := handler.resolveDay(input.Date)
	if err != nil {
		return serviceError(c, err)
	}

	document, revision := documentFromContext(c)
	ledger := services.NewLedgerService(document)
	userName := currentUserName(c)

	counts := []struct {
		kind  models.EventKind
		count int
	}{
		{models.KindContact, input.Contacts},
		{models.KindDemo, input.Demos},
		{models.KindPlan, input.Plans},
	}
	for _, record := range counts {
		if err := ledger.RecordEvent(userName, record.kind, day, record.count); err != nil {
			return serviceError(c, err)
		}
	}

	if ok, err := handler.persist(c, document, revision); !ok {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"date": services.DayKey(day)})
}

func (handler *Handler) GetSeries(c *fiber.Ctx) error {
	document, _ := documentFromContext(c)
	analytics := services.NewAnalyticsService(document, handler.goals)
	return c.JSON(fiber.Map{"series": analytics.MergeSeries(currentUserName(c))})
}

func (handler *Handler) GetWeekly(c *fiber.Ctx) error {
	reference, err := handler.resolveDay(c.Query("date"))
	if err != nil {
		return serviceError(c, err)
	}

	document, _ := documentFromContext(c)
	analytics := services.NewAnalyticsService(document, handler.goals)
	return c.JSON(fiber.Map{
		"week_start": services.DayKey(services.WeekStart(reference)),
		"progress":   analytics.WeeklyOverview(currentUserName(c), reference),
	})
}

func (handler *Handler) GetDashboard(c *fiber.Ctx) error {
	document, _ := documentFromContext(c)
	analytics := services.NewAnalyticsService(document, handler.goals)
	dashboard := services.NewDashboardService(analytics)
	now := time.Now().In(handler.location)
	return c.JSON(dashboard.Build(currentUserName(c), now))
}
