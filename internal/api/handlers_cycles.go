package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultCyclesLookBackDays  = 90
	defaultCyclesLookAheadDays = 90
)

func (handler *Handler) GetCycles(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	today := handler.services.Cycles.Today()
	from, to, err := queryRange(c, today.AddDays(-defaultCyclesLookBackDays), today.AddDays(defaultCyclesLookAheadDays))
	if err != nil {
		return handler.respondError(c, err)
	}
	if to < from {
		return apiError(c, fiber.StatusBadRequest, "from must not be after to")
	}

	cycles, err := handler.services.Cycles.Cycles(c.UserContext(), user.ID, from, to)
	if err != nil {
		return handler.respondError(c, err)
	}
	views := make([]cycleView, 0, len(cycles))
	for _, cycle := range cycles {
		views = append(views, newCycleView(cycle))
	}
	return c.JSON(fiber.Map{"from": from, "to": to, "cycles": views})
}

func (handler *Handler) GetStatus(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	day, err := parseDay(c.Params("date"))
	if err != nil {
		return handler.respondError(c, err)
	}

	status, err := handler.services.Cycles.Status(c.UserContext(), user.ID, day)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(newStatusView(status))
}

func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	month := handler.services.Cycles.Today().Time(time.UTC)
	if raw := strings.TrimSpace(c.Query("month")); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "month must be YYYY-MM")
		}
		month = parsed
	}

	calendar, err := handler.services.Calendar.Month(c.UserContext(), user.ID, month.Year(), month.Month())
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(calendar)
}
