package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclecast/internal/dates"
	"github.com/terraincognita07/cyclecast/internal/services"
)

// defaultListWindowDays bounds date-ranged listings when no range is given.
const defaultListWindowDays = 366

type periodInput struct {
	Start string `json:"start" form:"start"`
	End   string `json:"end" form:"end"`
}

type ovulationTestInput struct {
	Date    string `json:"date" form:"date"`
	Outcome string `json:"outcome" form:"outcome"`
}

type ovulationDayInput struct {
	Date string `json:"date" form:"date"`
}

type pillPackageInput struct {
	Start           string `json:"start" form:"start"`
	ActivePillCount int    `json:"active_pill_count" form:"active_pill_count"`
	RestDays        int    `json:"rest_days" form:"rest_days"`
}

type pregnancyInput struct {
	Start         string `json:"start" form:"start"`
	DueDate       string `json:"due_date" form:"due_date"`
	IsEnded       bool   `json:"is_ended" form:"is_ended"`
	IsMiscarriage bool   `json:"is_miscarriage" form:"is_miscarriage"`
}

func (handler *Handler) listWindow(c *fiber.Ctx) (dates.Day, dates.Day, error) {
	today := handler.services.Cycles.Today()
	return queryRange(c, today.AddDays(-defaultListWindowDays), today.AddDays(defaultListWindowDays))
}

func (handler *Handler) ListPeriods(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	records, err := handler.services.Records.ListPeriods(c.UserContext(), user.ID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(newPeriodViews(records))
}

func (handler *Handler) CreatePeriod(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var input periodInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	start, err := parseDay(input.Start)
	if err != nil {
		return handler.respondError(c, err)
	}
	end := start
	if strings.TrimSpace(input.End) != "" {
		if end, err = parseDay(input.End); err != nil {
			return handler.respondError(c, err)
		}
	}

	record, err := handler.services.Records.AddPeriod(c.UserContext(), user.ID, start, end)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(periodView{ID: record.ID, Start: record.StartDay, End: record.EndDay})
}

func (handler *Handler) DeletePeriod(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	if err := handler.services.Records.DeletePeriod(c.UserContext(), user.ID, c.Params("id")); err != nil {
		return handler.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) ListOvulationTests(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	from, to, err := handler.listWindow(c)
	if err != nil {
		return handler.respondError(c, err)
	}

	tests, err := handler.services.Records.ListOvulationTests(c.UserContext(), user.ID, from, to)
	if err != nil {
		return handler.respondError(c, err)
	}
	views := make([]ovulationTestView, 0, len(tests))
	for _, test := range tests {
		views = append(views, ovulationTestView{Date: test.Day, Outcome: test.Outcome})
	}
	return c.JSON(views)
}

func (handler *Handler) RecordOvulationTest(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var input ovulationTestInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	day, err := parseDay(input.Date)
	if err != nil {
		return handler.respondError(c, err)
	}

	outcome := strings.ToUpper(strings.TrimSpace(input.Outcome))
	test, err := handler.services.Records.RecordOvulationTest(c.UserContext(), user.ID, day, outcome)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ovulationTestView{Date: test.Day, Outcome: test.Outcome})
}

func (handler *Handler) DeleteOvulationTest(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	day, err := parseDay(c.Params("date"))
	if err != nil {
		return handler.respondError(c, err)
	}
	if err := handler.services.Records.DeleteOvulationTest(c.UserContext(), user.ID, day); err != nil {
		return handler.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) ListOvulationDays(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	from, to, err := handler.listWindow(c)
	if err != nil {
		return handler.respondError(c, err)
	}

	days, err := handler.services.Records.ListOvulationDays(c.UserContext(), user.ID, from, to)
	if err != nil {
		return handler.respondError(c, err)
	}
	views := make([]dates.Day, 0, len(days))
	for _, day := range days {
		views = append(views, day.Day)
	}
	return c.JSON(views)
}

func (handler *Handler) CreateOvulationDay(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var input ovulationDayInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	day, err := parseDay(input.Date)
	if err != nil {
		return handler.respondError(c, err)
	}
	if _, err := handler.services.Records.AddOvulationDay(c.UserContext(), user.ID, day); err != nil {
		return handler.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"date": day})
}

func (handler *Handler) DeleteOvulationDay(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	day, err := parseDay(c.Params("date"))
	if err != nil {
		return handler.respondError(c, err)
	}
	if err := handler.services.Records.DeleteOvulationDay(c.UserContext(), user.ID, day); err != nil {
		return handler.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) ListPillPackages(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	packages, err := handler.services.Records.ListPillPackages(c.UserContext(), user.ID)
	if err != nil {
		return handler.respondError(c, err)
	}
	views := make([]pillPackageView, 0, len(packages))
	for _, pkg := range packages {
		views = append(views, newPillPackageView(pkg))
	}
	return c.JSON(views)
}

func (handler *Handler) CreatePillPackage(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var input pillPackageInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	start, err := parseDay(input.Start)
	if err != nil {
		return handler.respondError(c, err)
	}

	pkg, err := handler.services.Records.AddPillPackage(c.UserContext(), user.ID, start, input.ActivePillCount, input.RestDays)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newPillPackageView(pkg))
}

func (handler *Handler) DeletePillPackage(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	if err := handler.services.Records.DeletePillPackage(c.UserContext(), user.ID, uint(id)); err != nil {
		return handler.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) GetPregnancy(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	pregnancy, err := handler.services.Records.CurrentPregnancy(c.UserContext(), user.ID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(newPregnancyView(pregnancy))
}

func (handler *Handler) SavePregnancy(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var input pregnancyInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	start, err := parseDay(input.Start)
	if err != nil {
		return handler.respondError(c, err)
	}
	update := services.PregnancyUpdate{Start: start, IsEnded: input.IsEnded, IsMiscarriage: input.IsMiscarriage}
	if strings.TrimSpace(input.DueDate) != "" {
		due, err := parseDay(input.DueDate)
		if err != nil {
			return handler.respondError(c, err)
		}
		update.DueDate = &due
	}

	pregnancy, err := handler.services.Records.SavePregnancy(c.UserContext(), user.ID, update)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(newPregnancyView(pregnancy))
}

func (handler *Handler) DeletePregnancy(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	if err := handler.services.Records.DeletePregnancy(c.UserContext(), user.ID); err != nil {
		return handler.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
