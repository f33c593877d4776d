package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclecast/internal/dates"
	"github.com/terraincognita07/cyclecast/internal/services"
)

var errMissingDate = errors.New("date is required")

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceErrorStatus maps service sentinels to HTTP statuses; anything else is
// an internal failure.
func serviceErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrRecordNotFound),
		errors.Is(err, services.ErrPregnancyNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrPeriodOverlap):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrPeriodRangeInvalid),
		errors.Is(err, services.ErrCycleLengthOutOfRange),
		errors.Is(err, services.ErrPeriodLengthOutOfRange),
		errors.Is(err, services.ErrOvulationOutcomeInvalid),
		errors.Is(err, services.ErrPillPackageInvalid),
		errors.Is(err, services.ErrPregnancyInvalid),
		errors.Is(err, services.ErrWeakPassword),
		errors.Is(err, services.ErrRoleInvalid),
		errors.Is(err, services.ErrPasswordChangeInvalidInput),
		errors.Is(err, services.ErrPasswordMismatch),
		errors.Is(err, services.ErrInvalidCurrentPassword),
		errors.Is(err, services.ErrNewPasswordMustDiffer),
		errors.Is(err, services.ErrExportFromDateInvalid),
		errors.Is(err, services.ErrExportToDateInvalid),
		errors.Is(err, services.ErrExportRangeInvalid),
		errors.Is(err, dates.ErrInvalidDate),
		errors.Is(err, dates.ErrUnsupportedDateValue),
		errors.Is(err, errMissingDate):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (handler *Handler) respondError(c *fiber.Ctx, err error) error {
	status := serviceErrorStatus(err)
	if status == fiber.StatusInternalServerError {
		handler.logger.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		return apiError(c, status, "internal error")
	}
	return apiError(c, status, err.Error())
}

func parseDay(raw string) (dates.Day, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errMissingDate
	}
	return dates.Resolve(raw)
}

// queryRange reads from/to query parameters, defaulting to the given bounds.
func queryRange(c *fiber.Ctx, defaultFrom dates.Day, defaultTo dates.Day) (dates.Day, dates.Day, error) {
	from, to := defaultFrom, defaultTo
	if raw := c.Query("from"); raw != "" {
		parsed, err := parseDay(raw)
		if err != nil {
			return 0, 0, err
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := parseDay(raw)
		if err != nil {
			return 0, 0, err
		}
		to = parsed
	}
	return from, to, nil
}
