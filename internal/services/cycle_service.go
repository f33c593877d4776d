package services

import (
	"context"
	"fmt"

	"github.com/terraincognita07/cyclecast/internal/dates"
	"github.com/terraincognita07/cyclecast/internal/models"
	"github.com/terraincognita07/cyclecast/internal/prediction"
	"golang.org/x/sync/errgroup"
)

// ovulationPadDays matches the look-ahead the orchestrator applies when it
// reconstructs ovulation past the query end.
const ovulationPadDays = 2

// CycleService loads a user's data for a window and runs the prediction core.
type CycleService struct {
	stores Stores
	clock  dates.Clock
}

func NewCycleService(stores Stores, clock dates.Clock) *CycleService {
	if clock == nil {
		clock = dates.SystemClock{}
	}
	return &CycleService{stores: stores, clock: clock}
}

func (service *CycleService) Today() dates.Day {
	return service.clock.Today()
}

// Cycles returns the cycles covering [from, to]. A trailing open cycle is
// replaced by its forecast so callers always get forward predictions.
func (service *CycleService) Cycles(ctx context.Context, userID uint, from dates.Day, to dates.Day) ([]prediction.CycleResult, error) {
	if to < from {
		from, to = to, from
	}
	input, err := service.LoadInput(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	today := service.clock.Today()
	cycles := prediction.ComputeCycles(input, from, to, today)
	if len(cycles) == 0 {
		return cycles, nil
	}

	last := cycles[len(cycles)-1]
	if last.Open && last.ActualPeriod != nil {
		record := prediction.PeriodRecord{ID: last.RecordID, Start: last.ActualPeriod.Start, End: last.ActualPeriod.End}
		cycles[len(cycles)-1] = prediction.Forecast(input, record, from, to, today)
	}
	return cycles, nil
}

// Status classifies a single day.
func (service *CycleService) Status(ctx context.Context, userID uint, date dates.Day) (prediction.CalendarDayStatus, error) {
	input, err := service.LoadInput(ctx, userID, date.AddDays(-1), date.AddDays(2))
	if err != nil {
		return prediction.CalendarDayStatus{}, err
	}
	return prediction.StatusOnDate(input, date, service.clock.Today()), nil
}

// Outlook forecasts the latest record up to horizonDays past today. The bool
// is false when the user has no period record yet.
func (service *CycleService) Outlook(ctx context.Context, userID uint, horizonDays int) (prediction.CycleResult, bool, error) {
	today := service.clock.Today()
	to := today.AddDays(horizonDays)
	input, err := service.LoadInput(ctx, userID, today, to)
	if err != nil {
		return prediction.CycleResult{}, false, err
	}

	var latest *prediction.PeriodRecord
	for index := range input.Periods {
		record := input.Periods[index]
		if record.Start > today {
			continue
		}
		if latest == nil || record.Start > latest.Start {
			latest = &record
		}
	}
	if latest == nil {
		return prediction.CycleResult{}, false, nil
	}
	return prediction.Forecast(input, *latest, today, to, today), true, nil
}

// LoadInput gathers everything the core needs for [from, to]: overlapping
// records plus one look-back and one look-ahead record, ovulation data and
// pill packages over the widened span, settings and the current pregnancy.
func (service *CycleService) LoadInput(ctx context.Context, userID uint, from dates.Day, to dates.Day) (prediction.Input, error) {
	var (
		user              models.User
		overlapping       []models.PeriodRecord
		lookBack          models.PeriodRecord
		lookAhead         models.PeriodRecord
		hasBack, hasAhead bool
		pregnancy         models.Pregnancy
		hasPregnancy      bool
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		user, err = service.stores.Users.FindByID(groupCtx, userID)
		return wrapLoad("user", err)
	})
	group.Go(func() (err error) {
		overlapping, err = service.stores.Periods.ListOverlapping(groupCtx, userID, from, to)
		return wrapLoad("overlapping periods", err)
	})
	group.Go(func() (err error) {
		lookBack, hasBack, err = service.stores.Periods.LatestEndingBefore(groupCtx, userID, from)
		return wrapLoad("previous period", err)
	})
	group.Go(func() (err error) {
		lookAhead, hasAhead, err = service.stores.Periods.EarliestStartingAfter(groupCtx, userID, to)
		return wrapLoad("next period", err)
	})
	group.Go(func() (err error) {
		pregnancy, hasPregnancy, err = service.stores.Pregnancies.FindCurrent(groupCtx, userID)
		return wrapLoad("pregnancy", err)
	})
	if err := group.Wait(); err != nil {
		return prediction.Input{}, err
	}

	records := make([]models.PeriodRecord, 0, len(overlapping)+2)
	if hasBack {
		records = append(records, lookBack)
	}
	records = append(records, overlapping...)
	if hasAhead {
		records = append(records, lookAhead)
	}

	settings := periodSettingsFromUser(user)
	spanStart, spanEnd := from, to
	for _, record := range records {
		spanStart = dates.Min(spanStart, record.StartDay)
		spanEnd = dates.Max(spanEnd, record.StartDay)
	}
	pillEnd := spanEnd.AddDays(settings.EffectiveCycleLength())
	if hasAhead {
		pillEnd = dates.Max(to, lookAhead.StartDay.AddDays(-1))
	}
	ovulationEnd := dates.Max(spanEnd, pillEnd).AddDays(ovulationPadDays)

	var (
		tests    []models.OvulationTest
		userDays []models.OvulationDay
		packages []models.PillPackage
	)
	group, groupCtx = errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		tests, err = service.stores.OvulationTests.ListRange(groupCtx, userID, spanStart, ovulationEnd)
		return wrapLoad("ovulation tests", err)
	})
	group.Go(func() (err error) {
		userDays, err = service.stores.OvulationDays.ListRange(groupCtx, userID, spanStart, ovulationEnd)
		return wrapLoad("ovulation days", err)
	})
	group.Go(func() (err error) {
		packages, err = service.stores.PillPackages.ListStartingBetween(groupCtx, userID, spanStart, pillEnd)
		return wrapLoad("pill packages", err)
	})
	if err := group.Wait(); err != nil {
		return prediction.Input{}, err
	}

	return prediction.Input{
		Periods:        toPredictionPeriods(records),
		Settings:       settings,
		OvulationTests: toPredictionTests(tests),
		OvulationDays:  toPredictionOvulationDays(userDays),
		PillPackages:   toPredictionPills(packages),
		PillSettings:   pillSettingsFromUser(user),
		Pregnancy:      toPredictionPregnancy(pregnancy, hasPregnancy),
	}, nil
}

func wrapLoad(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("load %s: %w", what, err)
}
