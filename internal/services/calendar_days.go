package services

import (
	"context"
	"time"

	"github.com/terraincognita07/cyclecast/internal/dates"
	"github.com/terraincognita07/cyclecast/internal/prediction"
	"golang.org/x/sync/errgroup"
)

const defaultCalendarWorkers = 8

type CalendarDay struct {
	Date                 dates.Day                       `json:"date"`
	Day                  int                             `json:"day"`
	InMonth              bool                            `json:"in_month"`
	IsToday              bool                            `json:"is_today"`
	Classification       prediction.Classification       `json:"classification"`
	DayOffset            int                             `json:"day_offset"`
	PregnancyProbability prediction.PregnancyProbability `json:"pregnancy_probability"`
	CycleLength          int                             `json:"cycle_length"`
	DelayDays            int                             `json:"delay_days"`
}

type CalendarMonth struct {
	Year  int           `json:"year"`
	Month time.Month    `json:"month"`
	Days  []CalendarDay `json:"days"`
}

// CalendarService renders month grids. Each grid day is classified
// independently, so days run in parallel over one shared input snapshot.
type CalendarService struct {
	cycles  *CycleService
	workers int
}

func NewCalendarService(cycles *CycleService, workers int) *CalendarService {
	if workers <= 0 {
		workers = defaultCalendarWorkers
	}
	return &CalendarService{cycles: cycles, workers: workers}
}

// MonthGrid returns the Sunday-first grid covering the whole month.
func MonthGrid(year int, month time.Month) (dates.Day, dates.Day) {
	monthStart := dates.FromDate(year, month, 1)
	monthEnd := dates.FromDate(year, month+1, 1).AddDays(-1)
	gridStart := monthStart.AddDays(-int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDays(6 - int(monthEnd.Weekday()))
	return gridStart, gridEnd
}

func (service *CalendarService) Month(ctx context.Context, userID uint, year int, month time.Month) (CalendarMonth, error) {
	gridStart, gridEnd := MonthGrid(year, month)
	input, err := service.cycles.LoadInput(ctx, userID, gridStart.AddDays(-1), gridEnd.AddDays(2))
	if err != nil {
		return CalendarMonth{}, err
	}

	today := service.cycles.Today()
	days := make([]CalendarDay, dates.Gap(gridStart, gridEnd)+1)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(service.workers)
	for index := range days {
		day := gridStart.AddDays(index)
		slot := &days[index]
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			status := prediction.StatusOnDate(input, day, today)
			calendarDate := day.Time(time.UTC)
			*slot = CalendarDay{
				Date:                 day,
				Day:                  calendarDate.Day(),
				InMonth:              calendarDate.Month() == month,
				IsToday:              day == today,
				Classification:       status.Classification,
				DayOffset:            status.DayOffsetFromPeriodStart,
				PregnancyProbability: status.PregnancyProbability,
				CycleLength:          status.CycleLength,
				DelayDays:            status.DelayDays,
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return CalendarMonth{}, err
	}

	return CalendarMonth{Year: year, Month: month, Days: days}, nil
}
