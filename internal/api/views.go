package api

import (
	"github.com/terraincognita07/cyclecast/internal/dates"
	"github.com/terraincognita07/cyclecast/internal/models"
	"github.com/terraincognita07/cyclecast/internal/prediction"
)

type rangeView struct {
	Start dates.Day `json:"start"`
	End   dates.Day `json:"end"`
}

type cycleView struct {
	RecordID                  string      `json:"record_id,omitempty"`
	ActualPeriod              *rangeView  `json:"actual_period,omitempty"`
	PredictedPeriods          []rangeView `json:"predicted_periods"`
	OvulationRanges           []rangeView `json:"ovulation_ranges"`
	FertileRanges             []rangeView `json:"fertile_ranges"`
	DelayRange                *rangeView  `json:"delay_range,omitempty"`
	DelayDays                 int         `json:"delay_days"`
	CycleLength               int         `json:"cycle_length"`
	PillBasedCycleLength      *int        `json:"pill_based_cycle_length,omitempty"`
	OvulationBasedCycleLength *int        `json:"ovulation_based_cycle_length,omitempty"`
	IsOvulationUserProvided   bool        `json:"is_ovulation_user_provided"`
	PregnancyStartDate        *dates.Day  `json:"pregnancy_start_date,omitempty"`
	RemainingRestDays         *int        `json:"remaining_rest_days,omitempty"`
}

type statusView struct {
	Date                 dates.Day `json:"date"`
	Classification       string    `json:"classification"`
	DayOffset            int       `json:"day_offset"`
	PregnancyProbability string    `json:"pregnancy_probability"`
	CycleLength          int       `json:"cycle_length"`
	DelayDays            int       `json:"delay_days"`
}

type periodView struct {
	ID    string    `json:"id"`
	Start dates.Day `json:"start"`
	End   dates.Day `json:"end"`
}

type ovulationTestView struct {
	Date    dates.Day `json:"date"`
	Outcome string    `json:"outcome"`
}

type pillPackageView struct {
	ID              uint      `json:"id"`
	Start           dates.Day `json:"start"`
	ActivePillCount int       `json:"active_pill_count"`
	RestDays        int       `json:"rest_days"`
}

type pregnancyView struct {
	Start         dates.Day  `json:"start"`
	DueDate       *dates.Day `json:"due_date,omitempty"`
	IsEnded       bool       `json:"is_ended"`
	IsMiscarriage bool       `json:"is_miscarriage"`
}

type userView struct {
	ID                 uint   `json:"id"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	MustChangePassword bool   `json:"must_change_password"`
}

func newRangeViews(ranges []prediction.DateRange) []rangeView {
	views := make([]rangeView, 0, len(ranges))
	for _, r := range ranges {
		views = append(views, rangeView{Start: r.Start, End: r.End})
	}
	return views
}

func newRangeView(r *prediction.DateRange) *rangeView {
	if r == nil {
		return nil
	}
	return &rangeView{Start: r.Start, End: r.End}
}

func newCycleView(result prediction.CycleResult) cycleView {
	return cycleView{
		RecordID:                  result.RecordID,
		ActualPeriod:              newRangeView(result.ActualPeriod),
		PredictedPeriods:          newRangeViews(result.PredictedPeriods),
		OvulationRanges:           newRangeViews(result.OvulationRanges),
		FertileRanges:             newRangeViews(result.FertileRanges),
		DelayRange:                newRangeView(result.DelayRange),
		DelayDays:                 result.DelayDays,
		CycleLength:               result.CycleLength,
		PillBasedCycleLength:      result.PillBasedCycleLength,
		OvulationBasedCycleLength: result.OvulationBasedCycleLength,
		IsOvulationUserProvided:   result.IsOvulationUserProvided,
		PregnancyStartDate:        result.PregnancyStartDate,
		RemainingRestDays:         result.RemainingRestDays,
	}
}

func newStatusView(status prediction.CalendarDayStatus) statusView {
	return statusView{
		Date:                 status.Date,
		Classification:       string(status.Classification),
		DayOffset:            status.DayOffsetFromPeriodStart,
		PregnancyProbability: string(status.PregnancyProbability),
		CycleLength:          status.CycleLength,
		DelayDays:            status.DelayDays,
	}
}

func newUserView(user *models.User) userView {
	return userView{ID: user.ID, Email: user.Email, Role: user.Role, MustChangePassword: user.MustChangePassword}
}

func newPeriodViews(records []models.PeriodRecord) []periodView {
	views := make([]periodView, 0, len(records))
	for _, record := range records {
		views = append(views, periodView{ID: record.ID, Start: record.StartDay, End: record.EndDay})
	}
	return views
}

func newPillPackageView(pkg models.PillPackage) pillPackageView {
	return pillPackageView{ID: pkg.ID, Start: pkg.StartDay, ActivePillCount: pkg.ActivePillCount, RestDays: pkg.RestDays}
}

func newPregnancyView(pregnancy models.Pregnancy) pregnancyView {
	return pregnancyView{
		Start:         pregnancy.StartDay,
		DueDate:       pregnancy.DueDay,
		IsEnded:       pregnancy.IsEnded,
		IsMiscarriage: pregnancy.IsMiscarriage,
	}
}
