package services

import (
	"context"
	"errors"
	"testing"

	"github.com/terraincognita07/cyclecast/internal/dates"
	"github.com/terraincognita07/cyclecast/internal/models"
)

func TestAddPeriodValidation(t *testing.T) {
	t.Parallel()

	stores := openTestStores(t)
	service := NewRecordService(stores, testLogger())
	user := createServiceUser(t, stores, "records@cyclecast.local", 28)
	ctx := context.Background()

	if _, err := service.AddPeriod(ctx, user.ID, dates.MustParse("2025-01-09"), dates.MustParse("2025-01-05")); !errors.Is(err, ErrPeriodRangeInvalid) {
		t.Fatalf("expected ErrPeriodRangeInvalid, got %v", err)
	}
	if _, err := service.AddPeriod(ctx, user.ID, dates.MustParse("2025-01-05"), dates.MustParse("2025-01-09")); err != nil {
		t.Fatalf("add period: %v", err)
	}
	if _, err := service.AddPeriod(ctx, user.ID, dates.MustParse("2025-01-08"), dates.MustParse("2025-01-12")); !errors.Is(err, ErrPeriodOverlap) {
		t.Fatalf("expected ErrPeriodOverlap, got %v", err)
	}
}

func TestPeriodChangesRefreshBaseline(t *testing.T) {
	t.Parallel()

	stores := openTestStores(t)
	service := NewRecordService(stores, testLogger())
	user := createServiceUser(t, stores, "baseline@cyclecast.local", 28)
	ctx := context.Background()

	if _, err := service.AddPeriod(ctx, user.ID, dates.MustParse("2025-01-05"), dates.MustParse("2025-01-09")); err != nil {
		t.Fatalf("add first period: %v", err)
	}
	second, err := service.AddPeriod(ctx, user.ID, dates.MustParse("2025-02-04"), dates.MustParse("2025-02-07"))
	if err != nil {
		t.Fatalf("add second period: %v", err)
	}

	stored, err := stores.Users.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("load user: %v", err)
	}
	if stored.AutoCycleLength != 30 {
		t.Fatalf("expected auto cycle length 30, got %d", stored.AutoCycleLength)
	}
	if stored.AutoPeriodLength != 5 {
		t.Fatalf("expected auto period length 5, got %d", stored.AutoPeriodLength)
	}

	if err := service.DeletePeriod(ctx, user.ID, second.ID); err != nil {
		t.Fatalf("delete period: %v", err)
	}
	stored, err = stores.Users.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.AutoCycleLength != 0 || stored.AutoPeriodLength != 5 {
		t.Fatalf("expected baseline 0/5 after delete, got %d/%d", stored.AutoCycleLength, stored.AutoPeriodLength)
	}

	if err := service.DeletePeriod(ctx, user.ID, second.ID); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestRecordOvulationTestReplacesOutcome(t *testing.T) {
	t.Parallel()

	stores := openTestStores(t)
	service := NewRecordService(stores, testLogger())
	user := createServiceUser(t, stores, "tests@cyclecast.local", 28)
	ctx := context.Background()
	day := dates.MustParse("2025-01-18")

	if _, err := service.RecordOvulationTest(ctx, user.ID, day, "MAYBE"); !errors.Is(err, ErrOvulationOutcomeInvalid) {
		t.Fatalf("expected ErrOvulationOutcomeInvalid, got %v", err)
	}
	if _, err := service.RecordOvulationTest(ctx, user.ID, day, models.OvulationOutcomeNegative); err != nil {
		t.Fatalf("record negative: %v", err)
	}
	if _, err := service.RecordOvulationTest(ctx, user.ID, day, models.OvulationOutcomePositive); err != nil {
		t.Fatalf("record positive: %v", err)
	}

	tests, err := service.ListOvulationTests(ctx, user.ID, day, day)
	if err != nil {
		t.Fatalf("list tests: %v", err)
	}
	if len(tests) != 1 || tests[0].Outcome != models.OvulationOutcomePositive {
		t.Fatalf("expected one positive test, got %#v", tests)
	}

	if err := service.DeleteOvulationTest(ctx, user.ID, day); err != nil {
		t.Fatalf("delete test: %v", err)
	}
	if err := service.DeleteOvulationTest(ctx, user.ID, day); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestOvulationDaysAreUniquePerDate(t *testing.T) {
	t.Parallel()

	stores := openTestStores(t)
	service := NewRecordService(stores, testLogger())
	user := createServiceUser(t, stores, "days@cyclecast.local", 28)
	ctx := context.Background()
	day := dates.MustParse("2025-01-18")

	for i := 0; i < 2; i++ {
		if _, err := service.AddOvulationDay(ctx, user.ID, day); err != nil {
			t.Fatalf("add ovulation day: %v", err)
		}
	}
	days, err := service.ListOvulationDays(ctx, user.ID, day, day)
	if err != nil {
		t.Fatalf("list ovulation days: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected one ovulation day, got %d", len(days))
	}
}

func TestValidatePillCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		active int
		rest   int
		valid  bool
	}{
		{name: "standard pack", active: 21, rest: 7, valid: true},
		{name: "continuous pack", active: 28, rest: 0, valid: true},
		{name: "no active pills", active: 0, rest: 7},
		{name: "too many pills", active: 36, rest: 0},
		{name: "negative rest", active: 21, rest: -1},
		{name: "long rest", active: 21, rest: 15},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidatePillCounts(tt.active, tt.rest)
			if tt.valid && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrPillPackageInvalid) {
				t.Fatalf("expected ErrPillPackageInvalid, got %v", err)
			}
		})
	}
}

func TestPillPackageLifecycle(t *testing.T) {
	t.Parallel()

	stores := openTestStores(t)
	service := NewRecordService(stores, testLogger())
	user := createServiceUser(t, stores, "pills@cyclecast.local", 28)
	ctx := context.Background()

	pkg, err := service.AddPillPackage(ctx, user.ID, dates.MustParse("2025-01-07"), 21, 7)
	if err != nil {
		t.Fatalf("add pill package: %v", err)
	}
	packages, err := service.ListPillPackages(ctx, user.ID)
	if err != nil {
		t.Fatalf("list pill packages: %v", err)
	}
	if len(packages) != 1 || packages[0].ID != pkg.ID {
		t.Fatalf("expected stored package, got %#v", packages)
	}
	if err := service.DeletePillPackage(ctx, user.ID, pkg.ID); err != nil {
		t.Fatalf("delete pill package: %v", err)
	}
	if err := service.DeletePillPackage(ctx, user.ID, pkg.ID); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestPregnancyLifecycle(t *testing.T) {
	t.Parallel()

	stores := openTestStores(t)
	service := NewRecordService(stores, testLogger())
	user := createServiceUser(t, stores, "pregnancy@cyclecast.local", 28)
	ctx := context.Background()

	start := dates.MustParse("2025-03-01")
	badDue := dates.MustParse("2025-02-01")
	if _, err := service.SavePregnancy(ctx, user.ID, PregnancyUpdate{Start: start, DueDate: &badDue}); !errors.Is(err, ErrPregnancyInvalid) {
		t.Fatalf("expected ErrPregnancyInvalid, got %v", err)
	}
	if _, err := service.CurrentPregnancy(ctx, user.ID); !errors.Is(err, ErrPregnancyNotFound) {
		t.Fatalf("expected ErrPregnancyNotFound, got %v", err)
	}

	created, err := service.SavePregnancy(ctx, user.ID, PregnancyUpdate{Start: start})
	if err != nil {
		t.Fatalf("create pregnancy: %v", err)
	}
	updated, err := service.SavePregnancy(ctx, user.ID, PregnancyUpdate{Start: start, IsEnded: true})
	if err != nil {
		t.Fatalf("end pregnancy: %v", err)
	}
	if updated.ID != created.ID || !updated.IsEnded {
		t.Fatalf("expected the same pregnancy to be ended, got %#v", updated)
	}

	if err := service.DeletePregnancy(ctx, user.ID); err != nil {
		t.Fatalf("delete pregnancy: %v", err)
	}
	if _, err := service.CurrentPregnancy(ctx, user.ID); !errors.Is(err, ErrPregnancyNotFound) {
		t.Fatalf("expected ErrPregnancyNotFound after delete, got %v", err)
	}
}
