package services

import (
	"context"
	"errors"
	"testing"
)

func TestValidateSettings(t *testing.T) {
	t.Parallel()

	valid := SettingsUpdate{CycleLength: 28, PeriodLength: 5, PillActiveCount: 21, PillRestDays: 7}

	tests := []struct {
		name   string
		mutate func(*SettingsUpdate)
		want   error
	}{
		{name: "valid", mutate: func(*SettingsUpdate) {}},
		{name: "cycle too short", mutate: func(u *SettingsUpdate) { u.CycleLength = 14 }, want: ErrCycleLengthOutOfRange},
		{name: "cycle too long", mutate: func(u *SettingsUpdate) { u.CycleLength = 91 }, want: ErrCycleLengthOutOfRange},
		{name: "period zero", mutate: func(u *SettingsUpdate) { u.PeriodLength = 0 }, want: ErrPeriodLengthOutOfRange},
		{name: "period fills cycle", mutate: func(u *SettingsUpdate) { u.CycleLength, u.PeriodLength = 15, 15 }, want: ErrPeriodLengthOutOfRange},
		{name: "bad pill pack", mutate: func(u *SettingsUpdate) { u.PillActiveCount = 0 }, want: ErrPillPackageInvalid},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			update := valid
			tt.mutate(&update)
			err := ValidateSettings(update)
			if tt.want == nil && err != nil {
				t.Fatalf("expected valid settings, got %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSettingsServiceSaveAndLoad(t *testing.T) {
	t.Parallel()

	stores := openTestStores(t)
	user := createServiceUser(t, stores, "settings@cyclecast.local", 28)
	service := NewSettingsService(stores.Users)
	ctx := context.Background()

	saved, err := service.Save(ctx, user.ID, SettingsUpdate{
		CycleLength:           32,
		PeriodLength:          6,
		UseAutoCalc:           true,
		UsePillForCalculation: true,
		PillActiveCount:       24,
		PillRestDays:          4,
	})
	if err != nil {
		t.Fatalf("save settings: %v", err)
	}
	if saved.CycleLength != 32 || saved.PeriodLength != 6 || !saved.UseAutoCalc {
		t.Fatalf("unexpected saved lengths %#v", saved)
	}
	if !saved.UsePillForCalculation || saved.PillActiveCount != 24 || saved.PillRestDays != 4 {
		t.Fatalf("unexpected saved pill settings %#v", saved)
	}

	if _, err := service.Save(ctx, user.ID, SettingsUpdate{CycleLength: 10, PeriodLength: 5, PillActiveCount: 21, PillRestDays: 7}); !errors.Is(err, ErrCycleLengthOutOfRange) {
		t.Fatalf("expected ErrCycleLengthOutOfRange, got %v", err)
	}

	loaded, err := service.Load(ctx, user.ID)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if loaded != saved {
		t.Fatalf("expected rejected save to keep %#v, got %#v", saved, loaded)
	}
}
