package db

import "gorm.io/gorm"

type Repositories struct {
	Users          *UserRepository
	Periods        *PeriodRecordRepository
	OvulationTests *OvulationTestRepository
	OvulationDays  *OvulationDayRepository
	PillPackages   *PillPackageRepository
	Pregnancies    *PregnancyRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(database),
		Periods:        NewPeriodRecordRepository(database),
		OvulationTests: NewOvulationTestRepository(database),
		OvulationDays:  NewOvulationDayRepository(database),
		PillPackages:   NewPillPackageRepository(database),
		Pregnancies:    NewPregnancyRepository(database),
	}
}
