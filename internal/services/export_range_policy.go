package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/cyclecast/internal/dates"
)

var (
	ErrExportFromDateInvalid = errors.New("export invalid from date")
	ErrExportToDateInvalid   = errors.New("export invalid to date")
	ErrExportRangeInvalid    = errors.New("export invalid range")
)

// ExportRange bounds an export. Nil ends are open.
type ExportRange struct {
	From *dates.Day
	To   *dates.Day
}

func ParseExportRange(rawFrom string, rawTo string) (ExportRange, error) {
	var exportRange ExportRange

	if fromRaw := strings.TrimSpace(rawFrom); fromRaw != "" {
		from, err := dates.Resolve(fromRaw)
		if err != nil {
			return ExportRange{}, ErrExportFromDateInvalid
		}
		exportRange.From = &from
	}
	if toRaw := strings.TrimSpace(rawTo); toRaw != "" {
		to, err := dates.Resolve(toRaw)
		if err != nil {
			return ExportRange{}, ErrExportToDateInvalid
		}
		exportRange.To = &to
	}

	if exportRange.From != nil && exportRange.To != nil && *exportRange.To < *exportRange.From {
		return ExportRange{}, ErrExportRangeInvalid
	}
	return exportRange, nil
}

func (r ExportRange) bounds() (dates.Day, dates.Day) {
	from, to := dates.Day(0), dates.Day(1<<31-1)
	if r.From != nil {
		from = *r.From
	}
	if r.To != nil {
		to = *r.To
	}
	return from, to
}
