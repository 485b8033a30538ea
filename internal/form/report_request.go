package form

import (
	"github.com/Sebastian1234123/sistema-farmacia/internal/analytics"
	"github.com/Sebastian1234123/sistema-farmacia/internal/export"
	v "github.com/go-ozzo/ozzo-validation/v4"
)

// ReportRequest carries the query parameters of a report.
type ReportRequest struct {
	Period string
}

func (r *ReportRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.Period, v.By(period)),
	)
}

// ExportRequest carries the parameters of a section export.
type ExportRequest struct {
	Period  string
	Section string
	Format  string
}

func (r *ExportRequest) Validate() error {
	return ValidateStruct(r,
		v.Field(&r.Period, v.By(period)),
		v.Field(&r.Section, v.By(section)),
		v.Field(&r.Format, v.In(string(export.FormatCSV), string(export.FormatJSON))),
	)
}

func period(value interface{}) error {
	s, _ := value.(string)
	_, err := analytics.ParsePeriod(s)
	return err
}

func section(value interface{}) error {
	s, _ := value.(string)
	_, err := export.ParseSection(s)
	return err
}
