package service

import (
	"context"
	"io"
	"math"

	"github.com/locvowork/companyset/internal/domain"
	"github.com/locvowork/companyset/internal/errors"
	"github.com/locvowork/companyset/internal/logger"
	"github.com/locvowork/companyset/pkg/simpleexcel"
)

// Section IDs a roster template can bind to.
const (
	RosterSectionEmployees = "employees"
	RosterSectionSummary   = "summary"
)

type summaryRow struct {
	Metric string
	Value  interface{}
}

var rosterColumns = []simpleexcel.ColumnConfig{
	{FieldName: "ID", Header: "ID", Width: 8},
	{FieldName: "Kind", Header: "Kind", Width: 16},
	{FieldName: "FirstName", Header: "First Name", Width: 18},
	{FieldName: "LastName", Header: "Last Name", Width: 18},
	{FieldName: "Hours", Header: "Hours", Width: 10},
	{FieldName: "SalesValue", Header: "Sales", Width: 14, Formatter: "currency"},
	{FieldName: "Salary", Header: "Salary", Width: 14, Formatter: "currency"},
}

// ExportRoster writes the company roster as an xlsx workbook. An empty
// templatePath gives the built-in layout; otherwise the YAML template's
// "employees" and "summary" sections are filled.
func (s *CompanyService) ExportRoster(ctx context.Context, w io.Writer, templatePath string) error {
	exporter, n, err := s.rosterExporter(templatePath)
	if err != nil {
		return err
	}
	if err := exporter.ToWriter(w); err != nil {
		return errors.Wrap(err, "write roster")
	}
	logger.InfoLog(ctx, "Roster exported with %d employees", n)
	return nil
}

// ExportRosterFile is ExportRoster writing to the file at path.
func (s *CompanyService) ExportRosterFile(ctx context.Context, path, templatePath string) error {
	exporter, n, err := s.rosterExporter(templatePath)
	if err != nil {
		return err
	}
	if err := exporter.ExportToExcel(path); err != nil {
		return errors.Wrapf(err, "write roster to %s", path)
	}
	logger.InfoLog(ctx, "Roster with %d employees saved to %s", n, path)
	return nil
}

// rosterExporter snapshots the company and binds it to an exporter. It also
// returns the number of employees exported.
func (s *CompanyService) rosterExporter(templatePath string) (*simpleexcel.DataExporter, int, error) {
	s.mu.RLock()
	employees := sortEmployees(s.company.Employees())
	stats := domain.CompanyStats{
		Quantity:    s.company.Quantity(),
		Capacity:    s.company.Capacity(),
		TotalSalary: s.company.TotalSalary(),
		TotalSales:  s.company.TotalSales(),
	}
	s.mu.RUnlock()

	records := make([]domain.EmployeeRecord, len(employees))
	for i, e := range employees {
		records[i] = domain.NewEmployeeRecord(e)
	}
	summary := []summaryRow{
		{"Quantity", stats.Quantity},
		{"Capacity", stats.Capacity},
		{"Total Salary", stats.TotalSalary},
		{"Total Sales", stats.TotalSales},
	}

	var exporter *simpleexcel.DataExporter
	if templatePath == "" {
		exporter = simpleexcel.NewDataExporter()
		exporter.AddSheet("Roster").
			AddSection(&simpleexcel.SectionConfig{
				Title:       "Employees",
				ShowHeader:  true,
				TitleStyle:  &simpleexcel.StyleTemplate{Font: &simpleexcel.FontTemplate{Bold: true}},
				HeaderStyle: &simpleexcel.StyleTemplate{Font: &simpleexcel.FontTemplate{Bold: true}, Fill: &simpleexcel.FillTemplate{Color: "#DDEBF7"}},
				Columns:     rosterColumns,
				Data:        records,
			}).
			AddSection(&simpleexcel.SectionConfig{
				Title:      "Summary",
				ShowHeader: true,
				Columns: []simpleexcel.ColumnConfig{
					{FieldName: "Metric", Header: "Metric"},
					{FieldName: "Value", Header: "Value"},
				},
				Data: summary,
			})
	} else {
		var err error
		exporter, err = simpleexcel.NewDataExporterFromYamlFile(templatePath)
		if err != nil {
			return nil, 0, errors.Wrap(err, "load roster template")
		}
		exporter.
			BindSectionData(RosterSectionEmployees, records).
			BindSectionData(RosterSectionSummary, summary)
	}

	exporter.RegisterFormatter("currency", func(v interface{}) interface{} {
		if val, ok := v.(float64); ok {
			return math.Round(val*100) / 100
		}
		return v
	})
	return exporter, len(records), nil
}
