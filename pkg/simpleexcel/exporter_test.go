package simpleexcel

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type row struct {
	ID     int
	Name   string
	Salary float64
}

func TestDataExporter_FluentSections(t *testing.T) {
	exporter := NewDataExporter()
	exporter.AddSheet("Roster").
		AddSection(&SectionConfig{
			Title:      "Employees",
			ShowHeader: true,
			TitleStyle: &StyleTemplate{Font: &FontTemplate{Bold: true}},
			Columns: []ColumnConfig{
				{FieldName: "ID", Header: "ID", Width: 10},
				{FieldName: "Name", Header: "Name", Width: 20},
			},
			Data: []row{{ID: 1, Name: "Ann"}, {ID: 2, Name: "Bob"}},
		}).
		AddSection(&SectionConfig{
			Title: "Summary",
			Columns: []ColumnConfig{
				{FieldName: "Metric"},
				{FieldName: "Value"},
			},
			Data: []map[string]interface{}{{"Metric": "Quantity", "Value": 2}},
		})

	f, err := exporter.BuildExcel()
	require.NoError(t, err)
	defer f.Close()

	testCases := map[string]string{
		"A1": "Employees",
		"A2": "ID",
		"B2": "Name",
		"A3": "1",
		"B4": "Bob",
		"A6": "Summary",
		"A7": "Quantity",
		"B7": "2",
	}
	for cell, want := range testCases {
		got, err := f.GetCellValue("Roster", cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, cell)
	}
}

func TestDataExporter_YamlTemplate(t *testing.T) {
	yamlConfig := `
sheets:
  - name: "Payroll"
    sections:
      - id: "employees"
        title: "Payroll"
        show_header: true
        header_style:
          font:
            bold: true
          fill:
            color: "#DDEBF7"
        columns:
          - field_name: "Name"
            header: "Name"
          - field_name: "Salary"
            header: "Salary"
            formatter: "currency"
`
	exporter, err := NewDataExporterFromYamlConfig(yamlConfig)
	require.NoError(t, err)

	exporter.RegisterFormatter("currency", func(v interface{}) interface{} {
		if val, ok := v.(float64); ok {
			return fmt.Sprintf("$%.2f", val)
		}
		return v
	})
	exporter.BindSectionData("employees", []*row{{ID: 1, Name: "Ann", Salary: 1300}})

	// Mixed config: append a programmatic section to the YAML sheet.
	sheet := exporter.GetSheet("Payroll")
	require.NotNil(t, sheet)
	sheet.AddSection(&SectionConfig{
		Columns: []ColumnConfig{{FieldName: "Note"}},
		Data:    []map[string]string{{"Note": "generated"}},
	})
	assert.Nil(t, exporter.GetSheet("Missing"))

	data, err := exporter.ToBytes()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	salary, _ := f.GetCellValue("Payroll", "B3")
	assert.Equal(t, "$1300.00", salary)

	styleID, err := f.GetCellStyle("Payroll", "A2")
	require.NoError(t, err)
	assert.NotZero(t, styleID)

	note, _ := f.GetCellValue("Payroll", "A5")
	assert.Equal(t, "generated", note)
}

func TestNewDataExporterFromYamlConfig_Invalid(t *testing.T) {
	testCases := map[string]string{
		"malformed": "sheets: [",
		"no sheets": "sheets: []",
	}
	for name, cfg := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := NewDataExporterFromYamlConfig(cfg)
			assert.Error(t, err)
		})
	}
}

func TestDataExporter_ExportToExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.xlsx")
	exporter := NewDataExporter().
		AddSheet("Roster").
		AddSection(&SectionConfig{Columns: []ColumnConfig{{FieldName: "ID"}}, Data: []row{{ID: 9}}}).
		Build()

	require.NoError(t, exporter.ExportToExcel(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	v, _ := f.GetCellValue("Roster", "A1")
	assert.Equal(t, "9", v)
}

func TestNewDataExporterFromYamlFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sheets:
  - name: "Ids"
    sections:
      - id: "rows"
        columns:
          - field_name: "ID"
`), 0o600))

	exporter, err := NewDataExporterFromYamlFile(path)
	require.NoError(t, err)
	exporter.BindSectionData("rows", []row{{ID: 4}})

	data, err := exporter.ToBytes()
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	v, _ := f.GetCellValue("Ids", "A1")
	assert.Equal(t, "4", v)

	_, err = NewDataExporterFromYamlFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
