package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const seedYAML = `
employees:
  - kind: wage
    id: 1
    first_name: Ann
    hours: 40
    wage: 50
  - kind: sales_manager
    id: 2
    first_name: Sam
    hours: 40
    sales_value: 1000
    percent: 0.1
  - kind: wage
    id: 3
    hours: 10
    wage: 10
`

func writeSeed(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "employees.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))
	return path
}

func TestPrintCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"print", "--seed", writeSeed(t), "--capacity", "2", "--min-hours", "40"})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "WageEmployee{id=1")
	assert.Contains(t, out, "SalesManager{id=2")
	assert.NotContains(t, out, "id=3")
	assert.Contains(t, out, "Employees:    2/2")
	assert.Contains(t, out, "Total salary: 3300.00")
	assert.Contains(t, out, "Total sales:  1000.00")
	assert.Contains(t, out, "Working at least 40 hours:")
}

func TestExportCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "roster.xlsx")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"export", "--seed", writeSeed(t), "--capacity", "10", "--out", out})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	assert.Contains(t, buf.String(), "Roster written to")

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	id, _ := f.GetCellValue("Roster", "A5")
	assert.Equal(t, "3", id)
}

func TestExportCommand_Template(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "roster.yaml")
	require.NoError(t, os.WriteFile(tmpl, []byte(`
sheets:
  - name: "People"
    sections:
      - id: "employees"
        columns:
          - field_name: "ID"
          - field_name: "Kind"
`), 0o600))
	out := filepath.Join(dir, "roster.xlsx")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"export", "--seed", writeSeed(t), "--capacity", "10", "--out", out, "--template", tmpl})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	templateFile = ""

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	kind, _ := f.GetCellValue("People", "B2")
	assert.Equal(t, "sales_manager", kind)
}
