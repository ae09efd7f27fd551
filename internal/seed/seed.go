// Package seed loads employees from a YAML file into a company.
//
// The file lists kind-tagged records:
//
//	employees:
//	  - kind: wage
//	    id: 1
//	    first_name: Ann
//	    hours: 160
//	    wage: 40
//	  - kind: sales_manager
//	    id: 2
//	    hours: 160
//	    sales_value: 25000
//	    percent: 0.1
package seed

import (
	"io"
	"os"

	"github.com/locvowork/companyset/internal/domain"
	"github.com/locvowork/companyset/internal/errors"
	"gopkg.in/yaml.v3"
)

// File is the seed document.
type File struct {
	Employees []domain.EmployeeRecord `yaml:"employees"`
}

// Result counts what happened to each record.
type Result struct {
	Added int
	// Rejected counts records refused for capacity or duplication.
	Rejected int
}

// Parse decodes a seed document and builds every employee. It fails on the
// first record with an unknown kind.
func Parse(r io.Reader) ([]domain.Employee, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode seed file")
	}

	employees := make([]domain.Employee, 0, len(f.Employees))
	for i, rec := range f.Employees {
		e, err := rec.ToEmployee()
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", i)
		}
		employees = append(employees, e)
	}
	return employees, nil
}

// Load parses r and adds every employee to company.
func Load(r io.Reader, company domain.Company) (Result, error) {
	var res Result

	employees, err := Parse(r)
	if err != nil {
		return res, err
	}

	for _, e := range employees {
		ok, err := company.AddEmployee(e)
		if err != nil {
			return res, errors.Wrapf(err, "add employee %d", e.GetID())
		}
		if ok {
			res.Added++
		} else {
			res.Rejected++
		}
	}
	return res, nil
}

func LoadFile(path string, company domain.Company) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, errors.Wrap(err, "open seed file")
	}
	defer f.Close()

	return Load(f, company)
}
