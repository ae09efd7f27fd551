package domain

import (
	"fmt"
	"math"

	"github.com/locvowork/companyset/internal/errors"
)

// MinWage is the hourly floor every computed salary is raised to.
const MinWage = 30.0

// Kind names the employee variant. It is used by the seed file and the
// HTTP API to pick the concrete type.
type Kind string

const (
	KindWage         Kind = "wage"
	KindManager      Kind = "manager"
	KindSalesManager Kind = "sales_manager"
)

// Employee is the closed set of employee records the company holds.
// A company only accepts the value forms of WageEmployee, Manager and
// SalesManager; see Validate.
//
// Those are comparable value types, so two records are the same entry
// exactly when all their fields are equal.
type Employee interface {
	fmt.Stringer

	GetID() int
	GetHours() int
	Kind() Kind
	// Salary returns the computed salary, never below GetHours()*MinWage.
	Salary() float64
	// Sales returns the sales value and true for sales managers, 0 and
	// false for everyone else.
	Sales() (float64, bool)

	employee()
}

// Person holds the fields shared by every employee variant.
type Person struct {
	ID        int    `json:"id" yaml:"id"`
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Hours     int    `json:"hours" yaml:"hours"`
}

func (p Person) GetID() int    { return p.ID }
func (p Person) GetHours() int { return p.Hours }

func (p Person) employee() {}

// ensureSalary applies the minimum wage floor.
func (p Person) ensureSalary(salary float64) float64 {
	if floor := float64(p.Hours) * MinWage; salary < floor {
		return floor
	}
	return salary
}

func (p Person) describe() string {
	return fmt.Sprintf("id=%d, name=%s %s, hours=%d", p.ID, p.FirstName, p.LastName, p.Hours)
}

// WageEmployee is paid by the hour.
type WageEmployee struct {
	Person
	Wage float64 `json:"wage" yaml:"wage"`
}

func (w WageEmployee) Kind() Kind { return KindWage }

func (w WageEmployee) Salary() float64 {
	return w.ensureSalary(float64(w.Hours) * w.Wage)
}

func (w WageEmployee) Sales() (float64, bool) { return 0, false }

func (w WageEmployee) String() string {
	return fmt.Sprintf("WageEmployee{%s, wage=%.2f, salary=%.2f}", w.describe(), w.Wage, w.Salary())
}

// Manager earns a base salary plus a grade bonus per hour worked.
type Manager struct {
	Person
	BaseSalary float64 `json:"base_salary" yaml:"base_salary"`
	Grade      int     `json:"grade" yaml:"grade"`
}

func (m Manager) Kind() Kind { return KindManager }

func (m Manager) Salary() float64 {
	return m.ensureSalary(m.BaseSalary + float64(m.Grade*m.Hours))
}

func (m Manager) Sales() (float64, bool) { return 0, false }

func (m Manager) String() string {
	return fmt.Sprintf("Manager{%s, base=%.2f, grade=%d, salary=%.2f}", m.describe(), m.BaseSalary, m.Grade, m.Salary())
}

// SalesManager earns the minimum wage for the hours worked plus a
// commission on SalesValue.
type SalesManager struct {
	Person
	SalesValue float64 `json:"sales_value" yaml:"sales_value"`
	Percent    float64 `json:"percent" yaml:"percent"`
}

func (s SalesManager) Kind() Kind { return KindSalesManager }

func (s SalesManager) Salary() float64 {
	return s.ensureSalary(float64(s.Hours)*MinWage + s.SalesValue*s.Percent)
}

func (s SalesManager) Sales() (float64, bool) { return s.SalesValue, true }

func (s SalesManager) String() string {
	return fmt.Sprintf("SalesManager{%s, sales=%.2f, percent=%.2f, salary=%.2f}", s.describe(), s.SalesValue, s.Percent, s.Salary())
}

// EmployeeRecord is the flat, kind-tagged form of an employee used by the
// seed file and the HTTP API.
type EmployeeRecord struct {
	Kind       Kind    `json:"kind" yaml:"kind"`
	ID         int     `json:"id" yaml:"id"`
	FirstName  string  `json:"first_name" yaml:"first_name"`
	LastName   string  `json:"last_name" yaml:"last_name"`
	Hours      int     `json:"hours" yaml:"hours"`
	Wage       float64 `json:"wage,omitempty" yaml:"wage,omitempty"`
	BaseSalary float64 `json:"base_salary,omitempty" yaml:"base_salary,omitempty"`
	Grade      int     `json:"grade,omitempty" yaml:"grade,omitempty"`
	SalesValue float64 `json:"sales_value,omitempty" yaml:"sales_value,omitempty"`
	Percent    float64 `json:"percent,omitempty" yaml:"percent,omitempty"`
	Salary     float64 `json:"salary" yaml:"-"`
}

// ToEmployee builds the concrete variant named by r.Kind and validates it.
func (r EmployeeRecord) ToEmployee() (Employee, error) {
	p := Person{ID: r.ID, FirstName: r.FirstName, LastName: r.LastName, Hours: r.Hours}
	var e Employee
	switch r.Kind {
	case KindWage:
		e = WageEmployee{Person: p, Wage: r.Wage}
	case KindManager:
		e = Manager{Person: p, BaseSalary: r.BaseSalary, Grade: r.Grade}
	case KindSalesManager:
		e = SalesManager{Person: p, SalesValue: r.SalesValue, Percent: r.Percent}
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "kind %q", r.Kind)
	}
	if err := Validate(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate reports whether a company can hold e. Nil, including a typed nil
// pointer, gives ErrNilEmployee. Pointers and amounts that are NaN or
// infinite give ErrInvalidEmployee, since such values never compare equal
// to themselves. Types declared outside this package give ErrUnknownKind.
func Validate(e Employee) error {
	var amounts []float64
	switch v := e.(type) {
	case nil:
		return ErrNilEmployee
	case WageEmployee:
		amounts = []float64{v.Wage}
	case Manager:
		amounts = []float64{v.BaseSalary}
	case SalesManager:
		amounts = []float64{v.SalesValue, v.Percent}
	case *WageEmployee:
		return pointerError(v == nil, e)
	case *Manager:
		return pointerError(v == nil, e)
	case *SalesManager:
		return pointerError(v == nil, e)
	default:
		return errors.Wrapf(ErrUnknownKind, "type %T", e)
	}

	for _, a := range amounts {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return errors.Wrapf(ErrInvalidEmployee, "employee %d has non-finite amount %v", e.GetID(), a)
		}
	}
	return nil
}

func pointerError(isNil bool, e Employee) error {
	if isNil {
		return ErrNilEmployee
	}
	return errors.Wrapf(ErrInvalidEmployee, "%T must be passed by value", e)
}

// NewEmployeeRecord flattens e. The computed salary is filled in.
func NewEmployeeRecord(e Employee) EmployeeRecord {
	r := EmployeeRecord{Kind: e.Kind(), Salary: e.Salary()}
	switch v := e.(type) {
	case WageEmployee:
		r.setPerson(v.Person)
		r.Wage = v.Wage
	case Manager:
		r.setPerson(v.Person)
		r.BaseSalary = v.BaseSalary
		r.Grade = v.Grade
	case SalesManager:
		r.setPerson(v.Person)
		r.SalesValue = v.SalesValue
		r.Percent = v.Percent
	}
	return r
}

func (r *EmployeeRecord) setPerson(p Person) {
	r.ID = p.ID
	r.FirstName = p.FirstName
	r.LastName = p.LastName
	r.Hours = p.Hours
}

// CompanyStats is a snapshot of the company's aggregates.
type CompanyStats struct {
	Quantity    int     `json:"quantity"`
	Capacity    int     `json:"capacity"`
	TotalSalary float64 `json:"total_salary"`
	TotalSales  float64 `json:"total_sales"`
}
