package repository

import (
	"fmt"
	"io"
	"os"

	"github.com/locvowork/companyset/internal/domain"
)

type companySet struct {
	employees map[domain.Employee]struct{}
	capacity  int
	out       io.Writer
}

// Option configures a company set.
type Option func(*companySet)

// WithOutput redirects PrintEmployees. The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *companySet) {
		c.out = w
	}
}

// NewCompanySet creates an empty company holding at most capacity employees.
func NewCompanySet(capacity int, opts ...Option) (domain.Company, error) {
	if capacity < 0 {
		return nil, domain.ErrInvalidCapacity
	}
	c := &companySet{
		employees: make(map[domain.Employee]struct{}),
		capacity:  capacity,
		out:       os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// O(1)
func (c *companySet) AddEmployee(e domain.Employee) (bool, error) {
	if err := domain.Validate(e); err != nil {
		return false, err
	}
	if len(c.employees) >= c.capacity {
		return false, nil
	}
	if _, ok := c.employees[e]; ok {
		return false, nil
	}
	c.employees[e] = struct{}{}
	return true, nil
}

// O(n)
func (c *companySet) RemoveEmployee(id int) (domain.Employee, bool) {
	e, ok := c.FindEmployee(id)
	if !ok {
		return nil, false
	}
	delete(c.employees, e)
	return e, true
}

// O(n)
func (c *companySet) FindEmployee(id int) (domain.Employee, bool) {
	for e := range c.employees {
		if e.GetID() == id {
			return e, true
		}
	}
	return nil, false
}

// O(n)
func (c *companySet) TotalSalary() float64 {
	var total float64
	for e := range c.employees {
		total += e.Salary()
	}
	return total
}

// O(n)
func (c *companySet) TotalSales() float64 {
	var total float64
	for e := range c.employees {
		if sales, ok := e.Sales(); ok {
			total += sales
		}
	}
	return total
}

// O(1)
func (c *companySet) Quantity() int {
	return len(c.employees)
}

func (c *companySet) Capacity() int {
	return c.capacity
}

// O(n)
func (c *companySet) PrintEmployees() {
	for e := range c.employees {
		fmt.Fprintln(c.out, e)
	}
}

// O(n)
func (c *companySet) FindEmployeesHoursGreaterOrEqual(hours int) []domain.Employee {
	return c.findEmployeesByPredicate(func(e domain.Employee) bool {
		return e.GetHours() >= hours
	})
}

// O(n)
func (c *companySet) FindEmployeesSalaryRange(min, max float64) []domain.Employee {
	return c.findEmployeesByPredicate(func(e domain.Employee) bool {
		salary := e.Salary()
		return salary >= min && salary < max
	})
}

// O(n)
func (c *companySet) Employees() []domain.Employee {
	return c.findEmployeesByPredicate(func(domain.Employee) bool { return true })
}

func (c *companySet) findEmployeesByPredicate(predicate func(domain.Employee) bool) []domain.Employee {
	res := make([]domain.Employee, 0)
	for e := range c.employees {
		if predicate(e) {
			res = append(res, e)
		}
	}
	return res
}
