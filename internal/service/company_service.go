package service

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/locvowork/companyset/internal/domain"
	"github.com/locvowork/companyset/internal/errors"
	"github.com/locvowork/companyset/internal/logger"
)

// CompanyService serialises access to a domain.Company. Every method holds
// the lock for the whole delegated call, so the repository itself stays
// lock-free.
type CompanyService struct {
	mu      sync.RWMutex
	company domain.Company
}

// NewCompanyService creates a new CompanyService instance
func NewCompanyService(company domain.Company) *CompanyService {
	return &CompanyService{company: company}
}

// Add inserts e. A rejected insert is reported as ErrCapacityExceeded or
// ErrDuplicate.
func (s *CompanyService) Add(ctx context.Context, e domain.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.company.AddEmployee(e)
	if err != nil {
		return errors.Wrap(err, "add employee")
	}
	if !ok {
		if s.company.Quantity() >= s.company.Capacity() {
			logger.WarnLog(ctx, "Company is at capacity (%d), employee %d rejected", s.company.Capacity(), e.GetID())
			return errors.Wrapf(domain.ErrCapacityExceeded, "add employee %d", e.GetID())
		}
		logger.DebugLog(ctx, "Employee %d already present", e.GetID())
		return errors.Wrapf(domain.ErrDuplicate, "add employee %d", e.GetID())
	}

	logger.InfoLog(ctx, "Employee %d added (%s)", e.GetID(), e.Kind())
	return nil
}

// Remove deletes the first employee with the given id.
func (s *CompanyService) Remove(ctx context.Context, id int) (domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.company.RemoveEmployee(id)
	if !ok {
		return nil, errors.Wrapf(domain.ErrNotFound, "remove employee %d", id)
	}
	logger.InfoLog(ctx, "Employee %d removed", id)
	return e, nil
}

func (s *CompanyService) Find(ctx context.Context, id int) (domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.company.FindEmployee(id)
	if !ok {
		return nil, errors.Wrapf(domain.ErrNotFound, "find employee %d", id)
	}
	return e, nil
}

// Stats takes a consistent snapshot of the aggregates.
func (s *CompanyService) Stats(ctx context.Context) domain.CompanyStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.CompanyStats{
		Quantity:    s.company.Quantity(),
		Capacity:    s.company.Capacity(),
		TotalSalary: s.company.TotalSalary(),
		TotalSales:  s.company.TotalSales(),
	}
}

// List returns every employee ordered by id.
func (s *CompanyService) List(ctx context.Context) []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortEmployees(s.company.Employees())
}

// HoursAtLeast returns employees with at least hours worked, ordered by id.
func (s *CompanyService) HoursAtLeast(ctx context.Context, hours int) []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortEmployees(s.company.FindEmployeesHoursGreaterOrEqual(hours))
}

// SalaryRange returns employees with min <= salary < max, ordered by id.
func (s *CompanyService) SalaryRange(ctx context.Context, min, max float64) []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortEmployees(s.company.FindEmployeesSalaryRange(min, max))
}

func (s *CompanyService) Print(ctx context.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.company.PrintEmployees()
}

// sortEmployees orders by id, then by description for entries sharing an id.
func sortEmployees(employees []domain.Employee) []domain.Employee {
	slices.SortFunc(employees, func(a, b domain.Employee) int {
		if c := cmp.Compare(a.GetID(), b.GetID()); c != 0 {
			return c
		}
		return strings.Compare(a.String(), b.String())
	})
	return employees
}
