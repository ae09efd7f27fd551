package domain

// Company defines the in-memory employee repository.
//
// Implementations are not safe for concurrent use; wrap them in
// service.CompanyService when sharing across goroutines.
type Company interface {
	// AddEmployee inserts e. It returns false without modification when the
	// company is at capacity or an equal entry is already held.
	AddEmployee(e Employee) (bool, error)
	RemoveEmployee(id int) (Employee, bool)
	FindEmployee(id int) (Employee, bool)
	TotalSalary() float64
	TotalSales() float64
	Quantity() int
	Capacity() int
	PrintEmployees()

	FindEmployeesHoursGreaterOrEqual(hours int) []Employee
	// FindEmployeesSalaryRange returns entries with min <= salary < max.
	FindEmployeesSalaryRange(min, max float64) []Employee
	// Employees returns every entry in arbitrary order.
	Employees() []Employee
}
