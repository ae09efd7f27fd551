package handler

import "github.com/locvowork/companyset/internal/domain"

// EmployeeRequest is the body of POST /employees.
type EmployeeRequest = domain.EmployeeRecord

// EmployeeResponse is a single employee as returned by the API.
type EmployeeResponse = domain.EmployeeRecord

func toResponses(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = domain.NewEmployeeRecord(e)
	}
	return res
}
