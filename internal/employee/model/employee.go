// Package model defines employee domain types and error kinds.
package model

// Employee represents an employee record as served by the upstream API.
// Name and Salary are pointers because the upstream may return null for
// either; derived computations skip such records instead of failing.
// Records are never mutated after decoding.
type Employee struct {
	ID     string  `json:"id"`
	Name   *string `json:"employee_name"`
	Salary *int    `json:"employee_salary"`
	Age    int     `json:"employee_age"`
	Title  string  `json:"employee_title"`
	Email  string  `json:"employee_email"`
}

// EmployeeInput holds the fields required to create an employee.
// ID and email are assigned upstream and absent here. Binding tags mirror
// the upstream creation contract.
type EmployeeInput struct {
	Name   string `json:"name"   binding:"required"`
	Salary int    `json:"salary" binding:"required,gt=0"`
	Age    int    `json:"age"    binding:"required,gte=16,lte=75"`
	Title  string `json:"title"  binding:"required"`
}
