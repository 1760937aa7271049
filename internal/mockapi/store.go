// Package mockapi provides an in-memory stand-in for the upstream employee
// API, serving the same `{data, status}` envelope contract. It backs local
// development and the e2e suite; the real upstream is external.
package mockapi

import (
	"strings"
	"sync"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/festy23/employee_api/internal/employee/model"
)

// Store holds employee records in memory. Safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	employees []model.Employee
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{employees: []model.Employee{}}
}

// Seed fills the store with n fake employees.
func (s *Store) Seed(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < n; i++ {
		name := gofakeit.Name()
		salary := gofakeit.Number(20000, 250000)
		s.employees = append(s.employees, model.Employee{
			ID:     uuid.NewString(),
			Name:   &name,
			Salary: &salary,
			Age:    gofakeit.Number(16, 75),
			Title:  gofakeit.JobTitle(),
			Email:  emailFor(name),
		})
	}
}

// List returns a copy of all employees in insertion order.
func (s *Store) List() []model.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

// Get returns the employee with the given ID, if present.
func (s *Store) Get(id string) (*model.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.employees {
		if e.ID == id {
			copied := e
			return &copied, true
		}
	}
	return nil, false
}

// Add stores a new employee from the given input, assigning ID and email.
func (s *Store) Add(input model.EmployeeInput) model.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := input.Name
	salary := input.Salary
	employee := model.Employee{
		ID:     uuid.NewString(),
		Name:   &name,
		Salary: &salary,
		Age:    input.Age,
		Title:  input.Title,
		Email:  emailFor(name),
	}
	s.employees = append(s.employees, employee)
	return employee
}

// Len returns the number of stored employees.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.employees)
}

// emailFor derives a company email address from an employee name.
func emailFor(name string) string {
	user := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	user = strings.ReplaceAll(user, ".", "")
	return user + "@company.com"
}
