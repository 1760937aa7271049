// Package service provides business logic layer for the employee module.
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/festy23/employee_api/internal/employee/client"
	"github.com/festy23/employee_api/internal/employee/model"
)

// Service defines the interface for employee query operations.
type Service interface {
	// ListAll returns every employee known to the upstream API.
	ListAll(ctx context.Context) ([]model.Employee, error)

	// SearchByName returns employees whose name contains query,
	// case-insensitively, preserving the upstream order.
	SearchByName(ctx context.Context, query string) ([]model.Employee, error)

	// GetByID returns the employee with the given ID.
	GetByID(ctx context.Context, id string) (*model.Employee, error)

	// HighestSalary returns the maximum salary across all employees.
	HighestSalary(ctx context.Context) (int, error)

	// TopTenEarnerNames returns the names of the ten highest earners,
	// in descending salary order.
	TopTenEarnerNames(ctx context.Context) ([]string, error)

	// Create requests creation of a new employee upstream.
	Create(ctx context.Context, input *model.EmployeeInput) (*model.Employee, error)

	// DeleteByID verifies the employee exists and returns its name.
	// The upstream API has no delete endpoint, so no delete request is
	// issued: this is an existence check only.
	DeleteByID(ctx context.Context, id string) (string, error)
}

type service struct {
	client client.Client
	logger *zap.SugaredLogger
}

// New creates a new employee service instance.
func New(c client.Client, logger *zap.SugaredLogger) Service {
	return &service{client: c, logger: logger}
}

// ListAll returns every employee known to the upstream API.
func (s *service) ListAll(ctx context.Context) ([]model.Employee, error) {
	s.logger.Debugw("ListAll called")

	employees, err := s.client.FetchAll(ctx)
	if err != nil {
		s.logger.Errorw("ListAll failed", "error", err)
		return nil, err
	}

	s.logger.Infow("ListAll completed", "count", len(employees))
	return employees, nil
}

// SearchByName filters the full employee list client-side. An empty query
// short-circuits to an empty result without calling upstream.
func (s *service) SearchByName(ctx context.Context, query string) ([]model.Employee, error) {
	s.logger.Debugw("SearchByName called", "query", query)

	if query == "" {
		s.logger.Debugw("SearchByName skipped", "reason", "empty query")
		return []model.Employee{}, nil
	}

	employees, err := s.ListAll(ctx)
	if err != nil {
		s.logger.Errorw("SearchByName failed", "query", query, "error", err)
		return nil, err
	}

	lowered := strings.ToLower(query)
	matched := make([]model.Employee, 0)
	for _, e := range employees {
		if e.Name != nil && strings.Contains(strings.ToLower(*e.Name), lowered) {
			matched = append(matched, e)
		}
	}

	s.logger.Infow("SearchByName completed", "query", query, "matches", len(matched))
	return matched, nil
}

// GetByID returns the employee with the given ID. An empty ID fails before
// any upstream call.
func (s *service) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	s.logger.Debugw("GetByID called", "id", id)

	if id == "" {
		s.logger.Debugw("GetByID validation failed", "error", "empty id")
		return nil, fmt.Errorf("%w: Employee ID is null or empty", model.ErrInvalidID)
	}

	employee, err := s.client.FetchByID(ctx, id)
	if err != nil {
		s.logger.Errorw("GetByID failed", "id", id, "error", err)
		return nil, err
	}

	s.logger.Infow("GetByID completed", "id", id)
	return employee, nil
}

// HighestSalary returns the maximum salary over employees with a known
// salary, or 0 when there is none.
func (s *service) HighestSalary(ctx context.Context) (int, error) {
	s.logger.Debugw("HighestSalary called")

	employees, err := s.ListAll(ctx)
	if err != nil {
		s.logger.Errorw("HighestSalary failed", "error", err)
		return 0, err
	}

	highest := 0
	for _, e := range employees {
		if e.Salary != nil && *e.Salary > highest {
			highest = *e.Salary
		}
	}

	s.logger.Infow("HighestSalary completed", "highest", highest)
	return highest, nil
}

// TopTenEarnerNames returns the names of the ten highest earners in
// descending salary order. Employees missing a salary or name are skipped;
// ties keep their relative upstream order (stable sort).
func (s *service) TopTenEarnerNames(ctx context.Context) ([]string, error) {
	s.logger.Debugw("TopTenEarnerNames called")

	employees, err := s.ListAll(ctx)
	if err != nil {
		s.logger.Errorw("TopTenEarnerNames failed", "error", err)
		return nil, err
	}

	ranked := make([]model.Employee, 0, len(employees))
	for _, e := range employees {
		if e.Salary != nil && e.Name != nil {
			ranked = append(ranked, e)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].Salary > *ranked[j].Salary
	})

	if len(ranked) > 10 {
		ranked = ranked[:10]
	}

	names := make([]string, 0, len(ranked))
	for _, e := range ranked {
		names = append(names, *e.Name)
	}

	s.logger.Infow("TopTenEarnerNames completed", "names", names)
	return names, nil
}

// Create requests creation of a new employee upstream. A nil input fails
// before any upstream call.
func (s *service) Create(ctx context.Context, input *model.EmployeeInput) (*model.Employee, error) {
	s.logger.Debugw("Create called")

	if input == nil {
		s.logger.Debugw("Create validation failed", "error", "nil input")
		return nil, fmt.Errorf("%w: Employee input cannot be null", model.ErrInvalidInput)
	}

	created, err := s.client.Create(ctx, input)
	if err != nil {
		s.logger.Errorw("Create failed", "name", input.Name, "error", err)
		return nil, err
	}

	s.logger.Infow("Create completed", "id", created.ID, "name", input.Name)
	return created, nil
}

// DeleteByID verifies the employee exists and reports its name. The upstream
// API does not support deletion, so existence is checked via fetch and no
// delete request is issued. Fetch failures are wrapped with the ID; the
// underlying kind stays visible to errors.Is.
func (s *service) DeleteByID(ctx context.Context, id string) (string, error) {
	s.logger.Debugw("DeleteByID called", "id", id)

	if id == "" {
		s.logger.Debugw("DeleteByID validation failed", "error", "empty id")
		return "", fmt.Errorf("%w: Employee ID is null or empty", model.ErrInvalidID)
	}

	employee, err := s.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("DeleteByID failed", "id", id, "error", err)
		return "", fmt.Errorf("delete employee %s: %w", id, err)
	}

	name := ""
	if employee.Name != nil {
		name = *employee.Name
	}

	s.logger.Infow("DeleteByID completed", "id", id, "name", name)
	return name, nil
}
