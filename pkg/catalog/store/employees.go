package store

import (
	"context"

	"github.com/chinookhq/chinook-api/pkg/catalog/models"
)

// ============================================
// EMPLOYEE OPERATIONS
// ============================================

var employeeErrors = errorSet{
	notFound:  models.ErrEmployeeNotFound,
	duplicate: models.ErrDuplicateEmployee,
	inUse:     models.ErrEmployeeInUse,
}

var employeeFilters = map[string]filterFunc{
	"reports_to": columnFilter("reports_to"),
}

func (s *GORMStore) ListEmployees(ctx context.Context, opts ListOptions) ([]*models.Employee, error) {
	return listPage[models.Employee](s.db, ctx, "employee_id", opts, employeeFilters)
}

func (s *GORMStore) GetEmployee(ctx context.Context, id int64) (*models.Employee, error) {
	return getByID[models.Employee](s.db, ctx, "employee_id", id, models.ErrEmployeeNotFound, "Manager")
}

func (s *GORMStore) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	return createEntity(s.db, ctx, employee, employeeErrors)
}

func (s *GORMStore) UpdateEmployee(ctx context.Context, employee *models.Employee) error {
	return updateEntity(s.db, ctx, "employee_id", employee, employeeErrors)
}

func (s *GORMStore) DeleteEmployee(ctx context.Context, id int64) error {
	return deleteByID[models.Employee](s.db, ctx, "employee_id", id, employeeErrors)
}
