package store

import (
	"context"

	"github.com/chinookhq/chinook-api/pkg/catalog/models"
)

// ============================================
// CUSTOMER OPERATIONS
// ============================================

var customerErrors = errorSet{
	notFound:  models.ErrCustomerNotFound,
	duplicate: models.ErrDuplicateCustomer,
	inUse:     models.ErrCustomerInUse,
}

var customerFilters = map[string]filterFunc{
	"support_rep_id": columnFilter("support_rep_id"),
}

func (s *GORMStore) ListCustomers(ctx context.Context, opts ListOptions) ([]*models.Customer, error) {
	return listPage[models.Customer](s.db, ctx, "customer_id", opts, customerFilters)
}

func (s *GORMStore) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	return getByID[models.Customer](s.db, ctx, "customer_id", id, models.ErrCustomerNotFound, "SupportRep")
}

func (s *GORMStore) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	return createEntity(s.db, ctx, customer, customerErrors)
}

func (s *GORMStore) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	return updateEntity(s.db, ctx, "customer_id", customer, customerErrors)
}

func (s *GORMStore) DeleteCustomer(ctx context.Context, id int64) error {
	return deleteByID[models.Customer](s.db, ctx, "customer_id", id, customerErrors)
}
