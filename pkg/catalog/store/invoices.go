package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/chinookhq/chinook-api/pkg/catalog/models"
)

// ============================================
// INVOICE OPERATIONS
// ============================================

var invoiceErrors = errorSet{
	notFound:  models.ErrInvoiceNotFound,
	duplicate: models.ErrDuplicateInvoice,
	inUse:     models.ErrInvoiceInUse,
}

var invoiceFilters = map[string]filterFunc{
	"customer_id": columnFilter("customer_id"),
}

func (s *GORMStore) ListInvoices(ctx context.Context, opts ListOptions) ([]*models.Invoice, error) {
	return listPage[models.Invoice](s.db, ctx, "invoice_id", opts, invoiceFilters)
}

func (s *GORMStore) GetInvoice(ctx context.Context, id int64) (*models.Invoice, error) {
	return getByID[models.Invoice](s.db, ctx, "invoice_id", id, models.ErrInvoiceNotFound,
		"Customer", "InvoiceLines", "InvoiceLines.Track")
}

func (s *GORMStore) CreateInvoice(ctx context.Context, invoice *models.Invoice) error {
	return createEntity(s.db, ctx, invoice, invoiceErrors)
}

func (s *GORMStore) UpdateInvoice(ctx context.Context, invoice *models.Invoice) error {
	return updateEntity(s.db, ctx, "invoice_id", invoice, invoiceErrors)
}

// DeleteInvoice removes the invoice together with its lines.
func (s *GORMStore) DeleteInvoice(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists[models.Invoice](tx, ctx, "invoice_id", id)
		if err != nil {
			return err
		}
		if !found {
			return models.ErrInvoiceNotFound
		}

		if err := tx.Where("invoice_id = ?", id).Delete(&models.InvoiceLine{}).Error; err != nil {
			return err
		}

		return deleteByID[models.Invoice](tx, ctx, "invoice_id", id, invoiceErrors)
	})
}
