package models

import "time"

// Invoice is a customer purchase made of invoice lines.
type Invoice struct {
	InvoiceID         int64     `gorm:"primaryKey;column:invoice_id" json:"invoice_id"`
	CustomerID        int64     `gorm:"not null;index" json:"customer_id" validate:"required,gt=0"`
	InvoiceDate       time.Time `gorm:"not null" json:"invoice_date" validate:"required"`
	BillingAddress    *string   `gorm:"size:70" json:"billing_address" validate:"omitempty,max=70"`
	BillingCity       *string   `gorm:"size:40" json:"billing_city" validate:"omitempty,max=40"`
	BillingState      *string   `gorm:"size:40" json:"billing_state" validate:"omitempty,max=40"`
	BillingCountry    *string   `gorm:"size:40" json:"billing_country" validate:"omitempty,max=40"`
	BillingPostalCode *string   `gorm:"size:10" json:"billing_postal_code" validate:"omitempty,max=10"`
	Total             float64   `gorm:"type:numeric(10,2);not null" json:"total" validate:"gte=0"`

	Customer     *Customer     `json:"customer,omitempty" validate:"-"`
	InvoiceLines []InvoiceLine `gorm:"foreignKey:InvoiceID;references:InvoiceID" json:"invoice_lines,omitempty" validate:"-"`
}

func (Invoice) TableName() string { return "invoice" }

func (i *Invoice) PrimaryKey() int64 { return i.InvoiceID }

func (i *Invoice) SetPrimaryKey(id int64) { i.InvoiceID = id }

// InvoiceLine is one purchased track on an invoice.
type InvoiceLine struct {
	InvoiceLineID int64   `gorm:"primaryKey;column:invoice_line_id" json:"invoice_line_id"`
	InvoiceID     int64   `gorm:"not null;index" json:"invoice_id"`
	TrackID       int64   `gorm:"not null;index" json:"track_id"`
	UnitPrice     float64 `gorm:"type:numeric(10,2);not null" json:"unit_price"`
	Quantity      int     `gorm:"not null" json:"quantity"`

	Track *Track `json:"track,omitempty"`
}

func (InvoiceLine) TableName() string { return "invoice_line" }
