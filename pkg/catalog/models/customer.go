package models

// Customer buys tracks. SupportRepID points at the assigned employee.
type Customer struct {
	CustomerID   int64   `gorm:"primaryKey;column:customer_id" json:"customer_id"`
	FirstName    string  `gorm:"size:40;not null" json:"first_name" validate:"required,max=40"`
	LastName     string  `gorm:"size:20;not null" json:"last_name" validate:"required,max=20"`
	Company      *string `gorm:"size:80" json:"company" validate:"omitempty,max=80"`
	Address      *string `gorm:"size:70" json:"address" validate:"omitempty,max=70"`
	City         *string `gorm:"size:40" json:"city" validate:"omitempty,max=40"`
	State        *string `gorm:"size:40" json:"state" validate:"omitempty,max=40"`
	Country      *string `gorm:"size:40" json:"country" validate:"omitempty,max=40"`
	PostalCode   *string `gorm:"size:10" json:"postal_code" validate:"omitempty,max=10"`
	Phone        *string `gorm:"size:24" json:"phone" validate:"omitempty,max=24"`
	Fax          *string `gorm:"size:24" json:"fax" validate:"omitempty,max=24"`
	Email        string  `gorm:"size:60;not null" json:"email" validate:"required,email,max=60"`
	SupportRepID *int64  `gorm:"index" json:"support_rep_id" validate:"omitempty,gt=0"`

	SupportRep *Employee `gorm:"foreignKey:SupportRepID;references:EmployeeID" json:"support_rep,omitempty" validate:"-"`
}

func (Customer) TableName() string { return "customer" }

func (c *Customer) PrimaryKey() int64 { return c.CustomerID }

func (c *Customer) SetPrimaryKey(id int64) { c.CustomerID = id }
