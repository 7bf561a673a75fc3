package models

import "time"

// Employee is a store employee. ReportsTo points at the manager.
type Employee struct {
	EmployeeID int64      `gorm:"primaryKey;column:employee_id" json:"employee_id"`
	LastName   string     `gorm:"size:20;not null" json:"last_name" validate:"required,max=20"`
	FirstName  string     `gorm:"size:20;not null" json:"first_name" validate:"required,max=20"`
	Title      *string    `gorm:"size:30" json:"title" validate:"omitempty,max=30"`
	ReportsTo  *int64     `gorm:"index" json:"reports_to" validate:"omitempty,gt=0"`
	BirthDate  *time.Time `json:"birth_date"`
	HireDate   *time.Time `json:"hire_date"`
	Address    *string    `gorm:"size:70" json:"address" validate:"omitempty,max=70"`
	City       *string    `gorm:"size:40" json:"city" validate:"omitempty,max=40"`
	State      *string    `gorm:"size:40" json:"state" validate:"omitempty,max=40"`
	Country    *string    `gorm:"size:40" json:"country" validate:"omitempty,max=40"`
	PostalCode *string    `gorm:"size:10" json:"postal_code" validate:"omitempty,max=10"`
	Phone      *string    `gorm:"size:24" json:"phone" validate:"omitempty,max=24"`
	Fax        *string    `gorm:"size:24" json:"fax" validate:"omitempty,max=24"`
	Email      *string    `gorm:"size:60" json:"email" validate:"omitempty,email,max=60"`

	Manager *Employee `gorm:"foreignKey:ReportsTo;references:EmployeeID" json:"manager,omitempty" validate:"-"`
}

func (Employee) TableName() string { return "employee" }

func (e *Employee) PrimaryKey() int64 { return e.EmployeeID }

func (e *Employee) SetPrimaryKey(id int64) { e.EmployeeID = id }
