package models

import "time"

// Employee is a market staff member who collects payments for a section.
type Employee struct {
	ID                 uint          `gorm:"primaryKey" json:"id"`
	IDNumber           string        `gorm:"size:32;index" json:"id_number"`
	EmployeeName       string        `gorm:"size:128;not null" json:"employee_name"`
	DepartmentAssigned string        `gorm:"size:64" json:"department_assigned"`
	Status             AccountStatus `gorm:"size:16;not null;default:Pending" json:"status"`
	Assign             bool          `gorm:"not null;default:false" json:"assign"`
	CreatedAt          time.Time     `json:"created_at"`
}

func (Employee) TableName() string { return "Employee" }
