package models

import "time"

// Person is a roster entry for the DeBag line. People are created through
// quick-add and soft-excluded from listings via Active; they are never
// deleted, because historical observations keep pointing at them.
type Person struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         *string   `gorm:"size:100" json:"name"`
	EmployeeCode *string   `gorm:"size:50;uniqueIndex" json:"employeeCode"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName specifies the table name for Person model
func (Person) TableName() string {
	return "people"
}

// DisplayName returns the label used for this person in reports and badges:
// name, else employee code, else empty (callers fall back to the numeric id).
func (p *Person) DisplayName() string {
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}
	if p.EmployeeCode != nil && *p.EmployeeCode != "" {
		return *p.EmployeeCode
	}
	return ""
}
