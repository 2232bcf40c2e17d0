package model

import "time"

// Plan is a subscription tier limiting how many postings can be active at once.
type Plan struct {
	ID       string `gorm:"primaryKey;type:text" json:"id"`
	Name     string `gorm:"type:text;not null;uniqueIndex" json:"name"`
	JobLimit int    `gorm:"not null" json:"jobLimit"`
}

// Organization is a tenant that owns career postings. The ID keeps the
// 24-hex-character shape the upstream data model uses, so career records can
// reference organizations created by the legacy system.
type Organization struct {
	ID            string `gorm:"primaryKey;type:char(24)" json:"id"`
	Name          string `gorm:"type:text;not null" json:"name"`
	PlanID        string `gorm:"type:text;not null" json:"planId"`
	Plan          Plan   `gorm:"foreignKey:PlanID;references:ID" json:"plan"`
	ExtraJobSlots int    `gorm:"not null;default:0" json:"extraJobSlots"`

	CreatedAt time.Time `gorm:"type:timestamp" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updatedAt"`
}

// JobSlots is the number of active postings the organization may hold.
func (o *Organization) JobSlots() int {
	return o.Plan.JobLimit + o.ExtraJobSlots
}
