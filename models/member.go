package models

import (
	"time"

	"github.com/lib/pq"
)

type Member struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	FirstName   string        `gorm:"not null" json:"firstName"`
	LastName    string        `gorm:"not null" json:"lastName"`
	Email       string        `gorm:"unique" json:"email"`
	Phone       string        `json:"phone"`
	Address     string        `json:"address"`
	DateOfBirth *time.Time    `json:"dateOfBirth,omitempty"`
	Status      string        `gorm:"default:'ACTIVE'" json:"status"`
	Photo       string        `json:"photo"`
	FamilyID    *uint         `json:"familyId,omitempty"`
	Family      *Family       `json:"family,omitempty" gorm:"foreignKey:FamilyID"`
	CellGroupID *uint         `json:"cellGroupId,omitempty"`
	CellGroup   *CellGroup    `json:"cellGroup,omitempty" gorm:"foreignKey:CellGroupID"`
	MinistryIDs pq.Int64Array `json:"ministryIds" gorm:"type:integer[]"`
}
