package models

import "time"

type CellGroup struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;unique" json:"name"`
	Description string    `json:"description"`
	LeaderID    *uint     `json:"leaderId,omitempty"`
	Members     []Member  `json:"members,omitempty" gorm:"foreignKey:CellGroupID"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
