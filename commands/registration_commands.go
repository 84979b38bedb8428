package commands

import (
	"hoithanh/models"

	"gorm.io/gorm"
)

// RegistrationCommand định nghĩa interface cho các command
type RegistrationCommand interface {
	Execute() error
}

// CreateRegistrationCommand command để tạo đăng ký mới
type CreateRegistrationCommand struct {
	registration *models.EventRegistration
	db           *gorm.DB
}

func NewCreateRegistrationCommand(registration *models.EventRegistration, db *gorm.DB) *CreateRegistrationCommand {
	return &CreateRegistrationCommand{
		registration: registration,
		db:           db,
	}
}

func (c *CreateRegistrationCommand) Execute() error {
	return c.db.Create(c.registration).Error
}

// UpdateRegistrationCommand command để cập nhật đăng ký
type UpdateRegistrationCommand struct {
	registration *models.EventRegistration
	db           *gorm.DB
}

func NewUpdateRegistrationCommand(registration *models.EventRegistration, db *gorm.DB) *UpdateRegistrationCommand {
	return &UpdateRegistrationCommand{
		registration: registration,
		db:           db,
	}
}

func (c *UpdateRegistrationCommand) Execute() error {
	return c.db.Save(c.registration).Error
}

// DeleteRegistrationCommand command để xóa đăng ký
type DeleteRegistrationCommand struct {
	registrationID uint
	db             *gorm.DB
}

func NewDeleteRegistrationCommand(registrationID uint, db *gorm.DB) *DeleteRegistrationCommand {
	return &DeleteRegistrationCommand{
		registrationID: registrationID,
		db:             db,
	}
}

func (c *DeleteRegistrationCommand) Execute() error {
	return c.db.Delete(&models.EventRegistration{}, c.registrationID).Error
}
