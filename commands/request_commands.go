package commands

import (
	"time"

	"hotelflow/constants"
	"hotelflow/models"

	"gorm.io/gorm"
)

// RequestCommand is one triage action on a guest request.
type RequestCommand interface {
	Execute() error
}

// CreateRequestCommand opens a new pending request.
type CreateRequestCommand struct {
	request *models.Request
	db      *gorm.DB
}

func NewCreateRequestCommand(request *models.Request, db *gorm.DB) *CreateRequestCommand {
	return &CreateRequestCommand{
		request: request,
		db:      db,
	}
}

func (c *CreateRequestCommand) Execute() error {
	return c.db.Create(c.request).Error
}

// ResolveRequestCommand marks a pending request resolved, recording who
// closed it and when.
type ResolveRequestCommand struct {
	requestID  uint
	resolvedBy uint
	db         *gorm.DB
}

func NewResolveRequestCommand(requestID, resolvedBy uint, db *gorm.DB) *ResolveRequestCommand {
	return &ResolveRequestCommand{
		requestID:  requestID,
		resolvedBy: resolvedBy,
		db:         db,
	}
}

func (c *ResolveRequestCommand) Execute() error {
	now := time.Now()
	result := c.db.Model(&models.Request{}).
		Where("id = ? AND status = ?", c.requestID, constants.RequestStatusPending).
		Updates(map[string]interface{}{
			"status":      constants.RequestStatusResolved,
			"resolved_at": now,
			"resolved_by": c.resolvedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteRequestCommand removes a request outright. Used for spam cleanup.
type DeleteRequestCommand struct {
	requestID uint
	db        *gorm.DB
}

func NewDeleteRequestCommand(requestID uint, db *gorm.DB) *DeleteRequestCommand {
	return &DeleteRequestCommand{
		requestID: requestID,
		db:        db,
	}
}

func (c *DeleteRequestCommand) Execute() error {
	return c.db.Delete(&models.Request{}, c.requestID).Error
}
