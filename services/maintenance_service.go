package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"hotelflow/builders"
	"hotelflow/constants"
	"hotelflow/models"
	"hotelflow/services/logger"
	"hotelflow/services/notification"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

const (
	ErrCodeTicketNotFound     = "TICKET_NOT_FOUND"
	ErrCodeTicketUnassigned   = "NOT_ASSIGNED"
	ErrCodeTicketTerminal     = "TERMINAL_STATUS"
	ErrCodeTicketWrongStatus  = "INVALID_STATUS"
	ErrCodeTicketUploadFailed = "UPLOAD_FAILED"
	ErrCodeTicketWriteFailed  = "TICKET_WRITE_FAILED"
)

// MaintenanceService owns the ticket lifecycle. Transitions are strictly
// forward: pending -> in_progress (on assignment) -> completed (terminal).
type MaintenanceService struct {
	db       *gorm.DB
	cld      *cloudinary.Cloudinary
	notifier notification.Service
	logger   logger.Logger
}

type MaintenanceServiceOptions struct {
	DB       *gorm.DB
	Cld      *cloudinary.Cloudinary
	Notifier notification.Service
	Logger   logger.Logger
}

func NewMaintenanceService(opts MaintenanceServiceOptions) *MaintenanceService {
	return &MaintenanceService{
		db:       opts.DB,
		cld:      opts.Cld,
		notifier: opts.Notifier,
		logger:   opts.Logger,
	}
}

// CreateTicketInput carries the fields of a new maintenance ticket.
type CreateTicketInput struct {
	RoomID       uint
	Location     string
	Type         string
	Description  string
	Priority     string
	ScheduledFor time.Time
}

// CreateTicket opens a pending ticket. The builder fills in the default
// type, priority and status when the form left them blank.
func (s *MaintenanceService) CreateTicket(ctx context.Context, hotelID uint, input CreateTicketInput) (*models.Maintenance, error) {
	ticket := builders.NewTicketBuilder().
		WithHotel(hotelID).
		WithRoom(input.RoomID).
		WithLocation(input.Location).
		WithType(input.Type).
		WithDescription(input.Description).
		WithPriority(input.Priority).
		WithSchedule(input.ScheduledFor).
		Build()

	if err := s.db.WithContext(ctx).Create(ticket).Error; err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeTicketWriteFailed,
			Message: "failed to create maintenance ticket",
			Err:     err,
		}
	}
	return ticket, nil
}

func (s *MaintenanceService) loadTicket(ctx context.Context, tx *gorm.DB, hotelID, ticketID uint) (*models.Maintenance, error) {
	var ticket models.Maintenance
	if err := tx.WithContext(ctx).Where("hotel_id = ?", hotelID).First(&ticket, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{
				Code:    ErrCodeTicketNotFound,
				Message: fmt.Sprintf("ticket %d not found in hotel %d", ticketID, hotelID),
				Err:     err,
			}
		}
		return nil, err
	}
	return &ticket, nil
}

// AssignStaff puts a ticket in progress. Only pending tickets can be
// assigned; reassignment of an in-progress ticket keeps its status.
func (s *MaintenanceService) AssignStaff(ctx context.Context, hotelID, ticketID, staffID uint) (*models.Maintenance, error) {
	ticket, err := s.loadTicket(ctx, s.db, hotelID, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == constants.MaintenanceStatusCompleted {
		return nil, &ServiceError{
			Code:    ErrCodeTicketTerminal,
			Message: fmt.Sprintf("ticket %d is already completed", ticketID),
		}
	}

	var staff models.Staff
	if err := s.db.WithContext(ctx).Where("hotel_id = ?", hotelID).First(&staff, staffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{
				Code:    ErrCodeTransitionStaffNotFound,
				Message: fmt.Sprintf("staff %d not found in hotel %d", staffID, hotelID),
				Err:     err,
			}
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"assigned_to": staffID,
		"status":      constants.MaintenanceStatusInProgress,
	}
	if err := s.db.WithContext(ctx).Model(ticket).Updates(updates).Error; err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeTicketWriteFailed,
			Message: fmt.Sprintf("failed to assign ticket %d", ticketID),
			Err:     err,
		}
	}

	ticket.AssignedTo = &staffID
	ticket.Status = constants.MaintenanceStatusInProgress
	s.broadcast(ticket)
	return ticket, nil
}

// UploadEvidence pushes one completion attachment to blob storage, keyed
// by ticket id and filename, and returns its persisted entry.
func (s *MaintenanceService) UploadEvidence(ctx context.Context, ticketID uint, file *multipart.FileHeader) (*models.Evidence, error) {
	src, err := file.Open()
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeTicketUploadFailed,
			Message: fmt.Sprintf("failed to open evidence file %s", file.Filename),
			Err:     err,
		}
	}
	defer src.Close()

	mediaType := "image"
	if strings.HasPrefix(file.Header.Get("Content-Type"), "video/") {
		mediaType = "video"
	}

	resp, err := s.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:   fmt.Sprintf("maintenance-evidence/%d", ticketID),
		PublicID: file.Filename,
	})
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeTicketUploadFailed,
			Message: fmt.Sprintf("failed to upload evidence file %s", file.Filename),
			Err:     err,
		}
	}

	return &models.Evidence{Type: mediaType, URL: resp.SecureURL}, nil
}

// CompleteTicket closes an in-progress ticket: uploads every evidence
// file, then persists notes, evidence entries, completion timestamp and
// actor in one update. An unassigned ticket cannot complete.
func (s *MaintenanceService) CompleteTicket(ctx context.Context, hotelID, ticketID, completedBy uint, notes string, files []*multipart.FileHeader) (*models.Maintenance, error) {
	ticket, err := s.loadTicket(ctx, s.db, hotelID, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == constants.MaintenanceStatusCompleted {
		return nil, &ServiceError{
			Code:    ErrCodeTicketTerminal,
			Message: fmt.Sprintf("ticket %d is already completed", ticketID),
		}
	}
	if ticket.AssignedTo == nil {
		return nil, &ServiceError{
			Code:    ErrCodeTicketUnassigned,
			Message: fmt.Sprintf("ticket %d has no assigned staff member", ticketID),
		}
	}

	evidence := make([]models.Evidence, 0, len(files))
	for _, file := range files {
		entry, err := s.UploadEvidence(ctx, ticketID, file)
		if err != nil {
			return nil, err
		}
		evidence = append(evidence, *entry)
	}

	evidenceJSON, err := json.Marshal(evidence)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeTicketWriteFailed,
			Message: "failed to encode evidence list",
			Err:     err,
		}
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":       constants.MaintenanceStatusCompleted,
		"completed_at": now,
		"completed_by": completedBy,
		"notes":        notes,
		"evidence":     evidenceJSON,
	}
	if err := s.db.WithContext(ctx).Model(ticket).Updates(updates).Error; err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeTicketWriteFailed,
			Message: fmt.Sprintf("failed to complete ticket %d", ticketID),
			Err:     err,
		}
	}

	ticket.Status = constants.MaintenanceStatusCompleted
	ticket.CompletedAt = &now
	ticket.CompletedBy = completedBy
	ticket.Notes = notes
	ticket.Evidence = evidenceJSON
	s.broadcast(ticket)
	return ticket, nil
}

// TicketFilter narrows the ticket listing. Status matches the tab value,
// Search matches location or description, case-insensitive.
type TicketFilter struct {
	Status string
	Search string
}

// ListTickets returns a hotel's tickets, newest first.
func (s *MaintenanceService) ListTickets(ctx context.Context, hotelID uint, filter TicketFilter) ([]models.Maintenance, error) {
	query := s.db.WithContext(ctx).Where("hotel_id = ?", hotelID)
	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(location) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var tickets []models.Maintenance
	if err := query.Preload("Assignee").Order("created_at DESC").Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

// SweepOverdue finds open tickets that ran past their scheduled time and
// pushes a per-hotel overdue count to live subscribers. Returns the total
// number of overdue tickets. Called from the cron sweep.
func (s *MaintenanceService) SweepOverdue(ctx context.Context, now time.Time) (int64, error) {
	var tickets []models.Maintenance
	if err := s.db.WithContext(ctx).
		Where("status <> ? AND scheduled_for > ? AND scheduled_for < ?",
			constants.MaintenanceStatusCompleted, time.Time{}, now).
		Find(&tickets).Error; err != nil {
		return 0, err
	}

	byHotel := make(map[uint]int)
	for _, ticket := range tickets {
		byHotel[ticket.HotelID]++
	}

	for hotelID, count := range byHotel {
		s.logger.Info("Hotel %d has %d overdue maintenance tickets", hotelID, count)
		if s.notifier != nil {
			if err := s.notifier.SendMessage(hotelID, fmt.Sprintf("maintenance:overdue:%d", count)); err != nil {
				s.logger.Error("Failed to broadcast overdue count for hotel %d: %v", hotelID, err)
			}
		}
	}
	return int64(len(tickets)), nil
}

func (s *MaintenanceService) broadcast(ticket *models.Maintenance) {
	if s.notifier == nil {
		return
	}
	event := notification.RoomEvent{
		HotelID:   ticket.HotelID,
		RoomID:    ticket.RoomID,
		Entity:    "maintenance",
		NewStatus: ticket.Status,
		Timestamp: time.Now(),
	}
	if err := s.notifier.SendRoomEvent(event); err != nil {
		s.logger.Error("Failed to broadcast ticket event for ticket %d: %v", ticket.ID, err)
	}
}
