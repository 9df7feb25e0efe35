package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"registration-service/internal/event"
	"registration-service/internal/models"
	"registration-service/internal/repository"

	"github.com/google/uuid"
)

type LeadService struct {
	leadRepo  repository.ILeadRepository
	publisher *event.Publisher
}

func NewLeadService(leadRepo repository.ILeadRepository, publisher *event.Publisher) *LeadService {
	return &LeadService{
		leadRepo:  leadRepo,
		publisher: publisher,
	}
}

// CaptureLead stores a marketing enquiry and announces it on the lead
// queue. Publish failures are logged, not surfaced: the lead is already
// stored and the caller should see success.
func (s *LeadService) CaptureLead(ctx context.Context, req *models.CreateLeadRequest) (*models.Lead, error) {
	source := req.Source
	if source == "" {
		source = "website"
	}

	lead := &models.Lead{
		ID:              uuid.NewString(),
		Email:           req.Email,
		Phone:           req.Phone,
		ProductInterest: req.ProductInterest,
		Source:          source,
		Status:          models.LeadNew,
	}

	if err := s.leadRepo.CreateLead(lead); err != nil {
		return nil, fmt.Errorf("failed to capture lead: %w", err)
	}

	if s.publisher != nil {
		evt := event.LeadCapturedEvent{
			LeadID:     lead.ID,
			Source:     lead.Source,
			CapturedAt: time.Now(),
		}
		if lead.Email != nil {
			evt.Email = *lead.Email
		}
		if lead.Phone != nil {
			evt.Phone = *lead.Phone
		}
		if lead.ProductInterest != nil {
			evt.ProductInterest = *lead.ProductInterest
		}
		if err := s.publisher.PublishLeadCaptured(ctx, evt); err != nil {
			slog.Error("failed to publish lead event", "lead_id", lead.ID, "error", err)
		}
	}

	return lead, nil
}

func (s *LeadService) GetLeads(limit, offset int) ([]*models.Lead, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.leadRepo.GetAllLeads(limit, offset)
}

func (s *LeadService) UpdateLeadStatus(id string, req *models.UpdateLeadStatusRequest) error {
	if !models.IsValidLeadStatus(req.Status) {
		return fmt.Errorf("invalid lead status: %s", req.Status)
	}
	return s.leadRepo.UpdateLeadStatus(id, req.Status, req.Notes)
}

// AssignLead claims a lead for an agent and marks it contacted.
func (s *LeadService) AssignLead(id, agentID string) error {
	if err := s.leadRepo.AssignAgent(id, agentID); err != nil {
		return err
	}
	return s.leadRepo.UpdateLeadStatus(id, models.LeadContacted, nil)
}
