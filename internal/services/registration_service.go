package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"registration-service/internal/event"
	"registration-service/internal/models"
	"registration-service/internal/premium"
	"registration-service/internal/registration"
	"registration-service/internal/repository"
	"registration-service/internal/utils"

	"github.com/google/uuid"
)

// RegistrationService owns the draft lifecycle: an agent opens a draft,
// mutates it field by field across the form steps, and finally submits
// it, which turns the draft into a customer record. Drafts live in
// Redis; only a successful submit reaches Postgres.
type RegistrationService struct {
	draftRepo    repository.DraftRepository
	customerRepo repository.ICustomerRepository
	productRepo  repository.IProductRepository
	resolver     *premium.Resolver
	publisher    *event.Publisher
}

func NewRegistrationService(
	draftRepo repository.DraftRepository,
	customerRepo repository.ICustomerRepository,
	productRepo repository.IProductRepository,
	resolver *premium.Resolver,
	publisher *event.Publisher,
) *RegistrationService {
	return &RegistrationService{
		draftRepo:    draftRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		resolver:     resolver,
		publisher:    publisher,
	}
}

// DraftView is the draft plus its derived read models, returned from
// every mutation so the caller never sees stale totals.
type DraftView struct {
	Draft         *registration.Session             `json:"draft"`
	TotalPremium  float64                           `json:"total_premium"`
	Affordability registration.AffordabilitySummary `json:"affordability"`
	StepErrors    []utils.ValidationError           `json:"step_errors"`
}

func (s *RegistrationService) view(draft *registration.Session) *DraftView {
	roster := registration.NewRoster(s.resolver, draft.Dependents)
	stepErrors := draft.ValidateStep(draft.CurrentStep)
	if stepErrors == nil {
		stepErrors = []utils.ValidationError{}
	}
	return &DraftView{
		Draft:         draft,
		TotalPremium:  roster.TotalPremium(),
		Affordability: draft.Affordability(),
		StepErrors:    stepErrors,
	}
}

// OpenDraft starts a fresh registration draft for the agent.
func (s *RegistrationService) OpenDraft(ctx context.Context, agentID string) (*DraftView, error) {
	draft := registration.NewSession(uuid.NewString(), agentID)
	if err := s.draftRepo.SaveDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to open draft: %w", err)
	}
	slog.Info("registration draft opened", "draft_id", draft.ID, "agent_id", agentID)
	return s.view(draft), nil
}

// GetDraft loads a draft and re-derives the roster against the current
// clock, so ages and premiums are fresh even if the draft sat overnight.
func (s *RegistrationService) GetDraft(ctx context.Context, agentID, draftID string) (*DraftView, error) {
	draft, err := s.draftRepo.GetDraft(ctx, agentID, draftID)
	if err != nil {
		return nil, err
	}

	roster := registration.NewRoster(s.resolver, draft.Dependents)
	roster.Rederive()
	draft.Dependents = roster.Members()

	return s.view(draft), nil
}

// ListDrafts returns the agent's open draft IDs.
func (s *RegistrationService) ListDrafts(ctx context.Context, agentID string) ([]string, error) {
	return s.draftRepo.ListDraftIDs(ctx, agentID)
}

// UpdateFields overlays the supplied field values onto the draft, then
// applies the mirroring flags. Unknown keys are rejected so a client
// typo cannot silently vanish.
func (s *RegistrationService) UpdateFields(ctx context.Context, agentID, draftID string, fields map[string]any) (*DraftView, error) {
	draft, err := s.draftRepo.GetDraft(ctx, agentID, draftID)
	if err != nil {
		return nil, err
	}

	if err := overlayFields(&draft.Fields, fields); err != nil {
		return nil, err
	}
	draft.Fields.ApplySameNumberForAll()
	draft.Fields.ApplySameAsPhysical()

	if err := s.draftRepo.SaveDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return s.view(draft), nil
}

// overlayFields merges a partial field map into the full field set by
// round-tripping through JSON, so the wire names stay the single source
// of field naming.
func overlayFields(current *registration.Fields, updates map[string]any) error {
	known := map[string]struct{}{}
	raw, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("failed to encode fields: %w", err)
	}
	var full map[string]any
	if err := json.Unmarshal(raw, &full); err != nil {
		return fmt.Errorf("failed to decode fields: %w", err)
	}
	for key := range full {
		known[key] = struct{}{}
	}

	for key, value := range updates {
		if _, ok := known[key]; !ok {
			return fmt.Errorf("unknown field %q", key)
		}
		full[key] = value
	}

	merged, err := json.Marshal(full)
	if err != nil {
		return fmt.Errorf("failed to encode merged fields: %w", err)
	}
	var next registration.Fields
	if err := json.Unmarshal(merged, &next); err != nil {
		return fmt.Errorf("invalid field value: %w", err)
	}
	*current = next
	return nil
}

// SetPartner attaches or clears the optional partner sub-record.
func (s *RegistrationService) SetPartner(ctx context.Context, agentID, draftID string, partner *registration.PartnerDetails) (*DraftView, error) {
	draft, err := s.draftRepo.GetDraft(ctx, agentID, draftID)
	if err != nil {
		return nil, err
	}

	draft.Partner = partner

	if err := s.draftRepo.SaveDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return s.view(draft), nil
}

// NextStep advances the draft one step. Validation errors for the step
// being left are reported but never block the move.
func (s *RegistrationService) NextStep(ctx context.Context, agentID, draftID string) (*DraftView, error) {
	return s.navigate(ctx, agentID, draftID, func(draft *registration.Session) error {
		return draft.Next()
	})
}

// PreviousStep moves the draft one step back.
func (s *RegistrationService) PreviousStep(ctx context.Context, agentID, draftID string) (*DraftView, error) {
	return s.navigate(ctx, agentID, draftID, func(draft *registration.Session) error {
		return draft.Previous()
	})
}

func (s *RegistrationService) navigate(ctx context.Context, agentID, draftID string, move func(*registration.Session) error) (*DraftView, error) {
	draft, err := s.draftRepo.GetDraft(ctx, agentID, draftID)
	if err != nil {
		return nil, err
	}

	if err := move(draft); err != nil {
		return nil, err
	}

	if err := s.draftRepo.SaveDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return s.view(draft), nil
}

// AddDependent appends a blank roster row and returns its id.
func (s *RegistrationService) AddDependent(ctx context.Context, agentID, draftID string) (*DraftView, string, error) {
	draft, err := s.draftRepo.GetDraft(ctx, agentID, draftID)
	if err != nil {
		return nil, "", err
	}

	roster := registration.NewRoster(s.resolver, draft.Dependents)
	member := roster.Add()
	draft.Dependents = roster.Members()

	if err := s.draftRepo.SaveDraft(ctx, draft); err != nil {
		return nil, "", fmt.Errorf("failed to save draft: %w", err)
	}
	return s.view(draft), member.ID, nil
}

// UpdateDependent applies a single field change to a roster row. Age,
// premium and the roster total all reflect the change on return.
func (s *RegistrationService) UpdateDependent(ctx context.Context, agentID, draftID, dependentID string, field, value string) (*DraftView, error) {
	draft, err := s.draftRepo.GetDraft(ctx, agentID, draftID)
	if err != nil {
		return nil, err
	}

	roster := registration.NewRoster(s.resolver, draft.Dependents)
	if _, err := roster.Update(dependentID, registration.DependentField(field), value); err != nil {
		return nil, err
	}
	draft.Dependents = roster.Members()

	if err := s.draftRepo.SaveDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return s.view(draft), nil
}

// RemoveDependent deletes a roster row.
func (s *RegistrationService) RemoveDependent(ctx context.Context, agentID, draftID, dependentID string) (*DraftView, error) {
	draft, err := s.draftRepo.GetDraft(ctx, agentID, draftID)
	if err != nil {
		return nil, err
	}

	roster := registration.NewRoster(s.resolver, draft.Dependents)
	if !roster.Remove(dependentID) {
		return nil, fmt.Errorf("dependent %s not found", dependentID)
	}
	draft.Dependents = roster.Members()

	if err := s.draftRepo.SaveDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return s.view(draft), nil
}

// DependentCoverOptions lists the selectable cover amounts for a row.
func (s *RegistrationService) DependentCoverOptions(ctx context.Context, agentID, draftID, dependentID string) ([]int, error) {
	draft, err := s.draftRepo.GetDraft(ctx, agentID, draftID)
	if err != nil {
		return nil, err
	}

	roster := registration.NewRoster(s.resolver, draft.Dependents)
	if _, ok := roster.Get(dependentID); !ok {
		return nil, fmt.Errorf("dependent %s not found", dependentID)
	}

	options := roster.CoverOptions(dependentID)
	if options == nil {
		options = []int{}
	}
	return options, nil
}

// UpdateExpense sets one affordability category.
func (s *RegistrationService) UpdateExpense(ctx context.Context, agentID, draftID, category string, amount *float64) (*DraftView, error) {
	draft, err := s.draftRepo.GetDraft(ctx, agentID, draftID)
	if err != nil {
		return nil, err
	}

	if amount != nil && *amount < 0 {
		return nil, fmt.Errorf("expense amount cannot be negative")
	}
	if err := draft.Expenses.Set(category, amount); err != nil {
		return nil, err
	}

	if err := s.draftRepo.SaveDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return s.view(draft), nil
}

// SetBeneficiaries replaces the beneficiary list. Percentages are not
// required to total 100.
func (s *RegistrationService) SetBeneficiaries(ctx context.Context, agentID, draftID string, beneficiaries []registration.Beneficiary) (*DraftView, error) {
	draft, err := s.draftRepo.GetDraft(ctx, agentID, draftID)
	if err != nil {
		return nil, err
	}

	draft.Beneficiaries = beneficiaries

	if err := s.draftRepo.SaveDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return s.view(draft), nil
}

// Submit runs the terminal pipeline: gate the draft, re-derive every
// premium server-side, write the customer transactionally, publish the
// event and drop the draft. Any failure before the delete leaves the
// draft intact and editable.
func (s *RegistrationService) Submit(ctx context.Context, agentID, draftID string) (*models.Customer, []utils.ValidationError, error) {
	draft, err := s.draftRepo.GetDraft(ctx, agentID, draftID)
	if err != nil {
		return nil, nil, err
	}

	validationErrs, err := draft.BeginSubmit()
	if err != nil {
		return nil, validationErrs, err
	}

	// Persist the submitting flag so a concurrent submit of the same
	// draft is rejected by the gate above.
	if err := s.draftRepo.SaveDraft(ctx, draft); err != nil {
		return nil, nil, fmt.Errorf("failed to save draft: %w", err)
	}

	customer, dependents, beneficiaries, err := s.assemble(ctx, draft)
	if err != nil {
		s.reopen(ctx, draft)
		return nil, nil, err
	}

	if err := s.customerRepo.CreateCustomer(customer, dependents, beneficiaries); err != nil {
		s.reopen(ctx, draft)
		return nil, nil, fmt.Errorf("failed to create customer: %w", err)
	}

	if s.publisher != nil {
		evt := event.CustomerCreatedEvent{
			CustomerID:   customer.ID.String(),
			AgentID:      customer.AgentID,
			ProductID:    customer.ProductID,
			Email:        customer.Email,
			TotalPremium: customer.TotalPremium,
			Dependents:   len(dependents),
			SignupDate:   customer.SignupDate,
		}
		if err := s.publisher.PublishCustomerCreated(ctx, evt); err != nil {
			slog.Error("failed to publish customer event", "customer_id", customer.ID, "error", err)
		}
	}

	if err := s.draftRepo.DeleteDraft(ctx, agentID, draftID); err != nil {
		slog.Error("failed to delete submitted draft", "draft_id", draftID, "error", err)
	}

	slog.Info("registration submitted",
		"draft_id", draftID,
		"customer_id", customer.ID,
		"agent_id", agentID,
		"total_premium", customer.TotalPremium,
	)

	return customer, nil, nil
}

// reopen clears the submitting flag after a failed submit so the agent
// can correct and retry.
func (s *RegistrationService) reopen(ctx context.Context, draft *registration.Session) {
	draft.FinishSubmit()
	if err := s.draftRepo.SaveDraft(ctx, draft); err != nil {
		slog.Error("failed to reopen draft after failed submit", "draft_id", draft.ID, "error", err)
	}
}

// assemble maps a validated draft into the persistence records, with
// every dependent premium re-derived from the rate table rather than
// trusted from the stored draft.
func (s *RegistrationService) assemble(ctx context.Context, draft *registration.Session) (*models.Customer, []*models.CustomerDependent, []*models.CustomerBeneficiary, error) {
	if _, err := s.productRepo.GetProductByID(ctx, draft.Fields.ProductID); err != nil {
		return nil, nil, nil, fmt.Errorf("selected product is unavailable: %w", err)
	}

	dob, err := utils.ParseDateOnly(draft.Fields.DateOfBirth)
	if err != nil {
		return nil, nil, nil, err
	}

	roster := registration.NewRoster(s.resolver, draft.Dependents)
	roster.Rederive()
	draft.Dependents = roster.Members()

	customer := &models.Customer{
		ID:            uuid.New(),
		FirstName:     draft.Fields.FirstName,
		LastName:      draft.Fields.LastName,
		Email:         draft.Fields.Email,
		Phone:         draft.Fields.Phone,
		IDNumber:      draft.Fields.IDNumber,
		DateOfBirth:   dob,
		Address:       draft.Fields.PhysicalAddress1,
		City:          draft.Fields.PhysicalSuburb,
		Province:      draft.Fields.PhysicalProvince,
		PostalCode:    draft.Fields.PhysicalPostalCode,
		BankName:      draft.Fields.BankName,
		AccountNumber: draft.Fields.AccountNumber,
		AccountType:   draft.Fields.AccountType,
		BranchCode:    draft.Fields.BranchCode,
		MonthlySalary: draft.Fields.MonthlySalary,
		TotalExpenses: draft.Expenses.Total(),
		TotalPremium:  roster.TotalPremium(),
		AgentID:       draft.AgentID,
		ProductID:     draft.Fields.ProductID,
		Status:        models.CustomerPending,
	}

	dependents := make([]*models.CustomerDependent, 0, len(draft.Dependents))
	for _, member := range draft.Dependents {
		record := &models.CustomerDependent{
			ID:           uuid.New(),
			FirstName:    member.FirstName,
			LastName:     member.LastName,
			Relationship: member.Relationship,
			CoverAmount:  member.CoverAmount,
			Premium:      member.Premium,
		}
		if member.DateOfBirth != "" {
			if parsed, err := utils.ParseDateOnly(member.DateOfBirth); err == nil {
				record.DateOfBirth = &parsed
			}
		}
		dependents = append(dependents, record)
	}

	beneficiaries := make([]*models.CustomerBeneficiary, 0, len(draft.Beneficiaries))
	for _, beneficiary := range draft.Beneficiaries {
		beneficiaries = append(beneficiaries, &models.CustomerBeneficiary{
			ID:         uuid.New(),
			Name:       beneficiary.Name,
			Relation:   beneficiary.Relation,
			Percentage: beneficiary.Percentage,
		})
	}

	return customer, dependents, beneficiaries, nil
}

// CreateDirect creates a customer from a complete registration payload
// in one call, without an intervening draft. The same gates apply as on
// draft submit: consent, full validity, server-side premium derivation.
func (s *RegistrationService) CreateDirect(ctx context.Context, agentID string, req *models.CreateCustomerRequest) (*models.Customer, []utils.ValidationError, error) {
	draft := registration.NewSession(uuid.NewString(), agentID)
	draft.CurrentStep = registration.Steps[len(registration.Steps)-1]
	draft.Fields = req.Fields
	draft.Partner = req.Partner
	draft.Dependents = req.Dependents
	draft.Expenses = req.Expenses
	draft.Beneficiaries = req.Beneficiaries
	draft.Fields.ApplySameNumberForAll()
	draft.Fields.ApplySameAsPhysical()

	if !draft.Fields.Consent {
		return nil, nil, fmt.Errorf("consent must be affirmed before submission")
	}
	if errs := draft.ValidateAll(); len(errs) > 0 {
		return nil, errs, fmt.Errorf("registration has %d validation errors", len(errs))
	}

	customer, dependents, beneficiaries, err := s.assemble(ctx, draft)
	if err != nil {
		return nil, nil, err
	}

	if err := s.customerRepo.CreateCustomer(customer, dependents, beneficiaries); err != nil {
		return nil, nil, fmt.Errorf("failed to create customer: %w", err)
	}

	if s.publisher != nil {
		evt := event.CustomerCreatedEvent{
			CustomerID:   customer.ID.String(),
			AgentID:      customer.AgentID,
			ProductID:    customer.ProductID,
			Email:        customer.Email,
			TotalPremium: customer.TotalPremium,
			Dependents:   len(dependents),
			SignupDate:   customer.SignupDate,
		}
		if err := s.publisher.PublishCustomerCreated(ctx, evt); err != nil {
			slog.Error("failed to publish customer event", "customer_id", customer.ID, "error", err)
		}
	}

	slog.Info("customer created directly",
		"customer_id", customer.ID,
		"agent_id", agentID,
		"total_premium", customer.TotalPremium,
	)

	return customer, nil, nil
}

// Cancel discards an open draft.
func (s *RegistrationService) Cancel(ctx context.Context, agentID, draftID string) error {
	if err := s.draftRepo.DeleteDraft(ctx, agentID, draftID); err != nil {
		return err
	}
	slog.Info("registration draft cancelled", "draft_id", draftID, "agent_id", agentID)
	return nil
}
