package services

import (
	"fmt"

	"registration-service/internal/models"
	"registration-service/internal/repository"
)

type CustomerService struct {
	customerRepo repository.ICustomerRepository
}

func NewCustomerService(customerRepo repository.ICustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

// CustomerDetail is a customer with its child records attached.
type CustomerDetail struct {
	Customer      *models.Customer              `json:"customer"`
	Dependents    []*models.CustomerDependent   `json:"dependents"`
	Beneficiaries []*models.CustomerBeneficiary `json:"beneficiaries"`
}

func (s *CustomerService) GetCustomersByAgent(agentID string, limit, offset int) ([]*models.Customer, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.customerRepo.GetCustomersByAgent(agentID, limit, offset)
}

func (s *CustomerService) GetAllCustomers(limit, offset int) ([]*models.Customer, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.customerRepo.GetAllCustomers(limit, offset)
}

func (s *CustomerService) GetCustomerDetail(id string) (*CustomerDetail, error) {
	customer, err := s.customerRepo.GetCustomerByID(id)
	if err != nil {
		return nil, err
	}

	dependents, err := s.customerRepo.GetDependents(id)
	if err != nil {
		return nil, err
	}

	beneficiaries, err := s.customerRepo.GetBeneficiaries(id)
	if err != nil {
		return nil, err
	}

	return &CustomerDetail{
		Customer:      customer,
		Dependents:    dependents,
		Beneficiaries: beneficiaries,
	}, nil
}

func (s *CustomerService) UpdateCustomerStatus(id string, req *models.UpdateCustomerStatusRequest) error {
	if !models.IsValidCustomerStatus(req.Status) {
		return fmt.Errorf("invalid customer status: %s", req.Status)
	}
	return s.customerRepo.UpdateCustomerStatus(id, req.Status)
}
