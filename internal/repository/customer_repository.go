package repository

import (
	"database/sql"
	"fmt"
	"time"

	"registration-service/internal/models"
	"registration-service/internal/utils"

	"github.com/jmoiron/sqlx"
)

type ICustomerRepository interface {
	CreateCustomer(customer *models.Customer, dependents []*models.CustomerDependent, beneficiaries []*models.CustomerBeneficiary) error
	GetCustomerByID(id string) (*models.Customer, error)
	GetCustomersByAgent(agentID string, limit, offset int) ([]*models.Customer, error)
	GetAllCustomers(limit, offset int) ([]*models.Customer, error)
	GetDependents(customerID string) ([]*models.CustomerDependent, error)
	GetBeneficiaries(customerID string) ([]*models.CustomerBeneficiary, error)
	UpdateCustomerStatus(id string, status models.CustomerStatus) error
}

type CustomerRepository struct {
	db *sqlx.DB
}

func NewCustomerRepository(db *sqlx.DB) ICustomerRepository {
	return &CustomerRepository{
		db: db,
	}
}

// CreateCustomer inserts the customer together with its dependents and
// beneficiaries in a single transaction. A failed insert rolls back the
// whole signup so no partial customer record exists.
func (r *CustomerRepository) CreateCustomer(customer *models.Customer, dependents []*models.CustomerDependent, beneficiaries []*models.CustomerBeneficiary) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	customer.SignupDate = now
	customer.CreatedAt = now

	customerQuery := `
		INSERT INTO customers (id, first_name, last_name, email, phone, id_number,
		                      date_of_birth, address, city, province, postal_code,
		                      bank_name, account_number, account_type, branch_code,
		                      monthly_salary, total_expenses, total_premium,
		                      agent_id, product_id, status, signup_date, created_at)
		VALUES (:id, :first_name, :last_name, :email, :phone, :id_number,
		        :date_of_birth, :address, :city, :province, :postal_code,
		        :bank_name, :account_number, :account_type, :branch_code,
		        :monthly_salary, :total_expenses, :total_premium,
		        :agent_id, :product_id, :status, :signup_date, :created_at)
	`

	if _, err := tx.NamedExec(customerQuery, customer); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	dependentQuery := `
		INSERT INTO customer_dependents (id, customer_id, first_name, last_name,
		                                date_of_birth, relationship, cover_amount,
		                                premium, created_at)
		VALUES (:id, :customer_id, :first_name, :last_name,
		        :date_of_birth, :relationship, :cover_amount,
		        :premium, :created_at)
	`

	for _, dependent := range dependents {
		dependent.CustomerID = customer.ID
		dependent.CreatedAt = now
		if _, err := tx.NamedExec(dependentQuery, dependent); err != nil {
			return fmt.Errorf("failed to create customer dependent: %w", err)
		}
	}

	beneficiaryQuery := `
		INSERT INTO customer_beneficiaries (id, customer_id, name, relation,
		                                   percentage, created_at)
		VALUES (:id, :customer_id, :name, :relation,
		        :percentage, :created_at)
	`

	for _, beneficiary := range beneficiaries {
		beneficiary.CustomerID = customer.ID
		beneficiary.CreatedAt = now
		if _, err := tx.NamedExec(beneficiaryQuery, beneficiary); err != nil {
			return fmt.Errorf("failed to create customer beneficiary: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit customer transaction: %w", err)
	}

	return nil
}

func (r *CustomerRepository) GetCustomerByID(id string) (*models.Customer, error) {
	var customer models.Customer
	query := `SELECT * FROM customers WHERE id = $1`

	err := r.db.Get(&customer, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("customer not found")
		}
		return nil, fmt.Errorf("failed to get customer by ID: %w", err)
	}

	return &customer, nil
}

func (r *CustomerRepository) GetCustomersByAgent(agentID string, limit, offset int) ([]*models.Customer, error) {
	var customers []*models.Customer
	query := `SELECT * FROM customers WHERE agent_id = $1 ORDER BY signup_date DESC LIMIT $2 OFFSET $3`

	err := r.db.Select(&customers, query, agentID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get customers by agent: %w", err)
	}

	return customers, nil
}

func (r *CustomerRepository) GetAllCustomers(limit, offset int) ([]*models.Customer, error) {
	var customers []*models.Customer
	query := `SELECT * FROM customers ORDER BY signup_date DESC LIMIT $1 OFFSET $2`

	err := r.db.Select(&customers, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}

	return customers, nil
}

func (r *CustomerRepository) GetDependents(customerID string) ([]*models.CustomerDependent, error) {
	var dependents []*models.CustomerDependent
	query := `SELECT * FROM customer_dependents WHERE customer_id = $1 ORDER BY created_at ASC`

	err := r.db.Select(&dependents, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer dependents: %w", err)
	}

	return dependents, nil
}

func (r *CustomerRepository) GetBeneficiaries(customerID string) ([]*models.CustomerBeneficiary, error) {
	var beneficiaries []*models.CustomerBeneficiary
	query := `SELECT * FROM customer_beneficiaries WHERE customer_id = $1 ORDER BY created_at ASC`

	err := r.db.Select(&beneficiaries, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer beneficiaries: %w", err)
	}

	return beneficiaries, nil
}

func (r *CustomerRepository) UpdateCustomerStatus(id string, status models.CustomerStatus) error {
	query := `UPDATE customers SET status = $1 WHERE id = $2`

	if err := utils.ExecWithCheck(r.db, query, utils.ExecUpdate, status, id); err != nil {
		return fmt.Errorf("failed to update customer status: %w", err)
	}

	return nil
}
