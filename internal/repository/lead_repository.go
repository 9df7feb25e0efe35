package repository

import (
	"database/sql"
	"fmt"
	"time"

	"registration-service/internal/models"
	"registration-service/internal/utils"

	"github.com/jmoiron/sqlx"
)

type ILeadRepository interface {
	CreateLead(lead *models.Lead) error
	GetLeadByID(id string) (*models.Lead, error)
	GetAllLeads(limit, offset int) ([]*models.Lead, error)
	GetLeadsByStatus(status models.LeadStatus) ([]*models.Lead, error)
	UpdateLeadStatus(id string, status models.LeadStatus, notes *string) error
	AssignAgent(id, agentID string) error
}

type LeadRepository struct {
	db *sqlx.DB
}

func NewLeadRepository(db *sqlx.DB) ILeadRepository {
	return &LeadRepository{
		db: db,
	}
}

func (r *LeadRepository) CreateLead(lead *models.Lead) error {
	query := `
		INSERT INTO leads (id, email, phone, product_interest, source, status,
		                  agent_id, notes, created_at, updated_at)
		VALUES (:id, :email, :phone, :product_interest, :source, :status,
		        :agent_id, :notes, :created_at, :updated_at)
	`

	lead.CreatedAt = time.Now()
	lead.UpdatedAt = time.Now()

	_, err := r.db.NamedExec(query, lead)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}

	return nil
}

func (r *LeadRepository) GetLeadByID(id string) (*models.Lead, error) {
	var lead models.Lead
	query := `SELECT * FROM leads WHERE id = $1`

	err := r.db.Get(&lead, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("lead not found")
		}
		return nil, fmt.Errorf("failed to get lead by ID: %w", err)
	}

	return &lead, nil
}

func (r *LeadRepository) GetAllLeads(limit, offset int) ([]*models.Lead, error) {
	var leads []*models.Lead
	query := `SELECT * FROM leads ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	err := r.db.Select(&leads, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get leads: %w", err)
	}

	return leads, nil
}

func (r *LeadRepository) GetLeadsByStatus(status models.LeadStatus) ([]*models.Lead, error) {
	var leads []*models.Lead
	query := `SELECT * FROM leads WHERE status = $1 ORDER BY created_at DESC`

	err := r.db.Select(&leads, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get leads by status: %w", err)
	}

	return leads, nil
}

func (r *LeadRepository) UpdateLeadStatus(id string, status models.LeadStatus, notes *string) error {
	query := `
		UPDATE leads
		SET status = $1,
		    notes = COALESCE($2, notes),
		    updated_at = $3
		WHERE id = $4
	`

	result, err := r.db.Exec(query, status, notes, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update lead status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("lead not found")
	}

	return nil
}

func (r *LeadRepository) AssignAgent(id, agentID string) error {
	query := `UPDATE leads SET agent_id = $1, updated_at = $2 WHERE id = $3`

	if err := utils.ExecWithCheck(r.db, query, utils.ExecUpdate, agentID, time.Now(), id); err != nil {
		return fmt.Errorf("failed to assign agent to lead: %w", err)
	}

	return nil
}
