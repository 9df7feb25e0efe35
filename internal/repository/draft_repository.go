package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"registration-service/internal/registration"

	"github.com/redis/go-redis/v9"
)

// DraftRepository persists in-progress registration sessions in Redis.
// A draft lives as long as its TTL and is refreshed on every save, so
// an agent can resume a half-finished signup within the window.
type DraftRepository interface {
	SaveDraft(ctx context.Context, draft *registration.Session) error
	GetDraft(ctx context.Context, agentID, draftID string) (*registration.Session, error)
	ListDraftIDs(ctx context.Context, agentID string) ([]string, error)
	DeleteDraft(ctx context.Context, agentID, draftID string) error
}

type draftRepository struct {
	client     *redis.Client
	expiration time.Duration
}

func NewDraftRepository(client *redis.Client, expiration time.Duration) DraftRepository {
	return &draftRepository{
		client:     client,
		expiration: expiration,
	}
}

func (r *draftRepository) SaveDraft(ctx context.Context, draft *registration.Session) error {
	if draft.ID == "" {
		return fmt.Errorf("draft ID cannot be empty")
	}
	if draft.AgentID == "" {
		return fmt.Errorf("agent ID cannot be empty")
	}

	draftData, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	draftKey := r.getDraftKey(draft.AgentID, draft.ID)
	agentDraftsKey := r.getAgentDraftsKey(draft.AgentID)

	pipe := r.client.Pipeline()
	pipe.Set(ctx, draftKey, draftData, r.expiration)
	pipe.SAdd(ctx, agentDraftsKey, draft.ID)
	pipe.Expire(ctx, agentDraftsKey, r.expiration)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store draft: %w", err)
	}

	return nil
}

func (r *draftRepository) GetDraft(ctx context.Context, agentID, draftID string) (*registration.Session, error) {
	if draftID == "" {
		return nil, fmt.Errorf("draft ID cannot be empty")
	}

	draftKey := r.getDraftKey(agentID, draftID)
	draftData, err := r.client.Get(ctx, draftKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("draft not found")
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	var draft registration.Session
	if err := json.Unmarshal([]byte(draftData), &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}

	return &draft, nil
}

func (r *draftRepository) ListDraftIDs(ctx context.Context, agentID string) ([]string, error) {
	if agentID == "" {
		return nil, fmt.Errorf("agent ID cannot be empty")
	}

	agentDraftsKey := r.getAgentDraftsKey(agentID)
	draftIDs, err := r.client.SMembers(ctx, agentDraftsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to get agent draft IDs: %w", err)
	}

	// Prune entries whose draft key already expired
	active := make([]string, 0, len(draftIDs))
	for _, draftID := range draftIDs {
		exists, err := r.client.Exists(ctx, r.getDraftKey(agentID, draftID)).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to check draft existence: %w", err)
		}
		if exists == 0 {
			r.client.SRem(ctx, agentDraftsKey, draftID)
			continue
		}
		active = append(active, draftID)
	}

	return active, nil
}

func (r *draftRepository) DeleteDraft(ctx context.Context, agentID, draftID string) error {
	if draftID == "" {
		return fmt.Errorf("draft ID cannot be empty")
	}

	draftKey := r.getDraftKey(agentID, draftID)
	agentDraftsKey := r.getAgentDraftsKey(agentID)

	pipe := r.client.Pipeline()
	pipe.Del(ctx, draftKey)
	pipe.SRem(ctx, agentDraftsKey, draftID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}

	return nil
}

func (r *draftRepository) getDraftKey(agentID, draftID string) string {
	return fmt.Sprintf("registration_draft:%s:%s", agentID, draftID)
}

func (r *draftRepository) getAgentDraftsKey(agentID string) string {
	return fmt.Sprintf("agent_drafts:%s", agentID)
}
