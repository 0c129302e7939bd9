package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/uNik020/EWS-monitor-Backend/internal/models"
)

// RuleService owns the rule collection. Rules are immutable once created;
// there is no update or delete surface.
type RuleService struct {
	db *gorm.DB
}

// NewRuleService constructs a RuleService.
func NewRuleService(db *gorm.DB) (*RuleService, error) {
	if db == nil {
		return nil, errors.New("rule service: db is required")
	}
	return &RuleService{db: db}, nil
}

// CreateOne persists a single rule.
func (s *RuleService) CreateOne(ctx context.Context, rule *models.Rule) error {
	ctx = ensureContext(ctx)

	if err := s.db.WithContext(ctx).Create(rule).Error; err != nil {
		return fmt.Errorf("rule service: create rule: %w", err)
	}
	return nil
}

// CreateMany persists a batch of rules.
func (s *RuleService) CreateMany(ctx context.Context, rules []models.Rule) ([]models.Rule, error) {
	ctx = ensureContext(ctx)

	if len(rules) == 0 {
		return []models.Rule{}, nil
	}

	if err := s.db.WithContext(ctx).Create(&rules).Error; err != nil {
		return nil, fmt.Errorf("rule service: create rules: %w", err)
	}
	return rules, nil
}

// List returns all rules ordered by recency.
func (s *RuleService) List(ctx context.Context) ([]models.Rule, error) {
	ctx = ensureContext(ctx)

	var rules []models.Rule
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("rule service: list rules: %w", err)
	}
	return rules, nil
}
