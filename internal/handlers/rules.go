package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uNik020/EWS-monitor-Backend/internal/models"
	"github.com/uNik020/EWS-monitor-Backend/internal/services"
	"github.com/uNik020/EWS-monitor-Backend/pkg/response"
)

// RuleHandler exposes the rule ingestion and listing endpoints.
type RuleHandler struct {
	rules *services.RuleService
}

// NewRuleHandler constructs a RuleHandler.
func NewRuleHandler(rules *services.RuleService) (*RuleHandler, error) {
	if rules == nil {
		return nil, errors.New("rule handler: rule service is required")
	}
	return &RuleHandler{rules: rules}, nil
}

// Create accepts one rule object or an array of rule objects.
func (h *RuleHandler) Create(c *gin.Context) {
	items, bulk, ok := bindSingleOrBulk[models.Rule](c)
	if !ok {
		return
	}

	if bulk {
		created, err := h.rules.CreateMany(requestContext(c), items)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, http.StatusCreated, created)
		return
	}

	rule := items[0]
	if err := h.rules.CreateOne(requestContext(c), &rule); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rule)
}

// List returns all rules, newest first.
func (h *RuleHandler) List(c *gin.Context) {
	rules, err := h.rules.List(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, rules)
}
