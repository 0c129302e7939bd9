package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/uNik020/EWS-monitor-Backend/internal/database/testutil"
	"github.com/uNik020/EWS-monitor-Backend/internal/models"
)

func TestRuleServiceCreateAndList(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	svc, err := NewRuleService(db)
	require.NoError(t, err)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rules := []models.Rule{
		{RuleCode: "R-001", Severity: "High", TATDays: 7, Tags: datatypes.NewJSONSlice([]string{"kyc", "director"})},
		{RuleCode: "R-002", Severity: "Low", TATDays: 30},
	}
	for i := range rules {
		rules[i].CreatedAt = base.Add(time.Duration(i) * time.Hour)
	}

	created, err := svc.CreateMany(context.Background(), rules)
	require.NoError(t, err)
	require.Len(t, created, 2)
	require.NotEmpty(t, created[0].ID)

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 2)
	require.Equal(t, "R-002", listed[0].RuleCode, "newest rule first")
	require.Equal(t, []string{"kyc", "director"}, []string(listed[1].Tags))
}

func TestEventServiceCreateAndList(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	svc, err := NewEventService(db)
	require.NoError(t, err)

	base := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	event := models.Event{
		EventType: "new",
		Company:   "Acme Corp",
		EventName: "Director change",
		EventRaw:  datatypes.JSON([]byte(`{"source":"registry","lines":3}`)),
	}
	event.CreatedAt = base.Add(-time.Hour)
	require.NoError(t, svc.CreateOne(context.Background(), &event))
	require.NotEmpty(t, event.ID)
	batch := []models.Event{
		{EventType: "new", Company: "Globex", EventName: "Rating downgrade"},
		{EventType: "old", Company: "Initech", EventName: "Late filing"},
	}
	for i := range batch {
		batch[i].CreatedAt = base.Add(time.Duration(i) * time.Hour)
	}
	_, err = svc.CreateMany(context.Background(), batch)
	require.NoError(t, err)

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 3)
	require.Equal(t, "Initech", listed[0].Company, "newest event first")
}

func TestCreateManyEmptyBatchIsNoop(t *testing.T) {
	db := testutil.MustOpenTestDB(t)

	ruleSvc, err := NewRuleService(db)
	require.NoError(t, err)
	rules, err := ruleSvc.CreateMany(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, rules)

	eventSvc, err := NewEventService(db)
	require.NoError(t, err)
	events, err := eventSvc.CreateMany(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, events)
}
