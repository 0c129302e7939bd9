package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/uNik020/EWS-monitor-Backend/internal/database/testutil"
	"github.com/uNik020/EWS-monitor-Backend/internal/models"
	apperrors "github.com/uNik020/EWS-monitor-Backend/pkg/errors"
)

func TestNotifyValidatesInput(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	svc, err := NewNotificationService(db, nil)
	require.NoError(t, err)

	_, err = svc.Notify(context.Background(), NotifyInput{Title: "Alert Closed"})
	require.Error(t, err)

	_, err = svc.Notify(context.Background(), NotifyInput{User: "demo@bank.com"})
	require.Error(t, err)

	notif, err := svc.Notify(context.Background(), NotifyInput{
		User:    "demo@bank.com",
		Title:   "Alert Closed",
		Message: "Alert for Acme Corp (Director change) was close.",
		AlertID: uuid.NewString(),
	})
	require.NoError(t, err)
	require.NotEmpty(t, notif.ID)
	require.False(t, notif.Read)
}

func TestListForUserIsScopedAndNewestFirst(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	svc, err := NewNotificationService(db, nil)
	require.NoError(t, err)

	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	for i, user := range []string{"a@bank.com", "a@bank.com", "b@bank.com"} {
		notif := models.Notification{User: user, Title: "Alert Approved"}
		notif.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, db.Create(&notif).Error)
	}

	notifs, err := svc.ListForUser(context.Background(), "a@bank.com")
	require.NoError(t, err)
	require.Len(t, notifs, 2)
	require.True(t, notifs[0].CreatedAt.After(notifs[1].CreatedAt))

	notifs, err = svc.ListForUser(context.Background(), "b@bank.com")
	require.NoError(t, err)
	require.Len(t, notifs, 1)
}

func TestMarkReadIsIdempotent(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	svc, err := NewNotificationService(db, nil)
	require.NoError(t, err)

	notif := models.Notification{User: "demo@bank.com", Title: "Alert Stopped"}
	require.NoError(t, db.Create(&notif).Error)

	updated, err := svc.MarkRead(context.Background(), notif.ID)
	require.NoError(t, err)
	require.True(t, updated.Read)

	again, err := svc.MarkRead(context.Background(), notif.ID)
	require.NoError(t, err)
	require.True(t, again.Read)

	var stored models.Notification
	require.NoError(t, db.First(&stored, "id = ?", notif.ID).Error)
	require.True(t, stored.Read)
}

func TestMarkReadErrors(t *testing.T) {
	db := testutil.MustOpenTestDB(t)
	svc, err := NewNotificationService(db, nil)
	require.NoError(t, err)

	_, err = svc.MarkRead(context.Background(), "garbage")
	require.ErrorIs(t, err, apperrors.ErrInvalidID)

	_, err = svc.MarkRead(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, apperrors.ErrNotificationNotFound)
}

func TestNotificationTargetColumnAvoidsReservedWord(t *testing.T) {
	db := testutil.MustOpenTestDB(t)

	// "user" is reserved in postgres and mysql; the identity column must
	// migrate as target_user so listings work on every wired driver.
	require.True(t, db.Migrator().HasColumn(&models.Notification{}, "target_user"))
	require.False(t, db.Migrator().HasColumn(&models.Notification{}, "user"))
}
