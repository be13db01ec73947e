package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baustelle-app/lager/services/inventory/domain"
	"github.com/baustelle-app/lager/services/inventory/domain/models"
)

func TestPurchaseRequests_Lifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	pr, err := f.svc.PurchaseRequests.Create(ctx, f.item.ID, dec("20"), "Baustelle Nord", &f.operator)
	require.NoError(t, err)
	assert.Equal(t, models.PurchaseRequestPending, pr.Status)
	assert.True(t, strings.HasPrefix(pr.RequestNumber, "PR-"), pr.RequestNumber)
	assert.True(t, strings.HasSuffix(pr.RequestNumber, "-0001"), pr.RequestNumber)

	updated, err := f.svc.PurchaseRequests.UpdateStatus(ctx, pr.ID, "approved")
	require.NoError(t, err)
	assert.Equal(t, models.PurchaseRequestApproved, updated.Status)

	approved, err := f.svc.PurchaseRequests.List(ctx, ptr("approved"))
	require.NoError(t, err)
	require.Len(t, approved, 1)

	pending, err := f.svc.PurchaseRequests.List(ctx, ptr("pending"))
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestPurchaseRequests_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.PurchaseRequests.Create(ctx, f.item.ID, dec("0"), "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = f.svc.PurchaseRequests.Create(ctx, uuid.New(), dec("1"), "", nil)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = f.svc.PurchaseRequests.UpdateStatus(ctx, uuid.New(), "ordered")
	assert.ErrorIs(t, err, domain.ErrPurchaseRequestNotFound)

	pr, err := f.svc.PurchaseRequests.Create(ctx, f.item.ID, dec("1"), "", nil)
	require.NoError(t, err)
	_, err = f.svc.PurchaseRequests.UpdateStatus(ctx, pr.ID, "shipped")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = f.svc.PurchaseRequests.List(ctx, ptr("lost"))
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
