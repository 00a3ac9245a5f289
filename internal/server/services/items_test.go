package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sam-ezra/todo/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemCreate_AppendsWithinList(t *testing.T) {
	lists, s, _ := newListService(t)

	list := mustCreateList(t, lists, "u1", "groceries")
	other := mustCreateList(t, lists, "u1", "chores")

	a := mustCreateItem(t, s, "u1", "milk", list.ID)
	b := mustCreateItem(t, s, "u1", "bread", list.ID)
	c := mustCreateItem(t, s, "u1", "dishes", other.ID)

	assert.Equal(t, 1, a.Order)
	assert.Equal(t, 2, b.Order)
	assert.Equal(t, 1, c.Order, "ordering is per list")
	assert.False(t, a.IsCompleted, "new items start incomplete")
}

func TestItemCreate_OwnershipAndExistence(t *testing.T) {
	lists, s, _ := newListService(t)
	ctx := context.Background()

	foreign := mustCreateList(t, lists, "u2", "not yours")

	_, err := s.Create(ctx, "u1", "milk", foreign.ID)
	assert.True(t, errors.Is(err, common.ErrorForbidden), "someone else's list is forbidden")

	_, err = s.Create(ctx, "u1", "milk", 999)
	assert.True(t, errors.Is(err, common.ErrorNotFound), "absent list is not found")
}

func TestItemCreate_Validation(t *testing.T) {
	lists, s, _ := newListService(t)
	ctx := context.Background()

	list := mustCreateList(t, lists, "u1", "groceries")

	_, err := s.Create(ctx, "u1", "  ", list.ID)
	assert.True(t, errors.Is(err, common.ErrorValidation))

	_, err = s.Create(ctx, "u1", strings.Repeat("x", common.MaxItemValueLength+1), list.ID)
	assert.True(t, errors.Is(err, common.ErrorValidation))

	_, err = s.Create(ctx, "u1", "milk", 0)
	assert.True(t, errors.Is(err, common.ErrorValidation))
}

func TestItemUpdate(t *testing.T) {
	lists, s, _ := newListService(t)
	ctx := context.Background()

	list := mustCreateList(t, lists, "u1", "groceries")
	item := mustCreateItem(t, s, "u1", "milk", list.ID)

	updated, err := s.Update(ctx, item.ID, "u1", "oat milk", true, 5)
	require.NoError(t, err)
	assert.Equal(t, "oat milk", updated.Value)
	assert.True(t, updated.IsCompleted)
	assert.Equal(t, 5, updated.Order)

	_, err = s.Update(ctx, item.ID, "u2", "hijack", false, 1)
	assert.True(t, errors.Is(err, common.ErrorNotFound))

	_, err = s.Update(ctx, item.ID, "u1", "", false, 1)
	assert.True(t, errors.Is(err, common.ErrorValidation))

	_, err = s.Update(ctx, item.ID, "u1", "ok", false, -1)
	assert.True(t, errors.Is(err, common.ErrorValidation))
}

func TestItemDelete(t *testing.T) {
	lists, s, _ := newListService(t)
	ctx := context.Background()

	list := mustCreateList(t, lists, "u1", "groceries")
	item := mustCreateItem(t, s, "u1", "milk", list.ID)

	assert.True(t, errors.Is(s.Delete(ctx, item.ID, "u2"), common.ErrorNotFound))
	require.NoError(t, s.Delete(ctx, item.ID, "u1"))
	assert.True(t, errors.Is(s.Delete(ctx, item.ID, "u1"), common.ErrorNotFound))
}

func TestItemReorder_RenormalizesToPositions(t *testing.T) {
	lists, s, _ := newListService(t)
	ctx := context.Background()

	list := mustCreateList(t, lists, "u1", "groceries")
	a := mustCreateItem(t, s, "u1", "a", list.ID)
	b := mustCreateItem(t, s, "u1", "b", list.ID)
	c := mustCreateItem(t, s, "u1", "c", list.ID)

	require.NoError(t, s.Reorder(ctx, "u1", list.ID, []int64{c.ID, 999, a.ID, b.ID}))

	page, err := lists.GetAll(ctx, "u1", 1, 10)
	require.NoError(t, err)
	got := page.Items[0].Items
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].Value)
	assert.Equal(t, "a", got[1].Value)
	assert.Equal(t, "b", got[2].Value)
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].Order, got[1].Order, got[2].Order})
}

func TestItemReorder_OwnershipAndValidation(t *testing.T) {
	lists, s, _ := newListService(t)
	ctx := context.Background()

	foreign := mustCreateList(t, lists, "u2", "not yours")

	err := s.Reorder(ctx, "u1", foreign.ID, []int64{1})
	assert.True(t, errors.Is(err, common.ErrorForbidden))

	err = s.Reorder(ctx, "u1", 999, []int64{1})
	assert.True(t, errors.Is(err, common.ErrorNotFound))

	err = s.Reorder(ctx, "u1", 0, []int64{1})
	assert.True(t, errors.Is(err, common.ErrorValidation))
}
