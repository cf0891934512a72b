package service_test

import (
	"testing"

	"github.com/skhanzad/libralite/libralite/internal/errs"
	"github.com/skhanzad/libralite/libralite/internal/model"
	"github.com/stretchr/testify/require"
)

func TestService_Items(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	created, err := f.svc.CreateItem(f.ctx, model.CreateItemRequest{Title: "  Dune ", Author: "Herbert"})
	require.NoError(t, err)
	require.Equal(t, "Dune", created.Title)
	require.Equal(t, model.ItemTypeBook, created.ItemType)
	require.True(t, created.IsAvailable)
	require.False(t, created.OnHoldShelf)

	f.item(t, "Alien", model.ItemTypeDVD)
	f.item(t, "Wired", model.ItemTypeMagazine)

	got, err := f.svc.GetItem(f.ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
	_, err = f.svc.GetItem(f.ctx, "nope")
	require.ErrorIs(t, err, errs.ErrItemNotFound)

	list, err := f.svc.ListItems(f.ctx, model.ItemFilter{})
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	require.Equal(t, "Alien", list.Items[0].Title)

	list, err = f.svc.ListItems(f.ctx, model.ItemFilter{ItemType: model.ItemTypeDVD})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)

	list, err = f.svc.ListItems(f.ctx, model.ItemFilter{Search: "herb"})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	require.Equal(t, created.ID, list.Items[0].ID)

	list, err = f.svc.ListItems(f.ctx, model.ItemFilter{Page: 2, Size: 2})
	require.NoError(t, err)
	require.Equal(t, 2, list.Page)
	require.Len(t, list.Items, 1)
	require.Equal(t, "Wired", list.Items[0].Title)
}

func TestService_UpdateItem(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	m := f.member(t, "Jane", "jane@x.com")
	book := f.item(t, "Dune", model.ItemTypeBook)
	f.checkout(t, m, book)

	title, dvd := "Dune Messiah", model.ItemTypeDVD
	updated, err := f.svc.UpdateItem(f.ctx, book.ID, model.UpdateItemRequest{Title: &title, ItemType: &dvd})
	require.NoError(t, err)
	require.Equal(t, title, updated.Title)
	require.Equal(t, "Author", updated.Author)
	require.Equal(t, dvd, updated.ItemType)
	require.False(t, updated.IsAvailable, "availability is owned by circulation")
	requireAvailability(t, f, book.ID)

	_, err = f.svc.UpdateItem(f.ctx, "nope", model.UpdateItemRequest{Title: &title})
	require.ErrorIs(t, err, errs.ErrItemNotFound)
}
