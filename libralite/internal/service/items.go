package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skhanzad/libralite/libralite/internal/model"
	"github.com/skhanzad/libralite/libralite/internal/repository"
)

func (s *Service) CreateItem(ctx context.Context, req model.CreateItemRequest) (model.Item, error) {
	now := s.now()
	item := model.Item{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Author:      strings.TrimSpace(req.Author),
		ISBN:        req.ISBN,
		ItemType:    req.ItemType,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if item.ItemType == "" {
		item.ItemType = model.ItemTypeBook
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return model.Item{}, errors.Wrap(err, "create item")
	}
	return item, nil
}

func (s *Service) GetItem(ctx context.Context, id string) (model.Item, error) {
	return s.repo.GetItem(ctx, id)
}

func (s *Service) ListItems(ctx context.Context, filter model.ItemFilter) (model.ListItems, error) {
	items, err := s.repo.ListItems(ctx, filter)
	if err != nil {
		return model.ListItems{}, err
	}
	return model.ListItems{
		Paging: model.Paging{
			Page:          filter.Page,
			PageSize:      filter.Size,
			TotalElements: len(items),
		},
		Items: items,
	}, nil
}

// UpdateItem patches catalog fields; availability and hold-shelf state are
// owned by circulation and never change here.
func (s *Service) UpdateItem(ctx context.Context, id string, req model.UpdateItemRequest) (model.Item, error) {
	var item model.Item
	err := s.repo.InTx(ctx, func(tx repository.Store) error {
		var err error
		if item, err = tx.GetItem(ctx, id); err != nil {
			return err
		}
		if req.Title != nil {
			item.Title = strings.TrimSpace(*req.Title)
		}
		if req.Author != nil {
			item.Author = strings.TrimSpace(*req.Author)
		}
		if req.ISBN != nil {
			isbn := *req.ISBN
			item.ISBN = &isbn
		}
		if req.ItemType != nil {
			item.ItemType = *req.ItemType
		}
		item.UpdatedAt = s.now()
		return tx.UpdateItem(ctx, item)
	})
	if err != nil {
		return model.Item{}, err
	}
	return item, nil
}
