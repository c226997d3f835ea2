package service

import (
	"context"
	"errors"
	"strings"

	"inventory/internal/cache"
	dom "inventory/internal/domain"
	"inventory/internal/repo"
	"inventory/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound      = errors.New("item not found")
	ErrDuplicateName = errors.New("item with this name already exists")
)

// ItemService orchestrates item operations over the repository, translating
// store failures into domain errors. Raw pgx errors never leave this layer
// with a meaning attached: not-found and duplicate-name map to sentinels,
// everything else passes through for the handler to treat as a server error.
type ItemService struct {
	repo  repo.ItemRepo
	cache *cache.ItemCache
	sf    singleflight.Group
}

// NewItemService creates an ItemService. If c is nil, caching is disabled.
func NewItemService(r repo.ItemRepo, c *cache.ItemCache) *ItemService {
	return &ItemService{repo: r, cache: c}
}

func (s *ItemService) Create(ctx context.Context, name string, quantity int, price float64, description string) (dom.Item, error) {
	it, err := s.repo.Create(ctx, dom.Item{
		Name:        strings.TrimSpace(name),
		Quantity:    quantity,
		Price:       price,
		Description: strings.TrimSpace(description),
	})
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.Item{}, ErrDuplicateName
		}
		return dom.Item{}, err
	}
	s.invalidateCache(ctx)
	return it, nil
}

func (s *ItemService) List(ctx context.Context) ([]dom.Item, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list", func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Item), nil
	}
	return s.repo.List(ctx)
}

func (s *ItemService) GetByID(ctx context.Context, id int64) (dom.Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Item{}, ErrNotFound
		}
		return dom.Item{}, err
	}
	return it, nil
}

// Update applies a partial patch: nil fields keep their stored value.
func (s *ItemService) Update(ctx context.Context, id int64, patch dom.ItemPatch) (dom.Item, error) {
	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		patch.Name = &trimmed
	}
	if patch.Description != nil {
		trimmed := strings.TrimSpace(*patch.Description)
		patch.Description = &trimmed
	}
	it, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Item{}, ErrNotFound
		}
		if utils.IsPGUniqueViolation(err) {
			return dom.Item{}, ErrDuplicateName
		}
		return dom.Item{}, err
	}
	s.invalidateCache(ctx)
	return it, nil
}

func (s *ItemService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *ItemService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}
