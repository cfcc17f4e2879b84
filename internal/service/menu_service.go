package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"quickbite/internal/model"
	"quickbite/internal/repository"
)

const (
	defaultMenuLimit = 100
	maxMenuLimit     = 500
)

// menuService implements MenuService.
type menuService struct {
	repo   repository.MenuRepository
	logger zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(repo repository.MenuRepository, logger zerolog.Logger) MenuService {
	return &menuService{
		repo:   repo,
		logger: logger.With().Str("service", "menu").Logger(),
	}
}

// GetAll retrieves available menu items with pagination.
func (s *menuService) GetAll(ctx context.Context, limit, offset int) ([]model.MenuItem, error) {
	if limit <= 0 {
		limit = defaultMenuLimit
	}
	if limit > maxMenuLimit {
		limit = maxMenuLimit
	}
	if offset < 0 {
		offset = 0
	}

	items, err := s.repo.GetAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list menu items")
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

// GetByID retrieves a single menu item by ID.
func (s *menuService) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("menu_item_id", id).Msg("failed to get menu item")
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return item, nil
}
