package application

import (
	"github.com/eatwithchiso/service-booking/internal/domain/menu"
	"go.uber.org/zap"
)

// MenuService serves the static menu catalog.
type MenuService struct {
	catalog *menu.Catalog
	logger  *zap.Logger
}

// NewMenuService creates a new MenuService.
func NewMenuService(catalog *menu.Catalog, logger *zap.Logger) *MenuService {
	return &MenuService{catalog: catalog, logger: logger}
}

// GetMenu returns the menu for period; empty means breakfast.
func (s *MenuService) GetMenu(period string) (menu.Menu, error) {
	m, err := s.catalog.Lookup(period)
	if err != nil {
		s.logger.Debug("unknown menu requested", zap.String("type", period))
		return nil, err
	}
	return m, nil
}

// Periods lists the menu types on offer.
func (s *MenuService) Periods() []menu.Period {
	return s.catalog.Periods()
}
