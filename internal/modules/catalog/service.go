package catalog

import (
	"context"

	"go.uber.org/zap"

	"leprive/internal/domain"
	"leprive/internal/pkg/logger"
)

// previewSize is how many cards the gallery shows before "View All".
const previewSize = 3

type CompanionRepository interface {
	GetAll(ctx context.Context) ([]domain.Companion, error)
	GetByID(ctx context.Context, id int64) (*domain.Companion, error)
}

type Service struct {
	repo   CompanionRepository
	source ListingSource
	log    *zap.Logger
}

func NewService(repo CompanionRepository, source ListingSource) *Service {
	return &Service{
		repo:   repo,
		source: source,
		log:    logger.Get().Named("catalog"),
	}
}

// List returns the companions to display plus the full gallery size. The list
// comes from the CMS for the requested locale; when that fetch fails it is
// logged and the seeded catalog serves as fallback, never an error page.
// Unless expanded, the result is truncated to the first previewSize entries.
func (s *Service) List(ctx context.Context, locale string, expanded bool) ([]domain.Companion, int, error) {
	companions, err := s.source.FetchCompanions(ctx, locale)
	if err != nil {
		s.log.Warn("companion list fetch failed, using local catalog",
			zap.String("locale", locale),
			zap.Error(err),
		)
		companions, err = s.repo.GetAll(ctx)
		if err != nil {
			return nil, 0, err
		}
	}

	total := len(companions)
	if !expanded && total > previewSize {
		companions = companions[:previewSize]
	}
	return companions, total, nil
}

// GetByID returns the full profile for the detail page.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Companion, error) {
	return s.repo.GetByID(ctx, id)
}
