package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/zach0583-rgb/ThatZachGuy/internal/catalog"
	"github.com/zach0583-rgb/ThatZachGuy/internal/repository"
)

// SuiteService exposes the fixed suite catalog enriched with live
// artwork counts.
type SuiteService struct {
	suites      *catalog.Catalog
	artworkRepo repository.ArtworkRepository
}

// NewSuiteService creates a SuiteService.
func NewSuiteService(suites *catalog.Catalog, artworkRepo repository.ArtworkRepository) *SuiteService {
	if suites == nil || artworkRepo == nil {
		panic("SuiteService dependencies cannot be nil")
	}
	return &SuiteService{suites: suites, artworkRepo: artworkRepo}
}

// List returns every suite with its artwork count.
func (s *SuiteService) List(ctx context.Context) ([]SuiteDetails, error) {
	all := s.suites.All()
	details := make([]SuiteDetails, 0, len(all))
	for _, suite := range all {
		count, err := s.artworkRepo.CountBySuite(ctx, suite.ID)
		if err != nil {
			logrus.WithError(err).WithField("suite_id", suite.ID).Error("Failed to count suite artworks")
			return nil, ErrInternalServer
		}
		details = append(details, SuiteDetails{Suite: suite, ArtworkCount: count})
	}
	return details, nil
}

// Get returns one suite with its artwork count.
func (s *SuiteService) Get(ctx context.Context, suiteID string) (*SuiteDetails, error) {
	suite, ok := s.suites.Get(suiteID)
	if !ok {
		return nil, ErrSuiteNotFound
	}
	count, err := s.artworkRepo.CountBySuite(ctx, suiteID)
	if err != nil {
		logrus.WithError(err).WithField("suite_id", suiteID).Error("Failed to count suite artworks")
		return nil, ErrInternalServer
	}
	return &SuiteDetails{Suite: suite, ArtworkCount: count}, nil
}
