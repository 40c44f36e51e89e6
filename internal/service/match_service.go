package service

import (
	"context"
	"fmt"

	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/matching"
	"viwahaa-be/internal/pkg/logger"
	"viwahaa-be/internal/repository/specification"
	"viwahaa-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IMatchService interface {
	FindMatches(ctx context.Context, requestingUserID uuid.UUID) ([]*entity.Profile, error)
}

type matchService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewMatchService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IMatchService {
	return &matchService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

// FindMatches returns the candidate profiles satisfying the requester's
// stored partner preferences. With every preference unset or "Any" the
// strict tier has no predicates and returns everyone but the requester.
// When the strict tier matches nothing and a caste preference is set, one
// relaxed query filters on caste alone; its result is final even if empty.
func (s *matchService) FindMatches(ctx context.Context, requestingUserID uuid.UUID) ([]*entity.Profile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ProfileRepository()

	requester, err := repo.FindOne(ctx, specification.ByID{ID: requestingUserID})
	if err != nil {
		return nil, fmt.Errorf("loading requester profile: %w", err)
	}
	if requester == nil {
		return nil, fmt.Errorf("%w: profile %s", entity.ErrNotFound, requestingUserID)
	}

	specs := matching.BuildSpecifications(requester.Preference)
	specs = append(specs, specification.ExcludeID{ID: requestingUserID})

	matches, err := repo.FindAll(ctx, specs...)
	if err != nil {
		return nil, fmt.Errorf("querying matches: %w", err)
	}
	if len(matches) > 0 {
		return matches, nil
	}

	if !matching.HasCasteTier(requester.Preference) {
		return matches, nil
	}

	s.logger.Info("Matcher", "Strict tier empty, relaxing to caste only", map[string]interface{}{
		"user_id": requestingUserID,
		"cast":    requester.Preference.Caste,
	})

	relaxed, err := repo.FindAll(ctx,
		matching.CasteSpecification(requester.Preference),
		specification.ExcludeID{ID: requestingUserID},
	)
	if err != nil {
		return nil, fmt.Errorf("querying relaxed matches: %w", err)
	}
	return relaxed, nil
}
