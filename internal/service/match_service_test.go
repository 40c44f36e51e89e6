package service

import (
	"context"
	"errors"
	"testing"

	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatchFixture(requester *entity.Profile) (*stubProfileRepo, IMatchService) {
	repo := &stubProfileRepo{
		findOne: func(specs ...specification.Specification) (*entity.Profile, error) {
			return requester, nil
		},
	}
	svc := NewMatchService(&stubFactory{uow: &stubUnitOfWork{profiles: repo}}, noopLogger{})
	return repo, svc
}

func TestFindMatchesUnknownRequester(t *testing.T) {
	_, svc := newMatchFixture(nil)

	_, err := svc.FindMatches(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrNotFound))
}

func TestFindMatchesAllAnyReturnsEveryoneButRequester(t *testing.T) {
	requester := &entity.Profile{
		Id: uuid.New(),
		Preference: entity.PartnerPreference{
			Caste:    "Any",
			Religion: "Any",
		},
	}
	others := []*entity.Profile{{Id: uuid.New()}, {Id: uuid.New()}}

	repo, svc := newMatchFixture(requester)
	repo.findAll = func(call int, specs ...specification.Specification) ([]*entity.Profile, error) {
		return others, nil
	}

	matches, err := svc.FindMatches(context.Background(), requester.Id)
	require.NoError(t, err)
	assert.Equal(t, others, matches)

	// One strict query whose only predicate excludes the requester.
	require.Len(t, repo.findAllSets, 1)
	require.Len(t, repo.findAllSets[0], 1)
	assert.Equal(t, specification.ExcludeID{ID: requester.Id}, repo.findAllSets[0][0])
}

func TestFindMatchesStrictTierHit(t *testing.T) {
	requester := &entity.Profile{
		Id: uuid.New(),
		Preference: entity.PartnerPreference{
			Caste:    "Vellalar",
			Religion: "Hindu",
		},
	}
	hit := []*entity.Profile{{Id: uuid.New()}}

	repo, svc := newMatchFixture(requester)
	repo.findAll = func(call int, specs ...specification.Specification) ([]*entity.Profile, error) {
		return hit, nil
	}

	matches, err := svc.FindMatches(context.Background(), requester.Id)
	require.NoError(t, err)
	assert.Equal(t, hit, matches)
	assert.Len(t, repo.findAllSets, 1, "strict hit must not trigger the relaxed tier")
}

func TestFindMatchesCasteFallback(t *testing.T) {
	requester := &entity.Profile{
		Id: uuid.New(),
		Preference: entity.PartnerPreference{
			Caste:      "Vellalar",
			Religion:   "Hindu",
			MinimumAge: "25",
			MaximumAge: "31",
		},
	}
	relaxed := []*entity.Profile{{Id: uuid.New()}}

	repo, svc := newMatchFixture(requester)
	repo.findAll = func(call int, specs ...specification.Specification) ([]*entity.Profile, error) {
		if call == 1 {
			return nil, nil
		}
		return relaxed, nil
	}

	matches, err := svc.FindMatches(context.Background(), requester.Id)
	require.NoError(t, err)
	assert.Equal(t, relaxed, matches)

	require.Len(t, repo.findAllSets, 2)
	// Relaxed tier carries exactly caste equality plus requester exclusion.
	require.Len(t, repo.findAllSets[1], 2)
	assert.Equal(t, specification.FilterBy{Field: "cast", Value: "Vellalar"}, repo.findAllSets[1][0])
	assert.Equal(t, specification.ExcludeID{ID: requester.Id}, repo.findAllSets[1][1])
}

func TestFindMatchesNoFallbackWithoutCaste(t *testing.T) {
	requester := &entity.Profile{
		Id: uuid.New(),
		Preference: entity.PartnerPreference{
			Caste:    "Any",
			Religion: "Hindu",
		},
	}

	repo, svc := newMatchFixture(requester)
	repo.findAll = func(call int, specs ...specification.Specification) ([]*entity.Profile, error) {
		return nil, nil
	}

	matches, err := svc.FindMatches(context.Background(), requester.Id)
	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.Len(t, repo.findAllSets, 1, "caste Any must not trigger the relaxed tier")
}

func TestFindMatchesRelaxedEmptyIsFinal(t *testing.T) {
	requester := &entity.Profile{
		Id:         uuid.New(),
		Preference: entity.PartnerPreference{Caste: "Vellalar", Religion: "Hindu"},
	}

	repo, svc := newMatchFixture(requester)
	repo.findAll = func(call int, specs ...specification.Specification) ([]*entity.Profile, error) {
		return nil, nil
	}

	matches, err := svc.FindMatches(context.Background(), requester.Id)
	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.Len(t, repo.findAllSets, 2, "exactly one relaxation, never more")
}
