package mapper

import (
	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/model"
)

type InterestMapper struct{}

func NewInterestMapper() *InterestMapper {
	return &InterestMapper{}
}

func (m *InterestMapper) ToEntity(i *model.Interest) *entity.Interest {
	if i == nil {
		return nil
	}
	e := entity.Interest(*i)
	return &e
}

func (m *InterestMapper) ToModel(i *entity.Interest) *model.Interest {
	if i == nil {
		return nil
	}
	mod := model.Interest(*i)
	return &mod
}

func (m *InterestMapper) ProfileInterestToEntity(i *model.ProfileInterest) *entity.ProfileInterest {
	if i == nil {
		return nil
	}
	e := entity.ProfileInterest(*i)
	return &e
}

func (m *InterestMapper) ProfileInterestToModel(i *entity.ProfileInterest) *model.ProfileInterest {
	if i == nil {
		return nil
	}
	mod := model.ProfileInterest(*i)
	return &mod
}
