package service

import (
	"context"
	"fmt"
	"time"

	"viwahaa-be/internal/dto"
	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/repository/specification"
	"viwahaa-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IProfileService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*dto.ProfileResponse, error)
	ListProfiles(ctx context.Context) ([]*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *dto.UpdateProfileRequest) error
	UpdateImages(ctx context.Context, id uuid.UUID, req *dto.UpdateImagesRequest) error
}

type profileService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProfileService(uowFactory unitofwork.RepositoryFactory) IProfileService {
	return &profileService{uowFactory: uowFactory}
}

func (s *profileService) GetProfile(ctx context.Context, id uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: profile %s", entity.ErrNotFound, id)
	}
	return ToProfileResponse(profile), nil
}

func (s *profileService) ListProfiles(ctx context.Context) ([]*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profiles, err := uow.ProfileRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		res = append(res, ToProfileResponse(p))
	}
	return res, nil
}

// UpdateProfile writes the full edit form. The original form round-trips the
// whole record, blanks included, so empty strings overwrite.
func (s *profileService) UpdateProfile(ctx context.Context, id uuid.UUID, req *dto.UpdateProfileRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ProfileRepository()

	profile, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("%w: profile %s", entity.ErrNotFound, id)
	}

	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return fmt.Errorf("%w: d_o_b must be YYYY-MM-DD", entity.ErrValidation)
		}
		profile.DateOfBirth = dob
		profile.Age = ageAt(dob, time.Now())
	}
	if req.Email != "" {
		profile.Email = req.Email
	}

	profile.FirstName = req.FirstName
	profile.LastName = req.LastName
	profile.Gender = req.Gender
	profile.ContactNo = req.ContactNo
	profile.WhatsappNo = req.WhatsappNo
	profile.Address = req.Address
	profile.BirthPlace = req.BirthPlace
	profile.BirthTime = req.BirthTime

	profile.Height = req.Height
	profile.Weight = req.Weight
	profile.Complexion = req.Complexion
	profile.MaritalStatus = req.MaritalStatus
	profile.PhysicalStatus = req.PhysicalStatus
	profile.Religion = req.Religion
	profile.Caste = req.Caste
	profile.StarSign = req.StarSign
	profile.Rasi = req.Rasi

	profile.CountryOfBirth = req.CountryOfBirth
	profile.CityOfBirth = req.CityOfBirth
	profile.CountryOfResident = req.CountryOfResident
	profile.CityOfResident = req.CityOfResident
	profile.CountryOfCitizenship = req.CountryOfCitizenship

	profile.EatingHabit = req.EatingHabit
	profile.SmokingHabit = req.SmokingHabit
	profile.DrinkingHabit = req.DrinkingHabit

	profile.PrimarySchool = req.PrimarySchool
	profile.SecondarySchool = req.SecondarySchool
	profile.Education = req.Education
	profile.EducationDetails = req.EducationDetails
	profile.Occupation = req.Occupation
	profile.OccupationDetails = req.OccupationDetails
	profile.EmployedIn = req.EmployedIn
	profile.AnnualIncome = req.AnnualIncome

	profile.FamilyValue = req.FamilyValue
	profile.FamilyType = req.FamilyType
	profile.FamilyStatus = req.FamilyStatus
	profile.FathersName = req.FathersName
	profile.FathersOccupation = req.FathersOccupation
	profile.FathersNativePlace = req.FathersNativePlace
	profile.MothersName = req.MothersName
	profile.MothersOccupation = req.MothersOccupation
	profile.MothersNativePlace = req.MothersNativePlace
	profile.Brothers = req.Brothers
	profile.MarriedBrothers = req.MarriedBrothers
	profile.Sisters = req.Sisters
	profile.MarriedSisters = req.MarriedSisters
	profile.MoreFamily = req.MoreFamily

	profile.Preference = entity.PartnerPreference(req.Preference)

	return repo.Update(ctx, profile)
}

// UpdateImages touches image columns only; the column set is fixed here so a
// request can never write outside it.
func (s *profileService) UpdateImages(ctx context.Context, id uuid.UUID, req *dto.UpdateImagesRequest) error {
	columns := map[string]interface{}{}
	if req.ProfileImg != "" {
		columns["profile_img"] = req.ProfileImg
	}
	if req.Img1 != "" {
		columns["img_1"] = req.Img1
	}
	if req.Img2 != "" {
		columns["img_2"] = req.Img2
	}
	if req.ChartImg != "" {
		columns["chart_img"] = req.ChartImg
	}
	if len(columns) == 0 {
		return fmt.Errorf("%w: no image fields supplied", entity.ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProfileRepository().UpdateColumns(ctx, id, columns)
}

// ToProfileResponse strips credentials and flattens the entity for the API.
func ToProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		Id:        p.Id,
		MemberId:  p.MemberId,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,

		DateOfBirth: p.DateOfBirth.Format("2006-01-02"),
		Age:         p.Age,
		Gender:      p.Gender,
		ContactNo:   p.ContactNo,
		WhatsappNo:  p.WhatsappNo,
		Address:     p.Address,
		BirthPlace:  p.BirthPlace,
		BirthTime:   p.BirthTime,

		Height:         p.Height,
		Weight:         p.Weight,
		Complexion:     p.Complexion,
		MaritalStatus:  p.MaritalStatus,
		PhysicalStatus: p.PhysicalStatus,
		Religion:       p.Religion,
		Caste:          p.Caste,
		StarSign:       p.StarSign,
		Rasi:           p.Rasi,

		CountryOfBirth:       p.CountryOfBirth,
		CityOfBirth:          p.CityOfBirth,
		CountryOfResident:    p.CountryOfResident,
		CityOfResident:       p.CityOfResident,
		CountryOfCitizenship: p.CountryOfCitizenship,

		EatingHabit:   p.EatingHabit,
		SmokingHabit:  p.SmokingHabit,
		DrinkingHabit: p.DrinkingHabit,

		PrimarySchool:     p.PrimarySchool,
		SecondarySchool:   p.SecondarySchool,
		Education:         p.Education,
		EducationDetails:  p.EducationDetails,
		Occupation:        p.Occupation,
		OccupationDetails: p.OccupationDetails,
		EmployedIn:        p.EmployedIn,
		AnnualIncome:      p.AnnualIncome,

		FamilyValue:        p.FamilyValue,
		FamilyType:         p.FamilyType,
		FamilyStatus:       p.FamilyStatus,
		FathersName:        p.FathersName,
		FathersOccupation:  p.FathersOccupation,
		FathersNativePlace: p.FathersNativePlace,
		MothersName:        p.MothersName,
		MothersOccupation:  p.MothersOccupation,
		MothersNativePlace: p.MothersNativePlace,
		Brothers:           p.Brothers,
		MarriedBrothers:    p.MarriedBrothers,
		Sisters:            p.Sisters,
		MarriedSisters:     p.MarriedSisters,
		MoreFamily:         p.MoreFamily,

		Preference: dto.PartnerPreferenceDTO(p.Preference),

		ProfileImg: p.ProfileImg,
		Img1:       p.Img1,
		Img2:       p.Img2,
		ChartImg:   p.ChartImg,

		Status:      string(p.Status),
		PackagePlan: p.PackagePlan,
		LastSeen:    p.LastSeen,
		CreatedAt:   p.CreatedAt,
	}
}
