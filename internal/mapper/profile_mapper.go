package mapper

import (
	"time"

	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/model"

	"gorm.io/datatypes"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(c *model.Customer) *entity.Profile {
	if c == nil {
		return nil
	}
	return &entity.Profile{
		Id:           c.Id,
		MemberId:     c.MemberId,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,

		DateOfBirth: time.Time(c.DateOfBirth),
		Age:         c.Age,
		Gender:      c.Gender,
		ContactNo:   c.ContactNo,
		WhatsappNo:  c.WhatsappNo,
		Address:     c.Address,
		BirthPlace:  c.BirthPlace,
		BirthTime:   c.BirthTime,

		Height:         c.Height,
		Weight:         c.Weight,
		Complexion:     c.Complexion,
		MaritalStatus:  c.MaritalStatus,
		PhysicalStatus: c.PhysicalStatus,
		Religion:       c.Religion,
		Caste:          c.Caste,
		StarSign:       c.StarSign,
		Rasi:           c.Rasi,

		CountryOfBirth:       c.CountryOfBirth,
		CityOfBirth:          c.CityOfBirth,
		CountryOfResident:    c.CountryOfResident,
		CityOfResident:       c.CityOfResident,
		CountryOfCitizenship: c.CountryOfCitizenship,

		EatingHabit:   c.EatingHabit,
		SmokingHabit:  c.SmokingHabit,
		DrinkingHabit: c.DrinkingHabit,

		PrimarySchool:     c.PrimarySchool,
		SecondarySchool:   c.SecondarySchool,
		Education:         c.Education,
		EducationDetails:  c.EducationDetails,
		Occupation:        c.Occupation,
		OccupationDetails: c.OccupationDetails,
		EmployedIn:        c.EmployedIn,
		AnnualIncome:      c.AnnualIncome,

		FamilyValue:        c.FamilyValue,
		FamilyType:         c.FamilyType,
		FamilyStatus:       c.FamilyStatus,
		FathersName:        c.FathersName,
		FathersOccupation:  c.FathersOccupation,
		FathersNativePlace: c.FathersNativePlace,
		MothersName:        c.MothersName,
		MothersOccupation:  c.MothersOccupation,
		MothersNativePlace: c.MothersNativePlace,
		Brothers:           c.Brothers,
		MarriedBrothers:    c.MarriedBrothers,
		Sisters:            c.Sisters,
		MarriedSisters:     c.MarriedSisters,
		MoreFamily:         c.MoreFamily,

		Preference: entity.PartnerPreference(c.Preference),

		ProfileImg: c.ProfileImg,
		Img1:       c.Img1,
		Img2:       c.Img2,
		ChartImg:   c.ChartImg,

		Status:      entity.ProfileStatus(c.Status),
		PackagePlan: c.PackagePlan,
		LastSeen:    c.LastSeen,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *ProfileMapper) ToModel(p *entity.Profile) *model.Customer {
	if p == nil {
		return nil
	}
	return &model.Customer{
		Id:           p.Id,
		MemberId:     p.MemberId,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,

		DateOfBirth: datatypes.Date(p.DateOfBirth),
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

		Preference: model.PartnerPreference(p.Preference),

		ProfileImg: p.ProfileImg,
		Img1:       p.Img1,
		Img2:       p.Img2,
		ChartImg:   p.ChartImg,

		Status:      string(p.Status),
		PackagePlan: p.PackagePlan,
		LastSeen:    p.LastSeen,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
