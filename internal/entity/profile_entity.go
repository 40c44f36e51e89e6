package entity

import (
	"time"

	"github.com/google/uuid"
)

type ProfileStatus string

const (
	ProfileStatusSingle ProfileStatus = "single"
	ProfileStatusFixed  ProfileStatus = "fixed"
)

// PreferenceAny is the stored sentinel meaning "apply no filter on this attribute".
const PreferenceAny = "Any"

// PartnerPreference is the partner-preference sub-record of a profile.
// All fields are free-form strings carried over from historical registration
// input; numeric bounds are parsed defensively by the matcher.
type PartnerPreference struct {
	CountryOfResident string
	ResidentStatus    string
	Education         string
	Occupation        string
	AnnualIncome      string
	MaritalStatus     string
	MinimumAge        string
	MaximumAge        string
	MinimumHeight     string
	MaximumHeight     string
	PhysicalStatus    string
	MotherTongue      string
	Religion          string
	StarSign          string
	Caste             string
	EatingHabit       string
	SmokingHabit      string
	DrinkingHabit     string
}

type Profile struct {
	Id           uuid.UUID
	MemberId     string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash *string

	DateOfBirth time.Time
	Age         int
	Gender      string
	ContactNo   string
	WhatsappNo  string
	Address     string
	BirthPlace  string
	BirthTime   string

	Height         float64
	Weight         string
	Complexion     string
	MaritalStatus  string
	PhysicalStatus string
	Religion       string
	Caste          string
	StarSign       string
	Rasi           string

	CountryOfBirth       string
	CityOfBirth          string
	CountryOfResident    string
	CityOfResident       string
	CountryOfCitizenship string

	EatingHabit   string
	SmokingHabit  string
	DrinkingHabit string

	PrimarySchool     string
	SecondarySchool   string
	Education         string
	EducationDetails  string
	Occupation        string
	OccupationDetails string
	EmployedIn        string
	AnnualIncome      string

	FamilyValue        string
	FamilyType         string
	FamilyStatus       string
	FathersName        string
	FathersOccupation  string
	FathersNativePlace string
	MothersName        string
	MothersOccupation  string
	MothersNativePlace string
	Brothers           string
	MarriedBrothers    string
	Sisters            string
	MarriedSisters     string
	MoreFamily         string

	Preference PartnerPreference

	ProfileImg string
	Img1       string
	Img2       string
	ChartImg   string

	Status      ProfileStatus
	PackagePlan string
	LastSeen    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullName is used by admin listings and notification templates.
func (p *Profile) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
