package dto

import (
	"time"

	"github.com/google/uuid"
)

type PartnerPreferenceDTO struct {
	CountryOfResident string `json:"country_of_resident"`
	ResidentStatus    string `json:"resident_status"`
	Education         string `json:"education"`
	Occupation        string `json:"occupation"`
	AnnualIncome      string `json:"annual_income"`
	MaritalStatus     string `json:"marital_status"`
	MinimumAge        string `json:"minimum_age"`
	MaximumAge        string `json:"maximum_age"`
	MinimumHeight     string `json:"minimum_height"`
	MaximumHeight     string `json:"maximum_height"`
	PhysicalStatus    string `json:"physical_status"`
	MotherTongue      string `json:"mother_tongue"`
	Religion          string `json:"religion"`
	StarSign          string `json:"star_sign"`
	Caste             string `json:"cast"`
	EatingHabit       string `json:"eating_habit"`
	SmokingHabit      string `json:"smoking_habit"`
	DrinkingHabit     string `json:"drinking_habit"`
}

// ProfileResponse never carries the password hash.
type ProfileResponse struct {
	Id        uuid.UUID `json:"id"`
	MemberId  string    `json:"member_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`

	DateOfBirth string `json:"d_o_b"`
	Age         int    `json:"age"`
	Gender      string `json:"gender"`
	ContactNo   string `json:"contact_no"`
	WhatsappNo  string `json:"whatsapp_no"`
	Address     string `json:"address"`
	BirthPlace  string `json:"birth_place"`
	BirthTime   string `json:"birth_time"`

	Height         float64 `json:"height"`
	Weight         string  `json:"weight"`
	Complexion     string  `json:"complexion"`
	MaritalStatus  string  `json:"maritial_status"`
	PhysicalStatus string  `json:"physical_status"`
	Religion       string  `json:"religion"`
	Caste          string  `json:"cast"`
	StarSign       string  `json:"star_sign"`
	Rasi           string  `json:"rasi"`

	CountryOfBirth       string `json:"country_of_birth"`
	CityOfBirth          string `json:"city_of_birth"`
	CountryOfResident    string `json:"country_of_resident"`
	CityOfResident       string `json:"city_of_resident"`
	CountryOfCitizenship string `json:"country_of_citizenship"`

	EatingHabit   string `json:"eating_habit"`
	SmokingHabit  string `json:"smoking_habit"`
	DrinkingHabit string `json:"drinking_habit"`

	PrimarySchool     string `json:"primary_school"`
	SecondarySchool   string `json:"secondary_school"`
	Education         string `json:"education"`
	EducationDetails  string `json:"education_details"`
	Occupation        string `json:"occupation"`
	OccupationDetails string `json:"occupation_details"`
	EmployedIn        string `json:"employed_in"`
	AnnualIncome      string `json:"annual_income"`

	FamilyValue        string `json:"family_value"`
	FamilyType         string `json:"family_type"`
	FamilyStatus       string `json:"family_status"`
	FathersName        string `json:"fathers_name"`
	FathersOccupation  string `json:"fathers_occupation"`
	FathersNativePlace string `json:"fathers_native_place"`
	MothersName        string `json:"mothers_name"`
	MothersOccupation  string `json:"mothers_occupation"`
	MothersNativePlace string `json:"mothers_native_place"`
	Brothers           string `json:"brothers"`
	MarriedBrothers    string `json:"married_brothers"`
	Sisters            string `json:"sisters"`
	MarriedSisters     string `json:"married_sisters"`
	MoreFamily         string `json:"more_family"`

	Preference PartnerPreferenceDTO `json:"partner_preference"`

	ProfileImg string `json:"profile_img"`
	Img1       string `json:"img_1"`
	Img2       string `json:"img_2"`
	ChartImg   string `json:"chart_img"`

	Status      string     `json:"status"`
	PackagePlan string     `json:"package_plan"`
	LastSeen    *time.Time `json:"last_seen,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// UpdateProfileRequest covers the full edit form. Every field is optional;
// empty strings are written as-is (the original form round-trips blanks).
type UpdateProfileRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email" validate:"omitempty,email"`
	DateOfBirth string `json:"d_o_b"`
	Gender      string `json:"gender"`
	ContactNo   string `json:"contact_no"`
	WhatsappNo  string `json:"whatsapp_no"`
	Address     string `json:"address"`
	BirthPlace  string `json:"birth_place"`
	BirthTime   string `json:"birth_time"`

	Height         float64 `json:"height"`
	Weight         string  `json:"weight"`
	Complexion     string  `json:"complexion"`
	MaritalStatus  string  `json:"maritial_status"`
	PhysicalStatus string  `json:"physical_status"`
	Religion       string  `json:"religion"`
	Caste          string  `json:"cast"`
	StarSign       string  `json:"star_sign"`
	Rasi           string  `json:"rasi"`

	CountryOfBirth       string `json:"country_of_birth"`
	CityOfBirth          string `json:"city_of_birth"`
	CountryOfResident    string `json:"country_of_resident"`
	CityOfResident       string `json:"city_of_resident"`
	CountryOfCitizenship string `json:"country_of_citizenship"`

	EatingHabit   string `json:"eating_habit"`
	SmokingHabit  string `json:"smoking_habit"`
	DrinkingHabit string `json:"drinking_habit"`

	PrimarySchool     string `json:"primary_school"`
	SecondarySchool   string `json:"secondary_school"`
	Education         string `json:"education"`
	EducationDetails  string `json:"education_details"`
	Occupation        string `json:"occupation"`
	OccupationDetails string `json:"occupation_details"`
	EmployedIn        string `json:"employed_in"`
	AnnualIncome      string `json:"annual_income"`

	FamilyValue        string `json:"family_value"`
	FamilyType         string `json:"family_type"`
	FamilyStatus       string `json:"family_status"`
	FathersName        string `json:"fathers_name"`
	FathersOccupation  string `json:"fathers_occupation"`
	FathersNativePlace string `json:"fathers_native_place"`
	MothersName        string `json:"mothers_name"`
	MothersOccupation  string `json:"mothers_occupation"`
	MothersNativePlace string `json:"mothers_native_place"`
	Brothers           string `json:"brothers"`
	MarriedBrothers    string `json:"married_brothers"`
	Sisters            string `json:"sisters"`
	MarriedSisters     string `json:"married_sisters"`
	MoreFamily         string `json:"more_family"`

	Preference PartnerPreferenceDTO `json:"partner_preference"`
}

// UpdateImagesRequest replaces image paths only. Column names are
// whitelisted server-side.
type UpdateImagesRequest struct {
	ProfileImg string `json:"profile_img"`
	Img1       string `json:"img_1"`
	Img2       string `json:"img_2"`
	ChartImg   string `json:"chart_img"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=single fixed"`
}
