package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PartnerPreference columns are flattened into the customers table with a
// partner_ prefix. The cast/maritial spellings follow the existing schema.
type PartnerPreference struct {
	CountryOfResident string `gorm:"column:country_of_resident;type:varchar(100)"`
	ResidentStatus    string `gorm:"column:resident_status;type:varchar(100)"`
	Education         string `gorm:"column:education;type:varchar(150)"`
	Occupation        string `gorm:"column:occupation;type:varchar(150)"`
	AnnualIncome      string `gorm:"column:annual_income;type:varchar(100)"`
	MaritalStatus     string `gorm:"column:marital_status;type:varchar(100)"`
	MinimumAge        string `gorm:"column:minimum_age;type:varchar(10)"`
	MaximumAge        string `gorm:"column:maximum_age;type:varchar(10)"`
	MinimumHeight     string `gorm:"column:minimum_height;type:varchar(10)"`
	MaximumHeight     string `gorm:"column:maximum_height;type:varchar(10)"`
	PhysicalStatus    string `gorm:"column:physical_status;type:varchar(100)"`
	MotherTongue      string `gorm:"column:mother_tongue;type:varchar(100)"`
	Religion          string `gorm:"column:religion;type:varchar(100)"`
	StarSign          string `gorm:"column:star_sign;type:varchar(100)"`
	Caste             string `gorm:"column:cast;type:varchar(100)"`
	EatingHabit       string `gorm:"column:eating_habit;type:varchar(100)"`
	SmokingHabit      string `gorm:"column:smoking_habit;type:varchar(100)"`
	DrinkingHabit     string `gorm:"column:drinking_habit;type:varchar(100)"`
}

type Customer struct {
	Id           uuid.UUID `gorm:"type:char(36);primaryKey"`
	MemberId     string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100)"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash *string   `gorm:"column:password;type:varchar(255)"`

	DateOfBirth datatypes.Date `gorm:"column:d_o_b"`
	Age         int            `gorm:"index"`
	Gender      string         `gorm:"type:varchar(20)"`
	ContactNo   string         `gorm:"type:varchar(30)"`
	WhatsappNo  string         `gorm:"type:varchar(30)"`
	Address     string         `gorm:"type:text"`
	BirthPlace  string         `gorm:"type:varchar(150)"`
	BirthTime   string         `gorm:"type:varchar(20)"`

	Height         float64 `gorm:"index"`
	Weight         string  `gorm:"type:varchar(20)"`
	Complexion     string  `gorm:"type:varchar(50)"`
	MaritalStatus  string  `gorm:"column:maritial_status;type:varchar(100)"`
	PhysicalStatus string  `gorm:"type:varchar(100)"`
	Religion       string  `gorm:"type:varchar(100);index"`
	Caste          string  `gorm:"column:cast;type:varchar(100);index"`
	StarSign       string  `gorm:"type:varchar(100)"`
	Rasi           string  `gorm:"type:varchar(100)"`

	CountryOfBirth       string `gorm:"type:varchar(100)"`
	CityOfBirth          string `gorm:"type:varchar(100)"`
	CountryOfResident    string `gorm:"type:varchar(100)"`
	CityOfResident       string `gorm:"type:varchar(100)"`
	CountryOfCitizenship string `gorm:"type:varchar(100)"`

	EatingHabit   string `gorm:"type:varchar(100)"`
	SmokingHabit  string `gorm:"type:varchar(100)"`
	DrinkingHabit string `gorm:"type:varchar(100)"`

	PrimarySchool     string `gorm:"type:varchar(150)"`
	SecondarySchool   string `gorm:"type:varchar(150)"`
	Education         string `gorm:"type:varchar(150)"`
	EducationDetails  string `gorm:"type:text"`
	Occupation        string `gorm:"type:varchar(150)"`
	OccupationDetails string `gorm:"type:text"`
	EmployedIn        string `gorm:"type:varchar(150)"`
	AnnualIncome      string `gorm:"type:varchar(100)"`

	FamilyValue        string `gorm:"type:varchar(100)"`
	FamilyType         string `gorm:"type:varchar(100)"`
	FamilyStatus       string `gorm:"type:varchar(100)"`
	FathersName        string `gorm:"type:varchar(150)"`
	FathersOccupation  string `gorm:"type:varchar(150)"`
	FathersNativePlace string `gorm:"type:varchar(150)"`
	MothersName        string `gorm:"type:varchar(150)"`
	MothersOccupation  string `gorm:"type:varchar(150)"`
	MothersNativePlace string `gorm:"type:varchar(150)"`
	Brothers           string `gorm:"type:varchar(10)"`
	MarriedBrothers    string `gorm:"type:varchar(10)"`
	Sisters            string `gorm:"type:varchar(10)"`
	MarriedSisters     string `gorm:"type:varchar(10)"`
	MoreFamily         string `gorm:"type:text"`

	Preference PartnerPreference `gorm:"embedded;embeddedPrefix:partner_"`

	ProfileImg string `gorm:"type:varchar(255)"`
	Img1       string `gorm:"column:img_1;type:varchar(255)"`
	Img2       string `gorm:"column:img_2;type:varchar(255)"`
	ChartImg   string `gorm:"type:varchar(255)"`

	Status      string     `gorm:"type:varchar(20);not null;default:'single'"`
	PackagePlan string     `gorm:"type:varchar(50)"`
	LastSeen    *time.Time `gorm:"column:last_seen"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

func (Customer) TableName() string {
	return "customers"
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.Id == uuid.Nil {
		c.Id = uuid.New()
	}
	return nil
}
