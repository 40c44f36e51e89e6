package main

import (
	"log"
	"os"
	"time"

	"viwahaa-be/internal/model"
	"viwahaa-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding admin user...")
	seedAdmin(db)

	color.Cyan("Seeding sample profiles...")
	seedProfiles(db)

	color.Green("Seeding completed.")
}

func seedAdmin(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@viwahaa.com"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "Admin@123"
	}

	var count int64
	db.Model(&model.AdminUser{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		color.Yellow("  Skipped: admin %s already exists", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: Failed to hash admin password: %v", err)
	}

	admin := model.AdminUser{
		Name:         "Site Administrator",
		Email:        email,
		PasswordHash: string(hash),
		UserTypeId:   1,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Error: Failed to create admin user: %v", err)
	}
	color.Green("  Created admin %s", email)
}

func seedProfiles(db *gorm.DB) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Seed@123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: Failed to hash sample password: %v", err)
	}
	password := string(hash)

	samples := []model.Customer{
		{
			MemberId:          "SM-0001",
			FirstName:         "Arun",
			LastName:          "Sivakumar",
			Email:             "arun.sivakumar@example.com",
			PasswordHash:      &password,
			DateOfBirth:       datatypes.Date(time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC)),
			Age:               31,
			Gender:            "Male",
			ContactNo:         "+94771234501",
			Height:            175,
			MaritalStatus:     "Never Married",
			PhysicalStatus:    "Normal",
			Religion:          "Hindu",
			Caste:             "Vellalar",
			StarSign:          "Bharani",
			CountryOfResident: "Sri Lanka",
			CityOfResident:    "Jaffna",
			Education:         "Bachelors",
			Occupation:        "Software Engineer",
			AnnualIncome:      "Above 1,000,000",
			EatingHabit:       "Vegetarian",
			SmokingHabit:      "Never",
			DrinkingHabit:     "Never",
			Status:            "single",
			Preference: model.PartnerPreference{
				Religion:      "Hindu",
				Caste:         "Vellalar",
				MinimumAge:    "25",
				MaximumAge:    "31",
				MaritalStatus: "Never Married",
			},
		},
		{
			MemberId:          "SM-0002",
			FirstName:         "Nithya",
			LastName:          "Raveendran",
			Email:             "nithya.raveendran@example.com",
			PasswordHash:      &password,
			DateOfBirth:       datatypes.Date(time.Date(1998, 9, 3, 0, 0, 0, 0, time.UTC)),
			Age:               27,
			Gender:            "Female",
			ContactNo:         "+94771234502",
			Height:            160,
			MaritalStatus:     "Never Married",
			PhysicalStatus:    "Normal",
			Religion:          "Hindu",
			Caste:             "Vellalar",
			StarSign:          "Thiruvathirai",
			CountryOfResident: "Canada",
			CityOfResident:    "Toronto",
			Education:         "Masters",
			Occupation:        "Accountant",
			AnnualIncome:      "Above 1,000,000",
			EatingHabit:       "Vegetarian",
			SmokingHabit:      "Never",
			DrinkingHabit:     "Never",
			Status:            "single",
			Preference: model.PartnerPreference{
				Religion:   "Hindu",
				Caste:      "Any",
				MinimumAge: "27",
				MaximumAge: "35",
			},
		},
		{
			MemberId:       "SM-0003",
			FirstName:      "Kavitha",
			LastName:       "Selvarajah",
			Email:          "kavitha.selvarajah@example.com",
			PasswordHash:   &password,
			DateOfBirth:    datatypes.Date(time.Date(1996, 1, 22, 0, 0, 0, 0, time.UTC)),
			Age:            30,
			Gender:         "Female",
			ContactNo:      "+94771234503",
			Height:         158,
			MaritalStatus:  "Never Married",
			PhysicalStatus: "Normal",
			Religion:       "Hindu",
			Caste:          "Karaiyar",
			StarSign:       "Rohini",
			Education:      "Bachelors",
			Occupation:     "Teacher",
			EatingHabit:    "Non-Vegetarian",
			SmokingHabit:   "Never",
			DrinkingHabit:  "Never",
			Status:         "single",
			Preference: model.PartnerPreference{
				Religion: "Hindu",
				Caste:    "Karaiyar",
			},
		},
	}

	for _, c := range samples {
		var count int64
		db.Model(&model.Customer{}).Where("email = ?", c.Email).Count(&count)
		if count > 0 {
			color.Yellow("  Skipped: profile %s already exists", c.Email)
			continue
		}
		if err := db.Create(&c).Error; err != nil {
			log.Fatalf("Error: Failed to create profile %s: %v", c.Email, err)
		}
		color.Green("  Created profile %s (%s)", c.Email, c.MemberId)
	}
}
