package database

import (
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/sahilchouksey/study-abroad-api/model"
	"github.com/sahilchouksey/study-abroad-api/utils/auth"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("🌱 Starting database seeding...")

	if err := s.SeedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := s.SeedCourses(); err != nil {
		return fmt.Errorf("failed to seed courses: %w", err)
	}

	if err := s.SeedScholarships(); err != nil {
		return fmt.Errorf("failed to seed scholarships: %w", err)
	}

	log.Println("✅ Database seeding completed successfully!")
	return nil
}

// SeedAdminUser creates the default admin user
func (s *Seeder) SeedAdminUser() error {
	var count int64
	s.db.Model(&model.User{}).Where("role = ?", "admin").Count(&count)
	if count > 0 {
		log.Println("Admin user already exists, skipping")
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme-admin"
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := model.User{
		Email:        "admin@studyabroad.local",
		PasswordHash: hash,
		Name:         "Administrator",
		Role:         "admin",
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Created default admin user")
	return nil
}

func strPtr(s string) *string   { return &s }
func intPtr(i int) *int         { return &i }
func f64Ptr(f float64) *float64 { return &f }

// SeedCourses loads a small starter catalog so a fresh install has something
// to browse. Agency imports replace this in practice.
func (s *Seeder) SeedCourses() error {
	var count int64
	s.db.Model(&model.Course{}).Count(&count)
	if count > 0 {
		log.Println("Courses already seeded, skipping")
		return nil
	}

	courses := []model.Course{
		{
			InstitutionName: strPtr("Technical University of Munich"),
			Ranking:         intPtr(37),
			ProgramName:     strPtr("Computer Science"),
			Country:         strPtr("Germany"),
			StudyLevel:      strPtr(model.StudyLevelPostgraduate),
			Duration:        strPtr("2 years"),
			OpenIntakes:     strPtr("Springjan, Fallsep"),
			IELTSScore:      f64Ptr(6.5),
		},
		{
			InstitutionName:   strPtr("University of Toronto"),
			Ranking:           intPtr(21),
			ProgramName:       strPtr("Data Science"),
			Concentration:     strPtr("Machine Learning"),
			Country:           strPtr("Canada"),
			StudyLevel:        strPtr(model.StudyLevelPostgraduate),
			Duration:          strPtr("16 months"),
			OpenIntakes:       strPtr("Fallsep"),
			YearlyTuitionFees: f64Ptr(58000),
		},
		{
			InstitutionName: strPtr("University of Melbourne"),
			ProgramName:     strPtr("Business Administration"),
			Country:         strPtr("Australia"),
			StudyLevel:      strPtr(model.StudyLevelUndergraduate),
			Duration:        strPtr("3 years"),
			OpenIntakes:     strPtr("Springfeb, Falljul"),
		},
	}

	if err := s.db.Create(&courses).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d courses", len(courses))
	return nil
}

// SeedScholarships loads a small starter scholarship catalog.
func (s *Seeder) SeedScholarships() error {
	var count int64
	s.db.Model(&model.Scholarship{}).Count(&count)
	if count > 0 {
		log.Println("Scholarships already seeded, skipping")
		return nil
	}

	scholarships := []model.Scholarship{
		{
			CountryRegion: strPtr("Germany"),
			Name:          strPtr("DAAD Study Scholarship"),
			Provider:      strPtr("DAAD"),
			DegreeLevel:   strPtr("Masters and postgraduate programmes"),
			Deadline:      strPtr("2026-10-15"),
		},
		{
			CountryRegion: strPtr(model.CountryRegionAll),
			Name:          strPtr("Global Leaders Grant"),
			Provider:      strPtr("Global Education Fund"),
			DegreeLevel:   strPtr("Open to both undergraduate and postgraduate students"),
			Deadline:      strPtr("rolling"),
		},
		{
			CountryRegion: strPtr("Canada"),
			Name:          strPtr("Vanier Canada Graduate Scholarship"),
			Provider:      strPtr("Government of Canada"),
			DegreeLevel:   strPtr("PhD"),
			Deadline:      strPtr("2026-11-01"),
		},
	}

	if err := s.db.Create(&scholarships).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d scholarships", len(scholarships))
	return nil
}
