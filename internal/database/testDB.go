package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "careerhub-backend/internal/model"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context) error

// Exported test plans, organizations and careers
var (
	// TestPlanSmall allows two active postings, used for quota tests.
	TestPlanSmall m.Plan

	// TestOrgGrowth has plenty of headroom on the Growth plan.
	TestOrgGrowth m.Organization
	// TestOrgFull sits exactly at its plan limit.
	TestOrgFull m.Organization

	TestCareer1        m.Career
	TestCareer2        m.Career
	TestCareerInactive m.Career
)

// Fixed 24-hex organization ids so handler tests can submit against them.
const (
	TestOrgGrowthID = "64a1f0b2c3d4e5f601234567"
	TestOrgFullID   = "64a1f0b2c3d4e5f601234568"
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	// Seed sample organizations and careers
	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts sample organizations and career postings if empty.
func seedTestData(db *DBinstanceStruct) error {
	var orgCount int64
	if err := db.Model(&m.Organization{}).Count(&orgCount).Error; err != nil {
		return err
	}
	if orgCount > 0 {
		return loadTestData(db)
	}

	TestPlanSmall = m.Plan{ID: "plan-small", Name: "Small", JobLimit: 2}
	if err := db.Create(&TestPlanSmall).Error; err != nil {
		return err
	}

	orgs := []m.Organization{
		{
			ID:     TestOrgGrowthID,
			Name:   "TechNova Recruiting",
			PlanID: "plan-growth",
		},
		{
			ID:     TestOrgFullID,
			Name:   "DataForge Talent",
			PlanID: TestPlanSmall.ID,
		},
	}
	if err := db.Create(&orgs).Error; err != nil {
		return err
	}
	TestOrgGrowth = orgs[0]
	TestOrgFull = orgs[1]

	now := time.Now()
	careers := []m.Career{
		{
			ID:          uuid.NewString(),
			OrgID:       TestOrgGrowthID,
			JobTitle:    "Backend Engineer",
			Description: "<p>Build and run Go services.</p>",
			Location:    "Manila",
			Province:    "Metro Manila",
			Country:     "Philippines",
			WorkSetup:   m.WorkSetupHybrid,

			EmploymentType:   m.EmploymentFullTime,
			Status:           m.StatusActive,
			ScreeningSetting: "Jia recommends",
			RequireVideo:     true,
			LastStep:         10,
			Questions:        []byte(`[]`),
			CreatedBy:        m.UserInfo{Name: "Recruiter One", Email: "recruiter1@technova.example"},
			CreatedAt:        now,
			UpdatedAt:        now,
			LastActivityAt:   now,
			PreScreeningQuestions: []m.PreScreeningQuestion{
				{
					ID:       uuid.NewString(),
					Position: 0,
					Question: "How many years of Go experience do you have?",
					Type:     m.QuestionShortAnswer,
					Required: true,
				},
			},
		},
		{
			ID:             uuid.NewString(),
			OrgID:          TestOrgGrowthID,
			JobTitle:       "Product Designer",
			Description:    "<p>Own the design system.</p>",
			Location:       "Cebu",
			Country:        "Philippines",
			WorkSetup:      m.WorkSetupRemote,
			Status:         m.StatusInactive,
			RequireVideo:   false,
			LastStep:       10,
			Questions:      []byte(`[]`),
			CreatedAt:      now,
			UpdatedAt:      now,
			LastActivityAt: now,
		},
	}
	// Fill TestOrgFull to its plan limit with active postings.
	for i := 0; i < TestPlanSmall.JobLimit; i++ {
		careers = append(careers, m.Career{
			ID:             uuid.NewString(),
			OrgID:          TestOrgFullID,
			JobTitle:       fmt.Sprintf("Data Analyst %d", i+1),
			Description:    "<p>Dashboards and reporting.</p>",
			Location:       "Taguig",
			WorkSetup:      m.WorkSetupOnsite,
			Status:         m.StatusActive,
			RequireVideo:   true,
			LastStep:       10,
			Questions:      []byte(`[]`),
			CreatedAt:      now,
			UpdatedAt:      now,
			LastActivityAt: now,
		})
	}

	if err := db.Create(&careers).Error; err != nil {
		return err
	}
	TestCareer1 = careers[0]
	TestCareerInactive = careers[1]
	TestCareer2 = careers[2]

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	if err := db.First(&TestPlanSmall, "id = ?", "plan-small").Error; err != nil {
		return err
	}
	if err := db.Preload("Plan").First(&TestOrgGrowth, "id = ?", TestOrgGrowthID).Error; err != nil {
		return err
	}
	if err := db.Preload("Plan").First(&TestOrgFull, "id = ?", TestOrgFullID).Error; err != nil {
		return err
	}

	var careers []m.Career
	if err := db.Where("org_id = ?", TestOrgGrowthID).Order("created_at ASC").Find(&careers).Error; err != nil {
		return err
	}
	for _, c := range careers {
		if c.Status == m.StatusActive {
			TestCareer1 = c
		} else {
			TestCareerInactive = c
		}
	}

	var fullCareers []m.Career
	if err := db.Where("org_id = ?", TestOrgFullID).Order("created_at ASC").Find(&fullCareers).Error; err != nil {
		return err
	}
	if len(fullCareers) > 0 {
		TestCareer2 = fullCareers[0]
	}

	return nil
}
