package database

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	"careerhub-backend/internal/model"
)

var testDB *DBinstanceStruct

func TestMain(m *testing.M) {
	var err error
	var midTeardown func(context.Context) error
	midTeardown, testDB, err = GetTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	m.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
}

func TestHealth(t *testing.T) {
	stats := testDB.Health()

	assert.Equal(t, "up", stats["status"])
	assert.NotContains(t, stats, "error")
	assert.Equal(t, "It's healthy", stats["message"])
}

func TestDefaultPlansSeeded(t *testing.T) {
	var plans []model.Plan
	assert.NoError(t, testDB.Find(&plans).Error)
	assert.GreaterOrEqual(t, len(plans), len(DefaultPlans))

	var growth model.Plan
	assert.NoError(t, testDB.First(&growth, "id = ?", "plan-growth").Error)
	assert.Equal(t, 10, growth.JobLimit)
}

func TestSeededQuotaFixture(t *testing.T) {
	var org model.Organization
	assert.NoError(t, testDB.Preload("Plan").First(&org, "id = ?", TestOrgFullID).Error)

	var active int64
	assert.NoError(t, testDB.Model(&model.Career{}).
		Where("org_id = ? AND status = ?", org.ID, model.StatusActive).
		Count(&active).Error)

	// the fixture org sits exactly at its plan limit
	assert.Equal(t, int64(org.JobSlots()), active)
}

func TestClose(t *testing.T) {
	db, err := NewDBInstance(testDB.Config)
	if err != nil {
		t.Fatalf("Database failed to initialize: %s", err)
	}

	assert.NoError(t, db.Close())
}
