// Command-line tool to create or refresh the default plan catalog.
package main

import (
	"fmt"
	"log"

	"gorm.io/gorm/clause"

	"careerhub-backend/internal/database"
	"careerhub-backend/internal/model"
)

func main() {

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}

	// Upsert so job limit changes take effect on existing rows too.
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "job_limit"}),
	}).Create(&database.DefaultPlans).Error; err != nil {
		log.Fatalf("failed to seed plans: %v", err)
	}

	var plans []model.Plan
	if err := db.Order("job_limit ASC").Find(&plans).Error; err != nil {
		log.Fatalf("failed to list plans: %v", err)
	}

	fmt.Println("Plan catalog:")
	for _, p := range plans {
		fmt.Printf("  %-16s %-12s job limit %d\n", p.ID, p.Name, p.JobLimit)
	}
}
