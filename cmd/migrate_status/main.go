package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"deals4property_echo/internal/models"
	"deals4property_echo/internal/services"
)

// Back-fills the status column on rows created before the approval workflow
// existed. Rows with an empty status become "Pending Approval" so they show
// up in the admin queue instead of silently never rendering anywhere.
func main() {
	dryRun := flag.Bool("dry_run", false, "Report what would change without writing")
	flag.Parse()

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	// Init DB
	db, err := services.InitDB(dsn)
	if err != nil {
		log.Fatalf("Failed to connect DB: %v", err)
	}

	tables := []struct {
		name  string
		model interface{}
	}{
		{"resale_properties", &models.ResaleProperty{}},
		{"rental_properties", &models.RentalProperty{}},
	}

	for _, table := range tables {
		query := db.Model(table.model).Where("status IS NULL OR status = ''")

		if *dryRun {
			var count int64
			if err := query.Count(&count).Error; err != nil {
				log.Fatalf("Failed to count %s: %v", table.name, err)
			}
			fmt.Printf("%s: %d rows would be set to %q\n", table.name, count, models.StatusPendingApproval)
			continue
		}

		result := query.Updates(map[string]interface{}{
			"status":      models.StatusPendingApproval,
			"is_approved": false,
		})
		if result.Error != nil {
			log.Fatalf("Failed to update %s: %v", table.name, result.Error)
		}
		fmt.Printf("%s: %d rows set to %q\n", table.name, result.RowsAffected, models.StatusPendingApproval)
	}
}
