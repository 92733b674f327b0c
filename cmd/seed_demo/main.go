package main

import (
	"fmt"
	"log"

	"github.com/debagworks/debagmetrics/internal/config"
	"github.com/debagworks/debagmetrics/internal/database"
	"github.com/debagworks/debagmetrics/internal/models"
)

func strPtr(s string) *string { return &s }

func main() {
	fmt.Println("DeBag demo data seeder")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Person{}, &models.Observation{}, &models.AuditLog{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	var count int64
	db.Model(&models.Person{}).Count(&count)
	if count > 0 {
		fmt.Printf("Seed skipped: %d people already exist.\n", count)
		return
	}

	people := []models.Person{
		{Name: strPtr("Alex Carter"), EmployeeCode: strPtr("DB001"), Active: true},
		{Name: strPtr("Jordan Lee"), EmployeeCode: strPtr("DB002"), Active: true},
		{Name: strPtr("Taylor Reed"), EmployeeCode: strPtr("DB003"), Active: true},
	}
	if err := db.Create(&people).Error; err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	fmt.Printf("Seeded %d people.\n", len(people))
}
