package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"

	"reinvent/config"
	"reinvent/database"
	"reinvent/models"
)

// Seeds the program catalog from a CSV with columns:
// name,short_name,description,duration_days,price,program_type,max_participants
func main() {
	config.LoadConfig()
	database.ConnectDb()

	path := "programs.csv"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	db := database.Database.Db
	imported := 0

	// Skip header row
	for i, record := range records[1:] {
		if len(record) < 7 {
			log.Printf("Skipping row %d: expected 7 columns, got %d", i+2, len(record))
			continue
		}

		durationDays, err := strconv.Atoi(record[3])
		if err != nil {
			log.Printf("Skipping row %d: bad duration_days %q", i+2, record[3])
			continue
		}
		price, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			log.Printf("Skipping row %d: bad price %q", i+2, record[4])
			continue
		}
		maxParticipants, err := strconv.Atoi(record[6])
		if err != nil || maxParticipants < 1 {
			log.Printf("Skipping row %d: bad max_participants %q", i+2, record[6])
			continue
		}

		// Idempotent on short_name: re-running the import updates in place
		var existing models.Program
		if err := db.Where("short_name = ?", record[1]).First(&existing).Error; err == nil {
			db.Model(&existing).Updates(map[string]interface{}{
				"name":             record[0],
				"description":      record[2],
				"duration_days":    durationDays,
				"price":            price,
				"program_type":     record[5],
				"max_participants": maxParticipants,
			})
			imported++
			continue
		}

		program := models.Program{
			Name:            record[0],
			ShortName:       record[1],
			Description:     record[2],
			DurationDays:    durationDays,
			Price:           price,
			ProgramType:     record[5],
			MaxParticipants: maxParticipants,
			IsActive:        true,
		}
		if err := db.Create(&program).Error; err != nil {
			log.Printf("Failed to import row %d: %v", i+2, err)
			continue
		}
		imported++
	}

	log.Printf("Imported %d programs from %s", imported, path)
}
