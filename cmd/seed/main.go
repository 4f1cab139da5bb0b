package main

import (
	"log"
	"os"

	"leprive/internal/database"
	"leprive/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "leprive.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.Companion{},
		&domain.Booking{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM companions")

	log.Println("Creating companions...")

	companions := []domain.Companion{
		{
			ID:           1,
			Name:         "Isabella",
			Age:          25,
			Location:     "São Paulo",
			Rating:       4.9,
			Reviews:      47,
			Price:        "R$ 800/h",
			Tags:         []string{"VIP", "Bilingual", "Outcall", "Dinner", "Travel", "Events"},
			Availability: domain.AvailabilityAvailable,
			Description:  "Sophisticated and elegant companion for exclusive events. I specialize in providing premium companionship for discerning gentlemen who appreciate intelligence, beauty, and discretion.",
			About:        "With a background in international relations and fluency in three languages, I bring sophistication and cultural awareness to every encounter. Whether you need a companion for a business dinner, social event, or private evening, I ensure every moment is memorable and tailored to your preferences.",
			Languages:    []string{"Portuguese", "English", "Spanish"},
			Services:     []string{"Dinner Companion", "Event Partner", "Travel Companion", "Business Events"},
			Photos: []string{
				"/photos/isabella-1.jpeg",
				"/photos/isabella-2.jpeg",
				"/photos/isabella-3.jpeg",
				"/photos/isabella-4.jpeg",
				"/photos/isabella-5.jpeg",
				"/photos/isabella-6.jpeg",
			},
			AvailableDates: []domain.AvailableDate{
				{Date: "2025-06-10", Time: "19:00"},
				{Date: "2025-06-12", Time: "20:00"},
				{Date: "2025-06-15", Time: "18:30"},
				{Date: "2025-06-18", Time: "19:30"},
				{Date: "2025-06-20", Time: "20:30"},
				{Date: "2025-06-22", Time: "19:00"},
			},
			Contact: &domain.Contact{
				Phone:    "+55 11 99999-9999",
				WhatsApp: "+55 11 99999-9999",
				Telegram: "@isabella_leprive",
			},
		},
		{
			ID:           2,
			Name:         "Valentina",
			Age:          27,
			Location:     "Rio de Janeiro",
			Rating:       4.8,
			Reviews:      32,
			Price:        "R$ 650/h",
			Tags:         []string{"Bilingual", "Dinner", "Events"},
			Availability: domain.AvailabilityAvailable,
			Description:  "Charming companion with a passion for fine dining and cultural events.",
			Languages:    []string{"Portuguese", "English"},
			Services:     []string{"Dinner Companion", "Event Partner"},
		},
		{
			ID:           3,
			Name:         "Sofia",
			Age:          24,
			Location:     "São Paulo",
			Rating:       4.7,
			Reviews:      28,
			Price:        "R$ 600/h",
			Tags:         []string{"Travel", "Outcall"},
			Availability: domain.AvailabilityUnavailable,
			Description:  "Well-travelled companion for trips and getaways.",
			Languages:    []string{"Portuguese", "Spanish"},
			Services:     []string{"Travel Companion"},
		},
		{
			ID:           4,
			Name:         "Camila",
			Age:          26,
			Location:     "Brasília",
			Rating:       4.9,
			Reviews:      41,
			Price:        "R$ 700/h",
			Tags:         []string{"VIP", "Business"},
			Availability: domain.AvailabilityAvailable,
			Description:  "Poised companion for business events and conferences.",
			Languages:    []string{"Portuguese", "English"},
			Services:     []string{"Business Events", "Event Partner"},
		},
	}

	for i := range companions {
		if err := db.Create(&companions[i]).Error; err != nil {
			log.Fatal("seed companion failed:", err)
		}
	}

	log.Printf("Seeded %d companions", len(companions))
}
