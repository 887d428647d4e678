package main

import (
	"log"
	"os"
	"time"

	"staybook/internal/database"
	"staybook/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "staybook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Host{},
		&domain.Amenity{},
		&domain.Property{},
		&domain.Booking{},
		&domain.Review{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data in FK-safe order.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM property_amenities")
	db.Exec("DELETE FROM properties")
	db.Exec("DELETE FROM hosts")
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM amenities")

	// ================== AMENITIES ==================
	log.Println("Creating amenities...")
	amenityNames := []string{"Wifi", "Kitchen", "Washer", "Free parking", "Air conditioning", "Pool"}
	amenities := make([]domain.Amenity, 0, len(amenityNames))
	for _, name := range amenityNames {
		a := domain.Amenity{Name: name}
		db.Create(&a)
		amenities = append(amenities, a)
	}

	// ================== HOSTS ==================
	log.Println("Creating hosts...")
	hostHash := mustHash("hostpass123")
	hosts := []domain.Host{
		{
			Username:    "johnhost",
			Password:    hostHash,
			Name:        "John Doe",
			Email:       "john@staybook.dev",
			PhoneNumber: "+31612345678",
			AboutMe:     "Renting out sea-view apartments since 2015.",
		},
		{
			Username:    "annahost",
			Password:    hostHash,
			Name:        "Anna Smith",
			Email:       "anna@staybook.dev",
			PhoneNumber: "+31687654321",
			AboutMe:     "City apartments in the heart of Amsterdam.",
		},
	}
	for i := range hosts {
		db.Create(&hosts[i])
	}

	// ================== USERS ==================
	log.Println("Creating users...")
	userHash := mustHash("password123")
	users := []domain.User{
		{
			Username:       "jdoe",
			Password:       userHash,
			Name:           "Jane Doe",
			Email:          "jane@example.com",
			PhoneNumber:    "+31611111111",
			ProfilePicture: "https://example.com/jane.jpg",
			PictureURL:     "https://example.com/jane.jpg",
		},
		{
			Username:       "bwayne",
			Password:       userHash,
			Name:           "Bruce Wayne",
			Email:          "bruce@example.com",
			PhoneNumber:    "+31622222222",
			ProfilePicture: "https://example.com/bruce.jpg",
			PictureURL:     "https://example.com/bruce.jpg",
		},
	}
	for i := range users {
		db.Create(&users[i])
	}

	// ================== PROPERTIES ==================
	log.Println("Creating properties...")
	properties := []domain.Property{
		{
			HostID:        hosts[0].ID,
			Title:         "Sea-view apartment in Scheveningen",
			Description:   "Two-bedroom apartment a short walk from the beach.",
			Location:      "The Hague",
			PricePerNight: 120,
			BedroomCount:  2,
			BathRoomCount: 1,
			MaxGuestCount: 4,
			Rating:        4.7,
			Amenities:     []domain.Amenity{amenities[0], amenities[1], amenities[4]},
		},
		{
			HostID:        hosts[1].ID,
			Title:         "Canal house studio",
			Description:   "Cozy studio overlooking the Prinsengracht.",
			Location:      "Amsterdam",
			PricePerNight: 95,
			BedroomCount:  1,
			BathRoomCount: 1,
			MaxGuestCount: 2,
			Rating:        4.9,
			Amenities:     []domain.Amenity{amenities[0], amenities[2]},
		},
	}
	for i := range properties {
		db.Create(&properties[i])
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")
	checkin := time.Now().AddDate(0, 0, 14).Truncate(24 * time.Hour)
	booking := domain.Booking{
		UserID:         users[0].ID,
		PropertyID:     properties[0].ID,
		CheckinDate:    checkin,
		CheckoutDate:   checkin.AddDate(0, 0, 3),
		NumberOfGuests: 2,
		TotalPrice:     360,
		BookingStatus:  domain.BookingConfirmed,
	}
	db.Create(&booking)

	// ================== REVIEWS ==================
	log.Println("Creating reviews...")
	review := domain.Review{
		UserID:     users[1].ID,
		PropertyID: properties[1].ID,
		Rating:     5,
		Comment:    "Great location, spotless apartment.",
	}
	db.Create(&review)

	log.Println("Seeding complete")
	log.Println("  user:  jane@example.com / password123")
	log.Println("  user:  bruce@example.com / password123")
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("bcrypt failed:", err)
	}
	return string(hash)
}
