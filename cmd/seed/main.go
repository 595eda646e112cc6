package main

import (
	"fmt"
	"log"
	"time"

	"venuebook/internal/database"
	"venuebook/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("venuebook.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM venue_images")
	db.Exec("DELETE FROM venues")
	db.Exec("DELETE FROM subscriptions")
	db.Exec("DELETE FROM venue_owners")
	db.Exec("DELETE FROM otp_codes")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Name:         "Administrator",
		Email:        "admin@venuebook.kz",
		Phone:        "0550000000",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Verified:     true,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@venuebook.kz / admin123")

	customers := []domain.User{}
	customerEmails := []string{"asel@mail.kz", "bekzat@gmail.com", "dina@yandex.kz"}
	for i, email := range customerEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
		c := domain.User{
			Name:         fmt.Sprintf("Customer %d", i+1),
			Email:        email,
			Phone:        fmt.Sprintf("05512345%02d", i+67),
			PasswordHash: string(hash),
			Role:         domain.RoleCustomer,
			Verified:     true,
		}
		db.Create(&c)
		customers = append(customers, c)
	}

	// ================== OWNERS ==================
	log.Println("Creating venue owners...")

	ownerEmails := []string{"aidar@grandhall.kz", "gulnaz@chalets.kz", "yerlan@luxcars.kz"}
	ownerNames := []string{"Grand Hall Events", "Mountain Chalets", "Lux Car Rentals"}
	owners := []domain.VenueOwner{}
	for i, email := range ownerEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
		u := domain.User{
			Name:         fmt.Sprintf("Owner %d", i+1),
			Email:        email,
			Phone:        fmt.Sprintf("05587654%02d", i+10),
			PasswordHash: string(hash),
			Role:         domain.RoleVenueOwner,
			Verified:     true,
		}
		db.Create(&u)

		o := domain.VenueOwner{
			UserID:          u.ID,
			BusinessName:    ownerNames[i],
			BusinessLicense: fmt.Sprintf("LIC-2026-%04d", i+1),
			Verified:        true,
		}
		db.Create(&o)
		owners = append(owners, o)
	}

	// ================== VENUES ==================
	log.Println("Creating venues...")

	venues := []domain.Venue{
		{
			OwnerID:       owners[0].ID,
			Name:          "Grand Ballroom",
			Type:          domain.VenueHall,
			Location:      "Bishkek",
			Description:   "Banquet hall for weddings and corporate events, seats 300.",
			PricePerNight: 450,
			Amenities:     "parking,catering,sound system,stage",
			Status:        domain.VenueApproved,
		},
		{
			OwnerID:       owners[1].ID,
			Name:          "Alpine Chalet",
			Type:          domain.VenueChalet,
			Location:      "Karakol",
			Description:   "Wooden chalet with mountain views, sleeps 8.",
			PricePerNight: 220,
			Amenities:     "sauna,fireplace,wifi,parking",
			Status:        domain.VenueApproved,
		},
		{
			OwnerID:       owners[2].ID,
			Name:          "Mercedes S-Class",
			Type:          domain.VenueCar,
			Location:      "Bishkek",
			Description:   "Executive sedan with driver for weddings.",
			PricePerNight: 150,
			Amenities:     "driver,decoration",
			Status:        domain.VenuePending,
		},
	}
	for i := range venues {
		db.Create(&venues[i])
		db.Create(&domain.VenueImage{
			VenueID:   venues[i].ID,
			URL:       fmt.Sprintf("https://cdn.venuebook.kz/venues/%d/main.jpg", venues[i].ID),
			IsPrimary: true,
		})
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	checkIn := time.Now().AddDate(0, 0, 14).Truncate(24 * time.Hour)
	booking := domain.Booking{
		VenueID:       venues[0].ID,
		UserID:        customers[0].ID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkIn.AddDate(0, 0, 2),
		TotalPrice:    900,
		Status:        domain.BookingConfirmed,
		PaymentStatus: domain.PaymentPaid,
	}
	db.Create(&booking)

	db.Create(&domain.Review{
		BookingID: booking.ID,
		UserID:    customers[0].ID,
		VenueID:   venues[0].ID,
		Rating:    5,
		Comment:   "Great hall, the staff handled everything.",
	})

	db.Create(&domain.Favorite{UserID: customers[1].ID, VenueID: venues[1].ID})

	log.Println("Seed completed.")
}
