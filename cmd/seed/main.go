package main

import (
	"fmt"
	"log"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/gorm"

	"carpool_api/internal/config"
	"carpool_api/internal/logger"
	"carpool_api/internal/models"
)

// Development seeder: wipes every table and refills it with randomized
// rows. SEED_COUNT controls how many of each entity are created.
func main() {
	logger.Setup()
	config.InitDB()
	db := config.GetDB()
	n := config.GetEnvInt("SEED_COUNT", 10)

	wipe(db)

	admin := models.Admin{Username: "admin"}
	if err := admin.SetPassword("AdminPassword1234!"); err != nil {
		log.Fatalf("admin password: %v", err)
	}
	mustCreate(db, &admin)

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		user := models.User{
			Username:    fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:       fmt.Sprintf("%d.%s", i, gofakeit.Email()),
			PhoneNumber: gofakeit.Phone(),
			IsDriver:    gofakeit.Bool(),
		}
		if err := user.SetPassword(gofakeit.Password(true, true, true, true, false, 12)); err != nil {
			log.Fatalf("user password: %v", err)
		}
		mustCreate(db, &user)
		users = append(users, user)
	}

	vehicles := make([]models.Vehicle, 0, n)
	for i := 0; i < n; i++ {
		vehicle := models.Vehicle{
			Make:            gofakeit.CarMaker(),
			Model:           gofakeit.CarModel(),
			Year:            gofakeit.Number(1998, 2025),
			Color:           gofakeit.Color(),
			PlateNumber:     gofakeit.Lexify("K??") + " " + gofakeit.Numerify("###") + gofakeit.Lexify("?"),
			SeatingCapacity: gofakeit.Number(4, 8),
			Sacco:           gofakeit.Company(),
			UserID:          pickUser(users),
		}
		mustCreate(db, &vehicle)
		vehicles = append(vehicles, vehicle)
	}

	rides := make([]models.Ride, 0, n)
	for i := 0; i < n; i++ {
		ride := models.Ride{
			PickupLocation:  gofakeit.Address().Address,
			DropoffLocation: gofakeit.Address().Address,
			PickupTime:      gofakeit.FutureDate(),
			DropoffTime:     gofakeit.FutureDate(),
			Distance:        float64(gofakeit.Number(1, 100)),
			EstimatedCost:   gofakeit.Number(10, 50),
			RideStatus:      gofakeit.RandomString(models.RideStatuses),
			RideType:        gofakeit.RandomString([]string{"regular", "premium"}),
			DriverID:        pickUser(users),
		}
		mustCreate(db, &ride)
		rides = append(rides, ride)
	}

	bookings := make([]models.Booking, 0, n)
	for i := 0; i < n; i++ {
		booking := models.Booking{
			TotalCost:     gofakeit.Number(10, 50),
			BookingStatus: gofakeit.RandomString(models.BookingStatuses),
			PaymentStatus: gofakeit.RandomString(models.PaymentStatuses),
			UserID:        pickUser(users),
			RideID:        rides[gofakeit.Number(0, len(rides)-1)].ID,
		}
		mustCreate(db, &booking)
		bookings = append(bookings, booking)
	}

	for i := 0; i < n; i++ {
		payment := models.Payment{
			Amount:        gofakeit.Number(10, 50),
			PaymentMethod: gofakeit.RandomString([]string{"cash", "card", "online"}),
			PaymentStatus: gofakeit.RandomString(models.PaymentStatuses),
			UserID:        pickUser(users),
			BookingID:     bookings[gofakeit.Number(0, len(bookings)-1)].ID,
		}
		mustCreate(db, &payment)
	}

	for i := 0; i < n; i++ {
		booking := bookings[gofakeit.Number(0, len(bookings)-1)]
		review := models.Review{
			Rating:    gofakeit.Number(1, 5),
			Comment:   gofakeit.Sentence(8),
			UserID:    pickUser(users),
			BookingID: booking.ID,
			RideID:    booking.RideID,
		}
		mustCreate(db, &review)
	}

	log.Printf("seeded %d of each entity plus 1 admin", n)
}

// wipe clears children before parents so nothing dangles mid-run.
func wipe(db *gorm.DB) {
	targets := []interface{}{
		&models.Review{},
		&models.Payment{},
		&models.Booking{},
		&models.Ride{},
		&models.Vehicle{},
		&models.User{},
		&models.Admin{},
	}
	for _, target := range targets {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(target).Error; err != nil {
			log.Fatalf("wipe failed: %v", err)
		}
	}
}

func mustCreate(db *gorm.DB, value interface{}) {
	if err := db.Create(value).Error; err != nil {
		log.Fatalf("seed insert failed: %v", err)
	}
}

func pickUser(users []models.User) uint {
	return users[gofakeit.Number(0, len(users)-1)].ID
}
