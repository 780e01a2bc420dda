package main

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mabar/internal/config"
	"mabar/internal/db"
	"mabar/internal/model"
	"mabar/internal/repository"
)

const seedPassword = "password123"

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.OtpCode{},
		&model.Venue{},
		&model.Field{},
		&model.Booking{},
		&model.UserHasBooking{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	venueRepo := repository.NewVenueRepository(gormDB)
	fieldRepo := repository.NewFieldRepository(gormDB)

	owner, err := seedUser(ctx, userRepo, "Demo Owner", "owner@mabar.local", model.RoleOwner)
	if err != nil {
		log.Fatalf("Failed to seed owner: %v", err)
	}

	if _, err := seedUser(ctx, userRepo, "Demo Player", "player@mabar.local", model.RoleUser); err != nil {
		log.Fatalf("Failed to seed player: %v", err)
	}

	venue, err := seedVenue(ctx, venueRepo, owner)
	if err != nil {
		log.Fatalf("Failed to seed venue: %v", err)
	}

	created, err := seedFields(ctx, fieldRepo, venue)
	if err != nil {
		log.Fatalf("Failed to seed fields: %v", err)
	}

	log.Println("Seed completed successfully!")
	log.Printf("  - Owner: owner@mabar.local / %s", seedPassword)
	log.Printf("  - Player: player@mabar.local / %s", seedPassword)
	log.Printf("  - Venue %q with %d fields", venue.Name, created)
}

// seedUser creates a pre-verified user unless the email is already taken.
func seedUser(ctx context.Context, repo repository.UserRepository, name, email, role string) (*model.User, error) {
	existing, err := repo.FindByEmail(ctx, email)
	if err == nil {
		log.Printf("User %s already exists, skipping", email)
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user %s: %w", email, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
		IsVerified:   true,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user %s: %w", email, err)
	}
	return user, nil
}

func seedVenue(ctx context.Context, repo repository.VenueRepository, owner *model.User) (*model.Venue, error) {
	venues, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	for i := range venues {
		if venues[i].UserID == owner.ID {
			log.Printf("Venue %q already exists, skipping", venues[i].Name)
			return &venues[i], nil
		}
	}

	venue := &model.Venue{
		Name:    "GOR Mabar",
		Phone:   "+628123456789",
		Address: "Jl. Kenanga No. 1",
		UserID:  owner.ID,
	}
	if err := repo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}
	return venue, nil
}

func seedFields(ctx context.Context, repo repository.FieldRepository, venue *model.Venue) (int, error) {
	existing, err := repo.ListByVenue(ctx, venue.ID)
	if err != nil {
		return 0, fmt.Errorf("list fields: %w", err)
	}
	if len(existing) > 0 {
		log.Printf("Venue already has %d fields, skipping", len(existing))
		return len(existing), nil
	}

	fields := []model.Field{
		{Name: "Lapangan A", Type: model.FieldTypeFutsal, VenueID: venue.ID},
		{Name: "Lapangan B", Type: model.FieldTypeBasketball, VenueID: venue.ID},
	}
	for i := range fields {
		if err := repo.Create(ctx, &fields[i]); err != nil {
			return i, fmt.Errorf("create field %q: %w", fields[i].Name, err)
		}
	}
	return len(fields), nil
}
