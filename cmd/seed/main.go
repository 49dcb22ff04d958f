package main

import (
	"context"
	"log"

	"contacthub/internal/auth"
	"contacthub/internal/config"
	"contacthub/internal/db"
	"contacthub/internal/model"
	"contacthub/internal/repository"
)

// Seeds a demo account with a few contacts for local development.
func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Contact{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)
	hasher := auth.NewBcryptHasher()

	if _, err := userRepo.FindByUsername(ctx, "demo"); err == nil {
		log.Println("demo user already exists, nothing to do")
		return
	}

	hash, err := hasher.Hash("demo-pass-123")
	if err != nil {
		log.Fatalf("hash demo password: %v", err)
	}

	email := "demo@example.com"
	user := &model.User{
		Username:     "demo",
		Email:        &email,
		PasswordHash: hash,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatalf("create demo user: %v", err)
	}

	contacts := []model.Contact{
		{UserID: user.ID, Name: "Ada Lovelace", PhoneNo: "+14155550101", Email: "ada@example.com", Gender: "Female"},
		{UserID: user.ID, Name: "Grace Hopper", PhoneNo: "+14155550102", Email: "grace@example.com", Gender: "Female"},
		{UserID: user.ID, Name: "Alan Turing", PhoneNo: "+14155550103", Email: "alan@example.com", Gender: "Male"},
	}
	for i := range contacts {
		if err := contactRepo.Create(ctx, &contacts[i]); err != nil {
			log.Fatalf("create contact %s: %v", contacts[i].Name, err)
		}
	}

	log.Printf("seeded demo user (id=%d) with %d contacts", user.ID, len(contacts))
}
