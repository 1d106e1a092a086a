// Command adduser creates a user in the credentials store. Users are only
// ever created here, out of band; the web application has no signup.
//
//	adduser -username Nina -password 123
package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"arbejdstid/internal/config"
	"arbejdstid/internal/db"
	apperrors "arbejdstid/internal/errors"
	"arbejdstid/internal/model"
	"arbejdstid/internal/repository"
	"arbejdstid/internal/service"
)

func main() {
	username := flag.String("username", "", "username for the new user")
	password := flag.String("password", "", "password for the new user")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("both -username and -password are required")
	}

	cfg := config.Load()

	usersDB, err := db.NewSQLite(cfg.UsersDBPath)
	if err != nil {
		log.Fatalf("users database init: %v", err)
	}
	if err := usersDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("users auto-migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(usersDB)
	// Only Register is used here; no session machinery is needed.
	authService := service.NewAuthService(userRepo, nil, nil)

	user, err := authService.Register(context.Background(), *username, *password)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateUsername) {
			log.Println("Username already exists")
			return
		}
		log.Fatalf("create user: %v", err)
	}
	log.Printf("User created successfully (id %d)", user.ID)
}
