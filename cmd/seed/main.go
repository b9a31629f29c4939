// Package main provides a tool to seed the database with demo readers and saved books.
//
// Usage:
//
//	DATA_PATH=~/chapter-champ go run ./cmd/seed
//	DATA_PATH=~/chapter-champ go run ./cmd/seed --admin  # Also promote the first demo user
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mikelind28/chapter-champ/internal/auth"
	"github.com/mikelind28/chapter-champ/internal/domain"
	"github.com/mikelind28/chapter-champ/internal/id"
	"github.com/mikelind28/chapter-champ/internal/store"
)

var makeAdmin = flag.Bool("admin", false, "Promote the first demo user to admin")

// demoUser describes a reader account to create along with their shelf.
type demoUser struct {
	username string
	email    string
	books    []demoBook
}

type demoBook struct {
	details domain.BookDetails
	status  domain.ReadingStatus
}

var demoUsers = []demoUser{
	{
		username: "alex-reads",
		email:    "alex@example.com",
		books: []demoBook{
			{
				details: domain.BookDetails{
					BookID:    "B1ttLkFZoFC",
					Title:     "Dune",
					Authors:   []string{"Frank Herbert"},
					PageCount: 688,
				},
				status: domain.StatusCurrentlyReading,
			},
			{
				details: domain.BookDetails{
					BookID:  "yl4dILkcqm4C",
					Title:   "The Left Hand of Darkness",
					Authors: []string{"Ursula K. Le Guin"},
				},
				status: domain.StatusWantToRead,
			},
			{
				details: domain.BookDetails{
					BookID:  "PzhQDwAAQBAJ",
					Title:   "Piranesi",
					Authors: []string{"Susanna Clarke"},
				},
				status: domain.StatusFavorite,
			},
		},
	},
	{
		username: "jordan-c",
		email:    "jordan@example.com",
		books: []demoBook{
			{
				details: domain.BookDetails{
					BookID:  "dmouxgGhaXsC",
					Title:   "The Name of the Wind",
					Authors: []string{"Patrick Rothfuss"},
				},
				status: domain.StatusFinishedReading,
			},
		},
	},
	{
		username: "sam-t",
		email:    "sam@example.com",
	},
}

func main() {
	flag.Parse()

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/chapter-champ")
	}
	dbPath := filepath.Join(dataPath, "db")

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := store.New(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	passwordHash, err := auth.HashPassword("demopass123")
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	for i, demo := range demoUsers {
		// Skip users that already exist so the tool is safe to re-run
		if existing, _ := s.GetUserByEmail(ctx, demo.email); existing != nil {
			fmt.Printf("  User %s already exists, skipping\n", demo.email)
			continue
		}

		user := &domain.User{
			ID:           id.MustGenerate("user"),
			Username:     demo.username,
			Email:        demo.email,
			PasswordHash: passwordHash,
			IsAdmin:      *makeAdmin && i == 0,
		}
		user.InitTimestamps()

		if err := s.CreateUser(ctx, user); err != nil {
			log.Printf("  Failed to create user %s: %v", demo.username, err)
			continue
		}

		fmt.Printf("  Created user: %s (%s)\n", demo.username, demo.email)

		for _, b := range demo.books {
			if err := s.SaveBook(ctx, user.ID, b.details, b.status); err != nil {
				log.Printf("    Failed to save %q: %v", b.details.Title, err)
				continue
			}
			fmt.Printf("    Saved %q as %s\n", b.details.Title, b.status)
		}
	}

	fmt.Println("\nSeeding complete! All demo users log in with password \"demopass123\".")
}
