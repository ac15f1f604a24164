package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"library-loans/config"
	"library-loans/config/postgre"
	"library-loans/internal/account"
	accountRepo "library-loans/internal/account/repository/postgre"
	accountUC "library-loans/internal/account/usecase"
	"library-loans/internal/item"
	itemRepo "library-loans/internal/item/repository/postgre"
	itemUC "library-loans/internal/item/usecase"
	"library-loans/pkg/log"
)

type seedFile struct {
	Accounts []struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
	} `json:"accounts"`
	Items []struct {
		Title          string `json:"title"`
		Author         string `json:"author"`
		ISBN           string `json:"isbn"`
		AvailableCount int    `json:"available_count"`
	} `json:"items"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/seed-catalog/main.go <path/to/seed.json>")
		fmt.Println("Example: go run scripts/seed-catalog/main.go scripts/seed-catalog/seed.json")
		os.Exit(1)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Printf("Failed to read seed file: %v\n", err)
		os.Exit(1)
	}
	var seed seedFile
	if err := jsoniter.Unmarshal(raw, &seed); err != nil {
		fmt.Printf("Failed to parse seed file: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to postgres: %v", err)
	}
	defer postgre.Disconnect(ctx, db)

	accounts := accountUC.New(accountRepo.New(db, logger), logger)
	items := itemUC.New(itemRepo.New(db, logger), logger)

	logger.Infof(ctx, "Seeding %d accounts and %d items...", len(seed.Accounts), len(seed.Items))

	created := 0
	for _, a := range seed.Accounts {
		out, err := accounts.Create(ctx, account.CreateInput{FullName: a.FullName, Email: a.Email})
		if errors.Is(err, account.ErrDuplicateEmail) {
			logger.Infof(ctx, "Account %s already exists, skipping", a.Email)
			continue
		}
		if err != nil {
			logger.Errorf(ctx, "Failed to create account %s: %v", a.Email, err)
			continue
		}
		logger.Infof(ctx, "Created account %d: %s", out.Account.ID, out.Account.Email)
		created++
	}

	for _, it := range seed.Items {
		out, err := items.Create(ctx, item.CreateInput{
			Title:          it.Title,
			Author:         it.Author,
			ISBN:           it.ISBN,
			AvailableCount: it.AvailableCount,
		})
		if errors.Is(err, item.ErrDuplicateISBN) {
			logger.Infof(ctx, "Item %s already exists, skipping", it.ISBN)
			continue
		}
		if err != nil {
			logger.Errorf(ctx, "Failed to create item %s: %v", it.ISBN, err)
			continue
		}
		logger.Infof(ctx, "Created item %d: %s", out.Item.ID, out.Item.Title)
		created++
	}

	logger.Infof(ctx, "Seed complete! %d/%d records created.", created, len(seed.Accounts)+len(seed.Items))
}
