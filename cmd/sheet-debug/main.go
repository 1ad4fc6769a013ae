package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/statblock/pokesheet/internal/config"
	domain "github.com/statblock/pokesheet/internal/domain/pokemon"
	pokemonrepo "github.com/statblock/pokesheet/internal/repositories/pokemon"
	"github.com/statblock/pokesheet/internal/services/sheet"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: sheet-debug <pokemon-id>")
		fmt.Println("       sheet-debug -trainer <trainer-id>")
		os.Exit(1)
	}

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			log.Printf("Failed to close Redis connection: %v", closeErr)
		}
	}()

	svc := sheet.NewService(&sheet.ServiceConfig{
		Repository: pokemonrepo.NewRedis(client),
	})

	if os.Args[1] == "-trainer" {
		if len(os.Args) < 3 {
			fmt.Println("Usage: sheet-debug -trainer <trainer-id>")
			os.Exit(1)
		}
		sheets, listErr := svc.ListByTrainer(ctx, os.Args[2])
		if listErr != nil {
			log.Fatalf("Failed to list pokemon: %v", listErr)
		}
		for _, view := range sheets {
			printSheet(view)
			fmt.Println()
		}
		return
	}

	view, err := svc.GetSheet(ctx, os.Args[1])
	if err != nil {
		log.Fatalf("Failed to get sheet: %v", err)
	}
	printSheet(view)
}

func printSheet(view *sheet.Sheet) {
	fmt.Printf("Pokemon ID: %s\n", view.ID)
	fmt.Printf("Trainer: %s\n", view.TrainerID)
	fmt.Printf("Name: %s", view.Name)
	if view.SpeciesLabel != "" {
		fmt.Printf(" (%s)", view.SpeciesLabel)
	}
	fmt.Println()
	fmt.Printf("Level: %d (%d exp)\n", view.Level, view.Experience)
	fmt.Printf("Health: %d / %d (press on at %d)\n", view.CurrentHealth, view.TotalHP, view.PressOnThreshold)

	if view.PointsOverCap > 0 {
		fmt.Printf("WARNING: %d stat points over the level cap\n", view.PointsOverCap)
	} else if view.PointsOverCap < 0 {
		fmt.Printf("Unspent stat points: %d\n", -view.PointsOverCap)
	}

	fmt.Println("Stats:")
	for _, stat := range domain.AllStats() {
		line := view.Stats[stat]
		fmt.Printf("  %-12s base %2d + added %2d", stat.DisplayName(), line.Base, line.Added)
		if stat.HasCombatStage() {
			fmt.Printf("  stage %+d  -> %d", line.CombatStage, line.Effective)
		} else {
			fmt.Printf("             -> %d", line.Effective)
		}
		fmt.Println()
	}

	fmt.Printf("Capabilities: %d\n", len(view.Capabilities))
	for _, cap := range view.Capabilities {
		if cap.Value != 0 {
			fmt.Printf("  %s %d\n", cap.Label, cap.Value)
		} else {
			fmt.Printf("  %s\n", cap.Label)
		}
	}
}
