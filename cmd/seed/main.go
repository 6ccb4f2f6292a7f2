// Command seed populates the default recipe categories. It is safe to run
// repeatedly: categories that already exist are left untouched.
package main

import (
	"context"
	"log/slog"
	"os"

	"cookbook/config"
	"cookbook/internal/domain/entity"
	"cookbook/internal/domain/repository"
	"cookbook/internal/errors"
	"cookbook/internal/infra/persistence/migrations"
	"cookbook/internal/infra/persistence/postgres"

	pgLib "github.com/slighter12/go-lib/database/postgres"
)

var defaultCategories = []entity.Category{
	{Name: "Breakfast", Description: "Morning meals and brunch recipes"},
	{Name: "Lunch", Description: "Midday meals and light dishes"},
	{Name: "Dinner", Description: "Evening meals and main courses"},
	{Name: "Dessert", Description: "Sweet treats and desserts"},
	{Name: "Vegetarian", Description: "Meat-free recipes"},
	{Name: "Vegan", Description: "Plant-based recipes without animal products"},
	{Name: "Gluten-Free", Description: "Recipes without gluten"},
	{Name: "Quick & Easy", Description: "Recipes that take 30 minutes or less"},
	{Name: "Healthy", Description: "Nutritious and balanced meals"},
	{Name: "Snacks", Description: "Light bites and appetizers"},
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := run(context.Background(), logger); err != nil {
		logger.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to connect to PostgreSQL")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	if err := migrations.Up(ctx, sqlDB); err != nil {
		return errors.Wrap(err, "failed to run schema migrations")
	}

	categoryRepo := postgres.NewCategoryRepository(db)

	created := 0
	for _, category := range defaultCategories {
		if _, err := categoryRepo.FindByName(ctx, category.Name); err == nil {
			logger.Info("Category already exists, skipping", slog.String("name", category.Name))

			continue
		} else if !errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.Wrapf(err, "failed to look up category %q", category.Name)
		}

		category := category
		if err := categoryRepo.Create(ctx, &category); err != nil {
			return errors.Wrapf(err, "failed to create category %q", category.Name)
		}

		logger.Info("Category created", slog.String("name", category.Name))
		created++
	}

	logger.Info("Seeding complete", slog.Int("created", created), slog.Int("total", len(defaultCategories)))

	return nil
}
