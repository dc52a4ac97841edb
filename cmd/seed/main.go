package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/citra/storefront/config"
	"github.com/citra/storefront/internal/app/model"
	"github.com/citra/storefront/internal/app/repository"
	"github.com/citra/storefront/internal/app/service"
	"github.com/citra/storefront/internal/db"
	"github.com/citra/storefront/internal/seed"
	"github.com/citra/storefront/pkg/logger"
)

func main() {
	assumeYes := flag.Bool("y", false, "import without asking for confirmation")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("Usage: go run ./cmd/seed [-y] <xlsx_file_path>")
	}
	filePath := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	logger.Initialize(logger.Config{
		Level:  cfg.Log.Level,
		Format: "console",
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	snapshots := repository.NewCatalogSnapshotRepository(db.GetDB())
	stored, err := snapshots.Load()
	if err != nil {
		log.Fatal("Failed to load stored catalog:", err)
	}

	// An empty database gets the seed taxonomy and banners along with the imported products
	fresh := len(stored.Categories) == 0
	if fresh {
		if cfg.Catalog.SeedFile != "" {
			stored, err = seed.LoadFile(cfg.Catalog.SeedFile)
		} else {
			stored = seed.Default()
		}
		if err != nil {
			log.Fatal("Failed to load seed catalog:", err)
		}
	}

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	products, err := readProducts(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}
	fmt.Printf("Total products to import: %d\n", len(products))

	// Run every row through the product store rules against the stored taxonomy
	taxonomy, err := repository.NewTaxonomyRepository(stored.Categories)
	if err != nil {
		log.Fatal("Stored taxonomy is invalid:", err)
	}
	productRepo, err := repository.NewProductRepository(taxonomy, products)
	if err != nil {
		log.Fatal("Product rows are invalid:", err)
	}

	if !*assumeYes {
		fmt.Print("Do you want to proceed with the import? (yes/no): ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "yes" && confirm != "y" {
			fmt.Println("Import cancelled.")
			return
		}
	}

	if fresh {
		err = snapshots.Save(model.CatalogSnapshot{
			Categories: stored.Categories,
			Products:   productRepo.GetAll(),
			Banners:    stored.Banners,
		})
	} else {
		err = snapshots.SaveProducts(productRepo.GetAll())
	}
	if err != nil {
		log.Fatal("Failed to save products:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total products imported: %d\n", productRepo.Count())
}

func readProducts(filePath string) ([]model.Product, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	return service.ReadProductsXLSX(f)
}
