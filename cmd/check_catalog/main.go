package main

import (
	"fmt"

	"paperhelp/internal/app/config"
	"paperhelp/internal/app/pricing"
	"paperhelp/internal/app/repository"

	"github.com/sirupsen/logrus"
)

// Печатает справочник из базы и цену формы по умолчанию
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	if cfg.DSN == "" {
		logrus.Fatal("DSN string is empty. Check your .env file")
	}

	repo, err := repository.New(cfg.DSN)
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}

	catalog, err := repo.Catalog()
	if err != nil {
		logrus.Fatal("Failed to get catalog: ", err)
	}
	catalog.BasePricePerPage, err = cfg.BasePrice()
	if err != nil {
		logrus.Fatal(err)
	}

	fmt.Println("Services in database:")
	for _, s := range catalog.Services {
		fmt.Printf("ID: %d, Name: %s %s, Multiplier: %s\n", s.ID, s.Icon, s.Name, s.Multiplier)
	}
	fmt.Println("Add-ons:")
	for _, a := range catalog.Addons {
		fmt.Printf("ID: %s, Price: %s %s\n", a.ID, a.Price.StringFixed(2), a.Unit)
	}

	order := pricing.DefaultConfig(catalog)
	if err := pricing.Validate(order, catalog); err != nil {
		logrus.Warn("default order config does not resolve: ", err)
	}
	fmt.Printf("Default quote (%d words): %s\n", pricing.Words(order.Pages), pricing.Compute(order, catalog).StringFixed(2))
}
