package main

import (
	"flag"
	"time"

	"paperhelp/internal/app/dsn"
	"paperhelp/internal/app/repository"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	seed := flag.Bool("seed", true, "заполнить пустые таблицы демо-данными")
	flag.Parse()

	// Загрузка переменных окружения из .env файла
	_ = godotenv.Load()

	// Получение DSN строки подключения
	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		logrus.Fatal("DSN string is empty. Check your .env file")
	}

	// Подключение и миграция всех моделей
	repo, err := repository.New(dsnStr)
	if err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}
	logrus.Info("Database migration completed successfully")

	if !*seed {
		return
	}
	if err := repo.Seed(repository.Seed(time.Now())); err != nil {
		logrus.Fatalf("Failed to seed database: %v", err)
	}
	logrus.Info("Demo data seeded")
}
