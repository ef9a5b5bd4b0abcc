package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/khaledev/inkwell/api"
	"github.com/khaledev/inkwell/database"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "inkwell",
		Short: "Inkwell blog server",
	}
	rootCmd.AddCommand(serveCmd(), migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}

			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("migrating schema: %w", err)
			}

			errChannel := make(chan error)
			defer close(errChannel)

			server, err := api.NewServer(database.New(db))
			if err != nil {
				return fmt.Errorf("initializing server: %w", err)
			}

			go server.Start(errChannel)

			// Listen for interrupt signals to gracefully shutdown the server
			go listenToInterrupt(errChannel)

			fatalErr := <-errChannel
			fmt.Printf("Closing server: %v\n", fatalErr)

			server.ShutdownGracefully(30 * time.Second)
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("migrating schema: %w", err)
			}
			fmt.Println("Schema is up to date.")
			return nil
		},
	}
}

// openDatabase connects to the store selected by DB_TYPE: "postgres" for a
// server deployment, anything else falls back to a local sqlite file.
func openDatabase() (*gorm.DB, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	var dialector gorm.Dialector
	switch os.Getenv("DB_TYPE") {
	case "postgres":
		connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "inkwell"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_NAME", "inkwell"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_SSLMODE", "disable"),
		)
		dialector = postgres.New(postgres.Config{
			DSN:                  connStr,
			PreferSimpleProtocol: true,
		})
	default:
		dialector = sqlite.Open(getEnv("DB_PATH", "inkwell.db"))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: false,
		Logger:      gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("testing database connection: %w", err)
	}

	return db, nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}

// getEnv returns the value of the environment variable key or a fallback value.
func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
