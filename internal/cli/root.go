package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jorism/userapi/internal/core/repository"
	"github.com/jorism/userapi/internal/core/service"
	"github.com/jorism/userapi/internal/infrastructure/sqlite"
	"github.com/jorism/userapi/pkg/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "userapi",
	Short: "User API - REST service for managing user records",
	Long: `User API is a REST service for managing user records.

It provides:
- CRUD endpoints for users backed by SQLite
- bcrypt password hashing
- Request/response logging with request ids
- Swagger documentation
- A CLI for user administration and seeding`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// newLogger builds the process logger from the configured level.
func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}

// initServices initializes the database, repository and service
func initServices() (*Services, error) {
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	userRepo := sqlite.NewUserRepository(db)
	userService := service.NewUserService(userRepo)

	return &Services{
		DB:          db,
		UserRepo:    userRepo,
		UserService: userService,
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB          *sqlite.DB
	UserRepo    repository.UserRepository
	UserService *service.UserService
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
