package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jorism/userapi/internal/core/domain"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample users",
	Long:  "Delete all existing users and insert the sample accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		// Deletes ALL existing entries
		if _, err := services.DB.ExecContext(cmd.Context(), "DELETE FROM users"); err != nil {
			return fmt.Errorf("failed to clear users table: %w", err)
		}

		samples := []domain.UserInput{
			{Username: "admin", Email: "admin@example.com", Password: "password123"},
			{Username: "user", Email: "user@example.com", Password: "password456"},
		}

		for _, input := range samples {
			user, err := services.UserRepo.Create(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("failed to seed user %s: %w", input.Username, err)
			}
			fmt.Printf("Seeded user '%s' with id %d\n", user.Username, user.ID)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
