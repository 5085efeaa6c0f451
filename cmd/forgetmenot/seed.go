package main

import (
	"github.com/limbo/forgetmenot/internal/repository"
	"github.com/limbo/forgetmenot/internal/seed"
	"github.com/limbo/forgetmenot/pkg/cleanup"
	"github.com/limbo/forgetmenot/pkg/config"
	"github.com/spf13/cobra"
)

var seedUserCount int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with demo users, places and items",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer cleanup.CleanUp()
		pool, err := connectDB(cmd.Context(), config.New())
		if err != nil {
			return err
		}
		s := seed.New(repository.NewUsersRepo(pool), repository.NewPlacesRepo(pool), repository.NewItemsRepo(pool), nil)
		s.UserCount = seedUserCount
		return s.Run(cmd.Context())
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedUserCount, "users", seed.DefaultUserCount, "Total number of users to reach")
}
