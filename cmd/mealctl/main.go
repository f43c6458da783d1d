package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag   string
	tokenFlag string
	userFlag  string
	rootCmd   = &cobra.Command{
		Use:   "mealctl",
		Short: "CLI client for the meal service REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "Meal service base URL")
	rootCmd.PersistentFlags().StringVarP(&tokenFlag, "token", "t", os.Getenv("MEALCTL_TOKEN"), "Bearer token (defaults to MEALCTL_TOKEN)")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "Act on this user's meals via the admin endpoints")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// basePath selects the endpoint family: the admin family when --user is
// given, the caller-scoped family otherwise.
func basePath() string {
	if userFlag != "" {
		return "/admin/meals"
	}
	return "/meals"
}
