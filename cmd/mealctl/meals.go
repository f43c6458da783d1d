package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	mealsCmd := &cobra.Command{Use: "meals", Short: "Meal operations"}

	// list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List meals",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(basePath())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	mealsCmd.AddCommand(listCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get MEAL_ID",
		Short: "Get a meal by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/%s", basePath(), args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	mealsCmd.AddCommand(getCmd)

	// create
	var date, mealTime, content string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a meal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" || mealTime == "" || content == "" {
				return fmt.Errorf("--date, --time and --content required")
			}
			payload := map[string]interface{}{
				"mealDate":    date,
				"mealTime":    mealTime,
				"mealContent": content,
			}
			data, err := doPostJSON(basePath(), payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	createCmd.Flags().StringVarP(&date, "date", "d", "", "Meal date, YYYY-MM-DD (required)")
	createCmd.Flags().StringVar(&mealTime, "time", "", "Meal time: BREAKFAST, LUNCH, DINNER (required)")
	createCmd.Flags().StringVarP(&content, "content", "c", "", "Meal content: VEGAN, VEGETARIAN, FISH, CHICKEN, PORK, LAMB, BEEF (required)")
	mealsCmd.AddCommand(createCmd)

	// edit (full replace)
	var editDate, editTime, editContent string
	editCmd := &cobra.Command{
		Use:   "edit MEAL_ID",
		Short: "Replace a meal (all fields required)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if editDate == "" || editTime == "" || editContent == "" {
				return fmt.Errorf("--date, --time and --content required")
			}
			payload := map[string]interface{}{
				"mealDate":    editDate,
				"mealTime":    editTime,
				"mealContent": editContent,
			}
			data, err := doPutJSON(fmt.Sprintf("%s/%s", basePath(), args[0]), payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	editCmd.Flags().StringVarP(&editDate, "date", "d", "", "Meal date, YYYY-MM-DD (required)")
	editCmd.Flags().StringVar(&editTime, "time", "", "Meal time: BREAKFAST, LUNCH, DINNER (required)")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "Meal content: VEGAN, VEGETARIAN, FISH, CHICKEN, PORK, LAMB, BEEF (required)")
	mealsCmd.AddCommand(editCmd)

	// delete
	deleteCmd := &cobra.Command{
		Use:   "delete MEAL_ID",
		Short: "Delete a meal by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := doDelete(fmt.Sprintf("%s/%s", basePath(), args[0])); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, "deleted")
			return nil
		},
	}
	mealsCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(mealsCmd)
}
