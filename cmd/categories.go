package cmd

import (
	"github.com/spf13/cobra"

	"actlog/internal/cli/handlers"
)

// categoriesCmd represents the categories parent command
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage the category taxonomy",
	Long: `List and manage the categories and subcategories used to classify entries.

Removing a category moves its entries to Uncategorized/None; removing a
subcategory moves matching entries to the category's None subcategory.

Examples:
  actlog categories                          List the taxonomy
  actlog categories add Gardening            Add a category
  actlog categories add-sub Eat Brunch       Add a subcategory
  actlog categories rm Gardening             Remove a category (cascades)
  actlog categories rm-sub Eat Brunch        Remove a subcategory (cascades)
  actlog categories reset                    Restore the default taxonomy`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListCategories(deps())
	},
}

// categoriesAddCmd represents the categories add command
var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new category",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.AddCategory(deps(), args[0])
	},
}

// categoriesAddSubCmd represents the categories add-sub command
var categoriesAddSubCmd = &cobra.Command{
	Use:   "add-sub <category> <name>",
	Short: "Add a subcategory under an existing category",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.AddSubcategory(deps(), args[0], args[1])
	},
}

// categoriesRmCmd represents the categories rm command
var categoriesRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a category, moving its entries to Uncategorized",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		skipConfirm, _ := cmd.Flags().GetBool("yes")
		handlers.RemoveCategory(deps(), args[0], skipConfirm)
	},
}

// categoriesRmSubCmd represents the categories rm-sub command
var categoriesRmSubCmd = &cobra.Command{
	Use:   "rm-sub <category> <name>",
	Short: "Remove a subcategory, moving matching entries to None",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		skipConfirm, _ := cmd.Flags().GetBool("yes")
		handlers.RemoveSubcategory(deps(), args[0], args[1], skipConfirm)
	},
}

// categoriesResetCmd represents the categories reset command
var categoriesResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default taxonomy",
	Long:  `Replace the taxonomy with the built-in defaults. A backup of the current taxonomy is taken first. Log entries are not modified.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		skipConfirm, _ := cmd.Flags().GetBool("yes")
		handlers.ResetCategories(deps(), skipConfirm)
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.AddCommand(categoriesAddCmd)
	categoriesCmd.AddCommand(categoriesAddSubCmd)
	categoriesCmd.AddCommand(categoriesRmCmd)
	categoriesCmd.AddCommand(categoriesRmSubCmd)
	categoriesCmd.AddCommand(categoriesResetCmd)

	categoriesRmCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")
	categoriesRmSubCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")
	categoriesResetCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")
}
