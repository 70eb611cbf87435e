package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a stored prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid prompt id %q", args[0])
		}

		prompt, err := appInstance.PromptStore.GetPrompt(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get prompt: %w", err)
		}

		fmt.Printf("ID:       %d\n", prompt.ID)
		fmt.Printf("Title:    %s\n", prompt.Title)
		fmt.Printf("Category: %s\n", prompt.Category)
		fmt.Printf("Tags:     %s\n", prompt.Tags)
		fmt.Printf("Summary:  %s\n", prompt.Summary)
		fmt.Printf("Created:  %s\n", prompt.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("---\n%s\n", prompt.Content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
