package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored prompts",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		prompts, err := appInstance.PromptStore.ListPrompts(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list prompts: %w", err)
		}

		if len(prompts) == 0 {
			fmt.Println("No prompts found.")
			return nil
		}

		// Display results in a table
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Title", "Category", "Tags", "Summary", "Created At"})
		table.SetBorder(true)
		table.SetRowLine(true)

		for _, p := range prompts {
			summary := p.Summary
			if len([]rune(summary)) > 40 {
				summary = string([]rune(summary)[:40]) + "..."
			}
			summary = strings.ReplaceAll(summary, "\n", " ")

			table.Append([]string{
				strconv.FormatInt(p.ID, 10),
				p.Title,
				p.Category,
				p.Tags,
				summary,
				p.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		table.Render()

		fmt.Printf("Displayed %d prompts.\n", len(prompts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
