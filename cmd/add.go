package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"promptvault/internal/models"
	"promptvault/internal/util"
)

var (
	addCategory string
	addSummary  string
	addFile     string
)

var addCmd = &cobra.Command{
	Use:   "add [content]",
	Short: "Store a new prompt",
	Long: `Stores a prompt given as an argument or read from a file with --file.
The title and tags are generated by the configured model, or derived from the
content itself when no model is available. If --summary or --category are
omitted they are filled from the model's suggestion the same way.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()
		ctx := cmd.Context()

		var content string
		switch {
		case addFile != "":
			content, err = util.ReadPromptFile(addFile)
			if err != nil {
				return fmt.Errorf("failed to read prompt file: %w", err)
			}
		case len(args) == 1:
			content = args[0]
		default:
			return fmt.Errorf("provide prompt content as an argument or via --file")
		}
		if strings.TrimSpace(content) == "" {
			return fmt.Errorf("prompt content is empty")
		}

		category := addCategory
		summary := addSummary
		if category == "" || summary == "" {
			existing, err := appInstance.PromptStore.ListDistinctCategories(ctx)
			if err != nil {
				log.Warnf("Failed to list existing categories for hint: %v", err)
			}
			suggestion := appInstance.Annotator.CategorizeAndSummarize(ctx, content, existing)
			if summary == "" {
				summary = suggestion.Summary
			}
			if category == "" && len(suggestion.SuggestedCategories) > 0 {
				category = suggestion.SuggestedCategories[0]
			}
		}

		titleTags := appInstance.Annotator.GenerateTitleAndTags(ctx, content)

		created, err := appInstance.PromptStore.CreatePrompt(ctx, &models.Prompt{
			Title:    titleTags.Title,
			Category: category,
			Content:  content,
			Tags:     titleTags.Tags,
			Summary:  summary,
		})
		if err != nil {
			return fmt.Errorf("failed to store prompt: %w", err)
		}

		fmt.Printf("%s prompt (ID: %d)\n", color.GreenString("Stored"), created.ID)
		fmt.Printf("Title:    %s\n", created.Title)
		fmt.Printf("Category: %s\n", created.Category)
		if created.Tags != "" {
			fmt.Printf("Tags:     %s\n", created.Tags)
		}
		fmt.Printf("Summary:  %s\n", created.Summary)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category (defaults to the top suggested category)")
	addCmd.Flags().StringVarP(&addSummary, "summary", "s", "", "Summary (defaults to the suggested summary)")
	addCmd.Flags().StringVarP(&addFile, "file", "f", "", "Read prompt content from a file instead of an argument")
}
