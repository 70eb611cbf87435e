package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"promptvault/internal/util"
)

var suggestFile string

var suggestCmd = &cobra.Command{
	Use:   "suggest [content]",
	Short: "Suggest a summary and categories for prompt content",
	Long: `Runs the annotation pipeline on the given content without storing
anything: a one-line summary plus three suggested categories, AI-generated
when a model is configured, heuristic otherwise. Existing categories in the
library are passed to the model as a hint.`,
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
		case suggestFile != "":
			content, err = util.ReadPromptFile(suggestFile)
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

		existing, err := appInstance.PromptStore.ListDistinctCategories(ctx)
		if err != nil {
			log.Warnf("Failed to list existing categories for hint: %v", err)
		}

		suggestion := appInstance.Annotator.CategorizeAndSummarize(ctx, content, existing)

		fmt.Printf("%s %s\n", color.CyanString("Summary:"), suggestion.Summary)
		fmt.Printf("%s %s\n", color.CyanString("Categories:"), strings.Join(suggestion.SuggestedCategories, ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().StringVarP(&suggestFile, "file", "f", "", "Read prompt content from a file instead of an argument")
}
