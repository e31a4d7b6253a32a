package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/happyhackingspace/textclass/internal/dataset"
	"github.com/spf13/cobra"
)

const smsSpamURL = "https://huggingface.co/datasets/ucirvine/sms_spam/resolve/main/plain_text/train-00000-of-00001.parquet"

func (c *CLI) newDataCommand() *cobra.Command {
	dataCmd := &cobra.Command{
		Use:   "data",
		Short: "Manage and inspect training datasets",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	var downloadFolder string
	downloadCmd := &cobra.Command{
		Use:   "download",
		Short: "Download the reference SMS spam dataset from Hugging Face",
		Example: `  textclass data download
  textclass data download --data-folder datasets`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := filepath.Join(downloadFolder, "sms_spam.parquet")
			slog.Info("Downloading dataset", "url", smsSpamURL, "dest", dest)
			if err := downloadFile(smsSpamURL, dest); err != nil {
				return err
			}
			slog.Info("Dataset ready", "path", dest)
			return nil
		},
	}
	downloadCmd.Flags().StringVar(&downloadFolder, "data-folder", "datasets", "Destination folder for datasets")

	var statsFile string
	var classes string
	var topN int
	var stripHTML bool
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print per-class corpus statistics (counts, top words, URL domains)",
		Example: `  textclass data stats --data datasets/sms_spam.parquet
  textclass data stats --data spam.csv --top 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := dataset.Load(statsFile, dataset.LoadOptions{StripHTML: stripHTML})
			if err != nil {
				return err
			}

			numClasses := dataset.NumLabels(pairs)
			stats := dataset.Collect(pairs, numClasses)
			names := classNames(splitClasses(classes), numClasses)

			fmt.Printf("Samples: %d\n", stats.Samples)
			for class, name := range names {
				fmt.Printf("\n%s (%d samples)\n", name, stats.LabelCounts[class])

				if top := dataset.Top(stats.Words[class], topN); len(top) > 0 {
					fmt.Printf("  top words:")
					for _, e := range top {
						fmt.Printf(" %s(%d)", e.Key, e.Count)
					}
					fmt.Println()
				}
				if top := dataset.Top(stats.Domains[class], topN); len(top) > 0 {
					fmt.Printf("  url domains:")
					for _, e := range top {
						fmt.Printf(" %s(%d)", e.Key, e.Count)
					}
					fmt.Println()
				}
			}
			return nil
		},
	}
	statsCmd.Flags().StringVar(&statsFile, "data", "datasets/sms_spam.parquet", "Path to the labeled dataset (parquet or CSV)")
	statsCmd.Flags().StringVar(&classes, "classes", "ham,spam", "Comma-separated class names, by label index")
	statsCmd.Flags().IntVar(&topN, "top", 15, "Number of top entries to show per class")
	statsCmd.Flags().BoolVar(&stripHTML, "strip-html", false, "Strip HTML markup from message bodies")

	dataCmd.AddCommand(downloadCmd, statsCmd)
	return dataCmd
}
