package cli

import (
	"log/slog"
	"strings"
	"time"

	"github.com/happyhackingspace/textclass"
	"github.com/spf13/cobra"
)

func (c *CLI) newTrainCommand() *cobra.Command {
	var dataFile string
	var variant string
	var laplace float64
	var classes string
	var stripHTML bool

	cmd := &cobra.Command{
		Use:   "train <modelfile>",
		Short: "Train a classifier on a labeled message dataset",
		Args:  cobra.ExactArgs(1),
		Example: `  textclass train model.json --data datasets/sms_spam.parquet
  textclass train model.json --data spam.csv --variant bernoulli --laplace 1.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			modelPath := args[0]
			slog.Info("Training classifier", "data", dataFile, "variant", variant, "output", modelPath)
			start := time.Now()
			cl, err := textclass.Train(dataFile, &textclass.TrainConfig{
				Variant:   variant,
				Laplace:   laplace,
				Classes:   splitClasses(classes),
				StripHTML: stripHTML,
				Verbose:   c.verbose,
			})
			if err != nil {
				return err
			}
			slog.Debug("Training completed", "duration", time.Since(start))
			if err := cl.Save(modelPath); err != nil {
				return err
			}
			slog.Info("Model saved", "path", modelPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataFile, "data", "datasets/sms_spam.parquet", "Path to the labeled dataset (parquet or CSV)")
	cmd.Flags().StringVar(&variant, "variant", "multinomial", "Classifier variant: bernoulli or multinomial")
	cmd.Flags().Float64Var(&laplace, "laplace", 0.1, "Laplace smoothing factor")
	cmd.Flags().StringVar(&classes, "classes", "ham,spam", "Comma-separated class names, by label index")
	cmd.Flags().BoolVar(&stripHTML, "strip-html", false, "Strip HTML markup from message bodies")
	return cmd
}

func splitClasses(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
