package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/happyhackingspace/textclass"
	"github.com/happyhackingspace/textclass/metrics"
	"github.com/spf13/cobra"
)

func (c *CLI) newEvaluateCommand() *cobra.Command {
	var dataFile string
	var variant string
	var laplace float64
	var holdout int
	var cvFolds int
	var classes string
	var stripHTML bool

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate classifier accuracy on a holdout split or via cross-validation",
		Example: `  textclass evaluate --data datasets/sms_spam.parquet --holdout 100
  textclass evaluate --data spam.csv --variant bernoulli --cv 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Info("Evaluating", "data", dataFile, "variant", variant, "holdout", holdout, "folds", cvFolds)
			start := time.Now()
			result, err := textclass.Evaluate(dataFile, &textclass.EvalConfig{
				Variant:   variant,
				Laplace:   laplace,
				Holdout:   holdout,
				Folds:     cvFolds,
				StripHTML: stripHTML,
				Verbose:   c.verbose,
			})
			if err != nil {
				return err
			}
			slog.Debug("Evaluation completed", "duration", time.Since(start))

			fmt.Printf("Accuracy: %.1f%% (%d/%d)\n",
				result.Accuracy*100, result.Correct, result.Total)
			fmt.Printf("Macro F1: %.1f%%\n", result.MacroF1*100)

			names := classNames(splitClasses(classes), len(result.Confusion))
			printConfusionMatrix(result.Confusion, names)
			printClassReport(result, names)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataFile, "data", "datasets/sms_spam.parquet", "Path to the labeled dataset (parquet or CSV)")
	cmd.Flags().StringVar(&variant, "variant", "multinomial", "Classifier variant: bernoulli or multinomial")
	cmd.Flags().Float64Var(&laplace, "laplace", 0.1, "Laplace smoothing factor")
	cmd.Flags().IntVar(&holdout, "holdout", 100, "Number of trailing rows held out for evaluation")
	cmd.Flags().IntVar(&cvFolds, "cv", 0, "Number of cross-validation folds (overrides --holdout)")
	cmd.Flags().StringVar(&classes, "classes", "ham,spam", "Comma-separated class names, by label index")
	cmd.Flags().BoolVar(&stripHTML, "strip-html", false, "Strip HTML markup from message bodies")
	return cmd
}

// classNames pads or synthesizes names so every label has one.
func classNames(names []string, numClasses int) []string {
	out := make([]string, numClasses)
	for i := 0; i < numClasses; i++ {
		if i < len(names) && names[i] != "" {
			out[i] = names[i]
		} else {
			out[i] = strconv.Itoa(i)
		}
	}
	return out
}

func printClassReport(result *textclass.EvalResult, names []string) {
	fmt.Printf("\nPer-class metrics:\n")
	fmt.Printf("%8s  %6s  %6s  %6s  %7s\n", "class", "prec", "recall", "f1", "support")
	for class, name := range names {
		support := 0
		for _, v := range result.Confusion[class] {
			support += v
		}
		fmt.Printf("%8s  %5.1f%%  %5.1f%%  %5.1f%%  %7d\n",
			name, result.Precision[class]*100, result.Recall[class]*100, result.F1[class]*100, support)
	}
}

func printConfusionMatrix(confusion metrics.ConfusionMatrix, names []string) {
	if len(confusion) == 0 {
		return
	}

	fmt.Printf("\nConfusion matrix (rows=true, cols=predicted):\n")
	fmt.Printf("%8s", "")
	for _, name := range names {
		fmt.Printf(" %5s", name)
	}
	fmt.Printf("  total  acc%%\n")

	for trueClass, name := range names {
		fmt.Printf("%8s", name)
		total := 0
		for predClass := range names {
			count := confusion[trueClass][predClass]
			total += count
			if count == 0 {
				fmt.Printf("   %5s", ".")
			} else {
				fmt.Printf("   %3d", count)
			}
		}
		acc := 0.0
		if total > 0 {
			acc = float64(confusion[trueClass][trueClass]) / float64(total) * 100
		}
		fmt.Printf("  %5d %5.1f\n", total, acc)
	}
}
