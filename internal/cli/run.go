package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/happyhackingspace/textclass"
	"github.com/spf13/cobra"
)

const modelURL = "https://huggingface.co/datasets/happyhackingspace/textclass/resolve/main/model.json"

func (c *CLI) newRunCommand() *cobra.Command {
	var modelPath string
	var proba bool

	cmd := &cobra.Command{
		Use:   "run [message]",
		Short: "Classify a message from the argument or stdin",
		Args:  cobra.MaximumNArgs(1),
		Example: `  # Classify a message directly
  textclass run "WINNER!! Claim your free prize now"

  # Pipe a message from stdin
  echo "see you at lunch?" | textclass run

  # Show per-class scores
  textclass run "free entry in a weekly competition" --proba

  # Use a custom model file
  textclass run "call me back" --model custom.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var message string
			if len(args) == 0 {
				if isStdinTerminal() {
					return cmd.Help()
				}
				body, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				message = strings.TrimSpace(string(body))
				if message == "" {
					return fmt.Errorf("stdin is empty")
				}
			} else {
				message = args[0]
			}

			start := time.Now()
			cl, err := loadOrDownloadModel(modelPath)
			if err != nil {
				return err
			}
			slog.Debug("Model loaded", "duration", time.Since(start))

			start = time.Now()
			var pred textclass.Prediction
			if proba {
				pred, err = cl.ClassifyProba(message)
			} else {
				pred, err = cl.Classify(message)
			}
			if err != nil {
				return err
			}
			slog.Debug("Classification completed", "duration", time.Since(start))

			output, _ := json.MarshalIndent(pred, "", "  ")
			fmt.Println(string(output))
			return nil
		},
	}

	cmd.Flags().StringVar(&modelPath, "model", "", "Path to model file (default: auto-detect or download)")
	cmd.Flags().BoolVar(&proba, "proba", false, "Show per-class scores")
	return cmd
}

func isStdinTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func loadOrDownloadModel(modelPath string) (*textclass.Classifier, error) {
	if modelPath != "" {
		slog.Debug("Loading custom model", "path", modelPath)
		return textclass.Load(modelPath)
	}

	cl, err := textclass.New()
	if err == nil {
		return cl, nil
	}
	// A model file that exists but fails to load is an error the user must
	// see; only fall through to the cache/download when none was found.
	if !errors.Is(err, textclass.ErrModelNotFound) {
		return nil, err
	}

	dest := filepath.Join(textclass.ModelDir(), "model.json")
	if _, statErr := os.Stat(dest); statErr == nil {
		return textclass.Load(dest)
	}
	slog.Info("Model not found, downloading", "url", modelURL, "dest", dest)

	if err := downloadFile(modelURL, dest); err != nil {
		return nil, err
	}
	return textclass.Load(dest)
}

func downloadFile(url, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %s: HTTP %d", url, resp.StatusCode)
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}

	written, err := io.Copy(f, resp.Body)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(dest)
		return fmt.Errorf("download %s: %w", url, err)
	}
	_ = f.Close()

	slog.Info("Downloaded", "dest", dest, "size", fmt.Sprintf("%.1fMB", float64(written)/1024/1024))
	return nil
}
