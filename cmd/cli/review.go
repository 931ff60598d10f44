package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/sevigo/code-review-reporter/internal/config"
	"github.com/sevigo/code-review-reporter/internal/core"
	"github.com/sevigo/code-review-reporter/internal/review"
	"github.com/sevigo/code-review-reporter/internal/wire"
)

const maxConcurrentReads = 8

func newReviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review [files...]",
		Short: "Review source files and upload the PDF report",
		Args:  cobra.ArbitraryArgs,
		RunE:  runReview,
	}

	cmd.Flags().StringP("output", "o", "json", "response format: json or yaml")
	cmd.Flags().Bool("preview", false, "print the generated review as rendered markdown")

	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("preview", cmd.Flags().Lookup("preview"))
	return cmd
}

func runReview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	files, err := readFiles(ctx, args)
	if err != nil {
		return err
	}

	svc, err := wire.InitializeService(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize review service: %w", err)
	}

	report, reviewErr := svc.Review(ctx, &core.ReviewRequest{Files: files})
	resp := review.Respond(report, reviewErr)

	out := cmd.OutOrStdout()
	printStatus(cmd.ErrOrStderr(), resp)

	if reviewErr == nil && viper.GetBool("preview") {
		if err := printPreview(out, report.Text); err != nil {
			return err
		}
	}

	if err := writeResponse(out, resp, viper.GetString("output")); err != nil {
		return err
	}
	if reviewErr != nil {
		return reviewErr
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.LoadConfigFile(configFile)
	}
	return config.LoadConfig()
}

// readFiles loads every path concurrently, keeping the argument order.
func readFiles(ctx context.Context, paths []string) ([]string, error) {
	files := make([]string, len(paths))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, path := range paths {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			files[i] = string(data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

func printStatus(w io.Writer, resp core.ReviewResponse) {
	switch {
	case resp.StatusCode == http.StatusOK:
		_, _ = color.New(color.FgGreen, color.Bold).Fprintln(w, "✔ review report published")
	case resp.StatusCode < http.StatusInternalServerError:
		_, _ = color.New(color.FgYellow, color.Bold).Fprintf(w, "✘ request rejected: %s\n", resp.Body)
	default:
		stage := resp.Headers[core.StageHeader]
		if stage == "" {
			stage = "unknown"
		}
		_, _ = color.New(color.FgRed, color.Bold).Fprintf(w, "✘ review failed at %s stage\n", stage)
	}
}

func printPreview(w io.Writer, text string) error {
	rendered, err := glamour.Render(text, "dark")
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}
	_, err = fmt.Fprintln(w, rendered)
	return err
}

func writeResponse(w io.Writer, resp core.ReviewResponse, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("failed to encode response: %w", err)
		}
		return enc.Close()
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
