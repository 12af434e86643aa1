// Package main contains the greenkhata CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/greenkhata/greenkhata/internal/cli"
	"github.com/greenkhata/greenkhata/internal/engine"
	"github.com/greenkhata/greenkhata/internal/model"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [message]",
		Short: "Categorize a transaction message",
		Long: `Run the expense pipeline on one or many SMS messages: merchant lookup,
UPI parsing, keyword cascade, amount extraction, and industry sector.

Examples:
  greenkhata classify "Rs.500 debited to SWIGGY@ybl. UPI Ref: 123456789012"
  echo "Paid Rs.350 to tata-sky@okaxis" | greenkhata classify
  greenkhata classify --file messages.tsv          # sender<TAB>text per line
  greenkhata classify --sender VM-HDFCBK "Rs.2000 credited to A/c XX1234"`,
		RunE: runClassify,
	}

	// Flags
	cmd.Flags().StringP("sender", "s", "", "Sender ID of the message")
	cmd.Flags().StringP("file", "f", "", "Batch file with one sender<TAB>text message per line")
	cmd.Flags().Bool("json", false, "Emit JSON instead of styled output")
	cmd.Flags().Bool("rules-only", false, "Skip the statistical spam scorer")
	cmd.Flags().Bool("verdict", false, "Also print the spam/transaction verdict")

	// Bind to viper (errors are rare and can be ignored in practice)
	_ = viper.BindPFlag("classify.json", cmd.Flags().Lookup("json"))
	_ = viper.BindPFlag("classify.rules_only", cmd.Flags().Lookup("rules-only"))

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	sender, _ := cmd.Flags().GetString("sender")
	file, _ := cmd.Flags().GetString("file")
	asJSON := viper.GetBool("classify.json")
	verdict, _ := cmd.Flags().GetBool("verdict")

	msgs, batch, err := readMessages(args, sender, file)
	if err != nil {
		return err
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}

	if batch {
		return classifyBatch(eng, msgs)
	}

	msg := msgs[0]
	result := eng.ClassifyExpense(msg)

	if asJSON {
		return writeJSON(os.Stdout, expenseRecord(uuid.NewString(), msg, result))
	}

	fmt.Println(cli.RenderExpense(result))
	if verdict {
		fmt.Println(cli.RenderVerdict(eng.DetectSpam(msg)))
	}
	return nil
}

// classifyBatch runs the expense pipeline over every message, writing one
// JSON record per line to stdout. The progress bar goes to stderr so the
// output stream stays machine-readable.
func classifyBatch(eng *engine.Engine, msgs []model.Message) error {
	bar := newBatchBar(len(msgs), "Classifying messages...")

	classified := 0
	enc := json.NewEncoder(os.Stdout)
	for _, msg := range msgs {
		result := eng.ClassifyExpense(msg)
		if result.Category != model.CategoryOther {
			classified++
		}
		if err := enc.Encode(expenseRecord(uuid.NewString(), msg, result)); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
		if err := bar.Add(1); err != nil {
			slog.Warn("Failed to update progress bar", "error", err)
		}
	}

	summary := cli.FormatSuccess(fmt.Sprintf("%d messages processed", len(msgs))) + "\n" +
		fmt.Sprintf("  • Categorized: %d\n", classified) +
		fmt.Sprintf("  • Unclassified: %d", len(msgs)-classified)
	fmt.Fprintln(os.Stderr, cli.RenderBox("Classification Complete", summary))
	return nil
}

func newEngine() (*engine.Engine, error) {
	logger := slog.Default()
	if viper.GetBool("classify.rules_only") {
		return engine.NewRulesOnly(logger), nil
	}
	eng, err := engine.New(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	return eng, nil
}

func newBatchBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[green][bold]"+description+"[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(os.Stderr); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

func writeJSON(w *os.File, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
