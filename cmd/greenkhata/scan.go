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
	"github.com/spf13/cobra"
)

func scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [message]",
		Short: "Scan a message for carbon-relevant activity",
		Long: `Run the carbon pipeline on one or many SMS messages: quantity and amount
extraction, emission category, and GHG scope attribution.

Examples:
  greenkhata scan "Purchased 40 liters diesel for truck"
  echo "Electricity bill: 250 kWh consumed" | greenkhata scan
  greenkhata scan --file messages.tsv          # sender<TAB>text per line`,
		RunE: runScan,
	}

	// Flags
	cmd.Flags().StringP("sender", "s", "", "Sender ID of the message")
	cmd.Flags().StringP("file", "f", "", "Batch file with one sender<TAB>text message per line")
	cmd.Flags().Bool("json", false, "Emit JSON instead of styled output")

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	sender, _ := cmd.Flags().GetString("sender")
	file, _ := cmd.Flags().GetString("file")
	asJSON, _ := cmd.Flags().GetBool("json")

	msgs, batch, err := readMessages(args, sender, file)
	if err != nil {
		return err
	}

	// The carbon pipeline is rules-only; no model load needed.
	eng := engine.NewRulesOnly(slog.Default())

	if batch {
		return scanBatch(eng, msgs)
	}

	msg := msgs[0]
	result := eng.ProcessMessage(msg)

	if asJSON {
		return writeJSON(os.Stdout, scanRecord(uuid.NewString(), msg, result))
	}

	fmt.Println(cli.RenderProcess(result))
	return nil
}

func scanBatch(eng *engine.Engine, msgs []model.Message) error {
	bar := newBatchBar(len(msgs), "Scanning messages...")

	spamCount := 0
	enc := json.NewEncoder(os.Stdout)
	for _, msg := range msgs {
		result := eng.ProcessMessage(msg)
		if result.IsSpam {
			spamCount++
		}
		if err := enc.Encode(scanRecord(uuid.NewString(), msg, result)); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
		if err := bar.Add(1); err != nil {
			slog.Warn("Failed to update progress bar", "error", err)
		}
	}

	summary := cli.FormatSuccess(fmt.Sprintf("%d messages scanned", len(msgs)))
	if spamCount > 0 {
		summary += "\n" + cli.FormatWarning(fmt.Sprintf("%d flagged as not relevant", spamCount))
	}
	fmt.Fprintln(os.Stderr, cli.RenderBox("Scan Complete", summary))
	return nil
}
