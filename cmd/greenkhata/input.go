package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/greenkhata/greenkhata/internal/model"
)

// readMessages resolves the command's input into messages. Precedence:
// --file batch, then positional args joined into one message, then stdin.
// The second return reports whether the input was a batch file.
func readMessages(args []string, sender, file string) ([]model.Message, bool, error) {
	if file != "" {
		msgs, err := readBatchFile(file)
		return msgs, true, err
	}

	if len(args) > 0 {
		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			return nil, false, fmt.Errorf("empty message text")
		}
		return []model.Message{{Text: text, Sender: sender}}, false, nil
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read stdin: %w", err)
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil, false, fmt.Errorf("no message given (pass text as an argument, pipe it on stdin, or use --file)")
	}
	return []model.Message{{Text: text, Sender: sender}}, false, nil
}

// readBatchFile parses a batch file of one message per line. Lines are
// sender<TAB>text; a line without a tab is treated as text with no sender.
// Blank lines and lines starting with # are skipped.
func readBatchFile(path string) ([]model.Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open batch file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "failed to close %s: %v\n", path, closeErr)
		}
	}()

	var msgs []model.Message
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sender, text, found := strings.Cut(line, "\t")
		if !found {
			msgs = append(msgs, model.Message{Text: line})
			continue
		}
		msgs = append(msgs, model.Message{
			Sender: strings.TrimSpace(sender),
			Text:   strings.TrimSpace(text),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	if len(msgs) == 0 {
		return nil, fmt.Errorf("batch file %s contains no messages", path)
	}
	return msgs, nil
}
