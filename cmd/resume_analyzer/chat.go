package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/advice"
	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/spf13/cobra"
)

var (
	chatJob     jobFlags
	chatMessage string
)

var chatCmd = &cobra.Command{
	Use:   "chat <file>",
	Short: "Ask questions about a résumé",
	Long: `Analyze a résumé against a job, then answer questions about it.
With --message a single reply is printed. Otherwise questions are read from stdin,
one per line, until EOF or "exit".`,
	Args: cobra.ExactArgs(1),
	RunE: runChat,
}

func init() {
	chatJob.register(chatCmd)
	chatCmd.Flags().StringVarP(&chatMessage, "message", "m", "", "Ask one question and exit")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	req, _, err := chatJob.request(cmd.Context(), appConfig)
	if err != nil {
		return err
	}
	lines, err := extraction.ExtractFile(args[0])
	if err != nil {
		return err
	}
	result, err := analyzer.AnalyzeResume(lines, req)
	if err != nil {
		return err
	}

	conv := analyzer.NewConversation(result)
	out := cmd.OutOrStdout()

	if chatMessage != "" {
		reply, _ := analyzer.Ask(conv, chatMessage)
		_, _ = fmt.Fprintln(out, reply)
		return nil
	}

	_, err = chatLoop(cmd.InOrStdin(), out, conv)
	return err
}

// chatLoop answers each stdin line and returns the final conversation.
func chatLoop(in io.Reader, out io.Writer, conv types.Conversation) (types.Conversation, error) {
	_, _ = fmt.Fprintln(out, advice.WelcomeMessage)

	scanner := bufio.NewScanner(in)
	for {
		_, _ = fmt.Fprint(out, "\n> ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if lower := strings.ToLower(message); lower == "exit" || lower == "quit" {
			break
		}

		var reply string
		reply, conv = analyzer.Ask(conv, message)
		_, _ = fmt.Fprintln(out, reply)
	}
	_, _ = fmt.Fprintln(out)

	if err := scanner.Err(); err != nil {
		return conv, fmt.Errorf("failed to read input: %w", err)
	}
	return conv, nil
}
