package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"opentdb-quiz/internal/app"
	"opentdb-quiz/internal/config"
	"opentdb-quiz/internal/logger"
)

// NewPlayCmd plays one session in the terminal.
func NewPlayCmd(configPath *string) *cobra.Command {
	var (
		amount     int
		category   string
		difficulty string
		typ        string
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a round of trivia in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("amount") {
				cfg.Quiz.Amount = amount
			}
			if flags.Changed("category") {
				cfg.Quiz.Category = category
			}
			if flags.Changed("difficulty") {
				cfg.Quiz.Difficulty = difficulty
			}
			if flags.Changed("type") {
				cfg.Quiz.Type = typ
			}

			options, err := resolveOptions(cfg)
			if err != nil {
				return err
			}
			log, err := logger.New(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			source, cleanup := newBatchSource(cfg, log)
			defer cleanup()

			game := app.NewGame(source, options, log, app.WithMaxAttempts(cfg.Quiz.MaxAttempts))
			return Play(cmd.Context(), game, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&amount, "amount", "n", 5, "number of questions (1-50)")
	cmd.Flags().StringVarP(&category, "category", "c", "", `category label or id, e.g. "Science: Computers" or 18`)
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "easy, medium or hard")
	cmd.Flags().StringVarP(&typ, "type", "t", "", "boolean or multiple")
	return cmd
}

// Play runs game to completion against a line-oriented terminal.
func Play(ctx context.Context, game *app.Game, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Preparing questions.....")
	if err := game.Start(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out)

	reader := bufio.NewReader(in)
	for !game.IsEnd() {
		question, err := game.Question()
		if err != nil {
			return err
		}
		difficulty, _ := game.Difficulty()
		category, _ := game.Category()
		correctAnswer, _ := game.CorrectAnswer()
		selection, err := game.Selection()
		if err != nil {
			return err
		}
		index, total := game.Progress()

		limiter := strings.Repeat("=", rulerWidth(question))
		fmt.Fprintln(out, limiter)
		fmt.Fprintf(out, "Question %d/%d\n%s\n\nDifficulty: %s\nCategory: %s\n", index+1, total, question, difficulty, category)
		fmt.Fprintln(out, limiter)
		for i, choice := range selection {
			fmt.Fprintf(out, "%d. %s\n", i+1, choice)
		}
		fmt.Fprintln(out, limiter)

		choice, err := readChoice(reader, out, selection)
		if err != nil {
			return err
		}
		correct, err := game.Answer(choice)
		if err != nil {
			return err
		}
		if correct {
			fmt.Fprintln(out, "Correct!")
		} else {
			fmt.Fprintf(out, "Wrong. The correct answer was %s\n", correctAnswer)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Final score: %s\n", game.Score())
	return nil
}

// readChoice re-prompts until the user enters a number in range or input ends.
func readChoice(reader *bufio.Reader, out io.Writer, selection []string) (string, error) {
	for {
		fmt.Fprint(out, "> ")
		line, err := reader.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("read answer: %w", io.ErrUnexpectedEOF)
			}
			return "", fmt.Errorf("read answer: %w", err)
		}

		choice, perr := app.ParseChoice(line, selection)
		if perr == nil {
			return choice, nil
		}
		fmt.Fprintf(out, "%v\n", perr)
		if err != nil {
			return "", fmt.Errorf("read answer: %w", io.ErrUnexpectedEOF)
		}
	}
}

func rulerWidth(question string) int {
	n := utf8.RuneCountInString(question)
	if n < 20 {
		return 20
	}
	if n > 80 {
		return 80
	}
	return n
}
