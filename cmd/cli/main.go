package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/aliskhannn/guess-the-flag-bot/internal/domain/entities"
	"github.com/aliskhannn/guess-the-flag-bot/internal/service"
)

func main() {
	seed := pflag.Int64("seed", 0, "random seed, 0 seeds from the clock")
	pflag.Parse()

	m := service.NewQuizStateMachine(service.NewRand(*seed))
	if err := play(m, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// play runs rounds until the input ends or the player declines a restart.
func play(m *service.QuizStateMachine, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	state := m.Start()

	for {
		if state.IsRoundOver {
			fmt.Fprintf(out, "\nGame Over\nYour final score is %d/%d\nRestart game? [y/N] ", state.Score, entities.TotalQuestions)
			if !scanner.Scan() {
				return scanner.Err()
			}
			if !strings.EqualFold(strings.TrimSpace(scanner.Text()), "y") {
				return nil
			}
			state = m.Restart()
			continue
		}

		fmt.Fprintf(out, "\nQuestion %d/%d  Score: %d\nTap the flag of %s\n",
			state.QuestionNumber, entities.TotalQuestions, state.Score, state.Target())
		for i, c := range state.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, c.Flag())
		}
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			return scanner.Err()
		}

		choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(out, "Enter 1, 2 or 3.")
			continue
		}

		result, err := m.Answer(choice - 1)
		if err != nil {
			fmt.Fprintln(out, "Enter 1, 2 or 3.")
			continue
		}

		if result.IsCorrect {
			fmt.Fprintln(out, "Correct")
		} else {
			fmt.Fprintf(out, "Wrong! That's the flag of %s\n", result.Selected)
		}
		fmt.Fprintf(out, "Your score is %d\n", m.State().Score)

		state = m.Next()
	}
}
