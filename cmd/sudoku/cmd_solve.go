package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/domain"
)

var (
	solveEngine  string
	solveTimeout time.Duration
	solveUnique  bool
)

var commandSolve = &cobra.Command{
	Use:   "solve [puzzle]",
	Short: "Solve a puzzle given in one-line notation (argument, file via @path, or stdin)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := solveCmd(args); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	commandSolve.Flags().StringVar(&solveEngine, "engine", "backtrack", "solver engine: backtrack|dlx")
	commandSolve.Flags().DurationVar(&solveTimeout, "timeout", 30*time.Second, "abort the search after this long")
	commandSolve.Flags().BoolVar(&solveUnique, "unique", false, "also report whether the solution is unique")
	mainCommand.AddCommand(commandSolve)
}

// readPuzzleArg resolves the puzzle text from the argument, an @file
// reference, or stdin when no argument is given.
func readPuzzleArg(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if len(args[0]) > 1 && args[0][0] == '@' {
		data, err := os.ReadFile(args[0][1:])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return args[0], nil
}

func solveCmd(args []string) error {
	text, err := readPuzzleArg(args)
	if err != nil {
		return err
	}
	b, err := domain.ParseText(text)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), solveTimeout)
	defer cancel()

	s := newSolver(solveEngine)
	if solveUnique {
		count, _, err := s.CountSolutions(ctx, b, 2)
		if err != nil {
			return err
		}
		switch count {
		case 0:
			log.Debug("no solution while counting")
		case 1:
			fmt.Println("solution is unique")
		default:
			fmt.Println("multiple solutions exist")
		}
	}

	solved, st, err := s.Solve(ctx, b)
	if err != nil {
		return err
	}
	log.WithField("nodes", st.Nodes).WithField("dur", st.Duration.Round(time.Microsecond)).Debug("search finished")
	if !solved {
		fmt.Println("no solution")
		return nil
	}
	fmt.Print(b.String())
	return nil
}
