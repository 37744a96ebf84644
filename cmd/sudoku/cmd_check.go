package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/validator"
)

var commandCheck = &cobra.Command{
	Use:   "check [puzzle]",
	Short: "Check a puzzle for row/column/box conflicts",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := checkCmd(args); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	mainCommand.AddCommand(commandCheck)
}

func checkCmd(args []string) error {
	text, err := readPuzzleArg(args)
	if err != nil {
		return err
	}
	b, err := domain.ParseText(text)
	if err != nil {
		return err
	}
	ok, conflicts, err := validator.New().Validate(context.Background(), b)
	if err != nil {
		return err
	}
	if ok {
		fmt.Println("ok")
		return nil
	}
	for _, c := range conflicts {
		fmt.Printf("conflict at row %d, col %d\n", c.Row, c.Col)
	}
	return fmt.Errorf("%d conflict(s)", len(conflicts))
}
