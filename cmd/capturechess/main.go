// Command capturechess plays a local two-player game in the terminal.
//
// Enter moves as two squares ("e2 e4"). Other commands: "moves e2" shows
// where a piece may go, "fen" prints the position, "quit" leaves.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/benbeisheim/capturechess-backend/internal/model"
	"github.com/benbeisheim/capturechess-backend/internal/render"
	"github.com/fatih/color"
)

func main() {
	fen := flag.String("fen", "", "start from this position instead of the standard layout")
	unicode := flag.Bool("unicode", false, "draw pieces with chess glyphs")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("capturechess: ")
	if *noColor {
		color.NoColor = true
	}

	game := model.NewGame()
	if *fen != "" {
		var err error
		if game, err = model.NewGameFromFEN(*fen); err != nil {
			log.Fatal(err)
		}
	}

	if err := run(os.Stdin, color.Output, game, render.Options{Unicode: *unicode}); err != nil {
		log.Fatal(err)
	}
}

func run(in io.Reader, out io.Writer, game *model.Game, opts render.Options) error {
	if err := render.Board(out, game.Board(), opts); err != nil {
		return err
	}
	prompt(out, game)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		switch {
		case len(fields) == 0:
		case fields[0] == "quit" || fields[0] == "exit":
			return nil
		case fields[0] == "fen":
			fmt.Fprintf(out, "%s %c\n", game.Board().FEN(), game.Turn()[0])
		case fields[0] == "moves" && len(fields) == 2:
			dests := game.LegalDestinations(fields[1])
			labels := make([]string, len(dests))
			for i, sq := range dests {
				labels[i] = sq.String()
			}
			hl := opts
			hl.Highlight = dests
			if err := render.Board(out, game.Board(), hl); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: %s\n", fields[1], strings.Join(labels, " "))
		case len(fields) == 2:
			if err := game.Move(fields[0], fields[1]); err != nil {
				var moveErr *model.MoveError
				if errors.As(err, &moveErr) {
					err = moveErr.Err
				}
				fmt.Fprintf(out, "rejected: %v\n", err)
				break
			}
			if err := render.Board(out, game.Board(), opts); err != nil {
				return err
			}
			if winner, over := game.Winner(); over {
				fmt.Fprintf(out, "%s wins (%s)\n", winner, game.State())
				return nil
			}
		default:
			fmt.Fprintln(out, `enter a move like "e2 e4", "moves e2", "fen" or "quit"`)
		}
		prompt(out, game)
	}
	return scanner.Err()
}

func prompt(out io.Writer, game *model.Game) {
	fmt.Fprintf(out, "%s to move> ", game.Turn())
}
