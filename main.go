package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pawns-board/internal/config"
	"pawns-board/internal/deck"
	"pawns-board/internal/game"
	"pawns-board/internal/view"
)

// Hot-seat mode: both players share one terminal. The online mode lives
// under cmd/server.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	variant, err := deck.ParseVariant(cfg.DeckVariant)
	if err != nil {
		log.Fatal().Err(err).Msg("loading deck")
	}
	var cards []game.Card
	if cfg.DeckFile != "" {
		cards, err = deck.ReadFile(cfg.DeckFile, variant)
	} else {
		cards, err = deck.Starter(variant)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("loading deck")
	}

	seed := cfg.ShuffleSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	e := game.NewEngine()
	err = e.StartGame(cfg.BoardRows, cfg.BoardCols,
		deck.Shuffled(cards, seed), deck.Shuffled(cards, seed+1), cfg.HandSize)
	if err != nil {
		log.Fatal().Err(err).Msg("starting game")
	}

	fmt.Println("Pawns Board, hot-seat mode.")
	fmt.Println("Commands: place <card> <row> <col>, pass, quit. All numbers are zero-based.")

	reader := bufio.NewReader(os.Stdin)
	for {
		if over, _ := e.IsOver(); over {
			break
		}
		printTurn(e)

		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "place":
			if len(fields) != 4 {
				fmt.Println("Usage: place <card> <row> <col>")
				continue
			}
			idx, err1 := strconv.Atoi(fields[1])
			row, err2 := strconv.Atoi(fields[2])
			col, err3 := strconv.Atoi(fields[3])
			if err1 != nil || err2 != nil || err3 != nil {
				fmt.Println("Card, row and col must be numbers.")
				continue
			}
			if err := e.PlaceCard(idx, row, col); err != nil {
				fmt.Println("Invalid move:", err)
			}
		case "pass":
			if err := e.PassTurn(); err != nil {
				fmt.Println("Cannot pass:", err)
			}
		case "quit", "exit":
			return
		case "help":
			fmt.Println("Commands: place <card> <row> <col>, pass, quit. All numbers are zero-based.")
		default:
			fmt.Println("Commands: place <card> <row> <col>, pass, quit")
		}
	}

	printResult(e)
}

func printTurn(e *game.Engine) {
	current, _ := e.CurrentPlayer()
	board, _ := view.Render(e)
	hand, _ := e.Hand(current)

	fmt.Printf("\n%s to move\n", current)
	fmt.Print(board)
	fmt.Print(view.RenderHand(hand))
}

func printResult(e *game.Engine) {
	board, _ := view.Render(e)
	fmt.Println("\nGame over!")
	fmt.Print(board)

	winner, err := e.Winner()
	if err != nil {
		return
	}
	if winner == game.NoPlayer {
		fmt.Println("The game is a tie.")
		return
	}
	fmt.Printf("%s wins.\n", winner)
}
