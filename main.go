package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/exp/rand"

	"github.com/sheikhrachel/gol-board/game"
	"github.com/sheikhrachel/gol-board/ui"
	"github.com/sheikhrachel/gol-board/utils"
)

const configFile = "config.json"

func main() {
	config, found, err := utils.LoadConfigOrDefault(configFile)
	if err != nil {
		log.Fatalf("config: %+v", err)
	}
	if !found {
		fmt.Printf("Using default configuration (%s not found)\n", configFile)
	}

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	board, err := game.NewBoard(config, rng)
	if err != nil {
		log.Fatalf("board: %+v", err)
	}

	if config.Headless {
		game.RunHeadless(board, config, os.Stdout)
		return
	}

	if err = ui.Run(ui.NewGame(board, config.CellSize)); err != nil {
		log.Fatalf("window: %+v", err)
	}
}
