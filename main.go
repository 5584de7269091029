package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/journal"
	"github.com/ratel-online/uno/state"
	"github.com/ratel-online/uno/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	if err := run(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	logger, closer, err := journal.Open(cfg.Journal, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	j, err := journal.New(logger)
	if err != nil {
		return err
	}
	log.Infof("game %s, %d players\n", j.GameID(), cfg.Players)

	console := ui.NewStdConsole(cfg.Pause)
	err = state.Load(state.NewSession(cfg, console, console, j))
	if errors.Is(err, consts.ErrorsInputClosed) {
		return nil
	}
	return err
}
