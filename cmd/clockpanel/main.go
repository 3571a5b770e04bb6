package main

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/clockpanel/internal/config"
	"github.com/jask/clockpanel/internal/logging"
	"github.com/jask/clockpanel/internal/timefeed"
	"github.com/jask/clockpanel/internal/tui"
	"github.com/jask/clockpanel/widgets"
	"github.com/jask/clockpanel/worldclock"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer logger.Sync()

	feed, err := timefeed.New(timefeed.SystemClock{})
	if err != nil {
		log.Fatalf("time zones: %v", err)
	}

	corner, ok := widgets.ParseCorner(cfg.UI.Corner)
	if !ok {
		log.Printf("warn: unknown corner %q, using top-right", cfg.UI.Corner)
	}

	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		log.Printf("warn: using local timezone due to load failure: %v", err)
		loc = time.Local
	}

	clock := worldclock.New(logger, feed, corner)

	p := tea.NewProgram(tui.New(cfg, logger, clock, loc),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
