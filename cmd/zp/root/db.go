package root

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"zenplan/internal/config"
	"zenplan/internal/plan"
	"zenplan/internal/remind"
	"zenplan/internal/storage"
	"zenplan/internal/ui"
)

func loadConfig() config.Config {
	path, err := config.ResolvePath()
	if err != nil {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Default()
	}
	return cfg
}

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

// openService wires a service for one-shot commands. Reminders only
// fire while a process is alive, so these get a no-op scheduler; the
// board opens its own running one via openBoardService.
func openService(ctx context.Context) (*plan.Service, config.Config, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	cfg := loadConfig()
	svc := plan.NewService(db, remind.NopScheduler{}, termNotifier{haptics: cfg.HapticsEnabled})
	return svc, cfg, cleanup, nil
}

func openBoardService(ctx context.Context) (*plan.Service, config.Config, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	cfg := loadConfig()
	sch := remind.NewCronScheduler(time.Local, os.Stdout)
	sch.Start()
	svc := plan.NewService(db, sch, termNotifier{haptics: cfg.HapticsEnabled})
	stop := func() {
		sch.Stop()
		cleanup()
	}
	return svc, cfg, stop, nil
}

// termNotifier stands in for the haptics-and-toast layer of a touch
// device: a short confirmation line on success, nothing on taps.
type termNotifier struct {
	haptics bool
}

func (n termNotifier) Success(msg string) {
	fmt.Println(ui.Good.Render(ui.IconSparkle + " " + msg))
}

func (n termNotifier) Tap() {
	if n.haptics {
		fmt.Println(ui.Muted.Render("·"))
	}
}
