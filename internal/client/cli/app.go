package cli

import (
	"bufio"
	"context"
	"log"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/travelkeeper/internal/client/client"
	"github.com/dmitrijs2005/travelkeeper/internal/client/config"
	"github.com/dmitrijs2005/travelkeeper/internal/client/connectivity"
	"github.com/dmitrijs2005/travelkeeper/internal/client/models"
	"github.com/dmitrijs2005/travelkeeper/internal/client/remote"
	"github.com/dmitrijs2005/travelkeeper/internal/client/services"
	"github.com/dmitrijs2005/travelkeeper/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

type App struct {
	config        *config.Config
	authService   *services.AuthService
	travelService *services.TravelService
	currentUser   *models.User
	reader        *bufio.Reader

	// mode is shared between the REPL goroutine and the online-status
	// watcher; guard every access with mu.
	mu   sync.Mutex
	mode Mode
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	repos, err := client.InitDatabase(ctx, c.DatabaseFile)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	apiClient := remote.New(c.ServerURL)
	checker := connectivity.NewHTTPChecker(c.ServerURL, 3*time.Second)

	hybrid := services.NewHybridTravelRepository(apiClient, repos.Travels, checker, logger)

	as := services.NewAuthService(apiClient, repos.Users, logger)
	ts := services.NewTravelService(hybrid, apiClient, logger)

	return &App{config: c, authService: as, travelService: ts, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	if changed {
		a.mode = mode
	}
	a.mu.Unlock()

	if changed {
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) currentMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.currentUser != nil
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.authService.Ping(ctx)
			cancel()

			if err != nil {
				if a.currentMode() == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
