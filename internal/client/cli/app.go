package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/tenantline/internal/client/client"
	"github.com/dmitrijs2005/tenantline/internal/client/config"
	"github.com/dmitrijs2005/tenantline/internal/client/models"
	"github.com/dmitrijs2005/tenantline/internal/client/services"
	"github.com/dmitrijs2005/tenantline/internal/logging"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

type App struct {
	config      *config.Config
	log         logging.Logger
	authService services.AuthService
	client      client.Client
	session     *services.Session
	messenger   *services.Messenger

	masterKey []byte
	userName  string
	profile   *models.Profile

	modeMu sync.RWMutex
	mode   Mode

	reader *bufio.Reader

	outMu sync.Mutex
	out   io.Writer

	// async send reporters
	pending sync.WaitGroup
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewTextLogger(os.Stderr, logging.ParseLevel(c.LogLevel))

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{
		config:      c,
		log:         log,
		authService: services.NewAuthService(apiClient, db),
		client:      apiClient,
		session:     services.NewSession(db),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// printf writes user-facing output. Async send results print from their own
// goroutines, so writes are serialized.
func (a *App) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	w := a.out
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, format, args...)
}

func (a *App) Mode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.log.Info(context.Background(), "switched mode", "mode", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)
	defer a.closeMessenger()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.masterKey != nil
}

func (a *App) closeMessenger() {
	if a.messenger != nil {
		a.messenger.Close()
		a.messenger = nil
	}
	a.pending.Wait()
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.authService.Ping(ctx)
			cancel()

			if err != nil {
				if a.Mode() == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode() != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
