package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/time/rate"

	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/config"
	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/core/ports"
	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/ui"
)

// App wires the three views to the terminal. The registry, uploader and chat
// each own their state; the only cross-view channel is the shared refresh
// counter bumped on upload and delete successes.
type App struct {
	cfg    config.Config
	logger *slog.Logger

	backend  ports.Backend
	registry *ui.Registry
	uploader *ui.Uploader
	chat     *ui.Chat

	reader *bufio.Reader
	out    io.Writer

	refreshMu     sync.Mutex
	refreshSignal int

	watchMu      sync.Mutex
	watchCancel  context.CancelFunc
	watchLimiter *rate.Limiter
}

func NewApp(cfg config.Config, logger *slog.Logger, backend ports.Backend) *App {
	a := &App{
		cfg:     cfg,
		logger:  logger,
		backend: backend,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	prompter := &stdinPrompter{reader: a.reader, out: a.out}
	alerter := &stdinAlerter{reader: a.reader, out: a.out}

	a.registry = ui.NewRegistry(backend, prompter, alerter, a.bumpRefreshSignal)
	a.uploader = ui.NewUploader(backend, a.bumpRefreshSignal)
	a.chat = ui.NewChat(backend, prompter, cfg.ChatViewportRows)

	rps := cfg.WatchMaxRefreshRPS
	if rps <= 0 {
		rps = 1
	}
	a.watchLimiter = rate.NewLimiter(rate.Limit(rps), 1)
	return a
}

func (a *App) Run(ctx context.Context) {
	defer a.watchOff()
	a.runREPL(ctx)
}

func (a *App) bumpRefreshSignal() {
	a.refreshMu.Lock()
	a.refreshSignal++
	a.refreshMu.Unlock()
}

func (a *App) currentRefreshSignal() int {
	a.refreshMu.Lock()
	defer a.refreshMu.Unlock()
	return a.refreshSignal
}

// syncRegistry applies any pending refresh signal before a listing is shown.
func (a *App) syncRegistry(ctx context.Context) {
	a.registry.SyncRefreshSignal(ctx, a.currentRefreshSignal())
}
