package cli

import (
	"sync"

	"github.com/felixgeelhaar/todolist/pkg/config"
	"github.com/felixgeelhaar/todolist/pkg/todoclient"
)

// App holds the CLI application dependencies.
type App struct {
	Config *config.Config
	Client *todoclient.Client
}

// NewApp creates an App whose client targets cfg.APIURL.
func NewApp(cfg *config.Config) *App {
	return &App{
		Config: cfg,
		Client: todoclient.New(cfg.APIURL),
	}
}

var (
	appMu     sync.RWMutex
	globalApp *App
)

// SetApp sets the global app instance.
func SetApp(a *App) {
	appMu.Lock()
	defer appMu.Unlock()
	globalApp = a
}

// GetApp returns the global app instance.
func GetApp() *App {
	appMu.RLock()
	defer appMu.RUnlock()
	return globalApp
}
