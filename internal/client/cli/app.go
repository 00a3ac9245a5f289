package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/sam-ezra/todo/internal/client/config"
	"github.com/sam-ezra/todo/internal/client/facade"
	"github.com/sam-ezra/todo/internal/client/local"
	"github.com/sam-ezra/todo/internal/client/models"
	"github.com/sam-ezra/todo/internal/client/remote"
	"github.com/sam-ezra/todo/internal/client/repositories/metadata"
	"github.com/sam-ezra/todo/internal/client/session"
	"github.com/sam-ezra/todo/internal/client/store"
	"github.com/sam-ezra/todo/internal/client/viewmodel"

	_ "modernc.org/sqlite"
)

// App owns the interactive client: the storage facade, the view model the
// commands render from, and the input reader.
type App struct {
	config *config.Config
	api    facade.API
	vm     *viewmodel.ViewModel
	reader *bufio.Reader
	lang   models.Language
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := store.Get(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	sess := session.New(metadata.NewSQLiteRepository(db))
	api := facade.New(local.New(c.DatabasePath), remote.New(c.ServerEndpointAddr, sess), sess)

	app := &App{
		config: c,
		api:    api,
		vm:     viewmodel.New(api),
		reader: bufio.NewReader(os.Stdin),
		lang:   models.LanguageEnglish,
	}

	// Best effort: a missing or unreadable preference keeps the default.
	if s, err := api.GetSettings(ctx); err == nil && s.Language != nil {
		app.lang = *s.Language
	}

	return app, nil
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Todo CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status(ctx), scanner)
}

// status renders the prompt suffix: the account email when authenticated,
// "local" while anonymous.
func (a *App) status(ctx context.Context) func() string {
	return func() string {
		if !a.isLoggedIn(ctx) {
			return "local"
		}
		email, err := a.api.UserInfo(ctx)
		if err != nil {
			return "online"
		}
		return email
	}
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	anonymous, err := a.api.IsAnonymous(ctx)
	if err != nil {
		return false
	}
	return !anonymous
}
