package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/sachink160/multitool-client/internal/client/blob"
	"github.com/sachink160/multitool-client/internal/client/client"
	"github.com/sachink160/multitool-client/internal/client/config"
	"github.com/sachink160/multitool-client/internal/client/models"
	"github.com/sachink160/multitool-client/internal/client/repositories/metadata"
	"github.com/sachink160/multitool-client/internal/client/services"
	"github.com/sachink160/multitool-client/internal/client/tokens"
	"github.com/sachink160/multitool-client/internal/logging"
)

// App holds every long-lived component of one CLI process.
type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	meta   metadata.Repository
	api    *client.HTTPClient
	blobs  *blob.Registry

	session   *services.Session
	account   *services.AccountService
	dashboard *services.DashboardService
	docs      *services.DocumentService
	hr        *services.HRService
	chat      *services.ChatService
	video     *services.VideoService
	prompts   *services.PromptService
	resumes   *services.ResumeService
	images    *services.ImageService
	subs      *services.SubscriptionService
	crm       *services.CRMService
	settings  *services.SettingsService

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the token store selected by c and builds the App on top of
// it. With c.Ephemeral set nothing is written to disk.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if c.Ephemeral {
		return newApp(c, logger, tokens.NewMemoryStore(), nil)
	}

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	a, err := newApp(c, logger, tokens.NewSQLiteStore(db), db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return a, nil
}

func newApp(c *config.Config, logger logging.Logger, store tokens.Store, db *sql.DB) (*App, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	api, err := client.New(c.ServerURL, store,
		client.WithLogger(logger),
		client.WithTimeout(c.RequestTimeout),
	)
	if err != nil {
		return nil, err
	}

	session := services.NewSession(api, store, logger)
	api.SetAuthFailureHandler(session.HandleAuthFailure)

	blobs := blob.NewRegistry()

	a := &App{
		config:    c,
		logger:    logger,
		db:        db,
		api:       api,
		blobs:     blobs,
		session:   session,
		account:   services.NewAccountService(api, session, logger),
		dashboard: services.NewDashboardService(api, logger),
		docs:      services.NewDocumentService(api),
		hr:        services.NewHRService(api),
		chat:      services.NewChatService(api),
		video:     services.NewVideoService(api, logger),
		prompts:   services.NewPromptService(api, logger),
		resumes:   services.NewResumeService(api, logger),
		images:    services.NewImageService(api, blobs, logger),
		subs:      services.NewSubscriptionService(api, session, logger),
		crm:       services.NewCRMService(api, session),
		settings:  services.NewSettingsService(api, session),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}
	if db != nil {
		a.meta = metadata.NewSQLiteRepository(db)
	}

	session.Subscribe(func(state services.State, _ *models.User) {
		if state == services.StateAnonymous {
			a.images.Reset()
		}
	})
	return a, nil
}

// Start resolves the session from the stored tokens.
func (a *App) Start(ctx context.Context) error {
	if err := a.session.Bootstrap(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	return nil
}

// Close releases previews and the database.
func (a *App) Close() error {
	a.images.Close()
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// status is shown in the REPL prompt.
func (a *App) status() string {
	u := a.session.User()
	if u == nil {
		return fmt.Sprintf("(%s)", a.session.State())
	}
	if u.IsAdmin() {
		return fmt.Sprintf("(%s admin)", u.Username)
	}
	return fmt.Sprintf("(%s)", u.Username)
}
