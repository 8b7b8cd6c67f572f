package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/mepo/stallkeeper/internal/client/config"
	"github.com/mepo/stallkeeper/internal/client/localdb"
	"github.com/mepo/stallkeeper/internal/client/services"
	"github.com/mepo/stallkeeper/internal/client/session"
	"github.com/mepo/stallkeeper/internal/logging"
	"github.com/mepo/stallkeeper/internal/recordstore"
	"github.com/mepo/stallkeeper/internal/recordstore/applicants"
	"github.com/mepo/stallkeeper/internal/recordstore/payments"
	"github.com/mepo/stallkeeper/internal/recordstore/registrants"
	"github.com/mepo/stallkeeper/internal/recordstore/stalls"
)

// App holds everything a running client needs: the session manager, one
// service per screen and the reader/writer pair the prompts use.
type App struct {
	config  *config.Config
	log     logging.Logger
	localDB *sql.DB
	remote  *sql.DB
	session *session.Manager

	auth      services.AuthService
	dashboard *services.DashboardService
	stalls    *services.StallService
	profile   *services.ProfileService
	documents *services.DocumentService
	messages  *services.MessageService
	feed      *services.Feed

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local database, connects to the record store and wires
// the services. The session is restored from the local store before the
// first prompt is shown.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	localDB, err := localdb.Open(ctx, "file:"+cfg.LocalDBPath)
	if err != nil {
		log.Error(ctx, "error initializing local database", "error", err)
		return nil, err
	}

	remote, err := recordstore.Open(ctx, cfg.RecordStoreDSN)
	if err != nil {
		log.Error(ctx, "error connecting to record store", "error", err)
		_ = localDB.Close()
		return nil, err
	}

	sess := session.NewManager(localDB, log)
	if err := sess.Initialize(ctx); err != nil {
		log.Warn(ctx, "session restore failed, starting logged out", "error", err)
	}

	feed := services.NewFeed()
	objectStore := services.ObjectStoreConfig{
		Region:    cfg.ObjectStoreRegion,
		Endpoint:  cfg.ObjectStoreEndpoint,
		AccessKey: cfg.ObjectStoreAccessKey,
		SecretKey: cfg.ObjectStoreSecretKey,
		Bucket:    cfg.ObjectStoreBucket,
	}

	return &App{
		config:    cfg,
		log:       log,
		localDB:   localDB,
		remote:    remote,
		session:   sess,
		auth:      services.NewAuthService(registrants.NewPostgresRepository(remote), sess, localDB, log),
		dashboard: services.NewDashboardService(payments.NewPostgresRepository(remote), sess),
		stalls:    services.NewStallService(stalls.NewPostgresRepository(remote), sess, feed),
		profile:   services.NewProfileService(applicants.NewPostgresRepository(remote), registrants.NewPostgresRepository(remote), sess, log),
		documents: services.NewDocumentService(localDB, objectStore, sess, log),
		messages:  services.NewMessageService(localDB, log),
		feed:      feed,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

// opCtx bounds a single store operation with the configured request timeout.
// Prompting for input never runs under this deadline; handlers collect their
// input first and wrap only the service call.
func (a *App) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

// status renders the prompt suffix: the acting stallholder's name, if any.
func (a *App) status() string {
	if id, ok := a.session.Current(); ok {
		return "(" + id.FullName + ")"
	}
	return ""
}

// Run drives the REPL until EOF or an exit command, then releases both
// database handles.
func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.remote.Close()
		_ = a.localDB.Close()
	}()
	a.Root(ctx)
}
