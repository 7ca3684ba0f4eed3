package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/dungeonkeeper/internal/client/client"
	"github.com/dmitrijs2005/dungeonkeeper/internal/client/config"
	"github.com/dmitrijs2005/dungeonkeeper/internal/client/gate"
	"github.com/dmitrijs2005/dungeonkeeper/internal/client/models"
	"github.com/dmitrijs2005/dungeonkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/dungeonkeeper/internal/client/services"
	"github.com/dmitrijs2005/dungeonkeeper/internal/client/session"
	"github.com/dmitrijs2005/dungeonkeeper/internal/client/storage"
	"github.com/dmitrijs2005/dungeonkeeper/internal/client/token"
	"github.com/dmitrijs2005/dungeonkeeper/internal/common"
	"github.com/dmitrijs2005/dungeonkeeper/internal/logging"
)

// API is the part of the backend the commands use.
type API interface {
	Me(ctx context.Context) (models.UserProfile, error)
	UpdateMe(ctx context.Context, in models.UserUpdate) (models.UserProfile, error)
	UpdateNotificationSettings(ctx context.Context, in models.NotificationSettings) (models.UserProfile, error)

	Tables(ctx context.Context) ([]models.Table, error)
	CreateTable(ctx context.Context, in models.TableCreate) (models.Table, error)
	JoinTable(ctx context.Context, tableID string) error
	ApproveJoinRequest(ctx context.Context, requestID string) error
	DeclineJoinRequest(ctx context.Context, requestID string) error

	Characters(ctx context.Context) ([]models.Character, error)
	Character(ctx context.Context, id string) (models.Character, error)
	CreateCharacter(ctx context.Context, in models.CharacterCreate) (models.Character, error)

	Items(ctx context.Context) ([]models.Item, error)
	CreateItem(ctx context.Context, in models.ItemCreate) (models.Item, error)
	Monsters(ctx context.Context) ([]models.Monster, error)
	CreateMonster(ctx context.Context, in models.MonsterCreate) (models.Monster, error)
	NPCs(ctx context.Context) ([]models.NPC, error)
	CreateNPC(ctx context.Context, in models.NPCCreate) (models.NPC, error)
	Stories(ctx context.Context) ([]models.Story, error)
	CreateStory(ctx context.Context, in models.StoryCreate) (models.Story, error)

	ExportBackup(ctx context.Context) (models.Backup, error)
}

// App is the composition root: it owns the single session store and hands it
// to the gate, the dispatcher and the auth service.
type App struct {
	store *session.Store
	gate  *gate.Gate
	auth  services.AuthService
	api   API
	log   logging.Logger

	reader *bufio.Reader
	out    io.Writer

	statusMu    sync.Mutex
	status      string
	unsubscribe func()

	db *sql.DB
}

// NewApp opens local storage, restores any persisted session and wires the
// backend client.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := session.NewStore(metadata.NewSQLiteRepository(db), log)

	api, err := client.NewAPIClient(cfg.ServerURL, store, cfg.RequestTimeout, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(store, services.NewAuthService(api, store), api, log, in, out)
	a.db = db

	if err := store.Initialize(ctx); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("restore session: %w", err)
	}
	return a, nil
}

// newApp wires an App from ready-made parts. The store must not be
// initialized yet if the prompt should reflect a restored session.
func newApp(store *session.Store, auth services.AuthService, api API, log logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		store:  store,
		gate:   gate.New(store, common.LoginRoute),
		auth:   auth,
		api:    api,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
	}
	a.onSessionChange(store.State())
	a.unsubscribe = store.Subscribe(a.onSessionChange)
	return a
}

func (a *App) onSessionChange(st session.State) {
	s := ""
	if st.Active {
		s = "(" + st.Identity.Username + ")"
	}
	a.statusMu.Lock()
	a.status = s
	a.statusMu.Unlock()
}

func (a *App) getStatus() string {
	a.statusMu.Lock()
	defer a.statusMu.Unlock()
	return a.status
}

func (a *App) isLoggedIn() bool {
	return a.store.IsActive()
}

// Close releases the session store and the database. The persisted
// credential survives for the next run.
func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	a.store.Teardown()
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to Dungeon Keeper (type 'help' for commands)")
	if id, ok := a.store.CurrentIdentity(); ok {
		fmt.Fprintf(a.out, "Signed in as %s.\n", id.Username)
	}
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	return nil
}

// describeError turns an error into the line shown to the user.
func describeError(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return "Invalid username or password."
	case errors.Is(err, client.ErrUnauthorized):
		return "The server rejected your session. Run 'logout' and sign in again."
	case errors.Is(err, client.ErrUnavailable):
		return "The server is unavailable. Try again later."
	case errors.Is(err, client.ErrNotFound):
		return "Not found."
	case errors.Is(err, common.ErrorValidation):
		return err.Error()
	case token.IsDecodeError(err):
		return "The server returned a credential this client cannot read."
	case errors.As(err, &apiErr) && apiErr.Detail != "":
		return "Error: " + apiErr.Detail
	default:
		return "Error: " + err.Error()
	}
}
