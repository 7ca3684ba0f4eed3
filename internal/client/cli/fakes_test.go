package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/dungeonkeeper/internal/client/models"
	"github.com/dmitrijs2005/dungeonkeeper/internal/client/services"
	"github.com/dmitrijs2005/dungeonkeeper/internal/client/session"
	"github.com/dmitrijs2005/dungeonkeeper/internal/logging"
	"github.com/stretchr/testify/require"
)

// fakeBackend implements both API and services.AuthAPI, recording calls.
type fakeBackend struct {
	calls []string

	loginRet    string
	loginErr    error
	registerErr error
	lastLogin   [2]string
	lastSignUp  *models.UserCreate

	profile       models.UserProfile
	lastUpdate    *models.UserUpdate
	lastNotify    *models.NotificationSettings
	tables        []models.Table
	tablesErr     error
	lastTable     *models.TableCreate
	lastID        string
	characters    []models.Character
	lastCharacter *models.CharacterCreate
	lastItem      *models.ItemCreate
	lastMonster   *models.MonsterCreate
	lastNPC       *models.NPCCreate
	stories       []models.Story
	lastStory     *models.StoryCreate
	backup        models.Backup
}

func (f *fakeBackend) call(name string) { f.calls = append(f.calls, name) }

func (f *fakeBackend) Login(ctx context.Context, username, password string) (string, error) {
	f.call("login")
	f.lastLogin = [2]string{username, password}
	return f.loginRet, f.loginErr
}

func (f *fakeBackend) Register(ctx context.Context, in models.UserCreate) (models.UserBase, error) {
	f.call("register")
	f.lastSignUp = &in
	return models.UserBase{Username: in.Username, Email: in.Email}, f.registerErr
}

func (f *fakeBackend) Me(ctx context.Context) (models.UserProfile, error) {
	f.call("me")
	return f.profile, nil
}

func (f *fakeBackend) UpdateMe(ctx context.Context, in models.UserUpdate) (models.UserProfile, error) {
	f.call("updateme")
	f.lastUpdate = &in
	return f.profile, nil
}

func (f *fakeBackend) UpdateNotificationSettings(ctx context.Context, in models.NotificationSettings) (models.UserProfile, error) {
	f.call("notifications")
	f.lastNotify = &in
	return f.profile, nil
}

func (f *fakeBackend) Tables(ctx context.Context) ([]models.Table, error) {
	f.call("tables")
	return f.tables, f.tablesErr
}

func (f *fakeBackend) CreateTable(ctx context.Context, in models.TableCreate) (models.Table, error) {
	f.call("createtable")
	f.lastTable = &in
	return models.Table{ID: "t-new", Title: in.Title}, nil
}

func (f *fakeBackend) JoinTable(ctx context.Context, id string) error {
	f.call("join")
	f.lastID = id
	return nil
}

func (f *fakeBackend) ApproveJoinRequest(ctx context.Context, id string) error {
	f.call("approve")
	f.lastID = id
	return nil
}

func (f *fakeBackend) DeclineJoinRequest(ctx context.Context, id string) error {
	f.call("decline")
	f.lastID = id
	return nil
}

func (f *fakeBackend) Characters(ctx context.Context) ([]models.Character, error) {
	f.call("characters")
	return f.characters, nil
}

func (f *fakeBackend) Character(ctx context.Context, id string) (models.Character, error) {
	f.call("character")
	f.lastID = id
	return models.Character{ID: id, Name: "Vex", Race: "Half-elf", CharacterClass: "Ranger", Level: 5}, nil
}

func (f *fakeBackend) CreateCharacter(ctx context.Context, in models.CharacterCreate) (models.Character, error) {
	f.call("createcharacter")
	f.lastCharacter = &in
	return models.Character{ID: "c-new", Name: in.Name, Race: in.Race, CharacterClass: in.CharacterClass, Level: in.Level}, nil
}

func (f *fakeBackend) Items(ctx context.Context) ([]models.Item, error) {
	f.call("items")
	return nil, nil
}

func (f *fakeBackend) CreateItem(ctx context.Context, in models.ItemCreate) (models.Item, error) {
	f.call("createitem")
	f.lastItem = &in
	return models.Item{ID: "i-new", Name: in.Name}, nil
}

func (f *fakeBackend) Monsters(ctx context.Context) ([]models.Monster, error) {
	f.call("monsters")
	return nil, nil
}

func (f *fakeBackend) CreateMonster(ctx context.Context, in models.MonsterCreate) (models.Monster, error) {
	f.call("createmonster")
	f.lastMonster = &in
	return models.Monster{ID: "m-new", Name: in.Name}, nil
}

func (f *fakeBackend) NPCs(ctx context.Context) ([]models.NPC, error) {
	f.call("npcs")
	return nil, nil
}

func (f *fakeBackend) CreateNPC(ctx context.Context, in models.NPCCreate) (models.NPC, error) {
	f.call("createnpc")
	f.lastNPC = &in
	return models.NPC{ID: "n-new", Name: in.Name}, nil
}

func (f *fakeBackend) Stories(ctx context.Context) ([]models.Story, error) {
	f.call("stories")
	return f.stories, nil
}

func (f *fakeBackend) CreateStory(ctx context.Context, in models.StoryCreate) (models.Story, error) {
	f.call("createstory")
	f.lastStory = &in
	return models.Story{ID: "s-new", Title: in.Title}, nil
}

func (f *fakeBackend) ExportBackup(ctx context.Context) (models.Backup, error) {
	f.call("backup")
	return f.backup, nil
}

func (f *fakeBackend) called(name string) bool {
	for _, c := range f.calls {
		if c == name {
			return true
		}
	}
	return false
}

// memStorage is an in-memory RecordStorage.
type memStorage struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newMemStorage() *memStorage { return &memStorage{values: map[string][]byte{}} }

func (m *memStorage) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

func (m *memStorage) Set(ctx context.Context, key string, v []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = v
	return nil
}

func (m *memStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// plainStdin makes password prompts read from the App's reader.
func plainStdin(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

type harness struct {
	app     *App
	backend *fakeBackend
	store   *session.Store
	storage *memStorage
	out     *bytes.Buffer
}

// newHarness builds an App over a fake backend. input feeds every prompt.
func newHarness(t *testing.T, input string, seed func(st *memStorage)) *harness {
	t.Helper()
	plainStdin(t)

	st := newMemStorage()
	if seed != nil {
		seed(st)
	}
	store := session.NewStore(st, logging.Discard())
	be := &fakeBackend{}
	out := &bytes.Buffer{}

	a := newApp(store, services.NewAuthService(be, store), be, logging.Discard(), strings.NewReader(input), out)
	require.NoError(t, store.Initialize(context.Background()))
	t.Cleanup(func() { _ = a.Close() })

	return &harness{app: a, backend: be, store: store, storage: st, out: out}
}
