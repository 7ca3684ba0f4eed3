package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/dungeonkeeper/internal/client/models"
	"github.com/dmitrijs2005/dungeonkeeper/internal/logging"
)

const maxErrorBody = 64 << 10

// APIClient is a thin typed client for the REST API.
type APIClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewAPIClient builds a client rooted at baseURL (e.g. http://host:8000/api/v1)
// whose requests carry the credential from source.
func NewAPIClient(baseURL string, source CredentialSource, timeout time.Duration, log logging.Logger) (*APIClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("server url must be absolute: %q", baseURL)
	}
	if log == nil {
		log = logging.Discard()
	}
	hc := &http.Client{
		Transport: NewBearerTransport(source, nil, log),
		Timeout:   timeout,
	}
	return newAPIClient(strings.TrimRight(baseURL, "/"), hc, log), nil
}

func newAPIClient(baseURL string, hc *http.Client, log logging.Logger) *APIClient {
	return &APIClient{baseURL: baseURL, http: hc, log: log}
}

func (c *APIClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return statusError(resp.StatusCode, errorDetail(raw))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorDetail extracts the "detail" field of an error body. Validation errors
// carry a list of {msg} objects; those are joined.
func errorDetail(raw []byte) string {
	var eb struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &eb); err != nil || len(eb.Detail) == 0 {
		return strings.TrimSpace(string(raw))
	}

	var s string
	if err := json.Unmarshal(eb.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(eb.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}
	return string(eb.Detail)
}

func idPath(prefix, id, suffix string) string {
	return prefix + url.PathEscape(id) + suffix
}

// Auth

func (c *APIClient) Register(ctx context.Context, in models.UserCreate) (models.UserBase, error) {
	var out models.UserBase
	err := c.do(ctx, http.MethodPost, "/register", in, &out)
	return out, err
}

// Login exchanges username and password for a bearer credential.
func (c *APIClient) Login(ctx context.Context, username, password string) (string, error) {
	var out models.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/token", models.LoginRequest{Username: username, Password: password}, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", errors.New("login response has no access token")
	}
	return out.AccessToken, nil
}

// Profile

func (c *APIClient) Me(ctx context.Context) (models.UserProfile, error) {
	var out models.UserProfile
	err := c.do(ctx, http.MethodGet, "/users/me", nil, &out)
	return out, err
}

func (c *APIClient) UpdateMe(ctx context.Context, in models.UserUpdate) (models.UserProfile, error) {
	var out models.UserProfile
	err := c.do(ctx, http.MethodPut, "/users/me", in, &out)
	return out, err
}

func (c *APIClient) UpdateNotificationSettings(ctx context.Context, in models.NotificationSettings) (models.UserProfile, error) {
	var out models.UserProfile
	err := c.do(ctx, http.MethodPut, "/users/me/notifications", in, &out)
	return out, err
}

// Tables

func (c *APIClient) Tables(ctx context.Context) ([]models.Table, error) {
	var out []models.Table
	err := c.do(ctx, http.MethodGet, "/tables", nil, &out)
	return out, err
}

func (c *APIClient) CreateTable(ctx context.Context, in models.TableCreate) (models.Table, error) {
	var out models.Table
	err := c.do(ctx, http.MethodPost, "/tables", in, &out)
	return out, err
}

func (c *APIClient) JoinTable(ctx context.Context, tableID string) error {
	return c.do(ctx, http.MethodPost, idPath("/tables/", tableID, "/join"), nil, nil)
}

func (c *APIClient) ApproveJoinRequest(ctx context.Context, requestID string) error {
	return c.do(ctx, http.MethodPost, idPath("/tables/requests/", requestID, "/approve"), nil, nil)
}

func (c *APIClient) DeclineJoinRequest(ctx context.Context, requestID string) error {
	return c.do(ctx, http.MethodPost, idPath("/tables/requests/", requestID, "/decline"), nil, nil)
}

// Characters

func (c *APIClient) Characters(ctx context.Context) ([]models.Character, error) {
	var out []models.Character
	err := c.do(ctx, http.MethodGet, "/characters", nil, &out)
	return out, err
}

func (c *APIClient) Character(ctx context.Context, id string) (models.Character, error) {
	var out models.Character
	err := c.do(ctx, http.MethodGet, idPath("/characters/", id, ""), nil, &out)
	return out, err
}

func (c *APIClient) CreateCharacter(ctx context.Context, in models.CharacterCreate) (models.Character, error) {
	var out models.Character
	err := c.do(ctx, http.MethodPost, "/characters", in, &out)
	return out, err
}

// Creation tools

func (c *APIClient) Items(ctx context.Context) ([]models.Item, error) {
	var out []models.Item
	err := c.do(ctx, http.MethodGet, "/items/", nil, &out)
	return out, err
}

func (c *APIClient) CreateItem(ctx context.Context, in models.ItemCreate) (models.Item, error) {
	var out models.Item
	err := c.do(ctx, http.MethodPost, "/items/", in, &out)
	return out, err
}

func (c *APIClient) Monsters(ctx context.Context) ([]models.Monster, error) {
	var out []models.Monster
	err := c.do(ctx, http.MethodGet, "/monsters/", nil, &out)
	return out, err
}

func (c *APIClient) CreateMonster(ctx context.Context, in models.MonsterCreate) (models.Monster, error) {
	var out models.Monster
	err := c.do(ctx, http.MethodPost, "/monsters/", in, &out)
	return out, err
}

func (c *APIClient) NPCs(ctx context.Context) ([]models.NPC, error) {
	var out []models.NPC
	err := c.do(ctx, http.MethodGet, "/npcs/", nil, &out)
	return out, err
}

func (c *APIClient) CreateNPC(ctx context.Context, in models.NPCCreate) (models.NPC, error) {
	var out models.NPC
	err := c.do(ctx, http.MethodPost, "/npcs/", in, &out)
	return out, err
}

func (c *APIClient) Stories(ctx context.Context) ([]models.Story, error) {
	var out []models.Story
	err := c.do(ctx, http.MethodGet, "/stories/", nil, &out)
	return out, err
}

func (c *APIClient) CreateStory(ctx context.Context, in models.StoryCreate) (models.Story, error) {
	var out models.Story
	err := c.do(ctx, http.MethodPost, "/stories/", in, &out)
	return out, err
}

// ExportBackup downloads everything the signed-in user created.
func (c *APIClient) ExportBackup(ctx context.Context) (models.Backup, error) {
	var out models.Backup
	err := c.do(ctx, http.MethodGet, "/backup/export", nil, &out)
	return out, err
}
