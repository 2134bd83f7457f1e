package mcptools_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passkeep/internal/mcptools"
	"passkeep/internal/store"
	"passkeep/internal/vault"
)

func connect(t *testing.T, s *vault.Store) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := mcptools.NewServer(s, zerolog.Nop(), "test")
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func newStore(t *testing.T) (*vault.Store, *store.MemoryBackend) {
	t.Helper()
	mem := store.NewMemoryBackend()
	s, err := vault.Load(context.Background(), mem)
	require.NoError(t, err)
	return s, mem
}

func call(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) (*mcp.CallToolResult, string) {
	t.Helper()
	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)

	var parts []string
	for _, c := range res.Content {
		if tc, ok := c.(*mcp.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return res, strings.Join(parts, "\n")
}

func TestTools_Listed(t *testing.T) {
	s, _ := newStore(t)
	session := connect(t, s)

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"generate_password", "add_password", "remove_password", "list_passwords"}, names)
}

func TestGeneratePassword(t *testing.T) {
	s, _ := newStore(t)
	session := connect(t, s)

	res, text := call(t, session, "generate_password", map[string]any{"length": 24, "digits": true})
	require.False(t, res.IsError, text)
	assert.Len(t, text, 24)
	for _, r := range text {
		assert.True(t, (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'), "unexpected %q", r)
	}

	res, text = call(t, session, "generate_password", map[string]any{})
	require.False(t, res.IsError)
	assert.Len(t, text, 16)

	res, _ = call(t, session, "generate_password", map[string]any{"length": 500})
	assert.True(t, res.IsError)
}

func TestAddListRemove(t *testing.T) {
	s, mem := newStore(t)
	session := connect(t, s)

	res, text := call(t, session, "add_password", map[string]any{"site": "  github.com ", "password": "Tr0ub4dor&3"})
	require.False(t, res.IsError, text)

	res, text = call(t, session, "list_passwords", map[string]any{})
	require.False(t, res.IsError)
	assert.Equal(t, "github.com: "+mcptools.Mask, text)

	_, text = call(t, session, "list_passwords", map[string]any{"show": true})
	assert.Equal(t, "github.com: Tr0ub4dor&3", text)

	res, text = call(t, session, "remove_password", map[string]any{"site": "github.com", "password": "Tr0ub4dor&3"})
	require.False(t, res.IsError, text)
	assert.Zero(t, s.Len())
	assert.Equal(t, 2, mem.Writes())

	_, text = call(t, session, "list_passwords", map[string]any{})
	assert.Equal(t, "no passwords stored", text)
}

func TestUserErrorsAreToolErrors(t *testing.T) {
	s, _ := newStore(t)
	session := connect(t, s)
	require.NoError(t, s.Add(context.Background(), "a", "1"))

	res, text := call(t, session, "add_password", map[string]any{"site": " ", "password": "x"})
	assert.True(t, res.IsError)
	assert.Contains(t, text, "cannot be empty")

	res, text = call(t, session, "remove_password", map[string]any{"site": "b", "password": "1"})
	assert.True(t, res.IsError)
	assert.Contains(t, text, "site not found")

	res, text = call(t, session, "remove_password", map[string]any{"site": "a", "password": "2"})
	assert.True(t, res.IsError)
	assert.Contains(t, text, "password not found")
}

func TestStorageFailureIsToolError(t *testing.T) {
	s, mem := newStore(t)
	session := connect(t, s)
	mem.FailNextWrite(errors.New("disk full"))

	res, text := call(t, session, "add_password", map[string]any{"site": "a", "password": "1"})
	assert.True(t, res.IsError)
	assert.Contains(t, text, "disk full")
	assert.Zero(t, s.Len())
}
