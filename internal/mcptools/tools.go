package mcptools

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"passkeep/internal/domain"
	"passkeep/internal/generator"
	"passkeep/internal/vault"
)

// ServerName is the MCP implementation name reported to clients.
const ServerName = "passkeep"

// Mask replaces secrets in listings unless the caller asks to show them.
const Mask = "********"

// GenerateArgs are the inputs of generate_password.
type GenerateArgs struct {
	Length    int  `json:"length,omitempty" jsonschema:"password length, 1-128, default 16"`
	Uppercase bool `json:"uppercase,omitempty" jsonschema:"include A-Z"`
	Digits    bool `json:"digits,omitempty" jsonschema:"include 0-9"`
	Symbols   bool `json:"symbols,omitempty" jsonschema:"include ASCII punctuation"`
}

// GenerateResult is the output of generate_password.
type GenerateResult struct {
	Password string `json:"password"`
}

// CredentialArgs name one (site, password) pair.
type CredentialArgs struct {
	Site     string `json:"site" jsonschema:"site name, case-sensitive"`
	Password string `json:"password" jsonschema:"the password"`
}

// CredentialResult reports the site and how many passwords it now holds.
type CredentialResult struct {
	Site  string `json:"site"`
	Count int    `json:"count"`
}

// ListArgs are the inputs of list_passwords.
type ListArgs struct {
	Site string `json:"site,omitempty" jsonschema:"only list this site"`
	Show bool   `json:"show,omitempty" jsonschema:"reveal passwords instead of masking them"`
}

// ListedCredential is one row of list_passwords.
type ListedCredential struct {
	Site     string `json:"site"`
	Password string `json:"password"`
}

// ListResult is the output of list_passwords.
type ListResult struct {
	Credentials []ListedCredential `json:"credentials"`
}

// NewServer returns an MCP server exposing the password tools for s.
func NewServer(s *vault.Store, log zerolog.Logger, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: version}, nil)
	Register(server, s, log)
	return server
}

// Register adds the password tools to server.
func Register(server *mcp.Server, s *vault.Store, log zerolog.Logger) {
	h := &handlers{store: s, log: log.With().Str("component", "mcp").Logger()}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_password",
		Description: "Generate a random password. Lowercase letters are always used; other classes are opt-in.",
	}, h.generate)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_password",
		Description: "Store a password under a site.",
	}, h.add)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "remove_password",
		Description: "Remove the first stored password under a site that matches exactly.",
	}, h.remove)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_passwords",
		Description: "List stored credentials. Passwords are masked unless show is set.",
	}, h.list)
}

type handlers struct {
	store *vault.Store
	log   zerolog.Logger
}

func (h *handlers) generate(_ context.Context, _ *mcp.CallToolRequest, args GenerateArgs) (*mcp.CallToolResult, GenerateResult, error) {
	length := args.Length
	if length == 0 {
		length = generator.DefaultLength
	}
	if err := generator.ValidateLength(length); err != nil {
		return toolError(err), GenerateResult{}, nil
	}

	pw, err := generator.Generate(length, generator.Classes{
		Uppercase: args.Uppercase,
		Digits:    args.Digits,
		Symbols:   args.Symbols,
	})
	if err != nil {
		return nil, GenerateResult{}, err
	}
	return textResult(pw), GenerateResult{Password: pw}, nil
}

func (h *handlers) add(ctx context.Context, _ *mcp.CallToolRequest, args CredentialArgs) (*mcp.CallToolResult, CredentialResult, error) {
	site := strings.TrimSpace(args.Site)
	if err := h.store.Add(ctx, site, strings.TrimSpace(args.Password)); err != nil {
		return h.fail("add_password", err)
	}
	out := CredentialResult{Site: site, Count: h.count(site)}
	return textResult("password saved for " + site), out, nil
}

func (h *handlers) remove(ctx context.Context, _ *mcp.CallToolRequest, args CredentialArgs) (*mcp.CallToolResult, CredentialResult, error) {
	site := strings.TrimSpace(args.Site)
	if err := h.store.Remove(ctx, site, strings.TrimSpace(args.Password)); err != nil {
		return h.fail("remove_password", err)
	}
	out := CredentialResult{Site: site, Count: h.count(site)}
	return textResult("password removed from " + site), out, nil
}

func (h *handlers) list(_ context.Context, _ *mcp.CallToolRequest, args ListArgs) (*mcp.CallToolResult, ListResult, error) {
	out := ListResult{Credentials: []ListedCredential{}}
	var b strings.Builder
	for e := range h.store.List() {
		if args.Site != "" && e.Site != args.Site {
			continue
		}
		pw := Mask
		if args.Show {
			pw = e.Credential.Secret
		}
		out.Credentials = append(out.Credentials, ListedCredential{Site: e.Site, Password: pw})
		b.WriteString(e.Site + ": " + pw + "\n")
	}
	if len(out.Credentials) == 0 {
		b.WriteString("no passwords stored")
	}
	return textResult(strings.TrimSuffix(b.String(), "\n")), out, nil
}

func (h *handlers) count(site string) int {
	creds, err := h.store.Credentials(site)
	if err != nil {
		return 0
	}
	return len(creds)
}

// fail turns caller mistakes into error results and passes storage
// failures back to the SDK.
func (h *handlers) fail(tool string, err error) (*mcp.CallToolResult, CredentialResult, error) {
	if isUserError(err) {
		return toolError(err), CredentialResult{}, nil
	}
	h.log.Error().Err(err).Str("tool", tool).Msg("storage failure")
	return nil, CredentialResult{}, err
}

func isUserError(err error) bool {
	return errors.Is(err, domain.ErrEmptyField) ||
		errors.Is(err, domain.ErrInvalidUTF8) ||
		errors.Is(err, domain.ErrSiteNotFound) ||
		errors.Is(err, domain.ErrPasswordNotFound)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: text}}}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
