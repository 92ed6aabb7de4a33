package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/nx-sentinel/internal/adapters/render/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrintsBuildVersion(t *testing.T) {
	isolateEnv(t)

	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestSettingsSetRequiresTokenFlag(t *testing.T) {
	isolateEnv(t)

	_, _, err := executeCLI(t, t.TempDir(), "settings", "set", "--guild", "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"token\" not set")
}

func TestSettingsSetThenShowMasksToken(t *testing.T) {
	isolateEnv(t)
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "settings", "set", "--guild", " 42 ", "--token", "bot-token-abcd")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Saved settings for guild 42")

	stdout, _, err = executeCLI(t, home, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "guild: 42")
	assert.Contains(t, stdout, "token: ********abcd")
	assert.NotContains(t, stdout, "bot-token")

	settingsFile, err := os.ReadFile(filepath.Join(home, ".nx", "settings.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(settingsFile), "discord/42/bot_token")
	assert.NotContains(t, string(settingsFile), "bot-token-abcd")
}

func TestSettingsShowWithoutSavedSettings(t *testing.T) {
	isolateEnv(t)

	stdout, _, err := executeCLI(t, t.TempDir(), "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No settings saved.")
}

func TestConnectRendersGuildAndPersistsSettings(t *testing.T) {
	isolateEnv(t)
	server := newFakeDiscord(t)
	t.Setenv("NX_PLATFORM_BASE_URL", server.URL)
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "connect", "--guild", "42", "--token", "bot-token")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Nexus")
	assert.Contains(t, stdout, "guild: 42  members: 3")
	assert.Contains(t, stdout, "Members (2)")
	assert.Contains(t, stdout, "ada")
	assert.Contains(t, stdout, "2024-01-02")
	assert.Contains(t, stdout, "Synchronized with Nexus")

	stdout, _, err = executeCLI(t, home, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "guild: 42")
}

func TestConnectUsesSavedSettings(t *testing.T) {
	isolateEnv(t)
	server := newFakeDiscord(t)
	t.Setenv("NX_PLATFORM_BASE_URL", server.URL)
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "settings", "set", "--guild", "42", "--token", "bot-token")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "connect", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"GuildID\": \"42\"")
	assert.Contains(t, stdout, "\"Connected\": true")
}

func TestConnectWithoutCredentialsFails(t *testing.T) {
	isolateEnv(t)

	_, _, err := executeCLI(t, t.TempDir(), "connect")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bot token and server id are required")
}

func TestConnectReportsPlatformRejection(t *testing.T) {
	isolateEnv(t)
	server := newFakeDiscord(t)
	t.Setenv("NX_PLATFORM_BASE_URL", server.URL)

	_, _, err := executeCLI(t, t.TempDir(), "connect", "--guild", "42", "--token", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection failed, check token/server id")
}

func TestSimulateFillsLiveFeed(t *testing.T) {
	isolateEnv(t)
	server := newFakeDiscord(t)
	t.Setenv("NX_PLATFORM_BASE_URL", server.URL)

	stdout, _, err := executeCLI(t, t.TempDir(), "simulate", "--guild", "42", "--token", "bot-token", "--ticks", "20")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Live feed")
	assert.NotContains(t, stdout, "Waiting for activity...")
	assert.Equal(t, 15, strings.Count(stdout, " #"))
}

func TestNukeRequiresArmFlag(t *testing.T) {
	isolateEnv(t)

	_, _, err := executeCLI(t, t.TempDir(), "nuke", "--guild", "42", "--token", "bot-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, errNotArmedFlag)
}

func TestNukeStreamsNarratedSteps(t *testing.T) {
	isolateEnv(t)
	discord := newFakeDiscord(t)
	gemini := newFakeGemini(t, `["locking channels","revoking invites"]`, 0)
	t.Setenv("NX_PLATFORM_BASE_URL", discord.URL)
	t.Setenv("NX_CONTENT_BASE_URL", gemini.URL)
	t.Setenv("NX_CONTENT_API_KEY", "test-key")

	stdout, _, err := executeCLI(t, t.TempDir(), "nuke", "--arm", "--guild", "42", "--token", "bot-token")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[BOOT] SECURE KERNEL INITIALIZED...")
	assert.Contains(t, stdout, "[ 50%] [PURGE] locking channels")
	assert.Contains(t, stdout, "[100%] [PURGE] revoking invites")
	assert.Contains(t, stdout, "protocol SAFE, progress 100%")
}

func TestNukeFailsWithoutContentProviderKey(t *testing.T) {
	isolateEnv(t)
	discord := newFakeDiscord(t)
	t.Setenv("NX_PLATFORM_BASE_URL", discord.URL)

	_, _, err := executeCLI(t, t.TempDir(), "nuke", "--arm", "--guild", "42", "--token", "bot-token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "execute operation")
	assert.Contains(t, err.Error(), "api key is not configured")
}

func TestScanRendersThreatReport(t *testing.T) {
	isolateEnv(t)
	discord := newFakeDiscord(t)
	gemini := newFakeGemini(t, "ada joined recently and posts a lot", 200*time.Millisecond)
	t.Setenv("NX_PLATFORM_BASE_URL", discord.URL)
	t.Setenv("NX_CONTENT_BASE_URL", gemini.URL)
	t.Setenv("NX_CONTENT_API_KEY", "test-key")

	stdout, stderr, err := executeCLI(t, t.TempDir(), "scan", "--guild", "42", "--token", "bot-token")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Threat report")
	assert.Contains(t, stdout, "ada joined recently and posts a lot")
	assert.Contains(t, stderr, "Analyzing member patterns")
}

func TestInvalidConfigSurfacesOnEveryCommand(t *testing.T) {
	isolateEnv(t)
	t.Setenv("NX_SAMPLER_INTERVAL", "-1s")

	_, _, err := executeCLI(t, t.TempDir(), "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sampler.interval must be at least 1s")
}

func TestSettingsPathFollowsEnvironment(t *testing.T) {
	isolateEnv(t)
	home := t.TempDir()
	settingsPath := filepath.Join(t.TempDir(), "custom", "nx.toml")
	t.Setenv("NX_SETTINGS_PATH", settingsPath)

	_, _, err := executeCLI(t, home, "settings", "set", "--guild", "42", "--token", "bot-token")
	require.NoError(t, err)

	_, err = os.Stat(settingsPath)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(filepath.Dir(settingsPath), "secrets", "discord", "42", "bot_token"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(home, ".nx", "settings.toml"))
	assert.True(t, os.IsNotExist(err))
}

func TestDashboardKeepsEngineLogsOffTheTerminal(t *testing.T) {
	isolateEnv(t)
	t.Setenv("NX_LOG_LEVEL", "warn")
	discord := newFakeDiscord(t)
	t.Setenv("NX_PLATFORM_BASE_URL", discord.URL)

	var execErr error
	stderr := captureStderr(t, func() {
		execErr = runDashboardExecuting(t)
	})

	require.Error(t, execErr)
	assert.Contains(t, execErr.Error(), "api key is not configured")
	assert.Empty(t, stderr)
}

func TestDashboardWritesEngineLogsToLogFile(t *testing.T) {
	isolateEnv(t)
	t.Setenv("NX_LOG_LEVEL", "warn")
	logFile := filepath.Join(t.TempDir(), "nx.log")
	t.Setenv("NX_LOG_FILE", logFile)
	discord := newFakeDiscord(t)
	t.Setenv("NX_PLATFORM_BASE_URL", discord.URL)

	require.Error(t, runDashboardExecuting(t))

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"logger":"operation"`)
	assert.Contains(t, string(data), `"msg":"failed"`)
}

// runDashboardExecuting opens the dashboard with a screen that arms and
// executes once, then returns the execute error. No content key is set, so
// the run fails.
func runDashboardExecuting(t *testing.T) error {
	t.Helper()

	original := runLiveDashboard
	t.Cleanup(func() { runLiveDashboard = original })

	var execErr error
	runLiveDashboard = func(ctx context.Context, controller dashboard.Controller, _ dashboard.LiveOptions) error {
		if _, err := controller.ToggleArm(); err != nil {
			return err
		}
		execErr = controller.Execute(ctx)
		return nil
	}

	_, _, err := executeCLI(t, t.TempDir(), "dashboard", "--guild", "42", "--token", "bot-token")
	require.NoError(t, err)

	return execErr
}

// captureStderr redirects the process stderr while fn runs.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	file, err := os.CreateTemp(t.TempDir(), "stderr-*")
	require.NoError(t, err)

	original := os.Stderr
	os.Stderr = file
	func() {
		defer func() { os.Stderr = original }()
		fn()
	}()
	require.NoError(t, file.Close())

	data, err := os.ReadFile(file.Name())
	require.NoError(t, err)
	return string(data)
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func isolateEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"NX_CONFIG_FILE", "NX_PLATFORM_BASE_URL", "NX_CONTENT_API_KEY", "GEMINI_API_KEY",
		"NX_CONTENT_MODEL", "NX_CONTENT_BASE_URL", "NX_SAMPLER_INTERVAL", "NX_LOG_FILE",
		"NX_SETTINGS_PATH",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("NX_LOG_LEVEL", "off")
	t.Setenv("NX_OPERATION_STEP_DELAY", "0s")
}

func newFakeDiscord(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bot bot-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = fmt.Fprint(w, `{"message":"401: Unauthorized","code":0}`)
			return
		}

		switch r.URL.Path {
		case "/guilds/42":
			_, _ = fmt.Fprint(w, `{"id":"42","name":"Nexus","icon":null,"approximate_member_count":3}`)
		case "/guilds/42/members":
			assert.Equal(t, "20", r.URL.Query().Get("limit"))
			_, _ = fmt.Fprint(w, `[
				{"user":{"id":"1","username":"ada","avatar":null},"joined_at":"2024-01-02T03:04:05.000000+00:00"},
				{"user":{"id":"2","username":"grace","avatar":"abc"},"joined_at":"2025-06-30T10:00:00.000000+00:00"}
			]`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	return server
}

// newFakeGemini answers every generateContent call with text after delay.
func newFakeGemini(t *testing.T, text string, delay time.Duration) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(delay)
		assert.True(t, strings.HasSuffix(r.URL.Path, ":generateContent"), r.URL.Path)

		body, err := json.Marshal(map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"role":  "model",
						"parts": []any{map[string]any{"text": text}},
					},
				},
			},
		})
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)

	return server
}
