package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_PATH", "HTTP_ADDRESS", "PORT", "LLM_PROVIDER", "LLM_API_KEY",
		"OPENAI_API_KEY", "GEMINI_API_KEY", "LLM_MODEL", "KNOWLEDGE_PATH",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":5500", cfg.HTTP.Address)
	require.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	require.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	require.Equal(t, "data.json", cfg.Knowledge.Path)
	require.Empty(t, cfg.LLM.APIKey)
	require.Equal(t, 90*time.Second, cfg.HTTP.WriteTimeout)
}

func TestLoadFromFileThenEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9000"
llm:
  provider: gemini
  model: gemini-2.0-flash
knowledge:
  path: knowledge.yaml
`), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("GEMINI_API_KEY", ` "gm-key" `)
	t.Setenv("OPENAI_API_KEY", "sk-ignored")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.HTTP.Address)
	require.Equal(t, ProviderGemini, cfg.LLM.Provider)
	require.Equal(t, "gm-key", cfg.LLM.APIKey)
	require.Equal(t, "knowledge.yaml", cfg.Knowledge.Path)
}

func TestOpenAIKeyStripsQuotes(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("OPENAI_API_KEY", "'sk-test'")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "sk-test", cfg.LLM.APIKey)
}

func TestGenericKeyWins(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("OPENAI_API_KEY", "sk-provider")
	t.Setenv("LLM_API_KEY", "sk-generic")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "sk-generic", cfg.LLM.APIKey)
}

func TestValidateRejectsUnknownProvider(t *testing.T) {
	cfg := defaultConfig()
	cfg.LLM.Provider = "anthropic"
	require.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.Knowledge.Path = ""
	require.Error(t, cfg.Validate())

	cfg.Knowledge.R2.Enabled = true
	require.NoError(t, cfg.Validate())
}

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{"https://a.uz", "https://b.uz"}, splitList(" https://a.uz, ,https://b.uz "))
}
