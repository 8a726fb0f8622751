package compose

import (
	"encoding/json"
	"testing"

	"github.com/blocklaunch/blocklaunch/internal/models"
)

func rawTokens(tokens ...string) []json.RawMessage {
	raw := make([]json.RawMessage, len(tokens))
	for i, tok := range tokens {
		raw[i] = json.RawMessage(tok)
	}
	return raw
}

func TestCompose_LegacyTemplate(t *testing.T) {
	m := &models.VersionManifest{
		MinecraftArguments: "--username ${auth_player_name} --gameDir ${game_directory}",
	}
	ctx := models.RuntimeContext{PlayerName: "Alice", GameDir: "/mc"}

	got := Compose(m, ctx)
	want := "--username Alice --gameDir /mc"
	if got != want {
		t.Errorf("Compose() = %q, want %q", got, want)
	}
}

func TestCompose_ModernArguments(t *testing.T) {
	m := &models.VersionManifest{
		Arguments: &models.Arguments{
			Game: rawTokens(`"--username"`, `"${auth_player_name}"`, `"--version"`, `"${version_name}"`),
		},
	}
	ctx := models.RuntimeContext{PlayerName: "Alice", VersionName: "1.16.5"}

	got := Compose(m, ctx)
	want := "--username Alice --version 1.16.5"
	if got != want {
		t.Errorf("Compose() = %q, want %q", got, want)
	}
}

func TestCompose_BothSourcesContribute(t *testing.T) {
	// Legacy and modern templates are a union, not either/or.
	m := &models.VersionManifest{
		MinecraftArguments: "--username ${auth_player_name}",
		Arguments: &models.Arguments{
			Game: rawTokens(`"--demo"`),
		},
	}
	ctx := models.RuntimeContext{PlayerName: "Alice"}

	got := Compose(m, ctx)
	want := "--username Alice --demo"
	if got != want {
		t.Errorf("Compose() = %q, want %q", got, want)
	}
}

func TestCompose_ConditionalTokensIgnored(t *testing.T) {
	m := &models.VersionManifest{
		Arguments: &models.Arguments{
			Game: rawTokens(
				`"--username"`,
				`"${auth_player_name}"`,
				`{"rules":[{"action":"allow","features":{"is_demo_user":true}}],"value":"--demo"}`,
			),
		},
	}
	ctx := models.RuntimeContext{PlayerName: "Alice"}

	got := Compose(m, ctx)
	want := "--username Alice"
	if got != want {
		t.Errorf("Compose() = %q, want %q", got, want)
	}
}

func TestCompose_AllPlaceholders(t *testing.T) {
	m := &models.VersionManifest{
		MinecraftArguments: "${auth_player_name} ${version_name} ${game_directory} ${assets_root} " +
			"${assets_index_name} ${auth_uuid} ${auth_access_token} ${user_type} ${version_type}",
	}
	ctx := models.RuntimeContext{
		PlayerName:  "Alice",
		VersionName: "1.8.9",
		GameDir:     "/mc",
		AssetsDir:   "/mc/assets",
		AssetIndex:  "1.8",
	}

	got := Compose(m, ctx)
	want := "Alice 1.8.9 /mc /mc/assets 1.8 " +
		OfflineUUID + " " + OfflineAccessToken + " " + OfflineUserType + " " + VersionType
	if got != want {
		t.Errorf("Compose() = %q, want %q", got, want)
	}
}

func TestCompose_RepeatedPlaceholderReplacedEverywhere(t *testing.T) {
	m := &models.VersionManifest{
		MinecraftArguments: "${auth_player_name} and ${auth_player_name}",
	}
	got := Compose(m, models.RuntimeContext{PlayerName: "Bob"})
	if got != "Bob and Bob" {
		t.Errorf("Compose() = %q", got)
	}
}

func TestCompose_UnknownPlaceholderLeftVerbatim(t *testing.T) {
	m := &models.VersionManifest{
		MinecraftArguments: "--clientId ${clientid}",
	}
	got := Compose(m, models.RuntimeContext{})
	if got != "--clientId ${clientid}" {
		t.Errorf("Compose() = %q, want placeholder untouched", got)
	}
}

func TestCompose_NoPlaceholdersReturnsTrimmedTemplate(t *testing.T) {
	m := &models.VersionManifest{
		MinecraftArguments: "  --demo --width 800  ",
	}
	got := Compose(m, models.RuntimeContext{PlayerName: "Alice"})
	if got != "--demo --width 800" {
		t.Errorf("Compose() = %q", got)
	}
}

func TestCompose_EmptyManifest(t *testing.T) {
	got := Compose(&models.VersionManifest{}, models.RuntimeContext{})
	if got != "" {
		t.Errorf("Compose() = %q, want empty", got)
	}
}

func TestCompose_Idempotent(t *testing.T) {
	m := &models.VersionManifest{
		MinecraftArguments: "--username ${auth_player_name}",
		Arguments: &models.Arguments{
			Game: rawTokens(`"--gameDir"`, `"${game_directory}"`),
		},
	}
	ctx := models.RuntimeContext{PlayerName: "Alice", GameDir: "/mc"}

	first := Compose(m, ctx)
	second := Compose(m, ctx)
	if first != second {
		t.Errorf("Compose not deterministic: %q vs %q", first, second)
	}
}
