// Package compose builds the game argument string from the manifest's
// argument templates and a runtime context.
package compose

import (
	"encoding/json"
	"strings"

	"github.com/blocklaunch/blocklaunch/internal/models"
)

// Offline-mode constants substituted for the authentication placeholders.
// Real credentials are out of scope; these match what the game accepts in
// offline mode.
const (
	OfflineUUID        = "00000000-0000-0000-0000-000000000000"
	OfflineAccessToken = "0"
	OfflineUserType    = "legacy"
	VersionType        = "release"
)

// Compose merges the legacy template and the modern game argument list,
// then substitutes placeholders from ctx. Both sources contribute when
// both are present; this mirrors launcher behavior for manifests that
// intentionally combine the two forms. Unrecognized placeholders are left
// verbatim and the result is whitespace-trimmed. Compose never fails.
func Compose(m *models.VersionManifest, ctx models.RuntimeContext) string {
	var b strings.Builder
	b.WriteString(m.MinecraftArguments)

	if m.Arguments != nil {
		for _, raw := range m.Arguments.Game {
			// Conditional object tokens are ignored; only plain strings
			// are consumed.
			var token string
			if err := json.Unmarshal(raw, &token); err != nil {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(token)
		}
	}

	return strings.TrimSpace(substitute(b.String(), ctx))
}

func substitute(s string, ctx models.RuntimeContext) string {
	r := strings.NewReplacer(
		"${auth_player_name}", ctx.PlayerName,
		"${version_name}", ctx.VersionName,
		"${game_directory}", ctx.GameDir,
		"${assets_root}", ctx.AssetsDir,
		"${assets_index_name}", ctx.AssetIndex,
		"${auth_uuid}", OfflineUUID,
		"${auth_access_token}", OfflineAccessToken,
		"${user_type}", OfflineUserType,
		"${version_type}", VersionType,
	)
	return r.Replace(s)
}
