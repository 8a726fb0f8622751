package models

import "encoding/json"

// VersionManifest is the parsed versions/<id>/<id>.json document.
type VersionManifest struct {
	ID        string    `json:"id"`
	MainClass string    `json:"mainClass"`
	Assets    string    `json:"assets"`
	Libraries []Library `json:"libraries"`

	// Pre-1.13 manifests carry a single argument template string. Modern
	// manifests carry an arguments object. Both may be present and both
	// contribute to the composed argument string.
	MinecraftArguments string     `json:"minecraftArguments,omitempty"`
	Arguments          *Arguments `json:"arguments,omitempty"`
}

// Arguments holds the modern argument lists. Tokens are kept raw because
// the arrays mix plain strings with conditional objects; only string
// tokens are consumed by the composer.
type Arguments struct {
	Game []json.RawMessage `json:"game,omitempty"`
	JVM  []json.RawMessage `json:"jvm,omitempty"`
}

// Library is one dependency declaration.
type Library struct {
	// Name is a group:artifact:version coordinate.
	Name    string            `json:"name"`
	Rules   []Rule            `json:"rules,omitempty"`
	Natives map[string]string `json:"natives,omitempty"`
}

// Rule is one allow/disallow predicate applied in declaration order.
type Rule struct {
	Action string  `json:"action"`
	OS     *RuleOS `json:"os,omitempty"`
}

// RuleOS constrains a rule to an OS name and optionally an architecture.
type RuleOS struct {
	Name string `json:"name,omitempty"`
	Arch string `json:"arch,omitempty"`
}

const (
	RuleActionAllow    = "allow"
	RuleActionDisallow = "disallow"
)
