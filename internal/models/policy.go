package models

// PolicyConfig is a launch policy loaded from YAML.
type PolicyConfig struct {
	Name  string       `yaml:"name"`
	Rules []PolicyRule `yaml:"rules"`
}

// PolicyRule is one CEL expression evaluated against the launch input.
type PolicyRule struct {
	Name       string `yaml:"name"`
	Expr       string `yaml:"expr"`
	FailureMsg string `yaml:"failure_msg"`
}

// PolicyResult eval result
type PolicyResult struct {
	RuleName   string
	Passed     bool
	FailureMsg string
}
