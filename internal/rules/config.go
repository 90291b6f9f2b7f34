package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RuleSet holds every vocabulary table and threshold the rules consult.
// Keeping these out of the rule bodies lets the lists be extended or
// localized without touching control flow.
//
// Matching is case-insensitive substring for all tables except
// AssertionTerms, which match on word boundaries so that e.g. "treatment"
// never triggers "treat".
type RuleSet struct {
	// RequiredHeadings are literal substrings that must each appear
	// somewhere in the task document.
	RequiredHeadings []string `yaml:"required_headings"`

	// MaxDescriptionLength is the atomicity length threshold in characters.
	MaxDescriptionLength int `yaml:"max_description_length"`

	// BroadScopeTerms denote whole-system scope rather than one unit of work.
	BroadScopeTerms []string `yaml:"broad_scope_terms"`

	// FileHintTerms are file extensions and words that signal a task names a
	// concrete file.
	FileHintTerms []string `yaml:"file_hint_terms"`

	// ActionVerbs are imperative verbs an actionable task should contain.
	ActionVerbs []string `yaml:"action_verbs"`

	// SuccessTerms are success-criterion words an actionable task should
	// contain.
	SuccessTerms []string `yaml:"success_terms"`

	// SensitiveTerms flag sensitive-domain content that requires a
	// disclaimer.
	SensitiveTerms []string `yaml:"sensitive_terms"`

	// DisclaimerTerms satisfy the disclaimer requirement.
	DisclaimerTerms []string `yaml:"disclaimer_terms"`

	// AssertionTerms are diagnostic assertions that are prohibited outright,
	// disclaimer or not. Word-boundary matched.
	AssertionTerms []string `yaml:"assertion_terms"`

	// LocaleIndicators signal the document carries localization context.
	LocaleIndicators []string `yaml:"locale_indicators"`

	// LanguageTags are BCP 47 tags whose presence is reported as a strength.
	LanguageTags []string `yaml:"language_tags"`

	// EmergencyNumbers are designated emergency numbers whose presence is
	// reported as a strength.
	EmergencyNumbers []string `yaml:"emergency_numbers"`

	// RequirementPrefix is the literal prefix of requirement-reference
	// tokens, e.g. "REQ-".
	RequirementPrefix string `yaml:"requirement_prefix"`
}

// DefaultRuleSet returns the built-in vocabulary tables.
func DefaultRuleSet() *RuleSet {
	return &RuleSet{
		RequiredHeadings: []string{
			"# Implementation Plan",
			"## Tasks",
			"## Verification",
		},
		MaxDescriptionLength: 100,
		BroadScopeTerms: []string{
			"entire system",
			"whole system",
			"whole application",
			"all modules",
			"everything",
			"complete rewrite",
			"full stack",
		},
		FileHintTerms: []string{
			".md", ".go", ".ts", ".tsx", ".js", ".py", ".sql",
			".yaml", ".yml", ".json", ".html", ".css", "file",
		},
		ActionVerbs: []string{
			"create", "implement", "write", "test", "build", "add",
			"update", "fix", "refactor", "define", "configure",
			"document", "remove", "integrate",
		},
		SuccessTerms: []string{
			"return", "response", "status", "test", "validate",
			"verify", "ensure", "assert", "pass", "display",
		},
		SensitiveTerms: []string{
			"symptom", "diagnosis", "treatment", "emergency",
			"hospital", "triage", "medication", "patient",
		},
		DisclaimerTerms: []string{
			"disclaimer",
			"not a medical diagnosis",
			"seek professional advice",
			"designated emergency numbers",
			"consult a doctor",
		},
		AssertionTerms: []string{
			"diagnose", "cure", "treat", "prescribe",
		},
		LocaleIndicators: []string{
			"poland", "polish", "pl-pl", "warsaw", "112", "999", "nfz",
		},
		LanguageTags:     []string{"pl-PL"},
		EmergencyNumbers: []string{"112", "999"},

		RequirementPrefix: "REQ-",
	}
}

// LoadRuleSet reads a RuleSet from a YAML file.
func LoadRuleSet(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule set: %w", err)
	}

	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parsing rule set: %w", err)
	}

	return &rs, nil
}

// SaveDefaultRuleSet writes the default vocabulary tables to a YAML file so
// they can be edited and passed back via LoadRuleSet.
func SaveDefaultRuleSet(path string) error {
	data, err := yaml.Marshal(DefaultRuleSet())
	if err != nil {
		return fmt.Errorf("marshaling rule set: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing rule set: %w", err)
	}

	return nil
}
