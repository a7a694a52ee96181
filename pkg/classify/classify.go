package classify

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/altlist/pkg/errors"
)

// Sentinel is returned when no rule matches.
const Sentinel = "Generic Enterprise Tool"

//go:embed rules.toml
var defaultRules []byte

// Rule associates keywords with a paid alternative label.
type Rule struct {
	Label    string   `toml:"label"`
	Keywords []string `toml:"keywords"`
}

type ruleFile struct {
	Version int    `toml:"version"`
	Rules   []Rule `toml:"rule"`
}

// Classifier applies an ordered rule list. It is safe for concurrent use.
type Classifier struct {
	rules []Rule
}

// New returns a classifier over rules, in the given order. Keywords are
// lowercased once here.
func New(rules []Rule) *Classifier {
	c := &Classifier{rules: make([]Rule, len(rules))}
	for i, r := range rules {
		kws := make([]string, 0, len(r.Keywords))
		for _, kw := range r.Keywords {
			if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
				kws = append(kws, kw)
			}
		}
		c.rules[i] = Rule{Label: r.Label, Keywords: kws}
	}
	return c
}

// Default returns a classifier over the embedded rules.
func Default() *Classifier {
	rules, err := ParseRules(defaultRules)
	if err != nil {
		panic(fmt.Sprintf("classify: embedded rules: %v", err))
	}
	return New(rules)
}

// Rules returns a copy of the rule list in match order.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Classify returns the label of the first rule with any keyword contained in
// the lowercased "name description category" text, or [Sentinel].
func (c *Classifier) Classify(name, description, category string) string {
	text := matchText(name, description, category)
	for _, r := range c.rules {
		for _, kw := range r.Keywords {
			if strings.Contains(text, kw) {
				return r.Label
			}
		}
	}
	return Sentinel
}

// Match is one keyword found by [Classifier.Explain].
type Match struct {
	Rule    int // index in match order
	Label   string
	Keyword string
}

// Explain returns every keyword hit for the input in match order. The first
// hit, if any, is the label Classify returns.
func (c *Classifier) Explain(name, description, category string) []Match {
	text := matchText(name, description, category)
	var out []Match
	for i, r := range c.rules {
		for _, kw := range r.Keywords {
			if strings.Contains(text, kw) {
				out = append(out, Match{Rule: i, Label: r.Label, Keyword: kw})
			}
		}
	}
	return out
}

func matchText(name, description, category string) string {
	return strings.ToLower(name + " " + description + " " + category)
}

// ParseRules decodes a rules document. Every rule needs a label and at least
// one non-blank keyword.
func ParseRules(data []byte) ([]Rule, error) {
	var f ruleFile
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRules, err, "decode rules")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidRules, "unknown rule key %q", undecoded[0].String())
	}
	if len(f.Rules) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRules, "no rules defined")
	}
	for i, r := range f.Rules {
		if strings.TrimSpace(r.Label) == "" {
			return nil, errors.New(errors.ErrCodeInvalidRules, "rule %d: missing label", i+1)
		}
		if !hasKeyword(r.Keywords) {
			return nil, errors.New(errors.ErrCodeInvalidRules, "rule %d (%s): no keywords", i+1, r.Label)
		}
	}
	return f.Rules, nil
}

func hasKeyword(keywords []string) bool {
	for _, kw := range keywords {
		if strings.TrimSpace(kw) != "" {
			return true
		}
	}
	return false
}

// LoadRules reads and parses a rules file.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "rules file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidRules, err, "read rules %s", path)
	}
	return ParseRules(data)
}
