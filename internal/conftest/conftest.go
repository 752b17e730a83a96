package conftest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Case is one conformance test case for the literal decoders. Input is the
// raw text handed to a decoder; Want and Rest are the expected decoded
// content and the expected unconsumed remainder. Cases with Fail set expect
// a malformed-escape error instead.
//
// In the YAML files, escape sequences under test are written in single
// quotes, which keep backslashes literal; expectations use double quotes, so
// that YAML's own escapes can spell out control characters.
type Case struct {
	Name  string `yaml:"name"`
	Input string `yaml:"input"`
	Want  string `yaml:"want,omitempty"`
	Rest  string `yaml:"rest,omitempty"`
	Fail  bool   `yaml:"fail,omitempty"`
}

type caseFile struct {
	Cases []Case `yaml:"cases"`
}

// Load parses a YAML case file into a list of conformance cases.
func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cf caseFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("conftest: cannot parse %s: %w", path, err)
	}
	if len(cf.Cases) == 0 {
		return nil, fmt.Errorf("conftest: no cases in %s", path)
	}
	return cf.Cases, nil
}
