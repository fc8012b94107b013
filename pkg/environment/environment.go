// Package environment maps a named deployment of xengvang.com to the base URL
// every page path is resolved under.
package environment

import (
	"errors"
	"fmt"
	"strings"
)

// Environment is a named deployment of the site.
type Environment string

const (
	Local       Environment = "local"
	Development Environment = "development"
	QA          Environment = "qa"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Base URLs, one per Environment.
const (
	LocalBaseURL       = "http://localhost:3000"
	DevelopmentBaseURL = "https://dev.xengvang.com"
	QABaseURL          = "https://qa.xengvang.com"
	StagingBaseURL     = "https://staging.xengvang.com"
	ProductionBaseURL  = "https://www.xengvang.com"
)

// ErrUnknownEnvironment is returned for a name outside the enumeration.
var ErrUnknownEnvironment = errors.New("invalid test environment")

var all = []Environment{Local, Development, QA, Staging, Production}

// All returns every recognised environment in declaration order.
func All() []Environment {
	out := make([]Environment, len(all))
	copy(out, all)
	return out
}

// Parse resolves name case-insensitively.
func Parse(name string) (Environment, error) {
	env := Environment(strings.ToLower(strings.TrimSpace(name)))
	switch env {
	case Local, Development, QA, Staging, Production:
		return env, nil
	default:
		return "", fmt.Errorf("%w: %q. Allowable values are: %s", ErrUnknownEnvironment, name, allowed())
	}
}

// BaseURL resolves name straight to its base URL.
func BaseURL(name string) (string, error) {
	env, err := Parse(name)
	if err != nil {
		return "", err
	}
	return env.BaseURL(), nil
}

// BaseURL returns the scheme+host root of e, or "" if e is not one of the
// declared environments.
func (e Environment) BaseURL() string {
	switch e {
	case Local:
		return LocalBaseURL
	case Development:
		return DevelopmentBaseURL
	case QA:
		return QABaseURL
	case Staging:
		return StagingBaseURL
	case Production:
		return ProductionBaseURL
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (e Environment) String() string {
	return string(e)
}

func allowed() string {
	names := make([]string, len(all))
	for i, env := range all {
		names[i] = string(env)
	}
	return strings.Join(names, ", ")
}
