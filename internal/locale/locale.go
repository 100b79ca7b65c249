// Package locale abstracts the platform-reported language tag, the input
// to currency detection.
package locale

import "os"

// Source reports a BCP-47-ish language tag and, optionally, a timezone
// identifier. Pure reads, no mutation.
type Source interface {
	Tag() string
	Timezone() string
}

// EnvSource reads the usual POSIX variables.
type EnvSource struct{}

func (EnvSource) Tag() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func (EnvSource) Timezone() string {
	return os.Getenv("TZ")
}

// Static is a fixed source for tests and the --locale flag.
type Static struct {
	LangTag string
	TZ      string
}

func (s Static) Tag() string      { return s.LangTag }
func (s Static) Timezone() string { return s.TZ }
