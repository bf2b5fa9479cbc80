package gclplugin

import typeglue "github.com/carlosskii/typeglue/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Recoverable enables reporting of recoverable diagnostics.
	Recoverable *bool `json:"recoverable,omitzero"`
	// Disable lists diagnostic codes that are not reported.
	Disable []string `json:"disable,omitzero"`
}

// Options converts [Settings] into a list of [typeglue.Option] for the analyzer.
// Settings are applied only when explicitly set.
func (s Settings) Options() []typeglue.Option {
	var opts []typeglue.Option

	if s.Recoverable != nil {
		opts = append(opts, typeglue.WithRecoverable(*s.Recoverable))
	}

	if len(s.Disable) > 0 {
		opts = append(opts, typeglue.WithDisabled(s.Disable...))
	}

	return opts
}
