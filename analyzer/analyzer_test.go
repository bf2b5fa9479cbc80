package analyzer_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	. "github.com/carlosskii/typeglue/analyzer"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()

	tests := []struct {
		name    string
		dir     string
		options Option
	}{
		{
			name: "Default",
			dir:  "a",
		},
		{
			name:    "Generated",
			dir:     "generated",
			options: WithGenerated(true),
		},
		{
			name:    "Quiet",
			dir:     "quiet",
			options: Options{WithRecoverable(false), WithDisabled("unsupported-shape")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			analysistest.Run(t, testdata, New(tt.options), tt.dir)
		})
	}
}
