package teststate_test

import (
	"os"
	"testing"

	"github.com/bjaus/teststate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type renderCase struct {
	Name  string `yaml:"name"`
	Input any    `yaml:"input"`
	Want  string `yaml:"want"`
}

func loadRenderCases(t *testing.T) []renderCase {
	t.Helper()
	data, err := os.ReadFile("testdata/render.yaml")
	require.NoError(t, err)
	var cases []renderCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)
	return cases
}

func TestRenderGolden(t *testing.T) {
	t.Parallel()
	for _, tc := range loadRenderCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.Want, teststate.Of(tc.Input).String())
		})
	}
}
