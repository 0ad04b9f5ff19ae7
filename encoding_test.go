package teststate_test

import (
	"encoding/json"
	"testing"

	"github.com/bjaus/teststate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshalJSON(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input any
		want  string
	}{
		"value":        {input: teststate.String("foo"), want: `"\"foo\""`},
		"array":        {input: teststate.List([]int{1, 2}), want: `"[ 1, 2 ]"`},
		"property":     {input: teststate.PropOf("a", 1), want: `"\"a\": 1"`},
		"output":       {input: teststate.WithPrefix("P: ").Add(1, 2), want: `["P: 1","P: 2"]`},
		"empty output": {input: teststate.New(), want: `[]`},
		"in struct": {
			input: struct {
				State teststate.Value `json:"state"`
			}{State: teststate.Bool(true)},
			want: `{"state":"true"}`,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := json.Marshal(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestMarshalYAML(t *testing.T) {
	t.Parallel()
	report := struct {
		Test  string             `yaml:"test"`
		Value teststate.Value    `yaml:"value"`
		Prop  teststate.Property `yaml:"prop"`
		State *teststate.Output  `yaml:"state"`
	}{
		Test:  "TestParticle",
		Value: teststate.List([]string{"a"}),
		Prop:  teststate.PropOf("x", 1),
		State: teststate.WithGoogleTestPrefix().Add(1, 2),
	}
	data, err := yaml.Marshal(report)
	require.NoError(t, err)

	var decoded struct {
		Test  string `yaml:"test"`
		Value string `yaml:"value"`
		Prop  string `yaml:"prop"`
		State string `yaml:"state"`
	}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "TestParticle", decoded.Test)
	assert.Equal(t, `[ "a" ]`, decoded.Value)
	assert.Equal(t, `"x": 1`, decoded.Prop)
	assert.Equal(t, "[    STATE ] 1\n[    STATE ] 2", decoded.State)
	assert.Contains(t, string(data), "state: |-\n")
}
