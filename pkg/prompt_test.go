package pluginversion

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsolePrompter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "answers", input: "4.0.0\n20240701\n", want: []string{"4.0.0", "20240701"}},
		{name: "empty lines take defaults", input: "\n\n", want: []string{"3.4.2", "20240615"}},
		{name: "end of input takes defaults", input: "", want: []string{"3.4.2", "20240615"}},
		{name: "last line without newline", input: "\n20240701", want: []string{"3.4.2", "20240701"}},
		{name: "surrounding space is dropped", input: "  4.0.0 \r\n\t\n", want: []string{"4.0.0", "20240615"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			p := NewConsolePrompter(strings.NewReader(tt.input), &out)

			v, err := p.Ask("Enter the new version", "3.4.2")
			require.NoError(t, err)
			d, err := p.Ask("Enter the new release date", "20240615")
			require.NoError(t, err)

			assert.Equal(t, tt.want, []string{v, d})
			assert.Equal(t,
				"Enter the new version (default: 3.4.2): \nEnter the new release date (default: 20240615): \n",
				out.String(),
			)
		})
	}
}

func TestDefaultsPrompter(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := DefaultsPrompter{Out: &out}

	got, err := p.Ask("Enter the new version", "3.4.2")
	require.NoError(t, err)
	assert.Equal(t, "3.4.2", got)
	assert.Equal(t, "Enter the new version (default: 3.4.2): 3.4.2\n", out.String())

	got, err = DefaultsPrompter{}.Ask("Enter the new release date", "20240615")
	require.NoError(t, err)
	assert.Equal(t, "20240615", got)
}
