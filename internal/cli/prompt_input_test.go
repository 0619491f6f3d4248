package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptYesNoIO(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{name: "yes lowercase lf", input: "y\n", want: true},
		{name: "yes word lf", input: "yes\n", want: true},
		{name: "yes mixed case cr", input: "YeS\r", want: true},
		{name: "empty defaults no", input: "\n", want: false},
		{name: "empty defaults yes", input: "\n", defaultYes: true, want: true},
		{name: "explicit no overrides yes default", input: "n\n", defaultYes: true, want: false},
		{name: "anything else declines", input: "sure\n", want: false},
		{name: "closed input declines", input: "", defaultYes: true, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			got := promptYesNoIO(strings.NewReader(tc.input), &out, "Clear history? [y/N]: ", tc.defaultYes)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, "Clear history? [y/N]: ", out.String())
		})
	}
}

func TestReadPromptLine_EOFWithoutNewline(t *testing.T) {
	t.Parallel()

	got, err := readPromptLine(strings.NewReader("yes"))
	assert.NoError(t, err)
	assert.Equal(t, "yes", got)
}
