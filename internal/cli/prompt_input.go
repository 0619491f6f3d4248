package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// confirm asks a yes/no question on the command's streams. Anything but an
// explicit yes declines.
func confirm(cmd *cobra.Command, message string) bool {
	return promptYesNoIO(cmd.InOrStdin(), cmd.ErrOrStderr(), message, false)
}

func promptYesNoIO(in io.Reader, out io.Writer, message string, defaultYes bool) bool {
	if out != nil {
		fmt.Fprint(out, message)
	}

	text, err := readPromptLine(in)
	if err != nil {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(text)) {
	case "":
		return defaultYes
	case "y", "yes":
		return true
	}
	return false
}

// readPromptLine reads until LF or CR so Enter works in cooked and raw
// terminal modes.
func readPromptLine(in io.Reader) (string, error) {
	if in == nil {
		return "", io.EOF
	}

	var buf []byte
	var one [1]byte
	for {
		n, err := in.Read(one[:])
		if n > 0 {
			if one[0] == '\n' || one[0] == '\r' {
				return string(buf), nil
			}
			buf = append(buf, one[0])
		}
		if errors.Is(err, io.EOF) && len(buf) > 0 {
			return string(buf), nil
		}
		if err != nil {
			return string(buf), err
		}
	}
}
