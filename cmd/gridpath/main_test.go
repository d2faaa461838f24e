package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		args     []string
		input    string
		wantCode int
		check    func(t *testing.T, stdout string)
	}{
		{
			name:     "demo path",
			args:     []string{"-no-color", "-cost"},
			input:    "0 0 9 9\n",
			wantCode: exitOK,
			check: func(t *testing.T, stdout string) {
				lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
				require.Len(t, lines, 11)
				assert.Equal(t, "0 0 0 0 0 0 0 1 1 0", lines[2])
				assert.Equal(t, "1 1 0 0 0 0 0 0 0 0", lines[9])
				assert.Equal(t, "cost 16.828427", lines[10])
			},
		},
		{
			name:     "colored output highlights the path",
			input:    "0 0 9 9",
			wantCode: exitOK,
			check: func(t *testing.T, stdout string) {
				assert.Contains(t, stdout, "\x1b[92m0\x1b[0m")
				assert.Contains(t, stdout, "\x1b[91m1\x1b[0m")
			},
		},
		{
			name:     "walled-in target",
			args:     []string{"-no-color", "-width", "3", "-height", "3", "-walls", "1,0, 1,1, 1,2"},
			input:    "0 0 2 2",
			wantCode: exitNoPath,
			check: func(t *testing.T, stdout string) {
				assert.Equal(t, "0 1 0\n0 1 0\n0 1 0\n", stdout)
			},
		},
		{
			name:     "custom empty grid",
			args:     []string{"-no-color", "-width", "3", "-height", "3"},
			input:    "0 0 2 2",
			wantCode: exitOK,
			check: func(t *testing.T, stdout string) {
				assert.Equal(t, "0 0 0\n0 0 0\n0 0 0\n", stdout)
			},
		},
		{
			name:     "bad wall list",
			args:     []string{"-walls", "1,x"},
			input:    "0 0 9 9",
			wantCode: exitInvalid,
		},
		{
			name:     "source on a wall",
			args:     []string{"-no-color"},
			input:    "7 2 9 9",
			wantCode: exitInvalid,
		},
		{
			name:     "target off the grid",
			input:    "0 0 10 10",
			wantCode: exitInvalid,
		},
		{
			name:     "not enough numbers",
			input:    "0 0 9",
			wantCode: exitInvalid,
		},
		{
			name:     "unknown flag",
			args:     []string{"-bogus"},
			input:    "0 0 9 9",
			wantCode: exitInvalid,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var stdout, stderr bytes.Buffer
			code := run(tc.args, strings.NewReader(tc.input), &stdout, &stderr)
			assert.Equal(t, tc.wantCode, code, "stderr: %s", stderr.String())
			if tc.check != nil {
				tc.check(t, stdout.String())
			}
		})
	}
}
