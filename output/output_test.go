package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Line int    `json:"line"`
}

func TestWrite(t *testing.T) {
	tests := []struct {
		name  string
		value any
		ascii bool
		want  string
	}{
		{
			name:  "empty_array",
			value: []record{},
			want:  "[]\n",
		},
		{
			name:  "key_order_and_separators",
			value: []record{{ID: "python_test", Name: "calc_test", Line: 1}},
			want:  `[{"id": "python_test", "name": "calc_test", "line": 1}]` + "\n",
		},
		{
			name:  "separators_inside_strings_untouched",
			value: []record{{ID: "a,b", Name: `c:"d"`, Line: 2}, {ID: "e", Name: "f", Line: 3}},
			want:  `[{"id": "a,b", "name": "c:\"d\"", "line": 2}, {"id": "e", "name": "f", "line": 3}]` + "\n",
		},
		{
			name:  "html_not_escaped",
			value: []record{{ID: "<a>&", Name: "x", Line: 1}},
			want:  `[{"id": "<a>&", "name": "x", "line": 1}]` + "\n",
		},
		{
			name:  "raw_unicode",
			value: []record{{ID: "café", Name: "x", Line: 1}},
			want:  `[{"id": "café", "name": "x", "line": 1}]` + "\n",
		},
		{
			name:  "ascii_escapes",
			value: []record{{ID: "café\x7f", Name: "😀", Line: 1}},
			ascii: true,
			want:  `[{"id": "caf\u00e9\u007f", "name": "\ud83d\ude00", "line": 1}]` + "\n",
		},
		{
			name:  "control_characters",
			value: []record{{ID: "a\tb\nc\\", Name: "\x01", Line: 1}},
			ascii: true,
			want:  `[{"id": "a\tb\nc\\", "name": "\u0001", "line": 1}]` + "\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := New(Config{ASCII: tc.ascii, Output: &buf})
			require.NoError(t, w.Write(tc.value))
			require.Equal(t, tc.want, buf.String())
		})
	}
}

func TestWriteUnsupportedValue(t *testing.T) {
	var buf bytes.Buffer
	err := New(Config{Output: &buf}).Write(func() {})
	require.Error(t, err)
	require.Empty(t, buf.String())
}
