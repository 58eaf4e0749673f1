package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyJson(t *testing.T) {
	type entry struct {
		Period  string  `json:"period"`
		Revenue float64 `json:"revenue"`
		Active  bool    `json:"active"`
	}

	tests := []struct {
		name string
		in   any
		want string
	}{
		{
			name: "mapa",
			in:   map[string]int{"a": 1},
			want: "{\n\t\"a\": 1\n}",
		},
		{
			name: "struct mantém a ordem dos campos",
			in:   entry{Period: "01-2025", Revenue: 72500, Active: true},
			want: "{\n\t\"period\": \"01-2025\",\n\t\"revenue\": 72500,\n\t\"active\": true\n}",
		},
		{
			name: "bytes json",
			in:   []byte(`[1,2]`),
			want: "[\n\t1,\n\t2\n]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PrettyJson(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrettyJson_InvalidBytes(t *testing.T) {
	_, err := PrettyJson([]byte(`{"a":`))

	assert.Error(t, err)
}
