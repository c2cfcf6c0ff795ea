package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateScan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
	}{
		{"time", time.Date(2024, 1, 15, 23, 30, 0, 0, time.FixedZone("", 3600))},
		{"bytes", []byte("2024-01-15")},
		{"string", "2024-01-15"},
		{"timestamp string", "2024-01-15T00:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, NewDate(2024, time.January, 15), d)
		})
	}

	var d Date
	assert.Error(t, d.Scan(42))
	assert.Error(t, d.Scan("15/01/2024"))
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.March, 9)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-09"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, d, back)

	assert.Error(t, json.Unmarshal([]byte(`20240309`), &back))
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2024, time.January, 2).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", v)
}
