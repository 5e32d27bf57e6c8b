package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeframeDuration(t *testing.T) {
	tests := []struct {
		label string
		want  time.Duration
	}{
		{"15m", 15 * time.Minute},
		{"1h", time.Hour},
		{"4h", 4 * time.Hour},
		{"1d", 24 * time.Hour},
		{"1w", 7 * 24 * time.Hour},
	}
	for _, tt := range tests {
		got, err := TimeframeDuration(tt.label)
		require.NoError(t, err, tt.label)
		assert.Equal(t, tt.want, got, tt.label)
	}

	for _, label := range []string{"", "h", "15", "0m", "-1h", "3x"} {
		_, err := TimeframeDuration(label)
		assert.Error(t, err, label)
	}
}

func TestCandleBodyRange(t *testing.T) {
	up := Candle{Open: 100, High: 106, Low: 98, Close: 104}
	assert.Equal(t, 4.0, up.Body())
	assert.Equal(t, 8.0, up.Range())

	down := Candle{Open: 104, High: 106, Low: 98, Close: 100}
	assert.Equal(t, 4.0, down.Body())
}
