package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePlayerSheet(t *testing.T) {
	for _, path := range []string{"player.png", "assets/player.png", "/opt/game/assets/player.png"} {
		t.Run(path, func(t *testing.T) {
			img, err := DecodeImage(path)
			require.NoError(t, err)
			b := img.Bounds()
			// 14 columns x 4 rows of 16px cells
			assert.Equal(t, 224, b.Dx())
			assert.Equal(t, 64, b.Dy())
		})
	}

	_, err := LoadFile("missing.png")
	assert.Error(t, err)
}
