package static

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSContainsAssets(t *testing.T) {
	for _, name := range []string{"style.css", "placeholder.svg"} {
		data, err := fs.ReadFile(FS(), name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}
}
