package leaflet_test

import (
	"testing"

	leaflet "github.com/K-Tina/Leaflet-scraper"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := leaflet.Errorf(leaflet.ENOTFOUND, "shop %q not found", "test")

	assert.Equal(t, leaflet.ENOTFOUND, leaflet.ErrorCode(err))
	assert.Equal(t, "shop \"test\" not found", leaflet.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, leaflet.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, leaflet.ErrorMessage(nil))
}
