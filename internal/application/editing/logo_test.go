package editing_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/invoice-studio/internal/application/editing"
	"github.com/tu-usuario/invoice-studio/internal/domain"
)

// pngBytes imagen PNG mínima de 2×2 para los tests de logo.
func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestEncodeLogo_PNG(t *testing.T) {
	dataURL, err := editing.EncodeLogo(pngBytes(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"))
}

func TestEncodeLogo_NoEsImagen(t *testing.T) {
	_, err := editing.EncodeLogo([]byte("definitivamente no es una imagen"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDecodeLogo_IdaYVuelta(t *testing.T) {
	original := pngBytes(t)
	dataURL, err := editing.EncodeLogo(original)
	require.NoError(t, err)

	data, format, err := editing.DecodeLogo(dataURL)
	require.NoError(t, err)
	assert.Equal(t, original, data)
	assert.Equal(t, "png", format)
}

func TestDecodeLogo_Malformado(t *testing.T) {
	_, _, err := editing.DecodeLogo("no-es-un-data-url")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = editing.DecodeLogo("data:image/png;base64,@@@@")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
