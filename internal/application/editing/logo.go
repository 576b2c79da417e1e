package editing

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg" // registro de decodificadores para validar el logo
	_ "image/png"
	"strings"

	"github.com/tu-usuario/invoice-studio/internal/domain"
)

// EncodeLogo valida los bytes subidos como imagen (PNG o JPEG) y los
// devuelve como data URL listo para embeber en el tema.
func EncodeLogo(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: el logo no es una imagen PNG o JPEG", domain.ErrInvalidInput)
	}
	mime := "image/" + format
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// DecodeLogo extrae los bytes y el formato de un data URL de logo.
func DecodeLogo(dataURL string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return nil, "", fmt.Errorf("%w: el logo no es un data URL", domain.ErrInvalidInput)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return nil, "", fmt.Errorf("%w: data URL de logo malformado", domain.ErrInvalidInput)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: base64 de logo inválido", domain.ErrInvalidInput)
	}
	ext := strings.TrimPrefix(strings.TrimSuffix(meta, ";base64"), "image/")
	return data, ext, nil
}
