package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-ropa/pkg/logger"
)

// Fuera de development la salida es JSON por línea con nivel y mensaje.
func TestNew_SalidaJSONEnProduccion(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	log.Info().Str("modulo", "ventas").Msg("venta registrada")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"modulo":"ventas"`)
	assert.Contains(t, out, `"message":"venta registrada"`)
}

// El nivel configurado filtra los eventos por debajo.
func TestNew_NivelFiltraEventos(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})

	log.Info().Msg("silenciado")
	log.Warn().Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "silenciado")
	assert.Contains(t, out, "visible")
}

// Un nivel no reconocido cae a info en lugar de silenciar el logger.
func TestNew_NivelInvalidoCaeAInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "verboso", Output: &buf})

	log.Info().Msg("aún visible")
	assert.Contains(t, buf.String(), "aún visible")
}
