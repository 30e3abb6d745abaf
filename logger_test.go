package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, zerolog.InfoLevel)

	log.Debug().Msg("preferred fonts unavailable")
	assert.Empty(t, buf.String(), "debug output should be filtered at info level")

	log.Error().Err(errors.New("disk full")).Msg("thumbnail generation failed")
	out := buf.String()
	assert.Contains(t, out, "thumbnail generation failed")
	assert.Contains(t, out, "disk full")
	assert.Contains(t, out, "mlthumbnails")
}
