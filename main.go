package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

func main() {
	log := newLogger(os.Stderr, zerolog.InfoLevel)

	if err := run(defaultConfig(), os.Stdout, log); err != nil {
		log.Fatal().Err(err).Msg("thumbnail generation failed")
	}
}

// run creates the output directory once, renders every project in order and
// stops at the first failure. Files written before the failure are kept.
func run(cfg Config, out io.Writer, log zerolog.Logger) error {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	gen, err := NewGenerator(cfg, out, log)
	if err != nil {
		return err
	}

	for _, p := range projects() {
		if _, err := gen.Render(p); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "\nAll thumbnails created successfully!")
	return nil
}
