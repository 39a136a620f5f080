package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gookit/color"

	"chunkgen/pkg/engine/i18n"
	"chunkgen/pkg/engine/terminal"
	"chunkgen/pkg/game/chunk"
	"chunkgen/pkg/game/devtools"
	"chunkgen/pkg/game/generator"
	"chunkgen/pkg/game/level"
	"chunkgen/pkg/game/state"
)

// loadConfig reads path over the defaults, then reapplies the config flags
// that were set explicitly on the command line.
func loadConfig(path string) (chunk.Config, error) {
	cfg, err := chunk.LoadConfig(path)
	if err != nil {
		return cfg, err
	}
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	cfg.Bind(fs)
	var setErr error
	flag.Visit(func(f *flag.Flag) {
		if fs.Lookup(f.Name) == nil || setErr != nil {
			return
		}
		setErr = fs.Set(f.Name, f.Value.String())
	})
	if setErr != nil {
		return cfg, setErr
	}
	cfg.Reseed()
	return cfg, nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := chunk.DefaultConfig(0)
	cfg.Bind(flag.CommandLine)
	configPath := flag.String("config", "", "JSON configuration file")
	wholeLevel := flag.Bool("level", false, "generate every chunk of the level")
	genName := flag.String("generator", generator.DefaultGenerator.Name(), "chunk generator (dungeon, warren)")
	debug := flag.Bool("debug", false, "trace generation steps and dump rooms")
	out := flag.String("out", "", "write the chunk dump to this file")
	dev := flag.Bool("dev", false, "dump the developer chunk holding every tile")
	find := flag.String("find", "", "report where the named tile sits in each chunk")
	localeDir := flag.String("locale", "", "directory with translations")
	lang := flag.String("lang", i18n.DefaultLang, "language for translated labels")
	flag.Parse()

	if err := i18n.Configure(*localeDir, *lang); err != nil {
		log.Printf("warning: %v", err)
	}
	if !terminal.IsTerminal() {
		color.Enable = false
	}

	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		cfg.Reseed()
	}

	gen, err := generator.ByName(*genName)
	if err != nil {
		return err
	}
	session := state.NewSession(*debug, os.Stderr)

	var chunks []*chunk.Chunk
	switch {
	case *dev:
		chunks = []*chunk.Chunk{devtools.DevChunk(session)}
	case *wholeLevel:
		l, err := generateLevel(cfg, gen, session)
		if err != nil {
			return err
		}
		l.Render(os.Stdout, terminal.GetWidth())
		chunks = l.Chunks()
	default:
		c, err := gen.Generate(cfg, session)
		if err != nil {
			return err
		}
		chunks = []*chunk.Chunk{c}
	}

	if *find != "" {
		if err := devtools.ReportTile(os.Stdout, *find, chunks...); err != nil {
			return err
		}
	}

	switch {
	case *out != "":
		path, err := devtools.DumpChunkToFile(*out, chunks...)
		if err != nil {
			return err
		}
		fmt.Println(i18n.Tf("CLI_WROTE", path))
	case !*wholeLevel && *find == "":
		devtools.DumpChunk(os.Stdout, chunks[0])
	}
	return nil
}

// generateLevel builds and generates every chunk of the level, stopping
// early on an interrupt.
func generateLevel(cfg chunk.Config, gen generator.ChunkGenerator, session *state.Session) (*level.Level, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	l, err := level.New(cfg, gen, session)
	if err != nil {
		return nil, err
	}
	if err := l.Generate(ctx); err != nil {
		return nil, err
	}
	return l, nil
}
