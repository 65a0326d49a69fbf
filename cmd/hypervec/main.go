// Command hypervec formats, encodes and stores vectors from the command line.
package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/hupe1980/hypervec"
	"github.com/hupe1980/hypervec/archive"
	"github.com/hupe1980/hypervec/catalog"
	"github.com/hupe1980/hypervec/codec"
)

const commandUsage = `Commands:
  format <c0> <c1> ...       print the vector using --spec
  encode <c0> <c1> ...       print the hex wire encoding
  decode <hex>               print a hex-encoded vector, its norm and hash
  angles <c0> <c1> ...       print the hyperspherical angles
  save <name> [file]         store vectors read from file or stdin, one per line
  load <name>                print a stored collection using --spec
  list                       list stored collections
  delete <name>              delete a stored collection
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, args, err := loadConfig(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if len(args) == 0 {
		fmt.Fprint(stderr, commandUsage)
		return 2
	}

	cmd, args := args[0], args[1:]
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	app := &app{cfg: cfg, stdin: stdin, stdout: stdout, stderr: stderr}

	if err := app.dispatch(ctx, cmd, args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

var errUsage = errors.New("usage")

type app struct {
	cfg    Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (a *app) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "format":
		return a.format(args)
	case "encode":
		return a.encode(args)
	case "decode":
		return a.decode(args)
	case "angles":
		return a.angles(args)
	case "save":
		return a.save(ctx, args)
	case "load":
		return a.load(ctx, args)
	case "list":
		return a.list(ctx)
	case "delete":
		return a.delete(ctx, args)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// parseVector parses components given as separate arguments.
func parseVector(args []string) (hypervec.Vector, error) {
	components := make([]float64, len(args))
	for i, s := range args {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return hypervec.Vector{}, fmt.Errorf("component %d: %w", i, err)
		}
		components[i] = f
	}
	return hypervec.New(components), nil
}

// parseLine parses one vector from a line of comma or whitespace separated
// components. Surrounding parentheses or brackets are ignored.
func parseLine(line string) (hypervec.Vector, error) {
	line = strings.Trim(strings.TrimSpace(line), "()[]")
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	return parseVector(fields)
}

func (a *app) print(v hypervec.Vector) error {
	if a.cfg.Spec == "" {
		_, err := fmt.Fprintln(a.stdout, v)
		return err
	}
	s, err := v.FormatSpec(a.cfg.Spec)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout, s)
	return err
}

func (a *app) format(args []string) error {
	v, err := parseVector(args)
	if err != nil {
		return err
	}
	return a.print(v)
}

func (a *app) encode(args []string) error {
	v, err := parseVector(args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout, hex.EncodeToString(v.Bytes()))
	return err
}

func (a *app) decode(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: decode <hex>", errUsage)
	}
	data, err := hex.DecodeString(args[0])
	if err != nil {
		return err
	}
	v, err := hypervec.FromBytes(data)
	if err != nil {
		return err
	}
	if err := a.print(v); err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.stdout, "norm: %s\nhash: %d\n", strconv.FormatFloat(v.Norm(), 'g', -1, 64), v.Hash())
	return err
}

func (a *app) angles(args []string) error {
	v, err := parseVector(args)
	if err != nil {
		return err
	}
	for angle := range v.Angles() {
		if _, err := fmt.Fprintln(a.stdout, strconv.FormatFloat(angle, 'g', -1, 64)); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) catalog(ctx context.Context) (*catalog.Catalog, error) {
	store, err := openStore(ctx, a.cfg)
	if err != nil {
		return nil, err
	}
	compression, err := archive.ParseCompression(a.cfg.Compression)
	if err != nil {
		return nil, err
	}
	c, ok := codec.ByName(a.cfg.Codec)
	if !ok {
		return nil, fmt.Errorf("unknown codec %q", a.cfg.Codec)
	}
	logger, err := newLogger(a.cfg, a.stderr)
	if err != nil {
		return nil, err
	}

	return catalog.New(store,
		catalog.WithPrefix(a.cfg.Prefix),
		catalog.WithCompression(compression),
		catalog.WithCodec(c),
		catalog.WithLogger(logger),
		catalog.WithConcurrency(a.cfg.Concurrency),
		catalog.WithWriteLimit(a.cfg.WriteLimit),
	), nil
}

func newLogger(cfg Config, w io.Writer) (*catalog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch cfg.LogFormat {
	case "text":
		return catalog.NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return catalog.NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}
}

func (a *app) save(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: save <name> [file]", errUsage)
	}

	in := a.stdin
	if len(args) == 2 && args[1] != "-" {
		f, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	var vectors []hypervec.Vector
	scanner := bufio.NewScanner(in)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := parseLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		vectors = append(vectors, v)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	cat, err := a.catalog(ctx)
	if err != nil {
		return err
	}
	if err := cat.Save(ctx, args[0], vectors); err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.stdout, "saved %d vectors to %s\n", len(vectors), args[0])
	return err
}

func (a *app) load(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: load <name>", errUsage)
	}
	cat, err := a.catalog(ctx)
	if err != nil {
		return err
	}
	arc, err := cat.Load(ctx, args[0])
	if err != nil {
		return err
	}
	for _, v := range arc.All() {
		if err := a.print(v); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) list(ctx context.Context) error {
	cat, err := a.catalog(ctx)
	if err != nil {
		return err
	}
	names, err := cat.Names(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(a.stdout, name); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: delete <name>", errUsage)
	}
	cat, err := a.catalog(ctx)
	if err != nil {
		return err
	}
	return cat.Delete(ctx, args[0])
}
