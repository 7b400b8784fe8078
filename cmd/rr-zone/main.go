package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/haukened/rr-zone/internal/dns/common/clock"
	"github.com/haukened/rr-zone/internal/dns/common/log"
	"github.com/haukened/rr-zone/internal/dns/common/utils"
	"github.com/haukened/rr-zone/internal/dns/config"
	"github.com/haukened/rr-zone/internal/dns/gateways/wire"
	"github.com/haukened/rr-zone/internal/dns/repos/archive"
	"github.com/haukened/rr-zone/internal/dns/repos/archive/bloom"
	"github.com/haukened/rr-zone/internal/dns/repos/archive/bolt"
	"github.com/haukened/rr-zone/internal/dns/repos/archive/lru"
	"github.com/haukened/rr-zone/internal/dns/repos/archive/memstore"
	"github.com/haukened/rr-zone/internal/dns/repos/zone"
	"github.com/haukened/rr-zone/internal/dns/services/zonefile"
)

const (
	// Version information
	version = "0.1.0-dev"
	appName = "rr-zone"
)

var (
	errCheckFailed  = errors.New("zone check failed")
	errZoneNotFound = errors.New("zone not found in archive")
	errNoInput      = errors.New("an input path is required")
	errNoOrigin     = errors.New("an origin is required")
	errNoName       = errors.New("a name is required")
)

// archiveModes work on the zone archive.
var archiveModes = map[string]bool{"import": true, "export": true, "find": true, "list": true, "delete": true}

// Application holds the configured components for one run.
type Application struct {
	config  *config.AppConfig
	logger  log.Logger
	clock   clock.Clock
	store   archive.Store
	archive archive.Repository
}

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Configure global logging
	err = log.Configure(cfg.Env, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	log.Debug(map[string]any{
		"version":   version,
		"env":       cfg.Env,
		"log_level": cfg.Log.Level,
		"mode":      cfg.Mode,
		"input":     cfg.IO.Input,
		"output":    cfg.IO.Output,
		"format":    cfg.IO.Format,
	}, "Starting "+appName)

	app, err := buildApplication(cfg)
	if err != nil {
		log.Fatal(map[string]any{"error": err}, "Failed to build application")
	}

	runErr := app.Run(os.Stdin, os.Stdout)
	if err := app.Close(); err != nil {
		log.Warn(map[string]any{"error": err}, "Error closing archive")
	}
	if runErr != nil {
		log.Fatal(map[string]any{"error": runErr, "mode": cfg.Mode}, "Run failed")
	}
}

// buildApplication constructs the components the configured mode needs.
// The archive is only opened for the archive modes.
func buildApplication(cfg *config.AppConfig) (*Application, error) {
	app := &Application{
		config: cfg,
		logger: log.GetLogger(),
		clock:  &clock.RealClock{},
	}
	if !archiveModes[cfg.Mode] {
		return app, nil
	}

	store, err := buildStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive store: %w", err)
	}
	cache, err := lru.New(cfg.Archive.Cache.Size)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to create zone cache: %w", err)
	}
	repo, err := archive.NewRepository(store, cache, bloom.NewFactory(), cfg.Archive.FPRate, archive.Options{
		Codec:  archive.NewZoneFileCodec(),
		Clock:  app.clock,
		Logger: app.logger,
	})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to build archive: %w", err)
	}

	stats := repo.Stats()
	log.Info(map[string]any{
		"db":         cfg.Archive.DB,
		"zones":      stats.Store.Zones,
		"names":      stats.Store.Names,
		"cache_size": cfg.Archive.Cache.Size,
	}, "Zone archive opened")

	app.store = store
	app.archive = repo
	return app, nil
}

// buildStore opens the bbolt archive at cfg.Archive.DB, or an in-memory store when unset.
func buildStore(cfg *config.AppConfig) (archive.Store, error) {
	if cfg.Archive.DB == "" {
		return memstore.New(), nil
	}
	return bolt.New(cfg.Archive.DB)
}

// Close releases the archive store, if one was opened. It is safe to call twice.
func (app *Application) Close() error {
	if app.store == nil {
		return nil
	}
	err := app.store.Close()
	app.store = nil
	return err
}

// Run executes the configured mode. stdin and stdout are used when no
// input or output path is configured.
func (app *Application) Run(stdin io.Reader, stdout io.Writer) error {
	out, closeOut, err := app.openOutput(stdout)
	if err != nil {
		return err
	}
	defer closeOut()

	switch app.config.Mode {
	case "parse":
		return app.parse(stdin, out)
	case "generate":
		return app.generate(stdin, out)
	case "check":
		return app.check(stdin, out)
	case "import":
		return app.importZones(out)
	case "export":
		return app.export(out)
	case "find":
		return app.find(out)
	case "list":
		return app.list(out)
	case "delete":
		return app.deleteZone(out)
	default:
		return fmt.Errorf("unknown mode %q", app.config.Mode)
	}
}

func (app *Application) parseOptions() zonefile.ParseOptions {
	opts := app.config.ParseOptions()
	opts.Logger = app.logger
	return opts
}

func (app *Application) generateOptions() zonefile.GenerateOptions {
	opts := app.config.GenerateOptions()
	opts.Clock = app.clock
	opts.Logger = app.logger
	return opts
}

// parse converts master file text into structured records.
func (app *Application) parse(stdin io.Reader, out io.Writer) error {
	z, err := app.readZone(stdin, app.parseOptions())
	if err != nil {
		return err
	}
	log.Info(map[string]any{"origin": z.Origin, "records": len(z.Records)}, "Zone parsed")
	return zone.WriteRecords(out, z, app.config.IO.Format, app.config.IO.Flatten)
}

// generate renders a structured record file as master file text. The
// record file's origin and TTL apply when the config leaves them unset.
func (app *Application) generate(stdin io.Reader, out io.Writer) error {
	var (
		rf  *zone.RecordFile
		err error
	)
	if app.config.IO.Input != "" {
		rf, err = zone.LoadRecordFile(app.config.IO.Input)
	} else {
		var data []byte
		if data, err = io.ReadAll(stdin); err == nil {
			rf, err = zone.ReadRecords(data, app.config.IO.Format)
		}
	}
	if err != nil {
		return err
	}

	opts := app.generateOptions()
	if opts.Origin == "" {
		opts.Origin = rf.Origin
	}
	if rf.TTL != 0 {
		opts.TTL = rf.TTL
	}
	text, err := zonefile.Generate(rf.Records, opts)
	if err != nil {
		return err
	}
	log.Info(map[string]any{"origin": opts.Origin, "records": len(rf.Records)}, "Zone generated")
	_, err = io.WriteString(out, text)
	return err
}

// check parses a zone and round-trips every record through the miekg/dns
// wire format, writing one line per rejected or changed record.
func (app *Application) check(stdin io.Reader, out io.Writer) error {
	opts := app.parseOptions()
	opts.KeepTrailingDot = true
	z, err := app.readZone(stdin, opts)
	if err != nil {
		return err
	}

	rep := wire.Check(z.Records, z.Origin)
	for _, p := range rep.Problems {
		if _, err := fmt.Fprintf(out, "record %d\t%s\t%s\t%v\n", p.Index, p.Name, p.Type, p.Err); err != nil {
			return err
		}
	}
	log.Info(map[string]any{
		"origin":      z.Origin,
		"checked":     rep.Checked,
		"unsupported": rep.Unsupported,
		"problems":    len(rep.Problems),
	}, "Zone checked")
	if !rep.OK() {
		return fmt.Errorf("%w: %d of %d records rejected", errCheckFailed, len(rep.Problems), rep.Checked)
	}
	return nil
}

// importZones loads every master file under the input directory into the archive
// and writes the imported origins.
func (app *Application) importZones(out io.Writer) error {
	if app.config.IO.Input == "" {
		return errNoInput
	}
	opts := app.parseOptions()
	opts.KeepTrailingDot = true

	zones, err := zone.LoadZoneDirectory(app.config.IO.Input, opts)
	if err != nil {
		return err
	}
	origins := make([]string, 0, len(zones))
	for origin := range zones {
		origins = append(origins, origin)
	}
	sort.Strings(origins)

	for _, origin := range origins {
		if err := app.archive.Put(origin, zones[origin].Records); err != nil {
			return fmt.Errorf("failed to archive %s: %w", origin, err)
		}
		if _, err := fmt.Fprintln(out, origin); err != nil {
			return err
		}
	}

	stats := app.archive.Stats()
	log.Info(map[string]any{
		"dir":      app.config.IO.Input,
		"imported": len(origins),
		"zones":    stats.Store.Zones,
		"names":    stats.Store.Names,
	}, "Zones imported")
	return nil
}

// export renders one archived zone as master file text.
func (app *Application) export(out io.Writer) error {
	if app.config.Zone.Origin == "" {
		return errNoOrigin
	}
	origin := utils.AbsoluteName(app.config.Zone.Origin)

	records, ok, err := app.archive.Get(origin)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", errZoneNotFound, origin)
	}

	opts := app.generateOptions()
	opts.Origin = origin
	g, err := zonefile.NewGenerator(opts)
	if err != nil {
		return err
	}
	text, err := g.GenerateTyped(records)
	if err != nil {
		return err
	}
	log.Info(map[string]any{"origin": origin, "records": len(records)}, "Zone exported")
	_, err = io.WriteString(out, text)
	return err
}

// find writes the origin of the archived zone that holds the configured name.
func (app *Application) find(out io.Writer) error {
	if app.config.Zone.Name == "" {
		return errNoName
	}
	origin, ok, err := app.archive.FindZone(app.config.Zone.Name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: no zone holds %s", errZoneNotFound, app.config.Zone.Name)
	}
	log.Info(map[string]any{"name": app.config.Zone.Name, "origin": origin}, "Zone found")
	_, err = fmt.Fprintln(out, origin)
	return err
}

// list writes every archived origin, sorted.
func (app *Application) list(out io.Writer) error {
	origins, err := app.archive.Zones()
	if err != nil {
		return err
	}
	sort.Strings(origins)
	for _, origin := range origins {
		if _, err := fmt.Fprintln(out, origin); err != nil {
			return err
		}
	}
	log.Info(map[string]any{"zones": len(origins)}, "Zones listed")
	return nil
}

// deleteZone removes the configured origin from the archive and writes it.
func (app *Application) deleteZone(out io.Writer) error {
	if app.config.Zone.Origin == "" {
		return errNoOrigin
	}
	origin := utils.AbsoluteName(app.config.Zone.Origin)

	_, ok, err := app.archive.Get(origin)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", errZoneNotFound, origin)
	}
	if err := app.archive.Delete(origin); err != nil {
		return err
	}
	log.Info(map[string]any{"origin": origin}, "Zone deleted")
	_, err = fmt.Fprintln(out, origin)
	return err
}

// readZone parses the configured input file, or stdin.
func (app *Application) readZone(stdin io.Reader, opts zonefile.ParseOptions) (*zonefile.Zone, error) {
	if app.config.IO.Input != "" {
		return zone.LoadZoneFile(app.config.IO.Input, opts)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return zonefile.Parse(string(data), opts)
}

// openOutput returns the configured output file, or stdout.
func (app *Application) openOutput(stdout io.Writer) (io.Writer, func(), error) {
	if app.config.IO.Output == "" {
		return stdout, func() {}, nil
	}
	f, err := os.Create(app.config.IO.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.Warn(map[string]any{"error": err, "path": app.config.IO.Output}, "Error closing output file")
		}
	}, nil
}
