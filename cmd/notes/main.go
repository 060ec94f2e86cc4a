package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-secret-notes/internal/adapter"
	"github.com/MKhiriev/go-secret-notes/internal/client"
	"github.com/MKhiriev/go-secret-notes/internal/config"
	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/internal/service"
	"github.com/MKhiriev/go-secret-notes/internal/store"
	"github.com/MKhiriev/go-secret-notes/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

type globalFlags struct {
	version    bool
	configPath string
	logPath    string
	server     string
	driver     string
	dsn        string
	prefsFile  string
	deviceID   string
	saltedHash bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var flags globalFlags
	fs := pflag.NewFlagSet("notes", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.BoolVarP(&flags.version, "version", "v", false, "Print build information and exit")
	fs.StringVarP(&flags.configPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&flags.logPath, "log", "", "Log file path, defaults to a logs file next to the executable")
	fs.StringVarP(&flags.server, "server", "s", "", "Daemon URL, the local store is used when empty")
	fs.StringVar(&flags.driver, "driver", "", "Local database driver: sqlite or postgres")
	fs.StringVarP(&flags.dsn, "db", "d", "", "Local database DSN")
	fs.StringVarP(&flags.prefsFile, "prefs", "p", "", "Local preference file path")
	fs.StringVar(&flags.deviceID, "device-id", "", "Device identifier mixed into the master password hash")
	fs.BoolVar(&flags.saltedHash, "salted-hash", false, "Use the device-salted master password hash")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flags.version {
		printBuildInfo()
		return 0
	}

	log := logger.NewClientLogger("notes", flags.logPath)
	cfg, err := config.GetClientConfig(flags.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error getting configs:", err)
		return 1
	}
	flags.apply(fs, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	notes, closeFn, err := newAdapter(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating notes adapter")
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	defer closeFn()

	app := client.NewApp(notes, client.NewTerminalPrompter(os.Stdin, os.Stdout), client.NewSystemClipboard(), os.Stdout, log)
	if err = app.Run(ctx, fs.Args()); err != nil {
		log.Error().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

// apply overrides the configuration with the flags given on the command line.
func (f globalFlags) apply(fs *pflag.FlagSet, cfg *config.ClientConfig) {
	if fs.Changed("server") {
		cfg.Adapter.HTTPAddress = f.server
	}
	if fs.Changed("driver") {
		cfg.Storage.DB.Driver = f.driver
	}
	if fs.Changed("db") {
		cfg.Storage.DB.DSN = f.dsn
	}
	if fs.Changed("prefs") {
		cfg.Storage.Preferences.File = f.prefsFile
	}
	if fs.Changed("device-id") {
		cfg.App.DeviceID = f.deviceID
	}
	if fs.Changed("salted-hash") {
		cfg.App.SaltedPasswordHash = f.saltedHash
	}
}

// newAdapter talks to the daemon when an adapter address is configured and
// opens the local store otherwise.
func newAdapter(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (adapter.NotesAdapter, func(), error) {
	if cfg.Adapter.HTTPAddress != "" {
		notes, err := adapter.NewHTTPNotesAdapter(cfg.Adapter, log)
		return notes, func() {}, err
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, nil, err
	}

	services, err := service.NewServices(ctx, storages, &config.StructuredConfig{
		App:     cfg.App,
		Crypto:  cfg.Crypto,
		Storage: cfg.Storage,
	}, buildInfo(), log)
	if err != nil {
		_ = storages.Close()
		return nil, nil, err
	}

	return adapter.NewLocalNotesAdapter(services, log), func() { _ = storages.Close() }, nil
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(
		cmp.Or(buildVersion, "N/A"),
		cmp.Or(buildDate, "N/A"),
		cmp.Or(buildCommit, "N/A"),
	)
}

func printBuildInfo() {
	build := buildInfo()
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
