package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	flags "github.com/jessevdk/go-flags"

	"github.com/VernerAnton/shade/app/scheme"
	"github.com/VernerAnton/shade/app/server"
	"github.com/VernerAnton/shade/app/store"
	"github.com/VernerAnton/shade/app/theme"
)

var opts struct {
	DB string `short:"d" long:"db" env:"SHADE_DB" default:"shade.db" description:"database URL (sqlite file or postgres://...)"`

	Server struct {
		Address     string        `long:"address" env:"ADDRESS" default:"127.0.0.1:8021" description:"server listen address"`
		ReadTimeout time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
	} `group:"server" namespace:"server" env-namespace:"SHADE_SERVER"`

	Scheme struct {
		PollInterval time.Duration `long:"poll-interval" env:"POLL_INTERVAL" default:"5s" description:"OS color scheme poll interval"`
		Force        string        `long:"force" env:"FORCE" choice:"light" choice:"dark" description:"pin the OS signal instead of detecting it"`
	} `group:"scheme" namespace:"scheme" env-namespace:"SHADE_SCHEME"`

	Auth struct {
		PasswordHash string        `long:"password-hash" env:"PASSWORD_HASH" description:"bcrypt hash for admin password (enables auth)"`
		LoginTTL     time.Duration `long:"login-ttl" env:"LOGIN_TTL" default:"24h" description:"login session TTL"`
	} `group:"auth" namespace:"auth" env-namespace:"SHADE_AUTH"`

	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `long:"version" description:"show version and exit"`
}

var revision = "unknown"

func main() {
	fmt.Printf("shade %s\n", revision)

	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	if opts.Version {
		os.Exit(0)
	}

	setupLogs()

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel)

	if err := run(ctx); err != nil {
		log.Printf("[ERROR] failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	log.Printf("[INFO] starting shade server on %s", opts.Server.Address)
	if opts.Auth.PasswordHash != "" {
		log.Printf("[INFO] authentication enabled")
	}

	// initialize preference storage
	settings, err := store.New(opts.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer settings.Close()

	// OS signal source and its watcher
	src := schemeSource()
	watcher := scheme.NewWatcher(src, opts.Scheme.PollInterval)

	// theme service: boot applies the persisted preference, watch keeps
	// the system preference in sync with the OS signal
	svc := theme.New(settings, src)
	svc.Boot()
	svc.Watch(watcher) // unsubscribe handle discarded, process lifetime
	go watcher.Run(ctx)

	srv, err := server.New(svc, server.Config{
		Address:      opts.Server.Address,
		ReadTimeout:  opts.Server.ReadTimeout,
		Version:      revision,
		PasswordHash: opts.Auth.PasswordHash,
		LoginTTL:     opts.Auth.LoginTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// schemeSource returns the OS signal source, honoring the force override.
func schemeSource() scheme.Source {
	switch opts.Scheme.Force {
	case "light":
		log.Printf("[INFO] OS color scheme pinned to light")
		return scheme.Fixed(false)
	case "dark":
		log.Printf("[INFO] OS color scheme pinned to dark")
		return scheme.Fixed(true)
	}
	return scheme.OS{}
}

func setupLogs() {
	log.Setup(log.Msec)
	if opts.Debug {
		log.Setup(log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			switch sig {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
