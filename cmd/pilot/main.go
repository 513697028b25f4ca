package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/spf13/afero"

	"git.sr.ht/~mango/pilot/builtin"
	"git.sr.ht/~mango/pilot/config"
	"git.sr.ht/~mango/pilot/log"
	"git.sr.ht/~mango/pilot/source"
	"git.sr.ht/~mango/pilot/vm"
)

const usage = "Usage: pilot [-hk] [-c config] [-d depth] [-l level] [-r seed] [-o drop|error] file"

func main() {
	os.Exit(run(os.Args, afero.NewOsFs(), os.Stdin, os.Stdout))
}

func run(argv []string, fs afero.Fs, stdin io.Reader, stdout io.Writer) int {
	opts, optind, err := getopt.Getopts(argv, "c:d:hkl:o:r:")
	if err != nil {
		log.Err("%s", err)
		fmt.Fprintln(log.Stderr, usage)
		return 1
	}

	confPath := defaultConfig()
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			confPath = opt.Value
		case 'h':
			fmt.Fprintln(stdout, usage)
			return 0
		}
	}

	args := argv[optind:]
	if len(args) != 1 {
		fmt.Fprintln(log.Stderr, usage)
		return 1
	}

	conf, err := config.Load(fs, confPath)
	if err != nil {
		log.Err("%s", err)
		return 1
	}
	if err := apply(&conf, opts); err != nil {
		log.Err("%s", err)
		return 1
	}

	logger, err := log.NewLogger(conf.LogLevel, log.Stderr)
	if err != nil {
		log.Err("%s", err)
		return 1
	}
	defer logger.Sync()

	src, err := source.Open(fs, args[0], conf.Extension)
	if err != nil {
		log.Report(0, true, err)
		return exitStatus(err)
	}

	m, err := vm.New(src, conf, vm.Env{
		Console: builtin.NewTerminal(stdin, stdout),
		Runner: builtin.System{
			Shell:  conf.Shell,
			Stdin:  stdin,
			Stdout: stdout,
			Stderr: log.Stderr,
		},
		Logger: logger,
	})
	if err == nil {
		err = m.Run()
	}

	var e vm.Error
	switch {
	case err == nil:
		return 0
	case errors.As(err, &e):
		log.Report(e.Line, true, e.Err)
	default:
		log.Err("%s", err)
	}
	return exitStatus(err)
}

// apply overrides the configuration with the command-line flags
func apply(conf *config.Config, opts []getopt.Option) error {
	for _, opt := range opts {
		switch opt.Option {
		case 'd':
			n, err := strconv.Atoi(opt.Value)
			if err != nil {
				return config.InvalidError{Key: "max_depth", Value: opt.Value}
			}
			conf.MaxDepth = n
		case 'k':
			conf.Strict = false
		case 'l':
			conf.LogLevel = opt.Value
		case 'o':
			conf.Overflow = config.Overflow(opt.Value)
		case 'r':
			n, err := strconv.ParseUint(opt.Value, 10, 64)
			if err != nil {
				return config.InvalidError{Key: "seed", Value: opt.Value}
			}
			conf.Seed = n
		}
	}
	return conf.Validate()
}

// defaultConfig is $XDG_CONFIG_HOME/pilot/config.yaml or its platform
// equivalent, or nothing if there is no such directory
func defaultConfig() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pilot", "config.yaml")
}
