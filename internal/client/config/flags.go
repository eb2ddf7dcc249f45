package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/feelflow/internal/flagx"
)

// parseFlags applies:
//
//	-u string   API base URL
//	-t string   token directory
//	-r int      request timeout, seconds
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-t", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "u", cfg.ServerURL, "API base URL")
	fs.StringVar(&cfg.TokenDir, "t", cfg.TokenDir, "token directory")
	timeout := fs.Int("r", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
