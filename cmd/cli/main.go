package main

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

const defaultHost = "http://localhost:8080"

var (
	host       string
	timeout    time.Duration
	httpClient *http.Client
)

var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "Query the team roster API",
	Long: `roster reads players, passports, matches and stat leaderboards from a
running roster API and exchanges the admin password for a bearer token.

The server address defaults to $ROSTER_HOST, then ` + defaultHost + `.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		u, err := url.Parse(host)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid --host %q: expected an absolute URL such as %s", host, defaultHost)
		}
		host = strings.TrimSuffix(host, "/")
		httpClient = &http.Client{Timeout: timeout}
		return nil
	},
}

func init() {
	defaultTarget := defaultHost
	if env := os.Getenv("ROSTER_HOST"); env != "" {
		defaultTarget = env
	}
	rootCmd.PersistentFlags().StringVar(&host, "host", defaultTarget, "Base URL of the roster API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Per-request timeout")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "roster:", err)
		os.Exit(1)
	}
}
