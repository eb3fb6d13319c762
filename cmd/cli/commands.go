package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

var password string

func init() {
	loginCmd.Flags().StringVar(&password, "password", "", "The admin password")
	_ = loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(passportsCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(averagesCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(loginCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List every player with their passports",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var playerCmd = &cobra.Command{
	Use:   "player <id>",
	Short: "Show a player's profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := positiveID(args[0])
		if err != nil {
			return err
		}
		return performGetRequest("/players/" + id + "/profile")
	},
}

var passportsCmd = &cobra.Command{
	Use:   "passports",
	Short: "List the passport reference data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/passports")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List matches by date",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/matches")
	},
}

var topCmd = &cobra.Command{
	Use:   "top <metric>",
	Short: "Show the top performer for a stat metric",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players/highlight/" + url.PathEscape(args[0]))
	},
}

var averagesCmd = &cobra.Command{
	Use:   "averages <playerId>",
	Short: "Show a player's stat averages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := positiveID(args[0])
		if err != nil {
			return err
		}
		return performGetRequest("/stats/search-by-player/average/" + id)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Exchange the admin password for a bearer token",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/login", map[string]string{"password": password})
	},
}

func positiveID(raw string) (string, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return "", fmt.Errorf("invalid id %q: must be a positive integer", raw)
	}
	return strconv.Itoa(id), nil
}

func performGetRequest(endpoint string) error {
	target := host + endpoint
	fmt.Printf("Making request to %s\n", target)

	resp, err := httpClient.Get(target)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()
	return printResponse(resp)
}

func performPostRequest(endpoint string, payload any) error {
	target := host + endpoint
	fmt.Printf("Making request to %s\n", target)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	resp, err := httpClient.Post(target, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()
	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
