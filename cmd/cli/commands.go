package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	clearDate string
	clearUser string
	addDate   string
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(scoreboardCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(countersCmd)
	rootCmd.AddCommand(metricsCmd)

	clearCmd.Flags().StringVar(&clearDate, "date", "", "Date to clear (YYYY-MM-DD, defaults to today)")
	clearCmd.Flags().StringVar(&clearUser, "user", "", "Limit the clear to a single user")
	addCmd.Flags().StringVar(&addDate, "date", "", "Date to record the score under (YYYY-MM-DD, defaults to today)")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var scoreboardCmd = &cobra.Command{
	Use:   "scoreboard [date]",
	Short: "Print the scoreboard for a date (defaults to today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/scoreboard"
		if len(args) == 1 {
			endpoint += "?date=" + url.QueryEscape(args[0])
		}
		return performGetRequest(endpoint)
	},
}

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "List the full submission history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/results")
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear recorded results for a date, optionally for a single user",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		if clearDate != "" {
			params.Set("date", clearDate)
		}
		if clearUser != "" {
			params.Set("user", clearUser)
		}
		endpoint := "/clear"
		if len(params) > 0 {
			endpoint += "?" + params.Encode()
		}
		return performPostRequest(endpoint)
	},
}

var addCmd = &cobra.Command{
	Use:   "add <user> <game> <score>",
	Short: "Manually record a score",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		params.Set("user", args[0])
		params.Set("game", args[1])
		params.Set("score", args[2])
		if addDate != "" {
			params.Set("date", addDate)
		}
		return performPostRequest("/add?" + params.Encode())
	},
}

var countersCmd = &cobra.Command{
	Use:   "counters",
	Short: "Get the persistent submission counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/counters")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Post(url, "", nil)
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
