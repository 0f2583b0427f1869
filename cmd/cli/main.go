package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	token   string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chapapay-cli",
		Short: "ChapaPay CLI tool",
		Long:  `A command line interface for interacting with the ChapaPay dashboard API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ChapaPay API")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token for authenticated calls")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check service health",
		Run: func(cmd *cobra.Command, args []string) {
			checkHealth()
		},
	}

	loginCmd := &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Log in and print a bearer token",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			login(args[0], args[1])
		},
	}

	// System commands
	systemCmd := &cobra.Command{
		Use:   "system",
		Short: "System operations",
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show system statistics",
		Run: func(cmd *cobra.Command, args []string) {
			systemStats()
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the store to freshly seeded data",
		Run: func(cmd *cobra.Command, args []string) {
			resetSystem()
		},
	}

	systemCmd.AddCommand(statsCmd, resetCmd)
	rootCmd.AddCommand(healthCmd, loginCmd, systemCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func doRequest(method, path string, payload any) (int, []byte) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, raw
}

func checkHealth() {
	status, body := doRequest(http.MethodGet, "/ready", nil)
	if status != http.StatusOK {
		fmt.Printf("Health check FAILED (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}
	fmt.Println("Health check PASSED")
}

func login(email, password string) {
	status, body := doRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if status != http.StatusOK {
		fmt.Printf("Login FAILED (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Token: %s\n", result["token"])
}

func systemStats() {
	status, body := doRequest(http.MethodGet, "/api/v1/system/stats", nil)
	if status != http.StatusOK {
		fmt.Printf("Stats request FAILED (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(out.String())
}

func resetSystem() {
	status, body := doRequest(http.MethodPost, "/api/v1/system/reset", nil)
	if status != http.StatusOK {
		fmt.Printf("Reset FAILED (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}
	fmt.Println("Store reset to seeded data")
}
