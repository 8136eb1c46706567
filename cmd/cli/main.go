package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bookkeeper-cli",
		Short: "Bookkeeper CLI tool",
		Long:  `A command line interface for interacting with the Bookkeeper API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Bookkeeper API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Balance commands
	balanceCmd := &cobra.Command{
		Use:   "balance",
		Short: "Balance maintenance operations",
	}
	balanceCmd.AddCommand(rebuildCmd(), verifyCmd())
	rootCmd.AddCommand(balanceCmd)

	// Account commands
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}
	accountCmd.AddCommand(listAccountsCmd())
	rootCmd.AddCommand(accountCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func rebuildCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "rebuild [account-id]",
		Short: "Recompute stored balances from raw amounts",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if all {
				post("/api/v1/admin/rebuild")
				return
			}

			if len(args) != 1 {
				fmt.Println("an account id or --all is required")
				os.Exit(1)
			}

			post("/api/v1/accounts/" + args[0] + "/rebuild")
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Rebuild every account")

	return cmd
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <account-id>",
		Short: "Check stored balances against recomputed ones",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/accounts/" + args[0] + "/verify")
		},
	}
}

func listAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/accounts/")
		},
	}
}

func get(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}

	printResponse(resp)
}

func post(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", strings.NewReader("{}"))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}

	printResponse(resp)
}

func printResponse(resp *http.Response) {
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("%s\n", string(body))
		return
	}

	printJSON(result)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to format response: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(out))
}
