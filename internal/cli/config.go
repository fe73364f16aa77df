package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ovrica/sget/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage sget configuration",
	Long:  "View and modify sget settings, including Twitter/X authentication",
}

// sget config show - show current config
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadOrDefault()

		fmt.Println("Current configuration:")
		fmt.Printf("  Listen:    %s\n", cfg.Listen)
		fmt.Printf("  APIBase:   %s\n", cfg.APIBase)
		fmt.Printf("  Timeout:   %ds\n", cfg.TimeoutSeconds)
		fmt.Printf("  Retries:   %d\n", cfg.Retries)
		fmt.Printf("  Browser:   %v\n", cfg.BrowserFallback)
		fmt.Printf("  Config:    %s\n", config.SavePath())

		if cfg.Twitter.AuthToken != "" {
			fmt.Println("\nTwitter:")
			fmt.Printf("  auth_token: %s...%s\n", cfg.Twitter.AuthToken[:4], cfg.Twitter.AuthToken[len(cfg.Twitter.AuthToken)-4:])
		}
	},
}

// sget config path - show config file path
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config file path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.SavePath())
	},
}

// --- Twitter auth management ---

var configTwitterCmd = &cobra.Command{
	Use:   "twitter",
	Short: "Manage Twitter/X authentication",
}

var configTwitterSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set Twitter auth token for age-restricted content",
	Long: `Set the Twitter authentication token forwarded to the media API.

To get your auth_token:
  1. Open x.com in your browser and log in
  2. Open DevTools (F12) → Application → Cookies → x.com
  3. Find 'auth_token' and copy its value

Example:
  sget config twitter set
  sget config twitter set --token YOUR_AUTH_TOKEN`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadOrDefault()

		token, _ := cmd.Flags().GetString("token")
		if token == "" {
			fmt.Print("Enter auth_token: ")
			tokenBytes, err := term.ReadPassword(int(syscall.Stdin))
			fmt.Println()
			if err != nil {
				// Not a terminal, fall back to plain stdin
				reader := bufio.NewReader(os.Stdin)
				input, _ := reader.ReadString('\n')
				token = strings.TrimSpace(input)
			} else {
				token = strings.TrimSpace(string(tokenBytes))
			}
		}

		if token == "" {
			fmt.Fprintln(os.Stderr, "auth_token is required")
			os.Exit(1)
		}

		cfg.Twitter.AuthToken = token

		if err := config.Save(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Twitter auth token saved.")
	},
}

var configTwitterClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove Twitter authentication",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadOrDefault()
		cfg.Twitter.AuthToken = ""

		if err := config.Save(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Twitter auth token cleared.")
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)

	configTwitterSetCmd.Flags().String("token", "", "auth_token value")
	configTwitterCmd.AddCommand(configTwitterSetCmd)
	configTwitterCmd.AddCommand(configTwitterClearCmd)
	configCmd.AddCommand(configTwitterCmd)

	rootCmd.AddCommand(configCmd)
}
