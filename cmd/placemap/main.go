package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/studiowebux/placemap/internal/cli"
	"github.com/studiowebux/placemap/internal/config"
	"github.com/studiowebux/placemap/internal/mock"
	"github.com/studiowebux/placemap/internal/tui"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "placemap [prompt]",
	Short: "Placemap - natural language place search",
	Long: `Placemap turns a natural language prompt into a Google Maps link.

Run without arguments to start the TUI, or provide a prompt to search
directly from the command line.

Examples:
  placemap                               # Start interactive TUI
  placemap "coffee near the Louvre"      # One-shot search
  placemap ask "Eiffel Tower" -o json    # Machine readable output
  placemap ask "Eiffel Tower" -q map_interactive_link
  placemap mock --port 8080              # Local mock backend
  placemap --help                        # Show help`,
	Version: version,
	Args:    cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Initialize configuration
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		// If a prompt is provided, run in CLI mode
		if len(args) > 0 {
			return runCLI(strings.Join(args, " "))
		}

		// Otherwise, start the TUI
		return tui.Run(version)
	},
}

var askCmd = &cobra.Command{
	Use:   "ask <prompt>",
	Short: "Search for a place in CLI mode",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		return runCLI(strings.Join(args, " "))
	},
}

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Run a local mock map backend",
	Long: `Run a local HTTP server that answers /places requests without an LLM.

By default every prompt is echoed back as the extracted query. A YAML
config file can map prompt substrings to fixed queries or errors.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMock()
	},
}

// Flags for root/ask command
var (
	flagProfile   string
	flagOutput    string
	flagQuery     string
	flagNoHistory bool
)

// Flags for mock
var (
	mockHost       string
	mockPort       int
	mockAPIKey     string
	mockConfigFile string
)

func init() {
	// Root command flags
	rootCmd.PersistentFlags().StringVarP(&flagProfile, "profile", "p", "", "Profile to use")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output format (json/yaml/text)")
	rootCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "JMESPath expression applied to the response")
	rootCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Skip recording this search")

	// Ask command flags (same as root)
	askCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output format (json/yaml/text)")
	askCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "JMESPath expression applied to the response")
	askCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Skip recording this search")

	// mock flags
	mockCmd.Flags().StringVar(&mockHost, "host", "localhost", "Address to listen on")
	mockCmd.Flags().IntVar(&mockPort, "port", 8080, "Port to listen on")
	mockCmd.Flags().StringVar(&mockAPIKey, "key", "", "Require this API key (empty disables the check)")
	mockCmd.Flags().StringVarP(&mockConfigFile, "config", "c", "", "YAML rules file")

	// Add subcommands
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(mockCmd)
}

// runCLI performs a one-shot search and prints the result
func runCLI(prompt string) error {
	opts := cli.RunOptions{
		Prompt:       prompt,
		Profile:      flagProfile,
		OutputFormat: flagOutput,
		Query:        flagQuery,
		NoHistory:    flagNoHistory,
	}
	return cli.Run(opts)
}

// runMock starts the mock backend until interrupted
func runMock() error {
	cfg, err := mock.LoadConfig(mockConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load mock config: %w", err)
	}
	if mockHost != "" {
		cfg.Host = mockHost
	}
	if mockPort != 0 {
		cfg.Port = mockPort
	}
	if mockAPIKey != "" {
		cfg.APIKey = mockAPIKey
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	server := mock.NewServer(cfg)
	fmt.Printf("Mock map backend listening on http://%s\n", server.Addr())
	return server.Start(ctx)
}
