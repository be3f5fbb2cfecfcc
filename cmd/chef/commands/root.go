// ABOUTME: Root CLI command with global flags
// ABOUTME: Registers the chat, serve, mcp, persona, and version subcommands
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

const banner = `
 ██████╗██╗  ██╗███████╗███████╗
██╔════╝██║  ██║██╔════╝██╔════╝
██║     ███████║█████╗  █████╗
██║     ██╔══██║██╔══╝  ██╔══╝
╚██████╗██║  ██║███████╗██║
 ╚═════╝╚═╝  ╚═╝╚══════╝╚═╝
`

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chef",
		Short: "Chat with Jeff the Crazy Chef",
		Long: banner + `
Chef runs a persona-driven conversation pipeline: classify, enrich,
route, synthesize, validate, format. Every reply carries Chef Jeff's
tomato-obsessed, romantic voice - or the pipeline regenerates it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output with pipeline diagnostics")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress everything but the reply")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewChatCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewPersonaCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
