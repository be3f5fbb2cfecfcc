// ABOUTME: Persona command to inspect and tune Chef Jeff's dials
// ABOUTME: Reads and writes the XDG persona overrides file
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/chef-pipeline/internal/models"
	"github.com/harper/chef-pipeline/internal/persona"
)

var (
	personaMotif        int
	personaRomantic     int
	personaEnergy       int
	personaCreativity   float64
	personaProfessional float64
	personaMood         string
)

// NewPersonaCmd creates the persona command group
func NewPersonaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "persona",
		Short: "Inspect or tune the chef persona",
	}

	cmd.AddCommand(newPersonaShowCmd())
	cmd.AddCommand(newPersonaSetCmd())

	return cmd
}

func newPersonaShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the persona parameters new sessions start with",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := models.DefaultPersonaParameters()
			overrides, err := persona.LoadOverrides()
			if err != nil {
				return fmt.Errorf("reading persona overrides: %w", err)
			}
			overrides.Apply(&params)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Tomato obsession:        %d/10\n", params.MotifObsession)
			fmt.Fprintf(out, "Romantic intensity:      %d/10\n", params.RomanticIntensity)
			fmt.Fprintf(out, "Energy level:            %d/10\n", params.EnergyLevel)
			fmt.Fprintf(out, "Creativity multiplier:   %.1f\n", params.CreativityMultiplier)
			fmt.Fprintf(out, "Professional adaptation: %.1f\n", params.ProfessionalAdaptation)
			fmt.Fprintf(out, "Starting mood:           %s\n", params.CurrentMood)
			return nil
		},
	}
}

func newPersonaSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save persona overrides for future sessions",
		Long: `Save persona overrides for future sessions.

Only the flags you pass are overridden; everything else keeps its
default. Values outside the valid range are clamped.`,
		RunE: runPersonaSet,
		Example: `  chef persona set --motif-obsession 6
  chef persona set --romantic-intensity 10 --mood romantic`,
	}

	cmd.Flags().IntVar(&personaMotif, "motif-obsession", -1, "Tomato obsession 1-10")
	cmd.Flags().IntVar(&personaRomantic, "romantic-intensity", -1, "Romantic intensity 1-10")
	cmd.Flags().IntVar(&personaEnergy, "energy-level", -1, "Energy level 1-10")
	cmd.Flags().Float64Var(&personaCreativity, "creativity", -1, "Creativity multiplier 0.1-3.0")
	cmd.Flags().Float64Var(&personaProfessional, "professional", -1, "Professional adaptation 0.0-1.0")
	cmd.Flags().StringVar(&personaMood, "mood", "", "Starting mood")

	return cmd
}

func runPersonaSet(cmd *cobra.Command, args []string) error {
	overrides, err := persona.LoadOverrides()
	if err != nil {
		return fmt.Errorf("reading persona overrides: %w", err)
	}
	if overrides == nil {
		overrides = &persona.Overrides{}
	}

	if cmd.Flags().Changed("motif-obsession") {
		overrides.MotifObsession = &personaMotif
	}
	if cmd.Flags().Changed("romantic-intensity") {
		overrides.RomanticIntensity = &personaRomantic
	}
	if cmd.Flags().Changed("energy-level") {
		overrides.EnergyLevel = &personaEnergy
	}
	if cmd.Flags().Changed("creativity") {
		overrides.CreativityMultiplier = &personaCreativity
	}
	if cmd.Flags().Changed("professional") {
		overrides.ProfessionalAdaptation = &personaProfessional
	}
	if cmd.Flags().Changed("mood") {
		if !models.Mood(personaMood).IsValid() {
			return fmt.Errorf("unknown mood %q", personaMood)
		}
		overrides.InitialMood = &personaMood
	}

	if err := overrides.Save(); err != nil {
		return fmt.Errorf("saving persona overrides: %w", err)
	}
	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "Persona overrides saved.")
	}
	return nil
}
