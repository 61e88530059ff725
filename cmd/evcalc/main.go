// evcalc is the command-line front end of the exposure equivalence
// engine: solve one parameter of the exposure triangle, print a value
// ladder, or report the EV of a triangle.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"reciprocity/exposure"
	"reciprocity/stops"
)

var (
	// Global flags
	verbose bool

	// solve/ev flags: base triangle
	baseShutter  string
	baseAperture string
	baseISO      string

	// solve flags: knowns, solve target, granularity, compensation
	toShutter  string
	toAperture string
	toISO      string
	solveFor   string
	stepName   string
	evComp     float64

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "evcalc",
	Short: "evcalc - photographic exposure equivalence calculator",
	Long: `evcalc keeps total captured light constant while one side of the
shutter/aperture/ISO triangle changes.

Give it a baseline exposure, fix two of the three parameters, and it
solves the third, snapped to your camera's full/half/third-stop ladder.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// solveCmd computes the missing parameter of an equivalent exposure
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one parameter of an equivalent exposure",
	Long: `Solves the parameter named by --for so the new exposure captures the
same light as the baseline, shifted by --ev stops.

Example:
  evcalc solve --shutter 1/125 --aperture f/5.6 --iso 100 \
    --to-aperture f/2.8 --to-iso 100 --for shutter --step full`,
	RunE: runSolve,
}

// ladderCmd prints the selectable values of one parameter
var ladderCmd = &cobra.Command{
	Use:   "ladder [shutter|aperture|iso]",
	Short: "Print a parameter's selectable value ladder",
	Args:  cobra.ExactArgs(1),
	RunE:  runLadder,
}

// evCmd reports the EV of a triangle
var evCmd = &cobra.Command{
	Use:   "ev",
	Short: "Report the exposure value of a triangle",
	Long: `Prints the EV of the given triangle relative to the 1s · f/1 · ISO 100
reference. One stop more light = one EV higher.`,
	RunE: runEV,
}

func runSolve(cmd *cobra.Command, args []string) error {
	param, err := stops.ParseParam(solveFor)
	if err != nil {
		return fmt.Errorf("--for: %w", err)
	}
	step, err := stops.ParseStep(stepName)
	if err != nil {
		return fmt.Errorf("--step: %w", err)
	}

	req := exposure.Request{
		Base:           exposure.Triangle{Shutter: baseShutter, Aperture: baseAperture, ISO: baseISO},
		TargetShutter:  toShutter,
		TargetAperture: toAperture,
		TargetISO:      toISO,
		Solve:          param,
		Step:           step,
		Compensation:   evComp,
	}

	logger.Debug("solving equivalence",
		zap.String("for", param.String()),
		zap.String("step", step.String()),
		zap.Float64("ev", evComp))

	out := exposure.Solve(req)
	if out.Kind != exposure.Success {
		return fmt.Errorf("%s: %s", out.Kind, out.Reason)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out.Token)
	return nil
}

func runLadder(cmd *cobra.Command, args []string) error {
	param, err := stops.ParseParam(args[0])
	if err != nil {
		return err
	}
	step, err := stops.ParseStep(stepName)
	if err != nil {
		return fmt.Errorf("--step: %w", err)
	}

	lad, err := stops.Get(param, step)
	if err != nil {
		return err
	}

	logger.Debug("printing ladder",
		zap.String("param", param.String()),
		zap.String("step", step.String()),
		zap.Int("rungs", lad.Len()))

	for _, r := range lad.Rungs() {
		fmt.Fprintln(cmd.OutOrStdout(), r.Token)
	}
	return nil
}

func runEV(cmd *cobra.Command, args []string) error {
	ev, err := exposure.EV(exposure.Triangle{
		Shutter:  baseShutter,
		Aperture: baseAperture,
		ISO:      baseISO,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%.2f EV\n", ev)
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	for _, c := range []*cobra.Command{solveCmd, evCmd} {
		c.Flags().StringVar(&baseShutter, "shutter", "", "baseline shutter speed (e.g. 1/125)")
		c.Flags().StringVar(&baseAperture, "aperture", "", "baseline aperture (e.g. f/5.6)")
		c.Flags().StringVar(&baseISO, "iso", "", "baseline ISO (e.g. 100)")
	}

	solveCmd.Flags().StringVar(&toShutter, "to-shutter", "", "fixed target shutter speed")
	solveCmd.Flags().StringVar(&toAperture, "to-aperture", "", "fixed target aperture")
	solveCmd.Flags().StringVar(&toISO, "to-iso", "", "fixed target ISO")
	solveCmd.Flags().StringVar(&solveFor, "for", "", "parameter to solve: shutter|aperture|iso")
	solveCmd.Flags().Float64Var(&evComp, "ev", 0, "EV compensation in [-5, 5]")

	solveCmd.Flags().StringVar(&stepName, "step", "third", "ladder granularity: full|half|third")
	ladderCmd.Flags().StringVar(&stepName, "step", "third", "ladder granularity: full|half|third")

	rootCmd.AddCommand(solveCmd, ladderCmd, evCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
