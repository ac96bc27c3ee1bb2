package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/sarchlab/cachesim/config"
	"github.com/sarchlab/cachesim/simulation"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Set up the hierarchy and run traces from a text menu.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		m := newMenu(config.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()))
		return m.loop()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

const menuText = "=== Cache Simulator ===\n" +
	"1. Cache/memory initialisation\n" +
	"2. Read trace file from disk\n" +
	"3. Print report\n" +
	"4. Exit program\n" +
	"Input selection: "

type menu struct {
	prompter *config.Prompter
	out      io.Writer
	sim      *simulation.Simulation
}

func newMenu(p *config.Prompter) *menu {
	return &menu{
		prompter: p,
		out:      p.Out(),
	}
}

// loop runs the menu until the user exits or the input ends.
func (m *menu) loop() error {
	for {
		choice, err := m.prompter.AskUint(menuText, 1, 4)
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		fmt.Fprintln(m.out)

		switch choice {
		case 1:
			err = m.initialize()
		case 2:
			err = m.readTrace()
		case 3:
			m.report()
		case 4:
			fmt.Fprintln(m.out, "Closing program.")
			return nil
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}
	}
}

func (m *menu) initialize() error {
	h, err := m.prompter.PromptHierarchy()
	if err != nil {
		return err
	}

	s, err := simulation.MakeBuilder().WithHierarchy(h).Build()
	if err != nil {
		fmt.Fprintf(m.out, "Invalid cache settings! %v\n\n", err)
		return nil
	}

	m.sim = s

	return nil
}

func (m *menu) readTrace() error {
	if m.sim == nil {
		fmt.Fprint(m.out,
			"Cannot read trace file until the cache has been initialised.\n\n")
		return nil
	}

	path, err := m.prompter.AskLine("Enter filename of trace file: ")
	if err != nil {
		return err
	}

	result, err := m.sim.RunFile(path)

	switch {
	case err != nil && result.RunID == "":
		fmt.Fprint(m.out, "Unable to open file.\n\n")
	case err != nil:
		fmt.Fprintf(m.out, "Simulation terminated because an error occurred "+
			"while reading from trace file: %v\n\n", err)
	default:
		fmt.Fprint(m.out, "Simulation complete.\n\n")
	}

	return nil
}

func (m *menu) report() {
	if m.sim == nil {
		fmt.Fprint(m.out,
			"Cannot print a report until a simulation has been run.\n\n")
		return
	}

	err := m.sim.Report(m.out)
	if errors.Is(err, simulation.ErrNoSimulation) {
		fmt.Fprint(m.out,
			"Cannot print a report until a simulation has been run.\n\n")
		return
	}

	fmt.Fprintln(m.out)
}
