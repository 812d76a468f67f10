// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package main

import (
	"fmt"

	"github.com/gilramir/genericstack"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBuildCommand(app *appT) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [ELEMENT...]",
		Short: "Push elements onto a stack and rebuild it from its cursors",
		Long: "build pushes each ELEMENT, in order, onto a stack of the given capacity, " +
			"prints it top to bottom, then prints a copy built from its end and " +
			"begin cursors.",
		Example: "  stackdemo build --capacity 6 '!' O L L E H",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runBuild(cmd, args)
		},
	}
	cmd.Flags().Int("capacity", 0, "Stack capacity (default is the number of elements)")
	return cmd
}

func (s *appT) runBuild(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	capacity := len(args)
	if s.v.IsSet("capacity") {
		capacity = s.v.GetInt("capacity")
	}

	st, err := genericstack.New[string](capacity)
	if err != nil {
		return err
	}
	for _, arg := range args {
		if err = st.Push(arg); err != nil {
			return fmt.Errorf("pushing %q: %w", arg, err)
		}
	}
	s.logger.Debug("built stack", zap.Int("size", st.Size()), zap.Int("count", st.Count()))

	fmt.Fprintf(out, "size %d, count %d\n", st.Size(), st.Count())
	if err = st.Render(out); err != nil {
		return err
	}

	rebuilt, err := genericstack.FromRange(st.End(), st.Begin())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "rebuilt from (end, begin): size %d, count %d\n", rebuilt.Size(), rebuilt.Count())
	return rebuilt.Render(out)
}
