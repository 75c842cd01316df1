package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"siteboard/internal/viewmode"

	"github.com/spf13/cobra"
)

func newGetCmd(f *flags) *cobra.Command {
	var scopeID string
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the view mode for a scope (global by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, f, func(e *env, out io.Writer) error {
				_, err := fmt.Fprintln(out, e.store.GetMode(scopeID))
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&scopeID, "scope", "s", "", "project scope id")
	return cmd
}

func newSetCmd(f *flags) *cobra.Command {
	var scopeID string
	cmd := &cobra.Command{
		Use:   "set MODE",
		Short: "Store the view mode for a scope (global by default)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := viewmode.Parse(args[0])
			if err != nil {
				return err
			}
			return withEnv(cmd, f, func(e *env, out io.Writer) error {
				e.store.SetMode(mode, scopeID)
				_, err := fmt.Fprintln(out, mode)
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&scopeID, "scope", "s", "", "project scope id")
	return cmd
}

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the display modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, m := range viewmode.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", m, m.Icon(), m.Label())
			}
			return w.Flush()
		},
	}
}

func newProjectsCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List project scopes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, f, func(e *env, out io.Writer) error {
				scopes, err := e.scopes.List()
				if err != nil {
					return fmt.Errorf("list projects: %w", err)
				}
				w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				for _, sc := range scopes {
					fmt.Fprintf(w, "%s\t%s\t%s\n", sc.ID, sc.Name, e.store.GetMode(sc.ID))
				}
				return w.Flush()
			})
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add NAME",
		Short: "Create a project scope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, f, func(e *env, out io.Writer) error {
				info, err := e.scopes.Create(args[0])
				if err != nil {
					return fmt.Errorf("create project: %w", err)
				}
				_, err = fmt.Fprintln(out, info.ID)
				return err
			})
		},
	})
	return cmd
}
