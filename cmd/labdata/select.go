// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"cogentcore.org/labdata/selector"
)

var selectCmd = &cobra.Command{
	Use:   "select <file>",
	Short: "Select columns by group, name, unit or position and write them as CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runSelect,
}

func init() {
	selectCmd.Flags().Bool("all", false, "select all columns")
	selectCmd.Flags().IntSlice("groups", nil, "select all columns in these groups")
	selectCmd.Flags().StringSlice("name", nil, "select all columns with these names")
	selectCmd.Flags().StringSlice("unit", nil, "select all columns with these units")
	selectCmd.Flags().IntSlice("cols", nil, "select the columns at these positions")
	selectCmd.Flags().Bool("canonical", false, "reorder the result into canonical (group, position) order")
	selectCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(selectCmd)
}

func runSelect(cmd *cobra.Command, args []string) error {
	ds, err := load(cmd, args)
	if err != nil {
		return err
	}
	var terms []any
	if all, _ := cmd.Flags().GetBool("all"); all {
		terms = append(terms, "all")
	}
	if groups, _ := cmd.Flags().GetIntSlice("groups"); len(groups) > 0 {
		terms = append(terms, "groups", groups)
	}
	names, _ := cmd.Flags().GetStringSlice("name")
	units, _ := cmd.Flags().GetStringSlice("unit")
	for _, nm := range append(names, units...) {
		terms = append(terms, nm)
	}
	if cols, _ := cmd.Flags().GetIntSlice("cols"); len(cols) > 0 {
		terms = append(terms, cols)
	}

	sl := selector.New(ds)
	if err := sl.Select(terms...); err != nil {
		return err
	}
	res := sl.Dataset()
	if canonical, _ := cmd.Flags().GetBool("canonical"); canonical {
		if err := res.ReorderCanonical(); err != nil {
			return err
		}
	}
	return write(cmd, res)
}
