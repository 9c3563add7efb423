// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show the shape, groups and columns of a grouped data file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	ds, err := load(cmd, args)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d rows, %d columns, %d groups\n", args[0], ds.Rows(), ds.NumColumns(), ds.NumGroups)
	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "col\tname\tunit\tgroup\tpos")
	for i := range ds.NumColumns() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%v\t%d\n", i, ds.Names[i], ds.Units[i], ds.Groups[i], ds.GroupPos[i])
	}
	return tw.Flush()
}
