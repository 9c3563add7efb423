// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"cogentcore.org/labdata/transform"
)

var normCmd = &cobra.Command{
	Use:   "norm <file>",
	Short: "Append an order-p norm column computed over a set of columns",
	Args:  cobra.ExactArgs(1),
	RunE:  runNorm,
}

func init() {
	normCmd.Flags().IntSlice("cols", nil, "input columns (default all)")
	normCmd.Flags().Int("order", 2, "norm order p")
	normCmd.Flags().String("result-unit", "", "unit of the result column (default inferred)")
	normCmd.Flags().Int("result-group", -1, "group id of the result column (default inferred)")
	normCmd.Flags().Bool("new-group", false, "place the result column in a new group")
	normCmd.Flags().Bool("replace", false, "write only the result column instead of appending it")
	normCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(normCmd)
}

func runNorm(cmd *cobra.Command, args []string) error {
	ds, err := load(cmd, args)
	if err != nil {
		return err
	}
	var opts []transform.Option
	if cols, _ := cmd.Flags().GetIntSlice("cols"); len(cols) > 0 {
		opts = append(opts, transform.Indexes(cols...))
	}
	if order, _ := cmd.Flags().GetInt("order"); order != 2 {
		opts = append(opts, transform.Order(order))
	}
	if unit, _ := cmd.Flags().GetString("result-unit"); unit != "" {
		opts = append(opts, transform.ResultUnit(unit))
	}
	if group, _ := cmd.Flags().GetInt("result-group"); group >= 0 {
		opts = append(opts, transform.ResultGroup(group))
	}
	if newGroup, _ := cmd.Flags().GetBool("new-group"); newGroup {
		opts = append(opts, transform.NewGroup())
	}
	if replace, _ := cmd.Flags().GetBool("replace"); replace {
		opts = append(opts, transform.Replace())
	}
	tr := transform.New(ds)
	res, err := tr.Norm(opts...)
	if err != nil {
		return err
	}
	return write(cmd, res)
}
