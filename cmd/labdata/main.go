// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Labdata loads grouped measurement data files and carves out
// sub-selections of columns or derives norm columns from them,
// writing the result as delimited data.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/labdata/dataset"
	"cogentcore.org/labdata/loader"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "labdata",
	Short: "Select and transform grouped measurement data",
	Long: `Labdata reads grouped measurement files (fixed-width blocks of columns,
one block per experiment run) and selects columns by group, name, unit or
position, optionally deriving norm columns, writing the result as CSV.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default labdata.toml)")
	rootCmd.PersistentFlags().IntP("columns-per-group", "c", 0, "columns per group block, including the label column")
	rootCmd.PersistentFlags().String("delimiter", "", "input delimiter: tab, comma, space or detect")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("labdata")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}
	viper.SetDefault("columns_per_group", loader.ColumnsPerGroupDefault)
	viper.SetDefault("delimiter", "detect")
	viper.SetEnvPrefix("LABDATA")
	viper.AutomaticEnv()

	// No config file is fine; defaults apply.
	_ = viper.ReadInConfig()

	if verbose, _ := rootCmd.Flags().GetBool("verbose"); verbose {
		logx.UserLevel = slog.LevelDebug
	}
}

// newLoader builds a loader from flags, falling back to config values.
func newLoader(cmd *cobra.Command) *loader.Loader {
	ld := loader.New()
	if cpg, _ := cmd.Flags().GetInt("columns-per-group"); cpg > 0 {
		ld.ColumnsPerGroup = cpg
	} else if cpg := viper.GetInt("columns_per_group"); cpg > 0 {
		ld.ColumnsPerGroup = cpg
	}
	return ld
}

// load reads the grouped data file named by the first positional arg.
func load(cmd *cobra.Command, args []string) (*dataset.Dataset, error) {
	ld := newLoader(cmd)
	name, _ := cmd.Flags().GetString("delimiter")
	if name == "" {
		name = viper.GetString("delimiter")
	}
	delim, err := dataset.ParseDelims(name)
	if err != nil {
		return nil, err
	}
	if delim == dataset.Detect {
		return ld.Open(args[0])
	}
	fp, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ld.Read(fp, delim)
}

// write emits the dataset as CSV to the --output file, or stdout.
func write(cmd *cobra.Command, ds *dataset.Dataset) error {
	out, _ := cmd.Flags().GetString("output")
	if out == "" || out == "-" {
		return ds.WriteCSV(os.Stdout, dataset.Comma)
	}
	return ds.SaveCSV(out, dataset.Comma)
}
