// Copyright 2026 the ejson-go authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Command ejson validates EJSON documents from files or stdin.
package main

import (
	"fmt"
	"io"
	"os"

	ejson "github.com/kRITZCREEK/ejson-go"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "ejson",
	Short:        "Tools for working with EJSON documents",
	Long:         "Tools for working with EJSON documents: JSON extended with decimals,\nunbounded integers, dates, times, UTC timestamps, intervals, object ids\nand order-preserving maps.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ejson version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "ejson v0.1")
	},
}

var quiet bool

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Parse EJSON documents and report whether they are valid",
	Long:  "Check parses each file (or stdin when no files are given) as a single\nEJSON document and reports the result. The exit status is nonzero if any\ndocument fails to parse.",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress per-document output for valid documents")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	failed := 0
	total := 0
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		total++
		if !checkOne(cmd, "<stdin>", string(data)) {
			failed++
		}
	}
	for _, name := range args {
		data, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", name, err)
			failed++
			total++
			continue
		}
		total++
		if !checkOne(cmd, name, string(data)) {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents invalid", failed, total)
	}
	return nil
}

func checkOne(cmd *cobra.Command, name, src string) bool {
	v, err := ejson.Parse(src)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", name, err)
		return false
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s)\n", name, v.Kind)
	}
	return true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
