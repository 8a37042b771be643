/*****************************************************************************************************************/

//	@package	github.com/lumenforge/astromatch
//	@license	Copyright © 2021-2025 observerly, adapted 2026

/*****************************************************************************************************************/

package cmd

/*****************************************************************************************************************/

import (
	"github.com/spf13/cobra"

	"github.com/lumenforge/astromatch/internal/solver"
)

/*****************************************************************************************************************/

var rootCommand = &cobra.Command{
	Use:   "astromatch",
	Short: "astromatch is a command-line tool for registering a point set against a reference catalog.",
	Long:  "astromatch is a command-line tool for registering a point set against a reference catalog.",
}

/*****************************************************************************************************************/

func init() {
	rootCommand.AddCommand(solver.AstrometryCommand)
}

/*****************************************************************************************************************/

func Execute() {
	if err := rootCommand.Execute(); err != nil {
		panic(err)
	}
}

/*****************************************************************************************************************/
