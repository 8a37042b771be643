/*****************************************************************************************************************/

//	@package	github.com/lumenforge/astromatch
//	@license	Copyright © 2021-2025 observerly, adapted 2026

/*****************************************************************************************************************/

package main

/*****************************************************************************************************************/

import (
	"github.com/lumenforge/astromatch/cmd"
)

/*****************************************************************************************************************/

func main() {
	cmd.Execute()
}

/*****************************************************************************************************************/
