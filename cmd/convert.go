/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/airy1236/obj2tet-toolchain/tetio"
)

// ConvertCmd represents the convert command
var ConvertCmd = &cobra.Command{
	Use:   "convert input.node input.ele output.tet",
	Short: "Merge a TetGen node/ele pair into the custom .tet format",
	Long: `
Parses a TetGen .node/.ele file pair and writes the merged .tet text
format. Input indexing is 0-based by default (-0); pass -1 for 1-based
inputs. Output indices are always 0-based.

obj2tet convert -1 bunny.node bunny.ele bunny.tet`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		zeroBased, _ := cmd.Flags().GetBool("zero-based")
		oneBased, _ := cmd.Flags().GetBool("one-based")
		if zeroBased && oneBased {
			fmt.Fprintln(os.Stderr, "only one of -0 and -1 may be given")
			os.Exit(1)
		}
		if err := tetio.Convert(args[0], args[1], args[2], oneBased); err != nil {
			fmt.Fprintln(os.Stderr, "conversion failed:", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(ConvertCmd)
	ConvertCmd.Flags().BoolP("zero-based", "0", false, "input indices are 0-based (default)")
	ConvertCmd.Flags().BoolP("one-based", "1", false, "input indices are 1-based")
}
