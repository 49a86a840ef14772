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

	"github.com/airy1236/obj2tet-toolchain/logger"
	"github.com/airy1236/obj2tet-toolchain/trimesh"
)

// RepairCmd represents the repair command
var RepairCmd = &cobra.Command{
	Use:   "repair input.obj output.ply",
	Short: "Repair an OBJ mesh into a watertight PLY surface",
	Long: `
Loads a triangle mesh from OBJ and runs the repair sequence: duplicate and
degenerate element removal, non-manifold face removal, intersection-aware
hole filling, coherent orientation and normal recomputation. The repaired
surface is written as ASCII PLY. A non-orientable input is reported as a
warning, not a failure.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		maxHole, _ := cmd.Flags().GetInt("maxHoleEdges")

		m, err := trimesh.ReadOBJ(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to load mesh:", err)
			os.Exit(1)
		}
		logger.Sugar.Infof("loaded mesh: %d vertices, %d faces", m.VN(), m.FN())

		trimesh.Repair(m, &trimesh.Engine{MaxHoleEdges: maxHole})

		if err := trimesh.WritePLY(args[1], m); err != nil {
			fmt.Fprintln(os.Stderr, "failed to save mesh:", err)
			os.Exit(1)
		}
		logger.Sugar.Infof("saved watertight mesh to %s", args[1])
	},
}

func init() {
	rootCmd.AddCommand(RepairCmd)
	RepairCmd.Flags().Int("maxHoleEdges", trimesh.MaxHoleEdges, "largest border loop (in edges) considered for hole filling")
}
