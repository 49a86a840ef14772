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
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/airy1236/obj2tet-toolchain/logger"
	"github.com/airy1236/obj2tet-toolchain/pipeline"
)

// PipelineCmd represents the pipeline command
var PipelineCmd = &cobra.Command{
	Use:   "pipeline input.obj [max_tet_volume] [keep_intermediate]",
	Short: "Run the full OBJ to .tet conversion pipeline",
	Long: `
Runs the complete toolchain on an OBJ surface mesh: watertight repair and
PLY export, tetrahedralization with a maximum tetrahedron volume bound
(default 0.001), artifact verification and renaming, and the node/ele to
.tet merge. Intermediate files are removed unless keep_intermediate is
1/true/yes.

obj2tet pipeline bunny_SB.obj 0.0005 1`,
	Args: cobra.RangeArgs(1, 3),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := pipeline.DefaultConfig()

		if len(args) >= 2 {
			v, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				fmt.Fprintln(os.Stderr, "max tetrahedron volume must be a valid number")
				os.Exit(1)
			}
			if v <= 0 {
				fmt.Fprintln(os.Stderr, "max tetrahedron volume must be greater than 0")
				os.Exit(1)
			}
			cfg.MaxVolume = v
		}
		if len(args) == 3 {
			switch args[2] {
			case "1", "true", "yes":
				cfg.KeepIntermediate = true
			case "0", "false", "no":
				cfg.KeepIntermediate = false
			default:
				logger.Sugar.Warnf("unrecognized keep flag %q; using default (do not keep)", args[2])
			}
		}

		if s := viper.GetString("tetgen"); s != "" {
			cfg.TetGen = s
		}
		if s, _ := cmd.Flags().GetString("tetgen"); s != "" {
			cfg.TetGen = s
		}
		cfg.ObjToPly = viper.GetString("obj2ply")
		if s, _ := cmd.Flags().GetString("obj2ply"); s != "" {
			cfg.ObjToPly = s
		}
		cfg.NodeEleToTet = viper.GetString("nodele2tet")
		if s, _ := cmd.Flags().GetString("nodele2tet"); s != "" {
			cfg.NodeEleToTet = s
		}

		if pf, _ := cmd.Flags().GetString("params"); pf != "" {
			params, err := pipeline.LoadToolParams(pf)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			cfg.Params = params
		}

		p := pipeline.New(cfg, pipeline.ExecRunner{})
		if err := p.Run(args[0]); err != nil {
			fmt.Fprintln(os.Stderr, "pipeline failed:", err)
			logger.Sync()
			os.Exit(1)
		}
		logger.Sync()
	},
}

func init() {
	rootCmd.AddCommand(PipelineCmd)
	PipelineCmd.Flags().String("tetgen", "", "path to the tetgen executable (default from config, else \"tetgen\")")
	PipelineCmd.Flags().String("obj2ply", "", "external OBJ-to-PLY repair tool (default: built-in repair)")
	PipelineCmd.Flags().String("nodele2tet", "", "external node/ele merge tool (default: built-in converter)")
	PipelineCmd.Flags().String("params", "", "YAML file with tetrahedralization parameters")
}
