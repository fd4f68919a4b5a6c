package cmd

import (
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jose-Trivino/make-poly-from-image/logctx"
	"github.com/Jose-Trivino/make-poly-from-image/mesh"
	"github.com/Jose-Trivino/make-poly-from-image/poly"
	"github.com/Jose-Trivino/make-poly-from-image/polyfile"
	"github.com/Jose-Trivino/make-poly-from-image/raster"
	"github.com/Jose-Trivino/make-poly-from-image/timelapse"
)

var (
	meshCfgPath string
	meshOutPath string
	meshShow    bool
)

var meshCmd = &cobra.Command{
	Use:   "mesh IMAGE",
	Short: "refine a triangle mesh and extract its border as a .poly PSLG",
	Long: `Run the mesh pipeline: build a regular triangle mesh over the
image, refine it against the reference raster for a fixed number of
iterations, then extract and write its border loops as a .poly file.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadOrDefault(meshCfgPath)
		rc := logctx.New(cfg.Mesh.Verbose)

		src := decodeImage(args[0])

		var rec *timelapse.Recorder
		if cfg.Mesh.Timelapse {
			source := raster.SourceColor
			if cfg.Mesh.TimelapseSource == "bw" {
				source = raster.SourceBW
			}
			r := raster.New(src, cfg.Mesh.BWThreshold)
			rec = timelapse.NewRecorder(r, source)
		}

		polys, _, err := poly.RunMeshPipeline(src, &cfg.Mesh, rc, func(m *mesh.Mesh, iter int, final bool) {
			if rec != nil {
				rec.CaptureMesh(m)
			}
		})
		check(err)

		out := meshOutPath
		if out == "" {
			out = "out.poly"
		}
		f, err := os.Create(out)
		check(err)
		defer f.Close()
		check(polyfile.Write(f, polys))

		fmt.Printf(".poly written to '%s' (%d border loops)\n", out, len(polys))

		if meshShow && rec != nil {
			rec.CaptureBorder(polys)
			gf, err := os.Create(out + ".gif")
			check(err)
			defer gf.Close()
			check(rec.Encode(gf))
			fmt.Printf("preview written to '%s.gif'\n", out)
		}

		if cfg.Mesh.Verbose {
			rc.DumpLog("mesh refinement log")
		}
	},
}

func init() {
	RootCmd.AddCommand(meshCmd)
	meshCmd.Flags().StringVar(&meshCfgPath, "config", "", "pipeline settings file (defaults if omitted)")
	meshCmd.Flags().StringVar(&meshOutPath, "out", "out.poly", "output .poly file")
	meshCmd.Flags().BoolVar(&meshShow, "show", false, "also write a preview GIF when timelapse is enabled")
}
