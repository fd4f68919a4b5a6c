package cmd

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jose-Trivino/make-poly-from-image/config"
	"github.com/Jose-Trivino/make-poly-from-image/logctx"
	"github.com/Jose-Trivino/make-poly-from-image/poly"
	"github.com/Jose-Trivino/make-poly-from-image/polyfile"
	"github.com/Jose-Trivino/make-poly-from-image/raster"
	"github.com/Jose-Trivino/make-poly-from-image/timelapse"
)

var (
	contourCfgPath string
	contourOutPath string
	contourShow    bool
)

var contourCmd = &cobra.Command{
	Use:   "contour IMAGE",
	Short: "trace a Canny edge raster into a .poly PSLG",
	Long: `Run the contour pipeline: assemble, reduce, stitch and classify a
Canny edge raster into closed polygons, then write them as a .poly file.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadOrDefault(contourCfgPath)
		rc := logctx.New(cfg.Mesh.Verbose)

		src := decodeImage(args[0])

		polys, r, err := poly.RunContourPipeline(src, &cfg.Contour, rc)
		check(err)

		out := contourOutPath
		if out == "" {
			out = "out.poly"
		}
		f, err := os.Create(out)
		check(err)
		defer f.Close()
		check(polyfile.Write(f, polys))

		fmt.Printf(".poly written to '%s' (%d polygons)\n", out, len(polys))

		if contourShow {
			rec := timelapse.NewRecorder(r, raster.SourceColor)
			rec.CaptureBorder(polys)
			gf, err := os.Create(out + ".gif")
			check(err)
			defer gf.Close()
			check(rec.Encode(gf))
			fmt.Printf("preview written to '%s.gif'\n", out)
		}
	},
}

func init() {
	RootCmd.AddCommand(contourCmd)
	contourCmd.Flags().StringVar(&contourCfgPath, "config", "", "pipeline settings file (defaults if omitted)")
	contourCmd.Flags().StringVar(&contourOutPath, "out", "out.poly", "output .poly file")
	contourCmd.Flags().BoolVar(&contourShow, "show", false, "also write a one-frame preview GIF")
}

func loadOrDefault(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	check(err)
	return cfg
}

func decodeImage(path string) image.Image {
	f, err := os.Open(path)
	check(err)
	defer f.Close()
	img, _, err := image.Decode(f)
	check(err)
	return img
}
