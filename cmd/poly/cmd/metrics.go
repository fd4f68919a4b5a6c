package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jose-Trivino/make-poly-from-image/polyfile"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics FILE.poly",
	Short: "report vertex/edge/hole counts and edge-length statistics",
	Long: `Read an existing .poly file and print its vertex, edge and hole
counts along with the mean, standard deviation, minimum and maximum edge
length.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		check(err)
		defer f.Close()

		data, err := polyfile.Read(f)
		check(err)

		fmt.Println()
		fmt.Println("==============  generated elements ==============")
		fmt.Println()
		fmt.Printf("vertices: %d\n", len(data.Vertices))
		fmt.Printf("edges: %d\n", len(data.Edges))
		fmt.Printf("holes: %d\n", len(data.Holes))

		if len(data.Edges) == 0 {
			return
		}

		lengths := make([]float64, len(data.Edges))
		var sum float64
		for i, e := range data.Edges {
			p, q := data.Vertices[e[0]], data.Vertices[e[1]]
			dx, dy := float64(q.X-p.X), float64(q.Y-p.Y)
			lengths[i] = math.Sqrt(dx*dx + dy*dy)
			sum += lengths[i]
		}
		mean := sum / float64(len(lengths))

		var variance float64
		minLen, maxLen := lengths[0], lengths[0]
		for _, l := range lengths {
			variance += (l - mean) * (l - mean)
			if l < minLen {
				minLen = l
			}
			if l > maxLen {
				maxLen = l
			}
		}
		stdDev := math.Sqrt(variance / float64(len(lengths)))

		fmt.Println()
		fmt.Printf("edge length: mean=%.2f stddev=%.2f min=%.2f max=%.2f\n", mean, stdDev, minLen, maxLen)
	},
}

func init() {
	RootCmd.AddCommand(metricsCmd)
}
