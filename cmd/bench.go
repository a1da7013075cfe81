package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/polaris-render/bvhtrace/bvh"
)

// Bench builds the same mesh with both SAH and PLOC and prints a
// side-by-side comparison of build time and resulting tree shape.
func Bench(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	tris, err := loadTriangles(ctx.Args().First())
	if err != nil {
		return err
	}
	if len(tris) == 0 {
		return fmt.Errorf("mesh %s contains no triangles", ctx.Args().First())
	}

	logger.Infof("loaded %d triangles from %s", len(tris), ctx.Args().First())
	bboxes, centers := bvh.TriangleInput(tris)

	_, sahReport := bvh.BuildSAHWithReport(bboxes, centers, bvh.DefaultSAHConfig())
	_, plocReport := bvh.BuildPLOCWithReport(bboxes, centers, bvh.DefaultPLOCConfig())

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Algorithm", "Nodes", "Leaves", "Max depth", "Build time"})
	for _, r := range []bvh.BuildReport{sahReport, plocReport} {
		table.Append([]string{
			r.Algorithm,
			fmt.Sprintf("%d", r.NodeCount),
			fmt.Sprintf("%d", r.LeafCount),
			fmt.Sprintf("%d", r.MaxDepth),
			r.BuildTime.String(),
		})
	}
	table.Render()

	logger.Noticef("bench results for %d primitives\n%s", len(tris), buf.String())

	return nil
}
