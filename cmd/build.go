package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/polaris-render/bvhtrace/bvh"
	"github.com/polaris-render/bvhtrace/obj"
)

// Build parses an OBJ mesh, builds a Bvh with the requested algorithm,
// logs and tabulates a BuildReport, and optionally archives the result.
func Build(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}
	scenePath := ctx.Args().First()

	tris, err := loadTriangles(scenePath)
	if err != nil {
		return err
	}
	if len(tris) == 0 {
		return fmt.Errorf("mesh %s contains no triangles", scenePath)
	}
	logger.Infof("loaded %d triangles from %s", len(tris), scenePath)

	algo := ctx.String("algo")
	logger.Debugf("building bvh with algorithm %q", algo)
	report, tree, err := buildTree(tris, algo)
	if err != nil {
		return err
	}

	logger.Noticef("built %s bvh: %d nodes, %d leaves, depth %d, %s",
		report.Algorithm, report.NodeCount, report.LeafCount, report.MaxDepth, report.BuildTime)
	displayBuildReport(report)

	if out := ctx.String("out"); out != "" {
		if err := bvh.Save(out, tris, tree); err != nil {
			return fmt.Errorf("archiving build result: %w", err)
		}
		logger.Noticef("wrote archive to %s", out)
	}

	return nil
}

func loadTriangles(path string) ([]bvh.Triangle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	tris, err := obj.Load(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return tris, nil
}

func buildTree(tris []bvh.Triangle, algo string) (bvh.BuildReport, *bvh.Bvh, error) {
	bboxes, centers := bvh.TriangleInput(tris)

	switch algo {
	case "", "sah":
		tree, report := bvh.BuildSAHWithReport(bboxes, centers, bvh.DefaultSAHConfig())
		return report, tree, nil
	case "ploc":
		tree, report := bvh.BuildPLOCWithReport(bboxes, centers, bvh.DefaultPLOCConfig())
		return report, tree, nil
	default:
		return bvh.BuildReport{}, nil, fmt.Errorf("unknown build algorithm %q; want \"sah\" or \"ploc\"", algo)
	}
}

func displayBuildReport(report bvh.BuildReport) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Algorithm", "Primitives", "Nodes", "Leaves", "Max depth", "Build time"})
	table.Append([]string{
		report.Algorithm,
		fmt.Sprintf("%d", report.PrimCount),
		fmt.Sprintf("%d", report.NodeCount),
		fmt.Sprintf("%d", report.LeafCount),
		fmt.Sprintf("%d", report.MaxDepth),
		report.BuildTime.String(),
	})
	table.Render()
	fmt.Print(buf.String())
}
