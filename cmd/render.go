package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/polaris-render/bvhtrace/bvh"
	"github.com/polaris-render/bvhtrace/camera"
	"github.com/polaris-render/bvhtrace/render"
)

// Render builds (or loads) a scene, traces it into an image and writes
// the result as a PPM file.
func Render(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}
	scenePath := ctx.Args().First()

	tris, tree, err := resolveScene(scenePath, ctx.String("algo"))
	if err != nil {
		return err
	}
	logger.Infof("resolved scene %s: %d triangles, %d bvh nodes", scenePath, len(tris), len(tree.Nodes))
	prims := bvh.Intersectors(tris)

	logger.Noticef("tracing %dx%d image against %d primitives", render.ImageWidth, render.ImageHeight, len(tris))
	pix := render.Trace(tree, prims, camera.Default())

	out := ctx.String("out")
	if out == "" {
		out = "out.ppm"
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer f.Close()

	if err := render.WritePPM(f, render.ImageWidth, render.ImageHeight, pix); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	logger.Noticef("wrote image to %s", out)

	return nil
}

// resolveScene loads a prebuilt archive directly, or parses an OBJ mesh
// and builds a fresh tree, depending on the scene file's extension.
func resolveScene(path, algo string) ([]bvh.Triangle, *bvh.Bvh, error) {
	if strings.HasSuffix(path, ".zip") {
		tris, tree, err := bvh.Load(path)
		if err != nil {
			return nil, nil, fmt.Errorf("loading archive %s: %w", path, err)
		}
		return tris, tree, nil
	}

	tris, err := loadTriangles(path)
	if err != nil {
		return nil, nil, err
	}
	if len(tris) == 0 {
		return nil, nil, fmt.Errorf("mesh %s contains no triangles", path)
	}

	_, tree, err := buildTree(tris, algo)
	if err != nil {
		return nil, nil, err
	}
	return tris, tree, nil
}
