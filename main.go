package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/polaris-render/bvhtrace/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "bvhtrace"
	app.Usage = "build and trace bounding volume hierarchies over triangle meshes"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}

	algoFlag := cli.StringFlag{
		Name:  "algo",
		Value: "sah",
		Usage: "build algorithm: sah or ploc",
	}

	app.Commands = []cli.Command{
		{
			Name:      "build",
			Usage:     "build a bvh from an obj mesh and report its shape",
			ArgsUsage: "scene.obj",
			Flags: []cli.Flag{
				algoFlag,
				cli.StringFlag{
					Name:  "out, o",
					Usage: "optional archive path to write the built scene to",
				},
			},
			Action: cmd.Build,
		},
		{
			Name:      "render",
			Usage:     "render a scene to a PPM image",
			ArgsUsage: "scene.obj|scene.zip",
			Flags: []cli.Flag{
				algoFlag,
				cli.StringFlag{
					Name:  "out, o",
					Value: "out.ppm",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.Render,
		},
		{
			Name:      "bench",
			Usage:     "compare sah and ploc build time and tree shape on the same mesh",
			ArgsUsage: "scene.obj",
			Action:    cmd.Bench,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
