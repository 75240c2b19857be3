package main

import (
	"fmt"
	"os"

	"github.com/df07/go-tetra-raytracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-tetra-raytracer"
	app.Usage = "render spheres and tetrahedra using path tracing"
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
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: "only log warnings and errors, hiding scanline progress",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug, info, notice, warning or error (overrides -v, -vv and -q)",
		},
		cli.StringSliceFlag{
			Name:  "log-module",
			Usage: "per-module log level as module=level, e.g. worker=debug (repeatable)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene or a JSON scene file",
			Description: `
Render a single frame. The scene argument is either the name of a built-in
scene (see the scenes command) or the path to a .json scene file; it defaults
to "final".

Camera flags override the scene's recommended camera. Without --out the image
is streamed to standard output as a plain PPM, one row at a time; progress
goes to standard error.`,
			ArgsUsage: "[scene | scene.json]",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Usage: "image width in pixels (default: scene setting)",
				},
				cli.Float64Flag{
					Name:  "aspect",
					Usage: "image aspect ratio, width over height (default: scene setting)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (default: scene setting)",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum ray bounces (default: scene setting)",
				},
				cli.Float64Flag{
					Name:  "vfov",
					Usage: "vertical field of view in degrees (default: scene setting)",
				},
				cli.Float64Flag{
					Name:  "defocus",
					Usage: "defocus cone angle in degrees, 0 disables depth of field (default: scene setting)",
				},
				cli.Float64Flag{
					Name:  "focus",
					Usage: "distance to the plane of perfect focus (default: scene setting)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "seed for random scene layout and sampling",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render goroutines, 0 for one per CPU",
				},
				cli.BoolFlag{
					Name:  "motion-blur",
					Usage: "sample rays across the shutter interval and animate scenes that support it",
				},
				cli.BoolFlag{
					Name:  "fresnel",
					Usage: "let glass reflect part of the light using Schlick's approximation",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "-",
					Usage: "image filename, - for standard output",
				},
				cli.StringFlag{
					Name:  "format, f",
					Usage: "image format: ppm, png or bmp (default: from the file extension)",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
