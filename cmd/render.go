package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/df07/go-tetra-raytracer/pkg/output"
	"github.com/df07/go-tetra-raytracer/pkg/renderer"
	"github.com/df07/go-tetra-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// stdoutName selects standard output as the render destination
const stdoutName = "-"

// Render a scene to an image.
func RenderScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	sceneName := "final"
	if ctx.NArg() > 1 {
		return fmt.Errorf("expected at most one scene argument, got %d", ctx.NArg())
	}
	if ctx.NArg() == 1 {
		sceneName = ctx.Args().First()
	}

	opts := scene.Options{
		Seed:       ctx.Int64("seed"),
		Fresnel:    ctx.Bool("fresnel"),
		MotionBlur: ctx.Bool("motion-blur"),
	}

	sc, err := scene.Load(sceneName, opts)
	if err != nil {
		return err
	}

	cameraConfig, err := cameraConfigFromFlags(ctx, sc.CameraConfig)
	if err != nil {
		return err
	}

	format, err := outputFormat(ctx)
	if err != nil {
		return err
	}

	camera := renderer.NewCamera(cameraConfig)
	rt, err := renderer.NewRaytracer(sc.World, camera, renderer.SamplingConfig{
		Seed:       opts.Seed,
		NumWorkers: ctx.Int("workers"),
	})
	if err != nil {
		return err
	}

	logger.Noticef("rendering scene %q (%d objects) at %dx%d, %d spp, depth %d",
		sc.Name, sc.ObjectCount(), camera.ImageWidth(), camera.ImageHeight(),
		cameraConfig.SamplesPerPixel, cameraConfig.MaxDepth)

	out, closeOut, err := openOutput(ctx)
	if err != nil {
		return err
	}
	defer closeOut()

	// Ctrl+C stops the render between scanlines
	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := renderTo(renderCtx, rt, out, format)
	if err != nil {
		return err
	}

	displayRenderStats(stats)
	if name := ctx.String("out"); name != stdoutName {
		logger.Noticef("image written to %s", name)
	}

	return nil
}

// renderTo streams PPM output row by row; other formats are encoded once
// the whole frame is in memory
func renderTo(ctx context.Context, rt *renderer.Raytracer, w io.Writer, format output.Format) (renderer.RenderStats, error) {
	if format == output.FormatPPM {
		ppm := output.NewPPMWriter(w)
		stats, err := rt.Render(ctx, ppm)
		if flushErr := ppm.Flush(); err == nil {
			err = flushErr
		}
		return stats, err
	}

	fb := output.NewFramebuffer()
	stats, err := rt.Render(ctx, fb)
	if err != nil {
		return stats, err
	}
	return stats, output.Encode(w, fb, format)
}

// cameraConfigFromFlags overlays command line flags on the scene's
// recommended camera
func cameraConfigFromFlags(ctx *cli.Context, base renderer.CameraConfig) (renderer.CameraConfig, error) {
	for _, name := range []string{"width", "spp", "depth", "workers"} {
		if ctx.Int(name) < 0 {
			return base, fmt.Errorf("--%s must not be negative", name)
		}
	}
	for _, name := range []string{"aspect", "vfov", "defocus", "focus"} {
		if ctx.Float64(name) < 0 {
			return base, fmt.Errorf("--%s must not be negative", name)
		}
	}
	if vfov := ctx.Float64("vfov"); vfov >= 180 {
		return base, fmt.Errorf("--vfov must be below 180 degrees, got %g", vfov)
	}

	config := renderer.MergeCameraConfig(base, renderer.CameraConfig{
		AspectRatio:     ctx.Float64("aspect"),
		ImageWidth:      ctx.Int("width"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
		VFov:            ctx.Float64("vfov"),
		DefocusAngle:    ctx.Float64("defocus"),
		FocusDist:       ctx.Float64("focus"),
		MotionBlur:      ctx.Bool("motion-blur"),
	})

	// An explicit zero turns depth of field off
	if ctx.IsSet("defocus") {
		config.DefocusAngle = ctx.Float64("defocus")
	}

	return config, nil
}

func outputFormat(ctx *cli.Context) (output.Format, error) {
	if name := ctx.String("format"); name != "" {
		return output.ParseFormat(name)
	}
	if out := ctx.String("out"); out != stdoutName {
		return output.FormatFromPath(out)
	}
	return output.FormatPPM, nil
}

func openOutput(ctx *cli.Context) (io.Writer, func(), error) {
	name := ctx.String("out")
	if name == stdoutName {
		return ctx.App.Writer, func() {}, nil
	}

	file, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	return file, func() {
		if err := file.Close(); err != nil {
			logger.Errorf("closing %s: %v", name, err)
		}
	}, nil
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Scanlines", "% of frame"})
	for id, rows := range stats.RowsPerWorker {
		table.Append([]string{
			fmt.Sprintf("%d", id),
			fmt.Sprintf("%d", rows),
			fmt.Sprintf("%02.1f %%", 100*float64(rows)/float64(stats.Height)),
		})
	}
	table.SetFooter([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d samples", stats.TotalSamples),
		stats.Duration.String(),
	})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
