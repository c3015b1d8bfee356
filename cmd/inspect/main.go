package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"spatial-interactor/internal/mathutil"
	"spatial-interactor/internal/pick"
	"spatial-interactor/internal/scene/memscene"
	"spatial-interactor/internal/texture"
)

func main() {
	pickAt := flag.String("pick", "", "World point x,y,z to pick in every renderer")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: inspect [-pick x,y,z] scene.yaml")
		os.Exit(2)
	}

	sc, err := memscene.Load(flag.Arg(0))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	texIndex := texture.BuildIndex(sc.TextureDir)
	texCache := texture.NewCache(texIndex)

	w := sc.Window
	fmt.Printf("Window: %dx%d, lights follow camera: %v, textures: %d\n",
		w.Width, w.Height, w.LightFollowCamera(), texIndex.Len())
	for _, ren := range w.Renderers() {
		cam := ren.Camera()
		near, far := cam.ClippingRange()
		fmt.Printf("Renderer %q viewport %v\n", ren.Name, ren.Viewport)
		fmt.Printf("  Camera: pos %v focal %v dist %.3f clip [%.3f, %.3f] angle %.1f\n",
			cam.Position(), cam.FocalPoint(), cam.Distance(), near, far, cam.ViewAngle())

		for _, a := range ren.Actors() {
			p := a.Prop()
			kind := "decomposed"
			if _, ok := p.UserMatrix(); ok {
				kind = "user matrix"
			}
			fmt.Printf("  Actor %q (%s) pos %v origin %v color %v\n", a.Name, kind, p.Position(), p.Origin, a.Color)
			if a.Texture != "" {
				if img := texCache.Resolve(a.Texture); img != nil {
					b := img.Bounds()
					fmt.Printf("    Texture %q: %dx%d\n", a.Texture, b.Dx(), b.Dy())
				} else {
					fmt.Printf("    Texture %q: MISSING\n", a.Texture)
				}
			}
			for _, part := range a.Parts() {
				lo, hi := part.Bounds()
				fmt.Printf("    Part %q BBox: X[%.2f, %.2f] Y[%.2f, %.2f] Z[%.2f, %.2f]\n",
					part.Name, lo[0], hi[0], lo[1], hi[1], lo[2], hi[2])
			}
		}
	}

	if *pickAt == "" {
		return
	}
	point, err := parseVec3(*pickAt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -pick: %v\n", err)
		os.Exit(2)
	}
	adapter := pick.New(memscene.Picker{})
	for _, ren := range w.Renderers() {
		if p, ok := adapter.Pick(point, ren); ok {
			fmt.Printf("Pick %v in %q: %s\n", point, ren.Name, p.Name)
		} else {
			fmt.Printf("Pick %v in %q: nothing\n", point, ren.Name)
		}
	}
}

func parseVec3(s string) (mathutil.Vec3, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return mathutil.Vec3{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var v mathutil.Vec3
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return mathutil.Vec3{}, err
		}
		v[i] = x
	}
	return v, nil
}
