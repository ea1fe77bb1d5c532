package place_test

import (
	"fmt"

	"github.com/kulturkompass/wortwolke/pkg/cloud"
	"github.com/kulturkompass/wortwolke/pkg/cloud/place"
	"github.com/kulturkompass/wortwolke/pkg/cloud/sizing"
)

func ExampleSpiral() {
	cfg := cloud.DefaultConfig()
	container := cloud.Container{Width: 800, Height: 500}

	items := sizing.ComputeSizes([]cloud.Item{
		{ID: "konzerte", Text: "Konzerte", Value: 42},
	}, cfg.FontSize, cfg.MinTapTarget)

	placed := place.Spiral(items, container, cfg)
	fmt.Printf("%s at (%.0f, %.0f)\n", placed[0].Text, placed[0].X, placed[0].Y)
	// Output: Konzerte at (400, 250)
}

func ExampleSelect() {
	fmt.Println(place.Select(8, 800*500))
	fmt.Println(place.Select(60, 300*300))
	fmt.Println(place.Select(30, 10000))
	// Output:
	// spiral
	// force
	// hybrid
}
