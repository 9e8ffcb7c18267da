package main

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/blend"
	"github.com/osuushi/blend/internal"
	"github.com/osuushi/blend/internal/dbg"
	"github.com/osuushi/blend/internal/logger"
	"github.com/osuushi/blend/internal/oils"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Find a recipe of pure oils that reproduces a desired blend. Oils are read
// from a catalog file, or from stdin as newline separated "x y [name]" lines.
//
// Exits with status 2 if the blend is outside the hull of the oils.
var (
	app      = kingpin.New("oilmix", "Mix pure oils to reach a desired blend.")
	oilsPath = app.Flag("oils", "Oil catalog (.yaml, or text with one \"x y [name]\" per line). Defaults to stdin.").Short('o').ExistingFile()
	logLevel = app.Flag("log-level", "Log level.").Default("info").Enum("debug", "info", "warn", "error")
	logFile  = app.Flag("log-file", "Also write logs to this file.").String()
	drawPath = app.Flag("draw", "Write a PNG of the hull fan and chosen triangle.").String()
	scale    = app.Flag("scale", "Pixels per unit in the drawing.").Default("50").Float64()
	showImg  = app.Flag("imgcat", "Print the drawing to the terminal (iTerm only).").Bool()
	target   = app.Arg("target", "Desired blend as \"x,y\".").Required().String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger.Init(*logLevel, *logFile)
	defer logger.Sync()
	blend.SetLogger(logger.Log)

	catalog, err := loadCatalog(*oilsPath)
	if err != nil {
		logger.Log.Fatal("could not read oils", zap.Error(err))
	}
	goal, err := oils.ParsePoint(*target)
	if err != nil {
		logger.Log.Fatal("could not read target", zap.Error(err))
	}
	logger.Log.Info("mixing", zap.Int("oils", len(catalog.Oils)), zap.Stringer("target", goal))

	combination, err := blend.Mix(catalog.Points(), goal)
	if err != nil {
		logger.Log.Fatal("could not mix", zap.Error(err))
	}

	if *drawPath != "" {
		draw(catalog, goal, combination)
	}

	if combination == nil {
		fmt.Println(aurora.Red(fmt.Sprintf("%v is outside the hull of the oils", goal)))
		logger.Sync()
		os.Exit(2)
	}
	printRecipe(os.Stdout, catalog.Recipe(combination))
}

func loadCatalog(path string) (*oils.Catalog, error) {
	if path == "" {
		return oils.ParseText(os.Stdin)
	}
	return oils.Load(path)
}

func printRecipe(w io.Writer, recipe []oils.Ingredient) {
	for _, ingredient := range recipe {
		fmt.Fprintf(w, "%s  %s  (%g, %g)\n",
			aurora.Bold(fmt.Sprintf("%6.2f%%", 100*ingredient.Weight)),
			dbg.Colored(ingredient.Oil.Name, ingredient.Oil.Generated),
			ingredient.Oil.X, ingredient.Oil.Y,
		)
	}
}

func draw(catalog *oils.Catalog, goal blend.Point, combination blend.Combination) {
	c := internal.DrawFan(catalog.Points(), goal, combination, *scale)
	if err := c.SavePNG(*drawPath); err != nil {
		logger.Log.Error("could not save drawing", zap.String("path", *drawPath), zap.Error(err))
		return
	}
	logger.Log.Info("saved drawing", zap.String("path", *drawPath))
	if *showImg {
		imgcat.CatFile(*drawPath, os.Stdout)
	}
}
