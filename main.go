package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"splinther/calculator"
	"splinther/config"
	"splinther/export"
	"splinther/model"
)

func main() {
	var (
		cfgPath  = flag.String("config", "configs/small_reactor.yaml", "reactor configuration file (YAML or JSON)")
		format   = flag.String("format", "text", "output format: text, json or yaml")
		out      = flag.String("out", "", "write results to this file instead of stdout")
		strict   = flag.Bool("strict", false, "treat warnings and out-of-range properties as errors")
		settings = flag.String("settings", "", "calculator settings ini file")
		workers  = flag.Int("workers", 0, "sweep worker count (0 = settings default)")
	)
	flag.Parse()

	if *settings != "" {
		if err := calculator.LoadSettingsFile(*settings); err != nil {
			log.WithError(err).Fatal("load settings")
		}
	}

	mode := model.Permissive
	if *strict || calculator.ActiveSettings().Strict {
		mode = model.Strict
	}

	// Extra arguments are additional configuration files; more than one
	// input runs as a parameter sweep.
	paths := append([]string{*cfgPath}, flag.Args()...)
	if len(paths) > 1 {
		os.Exit(runSweep(paths, mode, *workers))
	}
	os.Exit(runSingle(paths[0], mode, *format, *out))
}

func runSingle(path string, mode model.Mode, format, out string) int {
	cfg, err := config.Load(path)
	if err != nil {
		log.WithError(err).Error("load configuration")
		return 1
	}

	ok, messages := config.Validate(cfg, mode == model.Strict)
	for _, m := range messages {
		log.Warn(m)
	}
	if !ok {
		log.Error("configuration rejected by validator")
		return 1
	}

	res, err := calculator.NewCalculator(cfg, mode).Calculate()
	if err != nil {
		log.WithError(err).Error("calculation failed")
		return 1
	}

	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			log.WithError(err).Error("create output file")
			return 1
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "json":
		err = export.JSON(w, res)
	case "yaml":
		err = export.YAML(w, res)
	default:
		_, err = fmt.Fprint(w, export.FormatResults(res))
	}
	if err != nil {
		log.WithError(err).Error("write results")
		return 1
	}
	return 0
}

func runSweep(paths []string, mode model.Mode, workers int) int {
	configs := make([]model.ReactorConfig, 0, len(paths))
	for _, p := range paths {
		cfg, err := config.Load(p)
		if err != nil {
			log.WithError(err).Error("load configuration")
			return 1
		}
		configs = append(configs, cfg)
	}

	failures := 0
	for _, sr := range calculator.Sweep(configs, mode, workers) {
		name := sr.Config.Name
		if name == "" {
			name = paths[sr.Index]
		}
		if sr.Err != nil {
			failures++
			log.WithError(sr.Err).Errorf("%s: calculation failed", name)
			continue
		}
		fmt.Printf("--- %s ---\n%s\n", name, export.FormatResults(sr.Results))
	}
	if failures > 0 {
		return 1
	}
	return 0
}
