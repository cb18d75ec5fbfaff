// imgproc loads an image, runs a dynamically loaded plugin module against
// its pixel buffer, and writes the result back out.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/nimec77/image-ffi-project/internal/config"
	"github.com/nimec77/image-ffi-project/internal/imageio"
	"github.com/nimec77/image-ffi-project/internal/logging"
	"github.com/nimec77/image-ffi-project/internal/plugin"
	"github.com/nimec77/image-ffi-project/internal/transform"
	"github.com/nimec77/image-ffi-project/internal/wasm"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	input := flag.String("input", "", "Path to input PNG image")
	output := flag.String("output", "", "Path to save output PNG image")
	pluginName := flag.String("plugin", "", "Plugin name (without extension)")
	paramsPath := flag.String("params", "", "Path to JSON parameters file")
	pluginDir := flag.String("plugin-dir", "", "Directory containing plugins (overrides config)")
	configPath := flag.String("config", "", "Path to configuration file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error; overrides config)")
	describe := flag.String("describe", "", "Print the settings schema for a bundled plugin (mirror, blur) and exit")
	flag.Parse()

	if *describe != "" {
		schema, err := transform.SettingsSchema(*describe)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(string(schema))
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *pluginDir != "" {
		cfg.PluginDir = *pluginDir
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	if err := logging.Init(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := logging.L()
	defer logger.Sync()

	if *input == "" || *output == "" || *pluginName == "" || *paramsPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger.Info("Starting imgproc",
		zap.String("version", version),
		zap.String("commit", commit),
		zap.String("input", *input),
		zap.String("output", *output),
		zap.String("plugin", *pluginName),
	)

	ctx := context.Background()

	params, err := os.ReadFile(*paramsPath)
	if err != nil {
		logger.Fatal("Failed to read parameters file", zap.Error(err))
	}

	width, height, pixels, err := imageio.Decode(*input)
	if err != nil {
		logger.Fatal("Failed to decode input image", zap.Error(err))
	}

	runtime, err := wasm.NewRuntime(ctx, logger, &wasm.RuntimeConfig{
		MemoryPages:  cfg.Wasm.MemoryPages,
		DebugEnabled: cfg.Wasm.Debug,
	})
	if err != nil {
		logger.Fatal("Failed to initialize Wasm runtime", zap.Error(err))
	}
	defer runtime.Close(ctx)

	path := plugin.LibraryPath(cfg.PluginDir, *pluginName)

	invoker := plugin.NewInvoker(runtime, logger)
	if err := invoker.Process(ctx, path, width, height, pixels, string(params)); err != nil {
		logger.Fatal("Plugin invocation failed", zap.Error(err))
	}

	if err := imageio.Encode(width, height, pixels, *output); err != nil {
		logger.Fatal("Failed to encode output image", zap.Error(err))
	}

	logger.Info("Image processed",
		zap.Uint32("width", width),
		zap.Uint32("height", height),
		zap.String("output", *output),
	)
}
