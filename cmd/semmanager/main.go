package main

import (
	"flag"
	"fmt"
	"github.com/gostonefire/memhashmap"
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/internal/command"
	"github.com/gostonefire/memhashmap/metrics"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"io"
	"os"
	"strconv"
)

const usage string = "usage: semmanager [flags] <memory-pool-size> <initial-capacity> <command-file>"

func main() {
	// A missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// options - Settings collected from flags, environment and positional arguments
type options struct {
	outFile         string
	technique       int
	debug           bool
	dumpMetrics     bool
	memoryPoolSize  int64
	initialCapacity int64
	commandFile     string
}

// parseOptions - Parses args, flags default to SEMMANAGER_OUT, SEMMANAGER_CRT and SEMMANAGER_DEBUG
func parseOptions(args []string, stderr io.Writer) (opts options, err error) {
	fs := flag.NewFlagSet("semmanager", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}

	outFile := fs.String("out", getEnv("SEMMANAGER_OUT", ""), "write output to file instead of stdout")
	crtName := fs.String("crt", getEnv("SEMMANAGER_CRT", "double"), "collision resolution technique: double, linear, quadratic or mixed")
	debug := fs.Bool("debug", getEnv("SEMMANAGER_DEBUG", "") == "true", "development logging at debug level")
	dumpMetrics := fs.Bool("metrics", false, "print metrics in Prometheus text format to stderr at exit")

	if err = fs.Parse(args); err != nil {
		return
	}

	if fs.NArg() != 3 {
		err = fmt.Errorf("expected 3 arguments, got %d\n%s", fs.NArg(), usage)
		return
	}

	technique, ok := crt.FromName(*crtName)
	if !ok {
		err = fmt.Errorf("unknown collision resolution technique %s", *crtName)
		return
	}

	opts = options{
		outFile:     *outFile,
		technique:   technique,
		debug:       *debug,
		dumpMetrics: *dumpMetrics,
		commandFile: fs.Arg(2),
	}

	if opts.memoryPoolSize, err = strconv.ParseInt(fs.Arg(0), 10, 64); err != nil {
		err = fmt.Errorf("invalid memory pool size: %w", err)
		return
	}
	if opts.initialCapacity, err = strconv.ParseInt(fs.Arg(1), 10, 64); err != nil {
		err = fmt.Errorf("invalid initial capacity: %w", err)
		return
	}

	return
}

// run - Builds a hash table from args and executes the command file against it
func run(args []string, stdout, stderr io.Writer) (err error) {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		return
	}

	logger := newLogger(opts.debug, stderr)
	defer func() { _ = logger.Sync() }()

	output := stdout
	if opts.outFile != "" {
		var f *os.File
		f, err = os.OpenFile(opts.outFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			err = fmt.Errorf("error while opening output file: %w", err)
			return
		}
		defer func(f *os.File) { _ = f.Close() }(f)
		output = f
	}

	commands, err := os.Open(opts.commandFile)
	if err != nil {
		err = fmt.Errorf("error while opening command file: %w", err)
		return
	}
	defer func(f *os.File) { _ = f.Close() }(commands)

	reg := prometheus.NewRegistry()
	m, err := metrics.NewMetrics(reg)
	if err != nil {
		return
	}

	table, err := memhashmap.NewHashTableFromConf(memhashmap.Conf{
		MemoryPoolSize:               opts.memoryPoolSize,
		InitialCapacity:              opts.initialCapacity,
		Output:                       output,
		CollisionResolutionTechnique: opts.technique,
		Logger:                       logger,
		Metrics:                      m,
	})
	if err != nil {
		return
	}

	err = command.NewExecutor(table, output, logger).Run(commands)

	stat := table.Stat()
	logger.Info("command file processed",
		zap.String("file", opts.commandFile),
		zap.Int64("capacity", stat.Capacity),
		zap.Int64("live", stat.LiveRecords),
		zap.Int64("tombstones", stat.Tombstones),
		zap.Int64("expansions", stat.Expansions),
		zap.Int64("longestProbe", stat.LongestProbe),
	)

	if opts.dumpMetrics {
		if mErr := writeMetrics(reg, stderr); mErr != nil && err == nil {
			err = mErr
		}
	}

	return
}

// newLogger - Returns a production logger, or a development logger if debug is set, writing to w
func newLogger(debug bool, w io.Writer) (logger *zap.Logger) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(encoderConfig)
	level := zapcore.InfoLevel
	if debug {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	logger = zap.New(core)
	if debug {
		logger = logger.WithOptions(zap.Development(), zap.AddCaller())
	}

	return
}

// writeMetrics - Writes everything gathered from reg in the Prometheus text format
func writeMetrics(reg prometheus.Gatherer, w io.Writer) (err error) {
	families, err := reg.Gather()
	if err != nil {
		err = fmt.Errorf("error while gathering metrics: %w", err)
		return
	}

	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			err = fmt.Errorf("error while writing metrics: %w", err)
			return
		}
	}

	return
}

// getEnv - Returns the environment variable key, or defaultValue if it is unset or empty
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
