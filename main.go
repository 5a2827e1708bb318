package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lookbusy1344/riscv-emulator/api"
	"github.com/lookbusy1344/riscv-emulator/config"
	"github.com/lookbusy1344/riscv-emulator/debugger"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"     // Version number (set by git tag at build time)
	Commit  = "unknown" // Git commit hash
	Date    = "unknown" // Build date
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		tuiMode     = flag.Bool("tui", false, "Start the TUI debugger")
		apiServer   = flag.Bool("api-server", false, "Start the HTTP API server")
		apiPort     = flag.Int("port", 0, "API server port (overrides config)")
		configFile  = flag.String("config", "", "Config file path (default: platform config dir)")
		rv32Mode    = flag.Bool("rv32", false, "Decode in RV32 mode")
		verboseMode = flag.Bool("verbose", false, "Verbose output")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("riscv-emu %s (%s, %s)\n", Version, Commit, Date)
		return
	}
	if *showHelp {
		printUsage()
		return
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	rv64 := cfg.Execution.Rv64
	if *rv32Mode {
		rv64 = false
	}

	base, _ := cfg.IommuBaseAddr()
	caps, _ := cfg.IommuCapabilities()
	session := debugger.NewSession(rv64, base, cfg.Iommu.WindowSize, caps,
		cfg.Debugger.HistorySize)

	switch {
	case *apiServer:
		port := cfg.API.Port
		if *apiPort != 0 {
			port = *apiPort
		}
		if *verboseMode || cfg.API.EnableDebug {
			api.EnableDebugLog()
		}
		server := api.NewServer(session)
		fmt.Printf("API server on http://localhost:%d (ws: /ws)\n", port)
		if err := server.ListenAndServe(port); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

	case *tuiMode:
		if err := debugger.NewTUI(session).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

	default:
		// One-shot mode: evaluate the remaining arguments as a single
		// debugger command, e.g. `riscv-emu decode 0x00A10093`.
		if flag.NArg() == 0 {
			printUsage()
			return
		}
		line := ""
		for i, a := range flag.Args() {
			if i > 0 {
				line += " "
			}
			line += a
		}
		out, err := session.Execute(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if out != "" {
			fmt.Println(out)
		}
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func printUsage() {
	fmt.Println(`riscv-emu - RISC-V instruction decoder and IOMMU simulator

usage:
  riscv-emu [flags] [command...]

modes:
  riscv-emu decode 0x00A10093    one-shot command evaluation
  riscv-emu -tui                 interactive TUI debugger
  riscv-emu -api-server          HTTP/WebSocket API server

flags:`)
	flag.PrintDefaults()
}
