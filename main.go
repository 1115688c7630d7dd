package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"cytb_buddy_go/config"
	"cytb_buddy_go/tools/benchmark"
	"cytb_buddy_go/tools/cytb_metrics"
	"cytb_buddy_go/tools/sanity_check"
	"cytb_buddy_go/tools/translate"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`cytb_buddy - Custom Help Menu
Usage:
  cytb_buddy <tool> [options]

Tools:
  cytb_metrics		Translate cytochrome b, derive protein and GC metrics,
			merge them onto a species mass table and plot them
  translate		Write the translated protein of every FASTA record
  check			Run diagnostic test

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in association with a tool.
			Displays computational resource usage and
			pertinent operating system information

Use "cytb_buddy <tool> -h" for the options of a tool.`)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("cytb_buddy - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tcytb_buddy:\t\t%s\n", config.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tCytb Metrics:\t\t%s\n", config.CytbMetrics)
	fmt.Printf("\tTranslate:\t\t%s\n", config.Translate)
	fmt.Printf("\tSanity Check:\t\t%s\n", config.Sanity_check)
	fmt.Printf("\tBenchmark:\t\t%s\n", config.Benchmark)
	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {
	log.SetPrefix("[cytb_buddy] ")

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	switch os.Args[1] {
	case "-h", "-help", "--help":
		printCustomHelp()
	case "-v", "-version", "--version":
		printVersion()
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" || arg == "--benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() error {
		switch toolName {
		case "cytb_metrics":
			return cytb_metrics.Run(cleanedArgs)
		case "translate":
			return translate.Run(cleanedArgs)
		case "check":
			return sanity_check.Check(os.Stdout)
		default:
			return fmt.Errorf("unknown tool: %s", toolName)
		}
	}

	var err error
	if benchmarking {
		label := fmt.Sprintf("cytb_buddy %s %s", toolName, strings.Join(cleanedArgs, " "))
		err = benchmark.Run(label, run)
	} else {
		err = run()
	}
	if err != nil {
		log.Fatalf("%s failed: %v", toolName, err)
	}
}
