// SPDX-License-Identifier: MIT

// Command weir creates, alters and persists named graphs.
//
//	weir [-config path] [-v N] <command> [args]
//
//	new <name> [-dim 2|3] [-shape kind:args] [-scale S]
//	                          create a graph, empty or holding a generated shape
//	apply <name> <file|->     run an alteration script and save the result
//	show <name>               print the graph as YAML
//	import <name> <file|->    store a YAML snapshot under name
//	list                      list saved graphs
//	rm <name>                 delete a graph
//	stats <name>              print counts, components, segments, cycles and bounds
//	path <name> <from> <to>   print the shortest path between two vertices
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/weir/config"
	"github.com/katalvlaran/weir/store"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	fset := flag.NewFlagSet("weir", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	configPath := fset.String("config", "", "config file (default $"+config.EnvConfigPath+" or ./"+config.ConfigFileName+")")
	fset.Usage = func() {
		fmt.Fprintln(fset.Output(), "usage: weir [-config path] [-v N] <new|apply|show|import|list|rm|stats|path> [args]")
		fset.PrintDefaults()
	}
	if err := fset.Parse(args); err != nil {
		return 2
	}
	defer klog.Flush()

	cfg, path, err := config.Load(*configPath)
	if err != nil {
		klog.Errorf("weir: %v", err)
		return 1
	}
	verbositySet := false
	fset.Visit(func(f *flag.Flag) { verbositySet = verbositySet || f.Name == "v" })
	if !verbositySet {
		fset.Set("v", strconv.Itoa(cfg.Log.Verbosity))
	}
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	klog.V(1).Infof("weir: config %q, store %q", path, cfg.Store.Dir)

	if fset.NArg() == 0 {
		fset.Usage()
		return 2
	}

	st, err := store.Open(store.Options{Dir: cfg.Store.Dir, InMemory: cfg.Store.InMemory})
	if err != nil {
		klog.Errorf("weir: %v", err)
		return 1
	}
	defer st.Close()

	a := &app{cfg: cfg, st: st, out: os.Stdout, in: os.Stdin}
	if err := a.exec(fset.Args()); err != nil {
		klog.Errorf("weir: %v", err)
		fmt.Fprintln(os.Stderr, "weir:", err)
		return 1
	}

	return 0
}
