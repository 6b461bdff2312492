// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlbst/avl"
	"github.com/bitmark-inc/avlbst/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "script", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		usage(os.Stdout, program)
		exitwithstatus.Exit(1)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}
	if len(options["script"]) > 1 {
		exitwithstatus.Message("%s: only one script option is allowed, %d were detected", program, len(options["script"]))
	}

	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	scriptFile := masterConfiguration.Script
	if 1 == len(options["script"]) {
		scriptFile = options["script"][0]
	}

	if "" == scriptFile && 0 == len(arguments) {
		usage(os.Stdout, program)
		exitwithstatus.Exit(1)
	}

	// log to console as well
	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	tree := avl.New()

	var tracer *rotationTracer
	if masterConfiguration.TraceRotations {
		tracer = newRotationTracer(logger.New(rotationLoggerPrefix))
		tree.SetTracer(tracer)
	}

	var out io.Writer = os.Stdout
	if len(options["quiet"]) > 0 {
		out = ioutil.Discard
	}
	p := newProcessor(tree, out, log)

	if "" != scriptFile {
		operations, err := loadScript(scriptFile)
		if nil != err {
			log.Errorf("script: %q  error: %s", scriptFile, err)
			exitwithstatus.Message("%s: script: %q  error: %s", program, scriptFile, err)
		}
		log.Infof("script: %q  operations: %d", scriptFile, len(operations))
		if err := p.runScript(operations); nil != err {
			log.Errorf("script: %q  error: %s", scriptFile, err)
			exitwithstatus.Message("%s: script: %q  error: %s", program, scriptFile, err)
		}
	}

	if err := p.run(arguments); nil != err {
		log.Errorf("command error: %s", err)
		exitwithstatus.Message("%s: error: %s", program, err)
	}

	if nil != tracer {
		log.Infof("rotations: %d", tracer.total())
	}
}

func usage(w io.Writer, program string) {
	fmt.Fprintf(w, "usage: %s [--help] [--verbose] [--quiet] [--version] [--config-file=FILE] [--script=FILE.yaml] [command arguments...]\n\n", program)
	commandHelp(w)
}
