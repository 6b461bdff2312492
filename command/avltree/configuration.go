// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlbst/configuration"
	"github.com/bitmark-inc/avlbst/fault"
	"github.com/bitmark-inc/avlbst/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avltree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory  string               `gluamapper:"data_directory" json:"data_directory"`
	TraceRotations bool                 `gluamapper:"trace_rotations" json:"trace_rotations"`
	Script         string               `gluamapper:"script" json:"script"`
	Logging        logger.Configuration `gluamapper:"logging" json:"logging"`
}

func defaultConfiguration() *Configuration {

	// the parser merges into this map so it must not be shared
	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	return &Configuration{
		DataDirectory:  defaultDataDirectory,
		TraceRotations: false,
		Script:         "",
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    levels,
		},
	}
}

// will read decode and verify the configuration
//
// a blank file name uses the defaults with the current directory
// as the data directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()
	baseDirectory := ""

	if "" == configurationFileName {
		wd, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		baseDirectory = wd
	} else {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		if !util.EnsureFileExists(fileName) {
			return nil, fault.ErrNotFoundConfigFile
		}

		// absolute path to the main directory
		baseDirectory, _ = filepath.Split(fileName)

		if err := configuration.ParseConfigurationFile(fileName, options); err != nil {
			return nil, err
		}
	}

	// ensure absolute data directory
	switch options.DataDirectory {
	case "", "~":
		return nil, fault.ErrInvalidDataDirectory
	case ".":
		options.DataDirectory = baseDirectory
	default:
		options.DataDirectory = util.EnsureAbsolute(baseDirectory, options.DataDirectory)
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrNotADirectory
	}

	// the log file is only a name and goes into the log directory
	if err := util.PlainFileName(options.Logging.File); nil != err {
		return nil, err
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.Script {
		options.Script = util.EnsureAbsolute(options.DataDirectory, options.Script)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := util.EnsureDirectory(options.Logging.Directory); nil != err {
		return nil, err
	}

	// done
	return options, nil
}
